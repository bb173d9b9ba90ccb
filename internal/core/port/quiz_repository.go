package port

import (
	"context"
	"land-catalog/internal/core/domain"
)

// QuizQuestionRepositoryPort - вопросы квиза.
type QuizQuestionRepositoryPort interface {
	ListActive(ctx context.Context) ([]domain.QuizQuestion, error)
	Save(ctx context.Context, q *domain.QuizQuestion) error
}

// QuizLedgerPort - журнал ответов квиза и выданных промокодов.
type QuizLedgerPort interface {
	// FindByIdentity ищет ответ по телефону ИЛИ email (если задан) вместе с его промокодом.
	// Возвращает domain.ErrNotFound, если совпадений нет.
	FindByIdentity(ctx context.Context, identity domain.Identity) (*domain.Issuance, error)

	// CreateWithPromo атомарно записывает ответ и промокод: либо обе записи, либо ни одной.
	// domain.ErrConflict - идентичность уже занята (гонка параллельных отправок),
	// domain.ErrPromoCodeTaken - сгенерированный код уже существует.
	CreateWithPromo(ctx context.Context, identity domain.Identity, response *domain.QuizResponse, promo *domain.PromoCode) error
}
