package usecases_port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type ListQuizQuestionsUseCase interface {
	Execute(ctx context.Context) ([]domain.QuizQuestion, error)
}
