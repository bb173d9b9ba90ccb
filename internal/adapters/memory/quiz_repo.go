package memory

import (
	"context"
	"fmt"
	"land-catalog/internal/core/domain"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type QuizQuestionRepo struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]domain.QuizQuestion
}

func NewQuizQuestionRepo() *QuizQuestionRepo {
	return &QuizQuestionRepo{questions: make(map[uuid.UUID]domain.QuizQuestion)}
}

func (r *QuizQuestionRepo) ListActive(ctx context.Context) ([]domain.QuizQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.QuizQuestion, 0, len(r.questions))
	for _, q := range r.questions {
		if q.IsActive {
			q.Options = slices.Clone(q.Options)
			res = append(res, q)
		}
	}
	slices.SortFunc(res, func(a, b domain.QuizQuestion) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return compareIDs(a.ID, b.ID)
	})
	return res, nil
}

func (r *QuizQuestionRepo) Save(ctx context.Context, q *domain.QuizQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q.IsActive {
		for id, existing := range r.questions {
			if id != q.ID && existing.IsActive && existing.Order == q.Order {
				return fmt.Errorf("active question with order %d already exists: %w", q.Order, domain.ErrConflict)
			}
		}
	}
	cp := *q
	cp.Options = slices.Clone(q.Options)
	r.questions[q.ID] = cp
	return nil
}

// QuizLedger - журнал ответов и промокодов с теми же уникальными индексами,
// что и в PostgreSQL: телефон, email (если задан), код, ответ.
type QuizLedger struct {
	mu        sync.Mutex
	issuances map[uuid.UUID]domain.Issuance
	byPhone   map[string]uuid.UUID
	byEmail   map[string]uuid.UUID
	codes     map[string]uuid.UUID
}

func NewQuizLedger() *QuizLedger {
	return &QuizLedger{
		issuances: make(map[uuid.UUID]domain.Issuance),
		byPhone:   make(map[string]uuid.UUID),
		byEmail:   make(map[string]uuid.UUID),
		codes:     make(map[string]uuid.UUID),
	}
}

func (l *QuizLedger) FindByIdentity(ctx context.Context, identity domain.Identity) (*domain.Issuance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var found []domain.Issuance
	if id, ok := l.byPhone[identity.Phone]; ok {
		found = append(found, l.issuances[id])
	}
	if identity.Email != "" {
		if id, ok := l.byEmail[identity.Email]; ok {
			found = append(found, l.issuances[id])
		}
	}
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	// Самая ранняя запись, как ORDER BY created_at в PostgreSQL
	earliest := slices.MinFunc(found, func(a, b domain.Issuance) int {
		if c := a.Response.CreatedAt.Compare(b.Response.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(a.Response.ID, b.Response.ID)
	})
	iss := cloneIssuance(earliest)
	iss.Created = false
	return &iss, nil
}

func (l *QuizLedger) CreateWithPromo(ctx context.Context, identity domain.Identity, response *domain.QuizResponse, promo *domain.PromoCode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ledger write aborted: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byPhone[identity.Phone]; ok {
		return fmt.Errorf("phone already registered: %w", domain.ErrConflict)
	}
	if identity.Email != "" {
		if _, ok := l.byEmail[identity.Email]; ok {
			return fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
	}
	if _, ok := l.codes[promo.Code]; ok {
		return fmt.Errorf("code collision: %w", domain.ErrPromoCodeTaken)
	}

	p := *promo
	p.QuizResponseID = response.ID
	l.issuances[response.ID] = cloneIssuance(domain.Issuance{Response: *response, Promo: p})
	l.byPhone[identity.Phone] = response.ID
	if identity.Email != "" {
		l.byEmail[identity.Email] = response.ID
	}
	l.codes[promo.Code] = response.ID
	return nil
}

// Count возвращает число ответов и число выданных кодов.
func (l *QuizLedger) Count() (responses int, codes int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.issuances), len(l.codes)
}

func cloneIssuance(iss domain.Issuance) domain.Issuance {
	cp := iss
	cp.Response.Answers = maps.Clone(iss.Response.Answers)
	if iss.Response.Email != nil {
		email := *iss.Response.Email
		cp.Response.Email = &email
	}
	return cp
}
