package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	constraintResponsePhone = "ux_quiz_responses_phone"
	constraintResponseEmail = "ux_quiz_responses_email"
	constraintPromoCode     = "ux_promo_codes_code"
	constraintPromoResponse = "ux_promo_codes_response"
)

// QuizQuestionRepository хранит вопросы квиза.
type QuizQuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuizQuestionRepository(pool *pgxpool.Pool) (*QuizQuestionRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &QuizQuestionRepository{pool: pool}, nil
}

// ListActive возвращает активные вопросы по возрастанию порядка.
func (r *QuizQuestionRepository) ListActive(ctx context.Context) ([]domain.QuizQuestion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, options, sort_order, is_active FROM quiz_questions WHERE is_active ORDER BY sort_order, id`)
	if err != nil {
		return nil, storeError("failed to query quiz questions", err)
	}
	questions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.QuizQuestion, error) {
		var q domain.QuizQuestion
		err := row.Scan(&q.ID, &q.Question, &q.Options, &q.Order, &q.IsActive)
		return q, err
	})
	if err != nil {
		return nil, storeError("failed to scan quiz questions", err)
	}
	return questions, nil
}

func (r *QuizQuestionRepository) Save(ctx context.Context, q *domain.QuizQuestion) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO quiz_questions (id, question, options, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			question = EXCLUDED.question,
			options = EXCLUDED.options,
			sort_order = EXCLUDED.sort_order,
			is_active = EXCLUDED.is_active`,
		q.ID, q.Question, nonNil(q.Options), q.Order, q.IsActive,
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("active question with order %d already exists: %w", q.Order, domain.ErrConflict)
		}
		return storeError("failed to save quiz question", err)
	}
	return nil
}

// QuizLedgerRepository - журнал ответов квиза и промокодов.
type QuizLedgerRepository struct {
	pool      *pgxpool.Pool
	txTimeout time.Duration
}

// NewQuizLedgerRepository создает журнал. txTimeout ограничивает транзакцию записи целиком,
// включая ожидание блокировок.
func NewQuizLedgerRepository(pool *pgxpool.Pool, txTimeout time.Duration) (*QuizLedgerRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	if txTimeout <= 0 {
		return nil, fmt.Errorf("ledger transaction timeout must be positive")
	}
	return &QuizLedgerRepository{pool: pool, txTimeout: txTimeout}, nil
}

// FindByIdentity ищет самый ранний ответ по телефону или email вместе с промокодом.
func (r *QuizLedgerRepository) FindByIdentity(ctx context.Context, identity domain.Identity) (*domain.Issuance, error) {
	var email *string
	if identity.Email != "" {
		email = &identity.Email
	}

	row := r.pool.QueryRow(ctx, `
		SELECT r.id, r.name, r.phone, r.email, r.answers, r.completed, r.status, r.created_at,
		       pc.id, pc.code, pc.discount_percent, pc.is_active, pc.expires_at, pc.max_usages, pc.usage_count, pc.created_at
		FROM quiz_responses r
		JOIN promo_codes pc ON pc.quiz_response_id = r.id
		WHERE r.phone_normalized = $1
		   OR ($2::text IS NOT NULL AND r.email_normalized = $2::text)
		ORDER BY r.created_at ASC, r.id ASC
		LIMIT 1`,
		identity.Phone, email,
	)

	var (
		iss     domain.Issuance
		status  string
		answers []byte
	)
	err := row.Scan(
		&iss.Response.ID, &iss.Response.Name, &iss.Response.Phone, &iss.Response.Email, &answers,
		&iss.Response.Completed, &status, &iss.Response.CreatedAt,
		&iss.Promo.ID, &iss.Promo.Code, &iss.Promo.DiscountPercent, &iss.Promo.IsActive, &iss.Promo.ExpiresAt,
		&iss.Promo.MaxUsages, &iss.Promo.UsageCount, &iss.Promo.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError("failed to find quiz response by identity", err)
	}
	iss.Response.Status = domain.QuizResponseStatus(status)
	iss.Promo.QuizResponseID = iss.Response.ID
	if err := json.Unmarshal(answers, &iss.Response.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz answers: %w", err)
	}
	return &iss, nil
}

// CreateWithPromo записывает ответ и промокод в одной транзакции.
// Гонка за одну идентичность разрешается уникальными индексами: проигравший получает ErrConflict.
func (r *QuizLedgerRepository) CreateWithPromo(ctx context.Context, identity domain.Identity, response *domain.QuizResponse, promo *domain.PromoCode) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "QuizLedgerRepository",
		"method":      "CreateWithPromo",
		"response_id": response.ID.String(),
	})

	answers, err := json.Marshal(response.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz answers: %w", err)
	}

	txCtx, cancel := context.WithTimeout(ctx, r.txTimeout)
	defer cancel()

	tx, err := r.pool.BeginTx(txCtx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return storeError("failed to begin ledger transaction", err)
	}
	defer tx.Rollback(ctx)

	// Ограничения на стороне сервера, чтобы заблокированная строка не держала соединение дольше таймаута
	timeoutMs := r.txTimeout.Milliseconds()
	if _, err := tx.Exec(txCtx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeoutMs)); err != nil {
		return storeError("failed to set lock_timeout", err)
	}
	if _, err := tx.Exec(txCtx, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", timeoutMs)); err != nil {
		return storeError("failed to set statement_timeout", err)
	}

	var emailNormalized *string
	if identity.Email != "" {
		emailNormalized = &identity.Email
	}

	_, err = tx.Exec(txCtx, `
		INSERT INTO quiz_responses (id, name, phone, phone_normalized, email, email_normalized, answers, completed, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		response.ID, response.Name, response.Phone, identity.Phone, response.Email, emailNormalized,
		answers, response.Completed, string(response.Status), response.CreatedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case constraintResponsePhone, constraintResponseEmail:
				repoLogger.Info("Identity already registered by a concurrent submission", port.Fields{"constraint": constraint})
				return fmt.Errorf("failed to insert quiz response: %w", domain.ErrConflict)
			}
		}
		repoLogger.Error("Failed to insert quiz response", err, nil)
		return storeError("failed to insert quiz response", err)
	}

	_, err = tx.Exec(txCtx, `
		INSERT INTO promo_codes (id, code, discount_percent, is_active, expires_at, max_usages, usage_count, quiz_response_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		promo.ID, promo.Code, promo.DiscountPercent, promo.IsActive, promo.ExpiresAt,
		promo.MaxUsages, promo.UsageCount, response.ID, promo.CreatedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case constraintPromoCode:
				repoLogger.Warn("Generated promo code collides with an existing one", nil)
				return fmt.Errorf("failed to insert promo code: %w", domain.ErrPromoCodeTaken)
			case constraintPromoResponse:
				return fmt.Errorf("failed to insert promo code: %w", domain.ErrConflict)
			}
		}
		repoLogger.Error("Failed to insert promo code", err, nil)
		return storeError("failed to insert promo code", err)
	}

	if err := tx.Commit(txCtx); err != nil {
		return storeError("failed to commit ledger transaction", err)
	}
	return nil
}
