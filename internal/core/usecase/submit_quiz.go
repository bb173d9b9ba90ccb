package usecase

import (
	"context"
	"errors"
	"fmt"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxPromoCodeAttempts = 5

// PromoPolicy - параметры выдаваемого промокода.
type PromoPolicy struct {
	DiscountPercent int
	Validity        time.Duration
	MaxUsages       int
}

func DefaultPromoPolicy() PromoPolicy {
	return PromoPolicy{
		DiscountPercent: 5,
		Validity:        30 * 24 * time.Hour,
		MaxUsages:       1,
	}
}

type SubmitQuizUseCase struct {
	ledger    port.QuizLedgerPort
	notifier  port.LeadNotifierPort
	generator *PromoCodeGenerator
	policy    PromoPolicy
	now       func() time.Time
}

func NewSubmitQuizUseCase(ledger port.QuizLedgerPort, notifier port.LeadNotifierPort, policy PromoPolicy) *SubmitQuizUseCase {
	return &SubmitQuizUseCase{
		ledger:    ledger,
		notifier:  notifier,
		generator: NewPromoCodeGenerator(policy.DiscountPercent),
		policy:    policy,
		now:       time.Now,
	}
}

// Execute записывает ответы квиза и выдает промокод не более одного раза на идентичность.
// Повторная отправка с тем же телефоном или email возвращает ранее выданный код (Created=false).
func (uc *SubmitQuizUseCase) Execute(ctx context.Context, submission domain.QuizSubmission) (*domain.Issuance, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SubmitQuiz"})

	if err := submission.Validate(); err != nil {
		ucLogger.Warn("Submission rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	identity := domain.IdentityOf(submission)
	ucLogger = ucLogger.WithFields(port.Fields{
		"phone":     identity.Phone,
		"has_email": identity.Email != "",
	})
	ucLogger.Info("Use case started", nil)

	existing, err := uc.ledger.FindByIdentity(ctx, identity)
	if err == nil {
		ucLogger.Info("Identity already has a response, returning issued promo code", port.Fields{
			"response_id": existing.Response.ID,
		})
		existing.Created = false
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		ucLogger.Error("Identity lookup failed", err, nil)
		return nil, err
	}

	for attempt := 1; attempt <= maxPromoCodeAttempts; attempt++ {
		response, promo := uc.newIssuance(submission)

		err := uc.ledger.CreateWithPromo(ctx, identity, response, promo)
		switch {
		case err == nil:
			issuance := &domain.Issuance{Created: true, Response: *response, Promo: *promo}
			ucLogger.Info("Promo code issued", port.Fields{
				"response_id": response.ID,
				"code_prefix": promoPrefix(promo.Code),
				"attempt":     attempt,
			})
			uc.notify(ctx, ucLogger, issuance)
			return issuance, nil

		case errors.Is(err, domain.ErrPromoCodeTaken):
			ucLogger.Warn("Generated promo code collides, regenerating", port.Fields{"attempt": attempt})
			continue

		case errors.Is(err, domain.ErrConflict):
			// Параллельная отправка с той же идентичностью успела закоммитить первой
			ucLogger.Warn("Identity claimed concurrently, returning winner's promo code", nil)
			winner, ferr := uc.ledger.FindByIdentity(ctx, identity)
			if ferr != nil {
				ucLogger.Error("Failed to read concurrent winner", ferr, nil)
				return nil, fmt.Errorf("failed to read existing response after conflict: %w", ferr)
			}
			winner.Created = false
			return winner, nil

		default:
			ucLogger.Error("Ledger failed to issue promo code", err, nil)
			return nil, err
		}
	}

	return nil, fmt.Errorf("no unique promo code after %d attempts: %w", maxPromoCodeAttempts, domain.ErrPromoCodeTaken)
}

func (uc *SubmitQuizUseCase) newIssuance(s domain.QuizSubmission) (*domain.QuizResponse, *domain.PromoCode) {
	now := uc.now().UTC()

	var email *string
	if e := strings.TrimSpace(s.Email); e != "" {
		email = &e
	}

	response := &domain.QuizResponse{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(s.Name),
		Phone:     strings.TrimSpace(s.Phone),
		Email:     email,
		Answers:   s.Answers,
		Completed: true,
		Status:    domain.QuizStatusNew,
		CreatedAt: now,
	}
	promo := &domain.PromoCode{
		ID:              uuid.New(),
		Code:            uc.generator.Generate(response.Name, now),
		DiscountPercent: uc.policy.DiscountPercent,
		IsActive:        true,
		ExpiresAt:       now.Add(uc.policy.Validity),
		MaxUsages:       uc.policy.MaxUsages,
		QuizResponseID:  response.ID,
		CreatedAt:       now,
	}
	return response, promo
}

// notify не влияет на результат: заявка уже закоммичена.
func (uc *SubmitQuizUseCase) notify(ctx context.Context, logger port.LoggerPort, issuance *domain.Issuance) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.QuizSubmitted(ctx, issuance); err != nil {
		logger.Warn("Failed to publish quiz submitted event", port.Fields{"error": err.Error()})
	}
}
