package usecase

import (
	"context"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateInquiryUseCase struct {
	repo     port.InquiryRepositoryPort
	notifier port.LeadNotifierPort
	now      func() time.Time
}

func NewCreateInquiryUseCase(repo port.InquiryRepositoryPort, notifier port.LeadNotifierPort) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{repo: repo, notifier: notifier, now: time.Now}
}

func (uc *CreateInquiryUseCase) Execute(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateInquiry"})

	if err := inquiry.Validate(); err != nil {
		ucLogger.Warn("Inquiry rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	inquiry.ApplyDefaults()
	inquiry.ID = uuid.New()
	inquiry.Phone = strings.TrimSpace(inquiry.Phone)
	inquiry.CreatedAt = uc.now().UTC()

	if err := uc.repo.Create(ctx, &inquiry); err != nil {
		ucLogger.Error("Failed to create inquiry", err, nil)
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.InquiryCreated(ctx, &inquiry); err != nil {
			ucLogger.Warn("Failed to publish inquiry created event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Inquiry created", port.Fields{"inquiry_id": inquiry.ID})
	return &inquiry, nil
}
