package usecase

import (
	"context"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"time"

	"github.com/google/uuid"
)

type CreateContactRequestUseCase struct {
	repo     port.ContactRequestRepositoryPort
	notifier port.LeadNotifierPort
	now      func() time.Time
}

func NewCreateContactRequestUseCase(repo port.ContactRequestRepositoryPort, notifier port.LeadNotifierPort) *CreateContactRequestUseCase {
	return &CreateContactRequestUseCase{repo: repo, notifier: notifier, now: time.Now}
}

// Execute сохраняет заявку со статусом new и публикует лид. Сбой публикации заявку не отменяет.
func (uc *CreateContactRequestUseCase) Execute(ctx context.Context, request domain.ContactRequest) (*domain.ContactRequest, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "CreateContactRequest"})

	request.Normalize()
	if err := request.Validate(); err != nil {
		ucLogger.Warn("Contact request rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	request.ID = uuid.New()
	request.Status = domain.ContactRequestStatusNew
	request.CreatedAt = uc.now().UTC()

	if err := uc.repo.Create(ctx, &request); err != nil {
		ucLogger.Error("Failed to create contact request", err, nil)
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.ContactRequestCreated(ctx, &request); err != nil {
			ucLogger.Warn("Failed to publish contact request event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Contact request created", port.Fields{"request_id": request.ID, "type": request.Type})
	return &request, nil
}
