package usecases_port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type SubmitQuizUseCase interface {
	Execute(ctx context.Context, submission domain.QuizSubmission) (*domain.Issuance, error)
}
