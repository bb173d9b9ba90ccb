package usecases_port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type SavePlotUseCase interface {
	Execute(ctx context.Context, plot domain.Plot) (*domain.Plot, error)
}
