package usecases_port

import (
	"context"
	"land-catalog/internal/core/domain"

	"github.com/google/uuid"
)

type GetPlotDetailsUseCase interface {
	Execute(ctx context.Context, plotID uuid.UUID) (*domain.PlotDetailsView, error)
}
