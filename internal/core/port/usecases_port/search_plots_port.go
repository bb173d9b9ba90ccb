package usecases_port

import (
	"context"
	"land-catalog/internal/core/domain"
)

type SearchPlotsUseCase interface {
	Execute(ctx context.Context, query domain.PlotQuery) (*domain.PlotPage, error)
}
