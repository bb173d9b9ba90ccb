package usecase

import (
	"context"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"

	"github.com/google/uuid"
)

const similarPlotsLimit = 4

type GetPlotDetailsUseCase struct {
	storage port.PlotStoragePort
}

func NewGetPlotDetailsUseCase(storage port.PlotStoragePort) *GetPlotDetailsUseCase {
	return &GetPlotDetailsUseCase{storage: storage}
}

func (uc *GetPlotDetailsUseCase) Execute(ctx context.Context, plotID uuid.UUID) (*domain.PlotDetailsView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetPlotDetails",
		"plot_id":  plotID,
	})

	plot, err := uc.storage.GetByID(ctx, plotID)
	if err != nil {
		ucLogger.Warn("Plot lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	// Скрытые участки для витрины не существуют
	if !plot.IsVisible {
		ucLogger.Info("Plot is hidden", nil)
		return nil, domain.ErrNotFound
	}

	similar, err := uc.storage.FindSimilar(ctx, *plot, similarPlotsLimit)
	if err != nil {
		ucLogger.Error("Failed to find similar plots", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"similar_count": len(similar)})
	return &domain.PlotDetailsView{Plot: *plot, SimilarPlots: similar}, nil
}
