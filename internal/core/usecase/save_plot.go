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

// SavePlotUseCase - административная запись участка (используется командой seed).
type SavePlotUseCase struct {
	storage port.PlotStoragePort
	now     func() time.Time
}

func NewSavePlotUseCase(storage port.PlotStoragePort) *SavePlotUseCase {
	return &SavePlotUseCase{storage: storage, now: time.Now}
}

func (uc *SavePlotUseCase) Execute(ctx context.Context, plot domain.Plot) (*domain.Plot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SavePlot", "title": plot.Title})

	var details []string
	if strings.TrimSpace(plot.Title) == "" {
		details = append(details, "title is required")
	}
	if plot.Area <= 0 {
		details = append(details, "area must be positive")
	}
	if plot.Price < 0 {
		details = append(details, "price must not be negative")
	}
	if plot.Status == "" {
		plot.Status = domain.PlotStatusAvailable
	} else if _, ok := domain.ParsePlotStatus(string(plot.Status)); !ok {
		details = append(details, "unknown status "+string(plot.Status))
	}
	if len(details) > 0 {
		err := domain.NewValidationError("invalid plot", details...)
		ucLogger.Warn("Plot rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	now := uc.now().UTC()
	if plot.ID == uuid.Nil {
		plot.ID = uuid.New()
	}
	if plot.CreatedAt.IsZero() {
		plot.CreatedAt = now
	}
	plot.UpdatedAt = now
	plot.RecalculatePricePerMeter()
	normalizeImages(plot.Images)
	for i := range plot.Attachments {
		if plot.Attachments[i].ID == uuid.Nil {
			plot.Attachments[i].ID = uuid.New()
		}
	}

	if err := uc.storage.Save(ctx, &plot); err != nil {
		ucLogger.Error("Failed to save plot", err, nil)
		return nil, err
	}

	ucLogger.Info("Plot saved", port.Fields{"plot_id": plot.ID, "price_per_meter": plot.PricePerMeter})
	return &plot, nil
}

// normalizeImages гарантирует ровно одно главное изображение: первое отмеченное, иначе первое по порядку.
func normalizeImages(images []domain.PlotImage) {
	if len(images) == 0 {
		return
	}
	mainIdx := -1
	for i := range images {
		if images[i].ID == uuid.Nil {
			images[i].ID = uuid.New()
		}
		if images[i].IsMain && mainIdx == -1 {
			mainIdx = i
		}
	}
	if mainIdx == -1 {
		mainIdx = 0
	}
	for i := range images {
		images[i].IsMain = i == mainIdx
	}
}
