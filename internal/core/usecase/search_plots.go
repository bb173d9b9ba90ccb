package usecase

import (
	"context"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
)

type SearchPlotsUseCase struct {
	storage port.PlotStoragePort
}

func NewSearchPlotsUseCase(storage port.PlotStoragePort) *SearchPlotsUseCase {
	return &SearchPlotsUseCase{storage: storage}
}

// Execute нормализует сортировку и окно пагинации и выполняет поиск.
// Ошибки хранилища пробрасываются без повторов - политика ретраев на вызывающей стороне.
func (uc *SearchPlotsUseCase) Execute(ctx context.Context, query domain.PlotQuery) (*domain.PlotPage, error) {
	query.Page = query.Page.Normalize()
	query.Sort = domain.ParseSortOrder(string(query.Sort))

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchPlots",
		"sort":     query.Sort,
		"page":     query.Page.Page,
		"limit":    query.Page.Limit,
	})

	ucLogger.Debug("Use case started", port.Fields{"filters": query.Filters})

	result, err := uc.storage.FindWithFilters(ctx, query)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.Total,
		"items_on_page": len(result.Items),
	})
	return result, nil
}
