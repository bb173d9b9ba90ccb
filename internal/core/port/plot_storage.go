package port

import (
	"context"
	"land-catalog/internal/core/domain"

	"github.com/google/uuid"
)

// PlotStoragePort - хранилище участков каталога.
type PlotStoragePort interface {
	// FindWithFilters возвращает страницу видимых участков и общее число совпадений.
	// У каждого участка в выдаче только главное изображение.
	FindWithFilters(ctx context.Context, query domain.PlotQuery) (*domain.PlotPage, error)
	// GetByID возвращает участок со всеми изображениями и вложениями или domain.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plot, error)
	// FindSimilar - до limit видимых участков той же локации с той же категорией или близкой площадью.
	FindSimilar(ctx context.Context, plot domain.Plot, limit int) ([]domain.Plot, error)
	// Save создает или обновляет участок вместе с изображениями и вложениями.
	Save(ctx context.Context, plot *domain.Plot) error
}
