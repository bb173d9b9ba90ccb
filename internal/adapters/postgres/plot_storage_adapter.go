package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlotStorageAdapter реализует PlotStoragePort для PostgreSQL.
type PlotStorageAdapter struct {
	pool *pgxpool.Pool
}

// NewPlotStorageAdapter создает новый экземпляр адаптера.
func NewPlotStorageAdapter(pool *pgxpool.Pool) (*PlotStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PlotStorageAdapter{pool: pool}, nil
}

const plotColumns = `
	p.id, p.title, p.description, p.cadastral_numbers, p.area, p.price, p.price_per_meter,
	p.region, p.location, p.land_category, p.permitted_use, p.status, p.features, p.utilities,
	p.is_visible, p.created_at, p.updated_at`

// Главное изображение подтягивается одним LATERAL-подзапросом
const plotWithMainImage = `
	SELECT ` + plotColumns + `, mi.id, mi.url, mi.path, mi.sort_order
	FROM land_plots p
	LEFT JOIN LATERAL (
		SELECT i.id, i.url, i.path, i.sort_order
		FROM plot_images i
		WHERE i.plot_id = p.id AND i.is_main
		LIMIT 1
	) mi ON true `

// FindWithFilters ищет участки по фильтрам с пагинацией.
// COUNT и выборка страницы выполняются в одном снимке данных.
func (a *PlotStorageAdapter) FindWithFilters(ctx context.Context, query domain.PlotQuery) (*domain.PlotPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PlotStorageAdapter",
		"method":    "FindWithFilters",
		"page":      query.Page.Page,
		"limit":     query.Page.Limit,
		"sort":      string(query.Sort),
	})

	whereClause, args := applyFilters(query.Filters)

	tx, err := a.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, storeError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	countQuery := "SELECT COUNT(*) FROM land_plots p " + whereClause
	var total int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count plots with filters", err, port.Fields{"query": countQuery})
		return nil, storeError("failed to count plots with filters", err)
	}

	repoLogger.Debug("Total plots found", port.Fields{"total_count": total})

	// Пустая выборка или страница за пределами - второй запрос не нужен
	if total == 0 || int64(query.Page.Offset()) >= total {
		return domain.NewPlotPage(nil, int(total), query.Page), nil
	}

	var dataQuery strings.Builder
	dataQuery.WriteString(plotWithMainImage)
	dataQuery.WriteString(whereClause)
	dataQuery.WriteString(" ")
	dataQuery.WriteString(orderByClause(query.Sort))
	fmt.Fprintf(&dataQuery, " LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	pageArgs := append(args, query.Page.Limit, query.Page.Offset())
	rows, err := tx.Query(ctx, dataQuery.String(), pageArgs...)
	if err != nil {
		repoLogger.Error("Failed to find plots with filters", err, port.Fields{"query": dataQuery.String()})
		return nil, storeError("failed to find plots with filters", err)
	}
	plots, err := collectPlotsWithMainImage(rows, query.Page.Limit)
	if err != nil {
		return nil, storeError("failed to read plots", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeError("failed to commit transaction", err)
	}

	repoLogger.Debug("Successfully found plots for page", port.Fields{"count": len(plots)})
	return domain.NewPlotPage(plots, int(total), query.Page), nil
}

// GetByID возвращает участок со всеми изображениями и вложениями.
func (a *PlotStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plot, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PlotStorageAdapter",
		"method":    "GetByID",
		"plot_id":   id.String(),
	})

	tx, err := a.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, storeError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	query := "SELECT " + plotColumns + " FROM land_plots p WHERE p.id = $1"
	plot, err := scanPlot(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Plot not found", nil)
			return nil, fmt.Errorf("plot %s: %w", id, domain.ErrNotFound)
		}
		repoLogger.Error("Failed to get plot", err, nil)
		return nil, storeError("failed to get plot", err)
	}

	imgRows, err := tx.Query(ctx,
		`SELECT id, url, path, sort_order, is_main FROM plot_images WHERE plot_id = $1 ORDER BY sort_order, id`, id)
	if err != nil {
		return nil, storeError("failed to query plot images", err)
	}
	plot.Images, err = pgx.CollectRows(imgRows, func(row pgx.CollectableRow) (domain.PlotImage, error) {
		var img domain.PlotImage
		err := row.Scan(&img.ID, &img.URL, &img.Path, &img.Order, &img.IsMain)
		return img, err
	})
	if err != nil {
		return nil, storeError("failed to scan plot images", err)
	}

	attRows, err := tx.Query(ctx,
		`SELECT id, name, path, type, size FROM plot_attachments WHERE plot_id = $1 ORDER BY name, id`, id)
	if err != nil {
		return nil, storeError("failed to query plot attachments", err)
	}
	plot.Attachments, err = pgx.CollectRows(attRows, func(row pgx.CollectableRow) (domain.PlotAttachment, error) {
		var att domain.PlotAttachment
		err := row.Scan(&att.ID, &att.Name, &att.Path, &att.Type, &att.Size)
		return att, err
	})
	if err != nil {
		return nil, storeError("failed to scan plot attachments", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeError("failed to commit transaction", err)
	}
	return plot, nil
}

// FindSimilar ищет видимые участки той же локации: той же категории или с площадью +-30%.
func (a *PlotStorageAdapter) FindSimilar(ctx context.Context, plot domain.Plot, limit int) ([]domain.Plot, error) {
	query := plotWithMainImage + `
		WHERE p.is_visible = true
		  AND p.id <> $1
		  AND p.location = $2
		  AND (p.land_category = $3 OR p.area BETWEEN $4 AND $5)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $6`

	rows, err := a.pool.Query(ctx, query,
		plot.ID, plot.Location, plot.LandCategory, plot.Area*0.7, plot.Area*1.3, limit)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to find similar plots", err, port.Fields{
			"component": "PlotStorageAdapter",
			"plot_id":   plot.ID.String(),
		})
		return nil, storeError("failed to find similar plots", err)
	}
	plots, err := collectPlotsWithMainImage(rows, limit)
	if err != nil {
		return nil, storeError("failed to read similar plots", err)
	}
	return plots, nil
}

// Save создает или обновляет участок. Изображения и вложения перезаписываются целиком.
func (a *PlotStorageAdapter) Save(ctx context.Context, plot *domain.Plot) error {
	utilities, err := json.Marshal(plot.Utilities)
	if err != nil {
		return fmt.Errorf("failed to marshal utilities: %w", err)
	}

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return storeError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO land_plots (
			id, title, description, cadastral_numbers, area, price, price_per_meter,
			region, location, land_category, permitted_use, status, features, utilities,
			is_visible, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			cadastral_numbers = EXCLUDED.cadastral_numbers,
			area = EXCLUDED.area,
			price = EXCLUDED.price,
			price_per_meter = EXCLUDED.price_per_meter,
			region = EXCLUDED.region,
			location = EXCLUDED.location,
			land_category = EXCLUDED.land_category,
			permitted_use = EXCLUDED.permitted_use,
			status = EXCLUDED.status,
			features = EXCLUDED.features,
			utilities = EXCLUDED.utilities,
			is_visible = EXCLUDED.is_visible,
			updated_at = EXCLUDED.updated_at`,
		plot.ID, plot.Title, plot.Description, nonNil(plot.CadastralNumbers), plot.Area, plot.Price, plot.PricePerMeter,
		plot.Region, plot.Location, plot.LandCategory, nonNil(plot.PermittedUse), string(plot.Status), nonNil(plot.Features), utilities,
		plot.IsVisible, plot.CreatedAt, plot.UpdatedAt,
	)
	if err != nil {
		return storeError("failed to upsert plot", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM plot_images WHERE plot_id = $1`, plot.ID)
	batch.Queue(`DELETE FROM plot_attachments WHERE plot_id = $1`, plot.ID)
	for _, img := range plot.Images {
		batch.Queue(`INSERT INTO plot_images (id, plot_id, url, path, sort_order, is_main) VALUES ($1, $2, $3, $4, $5, $6)`,
			img.ID, plot.ID, img.URL, img.Path, img.Order, img.IsMain)
	}
	for _, att := range plot.Attachments {
		batch.Queue(`INSERT INTO plot_attachments (id, plot_id, name, path, type, size) VALUES ($1, $2, $3, $4, $5, $6)`,
			att.ID, plot.ID, att.Name, att.Path, att.Type, att.Size)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return storeError("failed to save plot images and attachments", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeError("failed to commit transaction", err)
	}
	return nil
}

func scanPlot(row pgx.Row, extra ...any) (*domain.Plot, error) {
	var (
		p         domain.Plot
		status    string
		utilities []byte
	)
	dest := []any{
		&p.ID, &p.Title, &p.Description, &p.CadastralNumbers, &p.Area, &p.Price, &p.PricePerMeter,
		&p.Region, &p.Location, &p.LandCategory, &p.PermittedUse, &status, &p.Features, &utilities,
		&p.IsVisible, &p.CreatedAt, &p.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	p.Status = domain.PlotStatus(status)
	if len(utilities) > 0 {
		if err := json.Unmarshal(utilities, &p.Utilities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal utilities: %w", err)
		}
	}
	return &p, nil
}

func collectPlotsWithMainImage(rows pgx.Rows, capacity int) ([]domain.Plot, error) {
	defer rows.Close()

	plots := make([]domain.Plot, 0, capacity)
	for rows.Next() {
		var (
			imgID    *uuid.UUID
			imgURL   *string
			imgPath  *string
			imgOrder *int
		)
		plot, err := scanPlot(rows, &imgID, &imgURL, &imgPath, &imgOrder)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plot: %w", err)
		}
		if imgID != nil {
			img := domain.PlotImage{ID: *imgID, IsMain: true}
			if imgURL != nil {
				img.URL = *imgURL
			}
			if imgPath != nil {
				img.Path = *imgPath
			}
			if imgOrder != nil {
				img.Order = *imgOrder
			}
			plot.Images = []domain.PlotImage{img}
		}
		plots = append(plots, *plot)
	}
	return plots, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
