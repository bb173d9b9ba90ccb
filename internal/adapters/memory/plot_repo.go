package memory

import (
	"bytes"
	"context"
	"fmt"
	"land-catalog/internal/core/domain"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// PlotRepo - участки в памяти процесса. Семантика фильтров совпадает с PostgreSQL-адаптером.
type PlotRepo struct {
	mu    sync.RWMutex
	plots map[uuid.UUID]domain.Plot
}

func NewPlotRepo() *PlotRepo {
	return &PlotRepo{plots: make(map[uuid.UUID]domain.Plot)}
}

func (r *PlotRepo) FindWithFilters(ctx context.Context, query domain.PlotQuery) (*domain.PlotPage, error) {
	r.mu.RLock()
	matched := make([]domain.Plot, 0)
	for _, p := range r.plots {
		if p.IsVisible && matchesFilters(p, query.Filters) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, comparePlots(query.Sort))

	total := len(matched)
	offset := query.Page.Offset()
	if offset >= total {
		return domain.NewPlotPage(nil, total, query.Page), nil
	}
	end := min(offset+query.Page.Limit, total)

	items := make([]domain.Plot, 0, end-offset)
	for _, p := range matched[offset:end] {
		items = append(items, withMainImageOnly(p))
	}
	return domain.NewPlotPage(items, total, query.Page), nil
}

func (r *PlotRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plots[id]
	if !ok {
		return nil, fmt.Errorf("plot %s: %w", id, domain.ErrNotFound)
	}
	cp := clonePlot(p)
	slices.SortStableFunc(cp.Images, func(a, b domain.PlotImage) int { return a.Order - b.Order })
	return &cp, nil
}

func (r *PlotRepo) FindSimilar(ctx context.Context, plot domain.Plot, limit int) ([]domain.Plot, error) {
	r.mu.RLock()
	candidates := make([]domain.Plot, 0)
	for _, p := range r.plots {
		if !p.IsVisible || p.ID == plot.ID || p.Location != plot.Location {
			continue
		}
		sameCategory := p.LandCategory == plot.LandCategory
		closeArea := p.Area >= plot.Area*0.7 && p.Area <= plot.Area*1.3
		if sameCategory || closeArea {
			candidates = append(candidates, p)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(candidates, comparePlots(domain.SortNewest))
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	res := make([]domain.Plot, 0, len(candidates))
	for _, p := range candidates {
		res = append(res, withMainImageOnly(p))
	}
	return res, nil
}

func (r *PlotRepo) Save(ctx context.Context, plot *domain.Plot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plots[plot.ID] = clonePlot(*plot)
	return nil
}

var folder = cases.Fold()

func containsFold(s, substr string) bool {
	return strings.Contains(folder.String(s), folder.String(substr))
}

func matchesFilters(p domain.Plot, f domain.PlotFilters) bool {
	if search := strings.TrimSpace(f.Search); search != "" {
		found := containsFold(p.Title, search)
		for _, cn := range p.CadastralNumbers {
			found = found || containsFold(cn, search)
		}
		if !found {
			return false
		}
	}
	if f.Region != "" && p.Region != f.Region {
		return false
	}
	if f.Location != "" && p.Location != f.Location {
		return false
	}
	if f.LandCategory != "" && p.LandCategory != f.LandCategory {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	return inRange(p.Price, f.PriceMin, f.PriceMax) && inRange(p.Area, f.AreaMin, f.AreaMax)
}

func inRange(v float64, lo, hi *float64) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// comparePlots повторяет ORDER BY PostgreSQL-адаптера, включая разрешение равенства по id
func comparePlots(sort domain.SortOrder) func(a, b domain.Plot) int {
	switch sort {
	case domain.SortOldest:
		return func(a, b domain.Plot) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return compareIDs(a.ID, b.ID)
		}
	case domain.SortPriceAsc:
		return func(a, b domain.Plot) int {
			if a.Price != b.Price {
				return cmpFloat(a.Price, b.Price)
			}
			return compareIDs(a.ID, b.ID)
		}
	case domain.SortPriceDesc:
		return func(a, b domain.Plot) int {
			if a.Price != b.Price {
				return cmpFloat(b.Price, a.Price)
			}
			return compareIDs(b.ID, a.ID)
		}
	default:
		return func(a, b domain.Plot) int {
			if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
				return c
			}
			return compareIDs(b.ID, a.ID)
		}
	}
}

func cmpFloat(a, b float64) int {
	if a < b {
		return -1
	}
	return 1
}

func withMainImageOnly(p domain.Plot) domain.Plot {
	cp := clonePlot(p)
	cp.Images = nil
	if img, ok := p.MainImage(); ok {
		cp.Images = []domain.PlotImage{img}
	}
	cp.Attachments = nil
	return cp
}

func clonePlot(p domain.Plot) domain.Plot {
	cp := p
	cp.CadastralNumbers = slices.Clone(p.CadastralNumbers)
	cp.PermittedUse = slices.Clone(p.PermittedUse)
	cp.Features = slices.Clone(p.Features)
	cp.Images = slices.Clone(p.Images)
	cp.Attachments = slices.Clone(p.Attachments)
	return cp
}
