package domain

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// PlotFilters - фильтры каталога. nil/пустое значение означает "фильтр не задан".
type PlotFilters struct {
	Search       string
	Region       string
	Location     string
	LandCategory string
	Status       *PlotStatus
	PriceMin     *float64
	PriceMax     *float64
	AreaMin      *float64
	AreaMax      *float64
}

// SortOrder - порядок сортировки каталога.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// ParseSortOrder возвращает SortNewest для пустых и неизвестных значений.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortOldest, SortPriceAsc, SortPriceDesc:
		return SortOrder(s)
	}
	return SortNewest
}

// PageRequest - окно пагинации, страницы считаются с 1.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize подставляет значения по умолчанию вместо некорректных,
// слишком большой limit урезается до MaxLimit.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	switch {
	case p.Limit < 1:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	return p
}

// Offset - количество пропускаемых записей. При переполнении возвращает math.MaxInt,
// то есть окно заведомо за последней страницей.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// PlotQuery - полный запрос к каталогу.
type PlotQuery struct {
	Filters PlotFilters
	Sort    SortOrder
	Page    PageRequest
}

// PlotPage - страница каталога с метаданными пагинации.
type PlotPage struct {
	Items []Plot
	Total int
	Pages int
	Page  int
	Limit int
}

// NewPlotPage собирает страницу; pages = ceil(total/limit).
func NewPlotPage(items []Plot, total int, page PageRequest) *PlotPage {
	if items == nil {
		items = []Plot{}
	}
	pages := 0
	if page.Limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(page.Limit)))
	}
	return &PlotPage{
		Items: items,
		Total: total,
		Pages: pages,
		Page:  page.Page,
		Limit: page.Limit,
	}
}
