package memory

import (
	"context"
	"fmt"
	"math"
	"slices"
	"testing"
	"time"

	"land-catalog/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlots(t *testing.T, repo *PlotRepo) map[string]domain.Plot {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	plots := []domain.Plot{
		{Title: "Участок у реки", CadastralNumbers: []string{"22:61:051234:123"}, Region: "Алтайский край", Location: "с. Манжерок", LandCategory: "ИЖС", Status: domain.PlotStatusAvailable, Area: 1500, Price: 1500000},
		{Title: "Коттеджный поселок", CadastralNumbers: []string{"22:61:051234:124"}, Region: "Алтайский край", Location: "п. Чемал", LandCategory: "ИЖС", Status: domain.PlotStatusReserved, Area: 800, Price: 2000000},
		{Title: "Участок у озера", Region: "Республика Алтай", Location: "с. Березовка", LandCategory: "СХ", Status: domain.PlotStatusAvailable, Area: 1500, Price: 2000000},
		{Title: "Скрытый", Region: "Алтайский край", Location: "с. Манжерок", LandCategory: "ИЖС", Status: domain.PlotStatusAvailable, Area: 1500, Price: 100},
	}
	byTitle := make(map[string]domain.Plot)
	for i, p := range plots {
		p.ID = uuid.New()
		p.IsVisible = p.Title != "Скрытый"
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		p.Images = []domain.PlotImage{{URL: "second", Order: 2}, {URL: "main", Order: 1, IsMain: true}}
		require.NoError(t, repo.Save(context.Background(), &p))
		byTitle[p.Title] = p
	}
	return byTitle
}

func titles(plots []domain.Plot) []string {
	res := make([]string, 0, len(plots))
	for _, p := range plots {
		res = append(res, p.Title)
	}
	return res
}

func find(t *testing.T, repo *PlotRepo, f domain.PlotFilters, sort domain.SortOrder) *domain.PlotPage {
	t.Helper()
	page, err := repo.FindWithFilters(context.Background(), domain.PlotQuery{
		Filters: f,
		Sort:    sort,
		Page:    domain.PageRequest{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	return page
}

func TestPlotRepo_Filters(t *testing.T) {
	repo := NewPlotRepo()
	seedPlots(t, repo)

	reserved := domain.PlotStatusReserved
	priceMax := 1999999.0
	areaMin := 1000.0

	tests := []struct {
		name    string
		filters domain.PlotFilters
		want    []string
	}{
		{"no filters hides invisible", domain.PlotFilters{}, []string{"Участок у озера", "Коттеджный поселок", "Участок у реки"}},
		{"search title case-insensitive", domain.PlotFilters{Search: "УЧАСТОК У"}, []string{"Участок у озера", "Участок у реки"}},
		{"search cadastral number", domain.PlotFilters{Search: "051234:124"}, []string{"Коттеджный поселок"}},
		{"region exact", domain.PlotFilters{Region: "Республика Алтай"}, []string{"Участок у озера"}},
		{"status", domain.PlotFilters{Status: &reserved}, []string{"Коттеджный поселок"}},
		{"price max inclusive", domain.PlotFilters{PriceMax: &priceMax}, []string{"Участок у реки"}},
		{"area and category", domain.PlotFilters{AreaMin: &areaMin, LandCategory: "ИЖС"}, []string{"Участок у реки"}},
		{"nothing matches", domain.PlotFilters{Location: "нигде"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := find(t, repo, tt.filters, domain.SortNewest)
			assert.Equal(t, tt.want, titles(page.Items))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestPlotRepo_SortIsTotal(t *testing.T) {
	repo := NewPlotRepo()
	seedPlots(t, repo)

	asc := titles(find(t, repo, domain.PlotFilters{}, domain.SortPriceAsc).Items)
	require.Len(t, asc, 3)
	assert.Equal(t, "Участок у реки", asc[0])

	desc := titles(find(t, repo, domain.PlotFilters{}, domain.SortPriceDesc).Items)

	// Равные цены упорядочены по id, поэтому порядок обращается целиком
	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, desc)

	oldest := titles(find(t, repo, domain.PlotFilters{}, domain.SortOldest).Items)
	assert.Equal(t, []string{"Участок у реки", "Коттеджный поселок", "Участок у озера"}, oldest)

	newest := titles(find(t, repo, domain.PlotFilters{}, domain.SortNewest).Items)
	slices.Reverse(oldest)
	assert.Equal(t, oldest, newest)
}

func TestPlotRepo_PriceWindowScenario(t *testing.T) {
	repo := NewPlotRepo()
	for i, price := range []float64{3000000, 1500000, 1800000} {
		require.NoError(t, repo.Save(context.Background(), &domain.Plot{
			ID:        uuid.New(),
			Title:     fmt.Sprintf("plot-%d", i),
			Area:      1000,
			Price:     price,
			Status:    domain.PlotStatusAvailable,
			IsVisible: true,
		}))
	}

	status := domain.PlotStatusAvailable
	priceMin, priceMax := 1000000.0, 2000000.0
	tests := []struct {
		name       string
		sort       domain.SortOrder
		page       domain.PageRequest
		wantPrices []float64
		wantTotal  int
		wantPages  int
	}{
		{"ascending first page", domain.SortPriceAsc, domain.PageRequest{Page: 1, Limit: 2}, []float64{1500000, 1800000}, 2, 1},
		{"descending first page", domain.SortPriceDesc, domain.PageRequest{Page: 1, Limit: 2}, []float64{1800000, 1500000}, 2, 1},
		{"one per page", domain.SortPriceAsc, domain.PageRequest{Page: 2, Limit: 1}, []float64{1800000}, 2, 2},
		{"past the end", domain.SortPriceAsc, domain.PageRequest{Page: 2, Limit: 2}, []float64{}, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.FindWithFilters(context.Background(), domain.PlotQuery{
				Filters: domain.PlotFilters{Status: &status, PriceMin: &priceMin, PriceMax: &priceMax},
				Sort:    tt.sort,
				Page:    tt.page,
			})
			require.NoError(t, err)

			prices := make([]float64, 0, len(page.Items))
			for _, p := range page.Items {
				prices = append(prices, p.Price)
			}
			assert.Equal(t, tt.wantPrices, prices)
			assert.Equal(t, tt.wantTotal, page.Total)
			assert.Equal(t, tt.wantPages, page.Pages)
			assert.Equal(t, tt.page.Page, page.Page)
			assert.Equal(t, tt.page.Limit, page.Limit)
		})
	}
}

func TestPlotRepo_HugePageIsPastTheEnd(t *testing.T) {
	repo := NewPlotRepo()
	seedPlots(t, repo)

	page, err := repo.FindWithFilters(context.Background(), domain.PlotQuery{
		Page: domain.PageRequest{Page: math.MaxInt, Limit: 12},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Pages)
}

func TestPlotRepo_PaginationAndMainImage(t *testing.T) {
	repo := NewPlotRepo()
	seedPlots(t, repo)
	ctx := context.Background()

	page, err := repo.FindWithFilters(ctx, domain.PlotQuery{Page: domain.PageRequest{Page: 2, Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	require.Len(t, page.Items, 1)
	require.Len(t, page.Items[0].Images, 1)
	assert.Equal(t, "main", page.Items[0].Images[0].URL)

	page, err = repo.FindWithFilters(ctx, domain.PlotQuery{Page: domain.PageRequest{Page: 3, Limit: 2}})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)
}

func TestPlotRepo_GetByIDReturnsCopy(t *testing.T) {
	repo := NewPlotRepo()
	plots := seedPlots(t, repo)
	ctx := context.Background()
	id := plots["Участок у реки"].ID

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "main", got.Images[0].URL)

	got.Images[0].URL = "mutated"
	again, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "main", again.Images[0].URL)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
