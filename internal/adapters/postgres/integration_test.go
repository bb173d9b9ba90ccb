package postgres

import (
	"context"
	"errors"
	"math"
	"os"
	"sync"
	"testing"
	"time"

	"land-catalog/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool подключается к TEST_DATABASE_URL и очищает таблицы. Без переменной тест пропускается.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, EnsureSchema(ctx, pool))
	require.NoError(t, EnsureSchema(ctx, pool), "schema must be idempotent")

	_, err = pool.Exec(ctx, `TRUNCATE inquiries, contact_requests, promo_codes, quiz_responses, quiz_questions,
		plot_images, plot_attachments, land_plots, contacts RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func newTestPlot(title, location string, area, price float64, created time.Time) *domain.Plot {
	p := &domain.Plot{
		ID:               uuid.New(),
		Title:            title,
		CadastralNumbers: []string{"22:61:051234:" + title},
		Area:             area,
		Price:            price,
		Region:           "Алтайский край",
		Location:         location,
		LandCategory:     "ИЖС",
		Status:           domain.PlotStatusAvailable,
		Utilities: domain.Utilities{
			Electricity: &domain.Utility{Available: true, Type: "15 кВт"},
		},
		IsVisible: true,
		CreatedAt: created,
		UpdatedAt: created,
	}
	p.RecalculatePricePerMeter()
	return p
}

func TestPlotStorageAdapter_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	store, err := NewPlotStorageAdapter(pool)
	require.NoError(t, err)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	first := newTestPlot("first", "Чемал", 1000, 1000000, base)
	first.Images = []domain.PlotImage{
		{ID: uuid.New(), URL: "b", Order: 2},
		{ID: uuid.New(), URL: "a", Order: 1, IsMain: true},
	}
	first.Attachments = []domain.PlotAttachment{{ID: uuid.New(), Name: "doc.pdf", Path: "/doc.pdf", Type: "application/pdf", Size: 10}}
	second := newTestPlot("second", "Чемал", 1200, 3000000, base.Add(time.Hour))
	third := newTestPlot("third", "Манжерок", 5000, 2000000, base.Add(2*time.Hour))
	hidden := newTestPlot("hidden", "Чемал", 1000, 1000000, base.Add(3*time.Hour))
	hidden.IsVisible = false

	for _, p := range []*domain.Plot{first, second, third, hidden} {
		require.NoError(t, store.Save(ctx, p))
	}

	page, err := store.FindWithFilters(ctx, domain.PlotQuery{Sort: domain.SortNewest, Page: domain.PageRequest{Page: 1, Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "third", page.Items[0].Title)
	assert.Equal(t, "second", page.Items[1].Title)

	page, err = store.FindWithFilters(ctx, domain.PlotQuery{
		Filters: domain.PlotFilters{Search: "FIR"},
		Sort:    domain.SortPriceAsc,
		Page:    domain.PageRequest{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Len(t, page.Items[0].Images, 1, "list returns only the main image")
	assert.Equal(t, "a", page.Items[0].Images[0].URL)

	priceMin := 1500000.0
	page, err = store.FindWithFilters(ctx, domain.PlotQuery{
		Filters: domain.PlotFilters{PriceMin: &priceMin},
		Sort:    domain.SortPriceDesc,
		Page:    domain.PageRequest{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "second", page.Items[0].Title)

	page, err = store.FindWithFilters(ctx, domain.PlotQuery{Page: domain.PageRequest{Page: 9, Limit: 10}})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)

	page, err = store.FindWithFilters(ctx, domain.PlotQuery{Page: domain.PageRequest{Page: math.MaxInt, Limit: 10}})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Total)

	got, err := store.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "a", got.Images[0].URL, "images ordered by sort order")
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, int64(1000), got.PricePerMeter)
	require.NotNil(t, got.Utilities.Electricity)
	assert.Equal(t, "15 кВт", got.Utilities.Electricity.Type)

	similar, err := store.FindSimilar(ctx, *got, 4)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "second", similar[0].Title)

	_, err = store.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// повторный Save заменяет изображения
	first.Images = first.Images[:1]
	first.Images[0].IsMain = true
	require.NoError(t, store.Save(ctx, first))
	got, err = store.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 1)
}

func newIssuance(phone string, email *string, code string, created time.Time) (domain.Identity, *domain.QuizResponse, *domain.PromoCode) {
	resp := &domain.QuizResponse{
		ID:        uuid.New(),
		Name:      "Иван",
		Phone:     phone,
		Email:     email,
		Answers:   domain.QuizAnswers{"1": "ИЖС"},
		Completed: true,
		Status:    domain.QuizStatusNew,
		CreatedAt: created,
	}
	promo := &domain.PromoCode{
		ID:              uuid.New(),
		Code:            code,
		DiscountPercent: 5,
		IsActive:        true,
		ExpiresAt:       created.Add(30 * 24 * time.Hour),
		MaxUsages:       1,
		QuizResponseID:  resp.ID,
		CreatedAt:       created,
	}
	var e string
	if email != nil {
		e = domain.NormalizeEmail(*email)
	}
	return domain.Identity{Phone: domain.NormalizePhone(phone), Email: e}, resp, promo
}

func TestQuizLedgerRepository_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	ledger, err := NewQuizLedgerRepository(pool, 2*time.Second)
	require.NoError(t, err)

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	email := "Ivan@Example.com"
	identity, resp, promo := newIssuance("+7 (999) 123-45-67", &email, "ИВА123AB5", created)

	_, err = ledger.FindByIdentity(ctx, identity)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, ledger.CreateWithPromo(ctx, identity, resp, promo))

	found, err := ledger.FindByIdentity(ctx, domain.Identity{Phone: "70000000000", Email: "ivan@example.com"})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, found.Response.ID)
	assert.Equal(t, "ИВА123AB5", found.Promo.Code)
	assert.Equal(t, promo.ExpiresAt, found.Promo.ExpiresAt.UTC())
	assert.Equal(t, domain.QuizAnswers{"1": "ИЖС"}, found.Response.Answers)

	// тот же телефон
	id2, resp2, promo2 := newIssuance("79991234567", nil, "ИВА124AB5", created)
	err = ledger.CreateWithPromo(ctx, id2, resp2, promo2)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// занятый код, и ответ не должен остаться без промокода
	id3, resp3, promo3 := newIssuance("79990000000", nil, "ИВА123AB5", created)
	err = ledger.CreateWithPromo(ctx, id3, resp3, promo3)
	assert.ErrorIs(t, err, domain.ErrPromoCodeTaken)
	_, err = ledger.FindByIdentity(ctx, id3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var responses int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM quiz_responses`).Scan(&responses))
	assert.Equal(t, 1, responses)
}

func TestQuizLedgerRepository_ConcurrentSamePhone(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	ledger, err := NewQuizLedgerRepository(pool, 5*time.Second)
	require.NoError(t, err)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			identity, resp, promo := newIssuance("+7 999 777-66-55", nil, "RACE"+uuid.NewString()[:8], time.Now().UTC())
			err := ledger.CreateWithPromo(ctx, identity, resp, promo)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}

func TestContactAndInquiryRepositories_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	contacts, err := NewContactRepository(pool)
	require.NoError(t, err)
	_, err = contacts.GetLatest(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	older := &domain.Contact{Phone: "1", Email: "a@b.ru", Address: "old", UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &domain.Contact{
		Phone: "2", Email: "a@b.ru", Address: "new",
		WorkHours:   &domain.WorkHours{MondayFriday: "9-18"},
		SocialLinks: domain.SocialLinks{VK: &domain.SocialLink{Enabled: true, Username: "altailands"}},
		UpdatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, contacts.Save(ctx, newer))
	require.NoError(t, contacts.Save(ctx, older))

	latest, err := contacts.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", latest.Address)
	require.NotNil(t, latest.SocialLinks.VK)
	assert.Equal(t, "altailands", latest.SocialLinks.VK.Username)

	inquiries, err := NewInquiryRepository(pool)
	require.NoError(t, err)
	missing := uuid.New()
	err = inquiries.Create(ctx, &domain.Inquiry{ID: uuid.New(), Phone: "1", Name: "n", Source: "s", PlotID: &missing, CreatedAt: time.Now()})
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))

	require.NoError(t, inquiries.Create(ctx, &domain.Inquiry{ID: uuid.New(), Phone: "1", Name: "n", Source: "s", CreatedAt: time.Now()}))

	requests, err := NewContactRequestRepository(pool)
	require.NoError(t, err)
	request := &domain.ContactRequest{
		ID: uuid.New(), Name: "n", Phone: "1", Email: "a@b.ru", Message: "m",
		Type: domain.DefaultContactRequestType, Status: domain.ContactRequestStatusNew, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, requests.Create(ctx, request))

	var status, kind string
	require.NoError(t, pool.QueryRow(ctx, `SELECT status, type FROM contact_requests WHERE id = $1`, request.ID).Scan(&status, &kind))
	assert.Equal(t, "new", status)
	assert.Equal(t, "contact_form", kind)
}

func TestQuizQuestionRepository_Integration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo, err := NewQuizQuestionRepository(pool)
	require.NoError(t, err)

	q1 := &domain.QuizQuestion{ID: uuid.New(), Question: "one", Options: []string{"a"}, Order: 1, IsActive: true}
	q2 := &domain.QuizQuestion{ID: uuid.New(), Question: "two", Options: []string{"b"}, Order: 2, IsActive: true}
	require.NoError(t, repo.Save(ctx, q2))
	require.NoError(t, repo.Save(ctx, q1))

	dup := &domain.QuizQuestion{ID: uuid.New(), Question: "dup", Order: 1, IsActive: true}
	assert.ErrorIs(t, repo.Save(ctx, dup), domain.ErrConflict)

	qs, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "one", qs[0].Question)
}
