package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
	"wedding-api/model"
	"wedding-api/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newsCols = []string{"id", "title", "description", "image", "created_at", "updated_at"}

func TestRemember_LoadsOnceThenServesCache(t *testing.T) {
	cache := newFakeCache()
	cc := NewContentCache(cache, time.Minute)
	calls := 0
	load := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	first, err := Remember(context.Background(), cc, "k", load)
	require.NoError(t, err)
	second, err := Remember(context.Background(), cc, "k", load)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, time.Minute, cache.ttls["k"])
}

func TestRemember_NilClientAlwaysLoads(t *testing.T) {
	cc := NewContentCache(nil, 0)
	calls := 0
	load := func(ctx context.Context) (int, error) {
		calls++
		return 7, nil
	}

	for i := 0; i < 3; i++ {
		v, err := Remember(context.Background(), cc, "k", load)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	}
	assert.Equal(t, 3, calls)
}

func TestRemember_ErrorsAreNotCached(t *testing.T) {
	cache := newFakeCache()
	cc := NewContentCache(cache, time.Minute)
	boom := errors.New("boom")

	_, err := Remember(context.Background(), cc, "k", func(ctx context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, cache.has("k"))
}

func TestRemember_CorruptEntryIsReloaded(t *testing.T) {
	cache := newFakeCache()
	cache.data["k"] = "{not json"
	cc := NewContentCache(cache, time.Minute)

	v, err := Remember(context.Background(), cc, "k", func(ctx context.Context) (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, "3", cache.data["k"])
}

func TestRemember_SharedLoadOutlivesCaller(t *testing.T) {
	cache := newFakeCache()
	cc := NewContentCache(cache, time.Minute)
	type ctxKey struct{}
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))
	cancel()

	v, err := Remember(ctx, cc, "k", func(ctx context.Context) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		assert.Equal(t, "req-1", ctx.Value(ctxKey{}))
		return 5, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, "5", cache.data["k"])
}

func TestNewsService_PublicListCachedAndInvalidated(t *testing.T) {
	db, mock := newMockDB(t)
	cache := newFakeCache()
	svc := NewNewsService(repository.NewNewsRepository(db), NewContentCache(cache, time.Minute))
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM news ORDER BY`).
		WillReturnRows(sqlmock.NewRows(newsCols).AddRow(1, "Opening", "We are open", "", now, now))

	items, err := svc.PublicList(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Served from cache, no second query.
	items, err = svc.PublicList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Opening", items[0].Title)
	assert.True(t, cache.has(keyNews))

	mock.ExpectQuery(`INSERT INTO news`).
		WithArgs("Autumn", "New menu", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(2, now, now))

	created, err := svc.Create(context.Background(), model.NewsRequest{Title: "Autumn", Description: "New menu"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.False(t, cache.has(keyNews))
}

func TestNewsService_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewNewsService(repository.NewNewsRepository(db), NewContentCache(nil, 0))

	mock.ExpectQuery(`SELECT .* FROM news WHERE id`).WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(newsCols))

	title := "x"
	_, err := svc.Update(context.Background(), 9, model.NewsPatch{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEventStats_Percentages(t *testing.T) {
	stats := eventStats([]model.CategoryCount{
		{Category: "Wedding", Count: 2},
		{Category: "Birthday", Count: 1},
	})

	require.Len(t, stats, 2)
	assert.Equal(t, 66.7, stats[0].Percent)
	assert.Equal(t, 33.3, stats[1].Percent)
	assert.Equal(t, 2, stats[0].Count)
}

func TestEventStats_Empty(t *testing.T) {
	assert.Empty(t, eventStats(nil))
	stats := eventStats([]model.CategoryCount{{Category: "Wedding", Count: 0}})
	assert.Equal(t, 0.0, stats[0].Percent)
}

func TestStatsService_Dashboard(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	svc := NewStatsService(
		repository.NewStatsRepository(db),
		repository.NewTeamRepository(db),
		repository.NewBookingRepository(db),
		repository.NewMessageRepository(db),
	)

	mock.ExpectQuery(`SELECT id, events, annual_income FROM dashboard_stats`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "events", "annual_income"}).AddRow(1, 120, 500000000))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM team_members`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM messages WHERE answered = FALSE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.DashboardStats{
		ID:                 1,
		Employees:          12,
		Events:             125,
		AnnualIncome:       500000000,
		UnansweredMessages: 3,
	}, stats)
}

func TestRenderQRCode_PNG(t *testing.T) {
	png, err := RenderQRCode("https://example.com/menu")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestQRCodeService_ImageURL(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQRCodeService(repository.NewSiteRepository(db), "/api/v1/dashboard/qr_codes")
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO qr_codes`).
		WithArgs("https://example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(4, now, now))

	q, err := svc.Create(context.Background(), model.QRCodeRequest{URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/dashboard/qr_codes/4/image", q.ImageURL)
}
