package router_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"wedding-api/app"
	"wedding-api/config"
	"wedding-api/model"
	"wedding-api/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{SecretKey: "router-test-secret", AccessTTL: 30 * time.Minute, RefreshTTL: time.Hour}
	cfg.Gate = config.GateConfig{
		ProtectedPrefixes: []string{"/api/v1/dashboard"},
		ExcludedPrefixes:  []string{"/swagger/"},
		PrivilegedRole:    "admin",
	}
	return cfg
}

func newTestApp(t *testing.T) (*app.App, sqlmock.Sqlmock, string) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	cfg := testConfig()
	token, _, err := service.NewTokenCodec(cfg.JWT).Issue(1, "admin", model.TokenKindAccess, time.Now())
	require.NoError(t, err)

	return app.New(cfg, db, nil), mock, token
}

func expectNotRevoked(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM revoked_access_tokens`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
}

func serve(a *app.App, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	a, _, _ := newTestApp(t)

	rr := serve(a, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"API is healthy and running"}`, rr.Body.String())
}

func TestSwaggerIsServed(t *testing.T) {
	a, _, _ := newTestApp(t)

	rr := serve(a, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/api/v1/auth/login")
	assert.Contains(t, rr.Body.String(), "/api/v1/web/contact_us")
}

func TestDashboardRequiresToken(t *testing.T) {
	a, _, _ := newTestApp(t)

	rr := serve(a, http.MethodGet, "/api/v1/dashboard/stats", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"code":401,"message":"Authorization header is required"}`, rr.Body.String())
}

func TestPublicNews(t *testing.T) {
	a, mock, _ := newTestApp(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM news ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "image", "created_at", "updated_at"}).
			AddRow(1, "Opening", "We are open", "", now, now))

	rr := serve(a, http.MethodGet, "/api/v1/web/news", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"Opening"`)
}

func TestCalendarInfoRejectsBadDate(t *testing.T) {
	a, _, _ := newTestApp(t)

	rr := serve(a, http.MethodGet, "/api/v1/web/calendar/info?date=19-10-2026", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestContactUsValidation(t *testing.T) {
	a, _, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/web/contact_us",
		strings.NewReader(`{"first_name":"Ali","last_name":"Valiyev","phone_number":"12345","message":"Hi"}`))
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "phone_number")
}

func TestDashboardNewsErrors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		a, mock, token := newTestApp(t)
		expectNotRevoked(mock)

		rr := serve(a, http.MethodGet, "/api/v1/dashboard/news/abc", token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		a, mock, token := newTestApp(t)
		expectNotRevoked(mock)
		mock.ExpectQuery(`SELECT .* FROM news WHERE id`).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rr := serve(a, http.MethodGet, "/api/v1/dashboard/news/7", token)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	a, mock, token := newTestApp(t)
	expectNotRevoked(mock)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT id, events, annual_income FROM dashboard_stats`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "events", "annual_income"}).AddRow(1, 10, 1000))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM team_members`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM messages`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rr := serve(a, http.MethodGet, "/api/v1/dashboard/stats", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"employees":4,"events":12,"annual_income":1000,"unanswered_messages":1}`, rr.Body.String())
}

func TestQRCodeImage(t *testing.T) {
	a, mock, token := newTestApp(t)
	expectNotRevoked(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, url, created_at, updated_at FROM qr_codes WHERE id`).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "created_at", "updated_at"}).
			AddRow(3, "https://example.com/menu", now, now))

	rr := serve(a, http.MethodGet, "/api/v1/dashboard/qr_codes/3/image", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}
