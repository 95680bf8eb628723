package repository

import (
	"context"
	"errors"
	"testing"
	"time"
	"wedding-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationRepository_Lookups(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevocationRepository(db)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM revoked_access_tokens WHERE token_hash = \$1\)`).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM revoked_refresh_tokens WHERE jti = \$1\)`).
		WithArgs("jti-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	revoked, err := repo.IsAccessTokenRevoked(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRefreshTokenRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationRepository_LookupError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevocationRepository(db)

	mock.ExpectQuery(`revoked_access_tokens`).WillReturnError(errors.New("db down"))

	_, err := repo.IsAccessTokenRevoked(context.Background(), "abc")
	assert.Error(t, err)
}

func TestRevocationRepository_RevokeIsIdempotentInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevocationRepository(db)
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	// The second insert of the same digest hits the conflict clause and
	// affects no rows without failing.
	mock.ExpectExec(`INSERT INTO revoked_access_tokens .* ON CONFLICT \(token_hash\) DO NOTHING`).
		WithArgs("digest", int64(3), exp).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO revoked_access_tokens .* ON CONFLICT \(token_hash\) DO NOTHING`).
		WithArgs("digest", int64(3), exp).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := &model.RevokedAccessToken{TokenHash: "digest", UserID: 3, ExpiresAt: exp}
	ok, err := repo.RevokeAccessToken(context.Background(), db, rec)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.RevokeAccessToken(context.Background(), db, rec)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRevocationRepository_RevokePairInTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevocationRepository(db)
	exp := time.Now().Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO revoked_access_tokens`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO revoked_refresh_tokens .* ON CONFLICT \(jti\) DO NOTHING`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if _, err := repo.RevokeAccessToken(ctx, tx, &model.RevokedAccessToken{TokenHash: "a", UserID: 1, ExpiresAt: exp}); err != nil {
			return err
		}
		_, err := repo.RevokeRefreshToken(ctx, tx, &model.RevokedRefreshToken{JTI: "r", UserID: 1, ExpiresAt: exp})
		return err
	})
	assert.EqualError(t, err, "disk full")
}

func TestRevocationRepository_PurgeExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevocationRepository(db)
	now := time.Now()

	mock.ExpectExec(`DELETE FROM revoked_access_tokens WHERE expires_at < \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM revoked_refresh_tokens WHERE expires_at < \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.PurgeExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
