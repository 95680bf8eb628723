// file: repository/revocation_repository.go

package repository

import (
	"context"
	"database/sql"
	"time"
	"wedding-api/logger"
	"wedding-api/model"

	"github.com/sirupsen/logrus"
)

// IRevocationRepository defines the ledger of logged-out tokens.
type IRevocationRepository interface {
	IsAccessTokenRevoked(ctx context.Context, tokenHash string) (bool, error)
	IsRefreshTokenRevoked(ctx context.Context, jti string) (bool, error)
	RevokeAccessToken(ctx context.Context, q DBTX, rec *model.RevokedAccessToken) (bool, error)
	RevokeRefreshToken(ctx context.Context, q DBTX, rec *model.RevokedRefreshToken) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type RevocationRepository struct {
	DB *sql.DB
}

func NewRevocationRepository(db *sql.DB) *RevocationRepository {
	return &RevocationRepository{DB: db}
}

func (r *RevocationRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return WithTx(ctx, r.DB, nil, fn)
}

func (r *RevocationRepository) IsAccessTokenRevoked(ctx context.Context, tokenHash string) (bool, error) {
	var revoked bool
	query := `SELECT EXISTS (SELECT 1 FROM revoked_access_tokens WHERE token_hash = $1)`
	if err := r.DB.QueryRowContext(ctx, query, tokenHash).Scan(&revoked); err != nil {
		logger.Log.WithError(err).Error("Failed to execute revoked access token lookup")
		return false, err
	}
	return revoked, nil
}

func (r *RevocationRepository) IsRefreshTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	query := `SELECT EXISTS (SELECT 1 FROM revoked_refresh_tokens WHERE jti = $1)`
	if err := r.DB.QueryRowContext(ctx, query, jti).Scan(&revoked); err != nil {
		logger.Log.WithError(err).WithField("jti", jti).Error("Failed to execute revoked refresh token lookup")
		return false, err
	}
	return revoked, nil
}

// RevokeAccessToken records the token digest. Recording the same token twice
// leaves a single row; the returned flag is false when the row already
// existed.
func (r *RevocationRepository) RevokeAccessToken(ctx context.Context, q DBTX, rec *model.RevokedAccessToken) (bool, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    rec.UserID,
		"expires_at": rec.ExpiresAt,
	})
	log.Info("Executing query to revoke an access token")

	query := `INSERT INTO revoked_access_tokens (token_hash, user_id, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (token_hash) DO NOTHING`
	res, err := q.ExecContext(ctx, query, rec.TokenHash, rec.UserID, rec.ExpiresAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute revoke access token query")
		return false, err
	}
	return inserted(res)
}

func (r *RevocationRepository) RevokeRefreshToken(ctx context.Context, q DBTX, rec *model.RevokedRefreshToken) (bool, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    rec.UserID,
		"jti":        rec.JTI,
		"expires_at": rec.ExpiresAt,
	})
	log.Info("Executing query to revoke a refresh token")

	query := `INSERT INTO revoked_refresh_tokens (jti, user_id, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (jti) DO NOTHING`
	res, err := q.ExecContext(ctx, query, rec.JTI, rec.UserID, rec.ExpiresAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute revoke refresh token query")
		return false, err
	}
	return inserted(res)
}

func inserted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// PurgeExpired removes ledger rows for tokens that expired before now and
// returns how many rows were deleted.
func (r *RevocationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	var total int64
	for _, query := range []string{
		`DELETE FROM revoked_access_tokens WHERE expires_at < $1`,
		`DELETE FROM revoked_refresh_tokens WHERE expires_at < $1`,
	} {
		res, err := r.DB.ExecContext(ctx, query, now)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to purge expired ledger rows")
			return total, err
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
