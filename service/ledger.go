package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
	"wedding-api/logger"
	"wedding-api/model"
	"wedding-api/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrAlreadyRevoked is returned by RevokePair when either token was already
// in the ledger. Nothing is written in that case.
var ErrAlreadyRevoked = errors.New("token already revoked")

const (
	revokedAccessPrefix  = "revoked:access:"
	revokedRefreshPrefix = "revoked:refresh:"
)

// DefaultRetention is how long an entry outlives its token before purge.
const DefaultRetention = 24 * time.Hour

// RevocationLedger records logged-out tokens. PostgreSQL is authoritative;
// Redis, when configured, holds a copy of each entry until the token expires.
type RevocationLedger struct {
	repo      repository.IRevocationRepository
	cache     ICacheClient
	retention time.Duration
}

func NewRevocationLedger(repo repository.IRevocationRepository, cache ICacheClient) *RevocationLedger {
	return &RevocationLedger{repo: repo, cache: cache, retention: DefaultRetention}
}

// WithRetention sets how long entries are kept after their token expires.
// Negative values are treated as zero.
func (l *RevocationLedger) WithRetention(d time.Duration) *RevocationLedger {
	if d < 0 {
		d = 0
	}
	l.retention = d
	return l
}

func (l *RevocationLedger) Retention() time.Duration {
	return l.retention
}

// HashToken is the ledger key of a raw access token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (l *RevocationLedger) cached(ctx context.Context, key string) bool {
	if l.cache == nil {
		return false
	}
	err := l.cache.Get(ctx, key).Err()
	if err == nil {
		return true
	}
	if !errors.Is(err, redis.Nil) {
		logger.Log.WithError(err).Warn("Ledger cache lookup failed, falling back to database")
	}
	return false
}

func (l *RevocationLedger) IsAccessRevoked(ctx context.Context, token string) (bool, error) {
	hash := HashToken(token)
	if l.cached(ctx, revokedAccessPrefix+hash) {
		return true, nil
	}
	return l.repo.IsAccessTokenRevoked(ctx, hash)
}

func (l *RevocationLedger) IsRefreshRevoked(ctx context.Context, jti string) (bool, error) {
	if l.cached(ctx, revokedRefreshPrefix+jti) {
		return true, nil
	}
	return l.repo.IsRefreshTokenRevoked(ctx, jti)
}

func accessRecord(token string, claims *model.AppClaims) (*model.RevokedAccessToken, error) {
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return &model.RevokedAccessToken{TokenHash: HashToken(token), UserID: userID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func refreshRecord(claims *model.AppClaims) (*model.RevokedRefreshToken, error) {
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return &model.RevokedRefreshToken{JTI: claims.ID, UserID: userID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// RevokeAccess adds a single access token. Revoking it again is a no-op.
func (l *RevocationLedger) RevokeAccess(ctx context.Context, token string, claims *model.AppClaims) error {
	rec, err := accessRecord(token, claims)
	if err != nil {
		return err
	}
	err = l.repo.WithTx(ctx, func(ctx context.Context, tx repository.DBTX) error {
		_, err := l.repo.RevokeAccessToken(ctx, tx, rec)
		return err
	})
	if err != nil {
		return err
	}
	l.remember(ctx, revokedAccessPrefix+rec.TokenHash, rec.ExpiresAt)
	return nil
}

// RevokeRefresh adds a single refresh token. Revoking it again is a no-op.
func (l *RevocationLedger) RevokeRefresh(ctx context.Context, claims *model.AppClaims) error {
	rec, err := refreshRecord(claims)
	if err != nil {
		return err
	}
	err = l.repo.WithTx(ctx, func(ctx context.Context, tx repository.DBTX) error {
		_, err := l.repo.RevokeRefreshToken(ctx, tx, rec)
		return err
	})
	if err != nil {
		return err
	}
	l.remember(ctx, revokedRefreshPrefix+rec.JTI, rec.ExpiresAt)
	return nil
}

// RevokePair writes both entries in one transaction. If either entry
// already exists the transaction is rolled back and ErrAlreadyRevoked is
// returned. Cache entries are written only after commit.
func (l *RevocationLedger) RevokePair(ctx context.Context, accessToken string, access, refresh *model.AppClaims) error {
	accessRec, err := accessRecord(accessToken, access)
	if err != nil {
		return err
	}
	refreshRec, err := refreshRecord(refresh)
	if err != nil {
		return err
	}

	err = l.repo.WithTx(ctx, func(ctx context.Context, tx repository.DBTX) error {
		added, err := l.repo.RevokeAccessToken(ctx, tx, accessRec)
		if err != nil {
			return err
		}
		if !added {
			return ErrAlreadyRevoked
		}
		added, err = l.repo.RevokeRefreshToken(ctx, tx, refreshRec)
		if err != nil {
			return err
		}
		if !added {
			return ErrAlreadyRevoked
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.remember(ctx, revokedAccessPrefix+accessRec.TokenHash, accessRec.ExpiresAt)
	l.remember(ctx, revokedRefreshPrefix+refreshRec.JTI, refreshRec.ExpiresAt)
	return nil
}

func (l *RevocationLedger) remember(ctx context.Context, key string, expiresAt time.Time) {
	if l.cache == nil {
		return
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if err := l.cache.Set(ctx, key, "1", ttl).Err(); err != nil {
		logger.Log.WithError(err).Warn("Failed to mirror revoked token to cache")
	}
}

// PurgeExpired deletes entries of tokens that expired more than the
// retention window before now. Logout refuses refresh tokens older than
// that window, so a purged pair can never be replayed.
func (l *RevocationLedger) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return l.repo.PurgeExpired(ctx, now.Add(-l.retention))
}

// RunJanitor purges expired entries every interval until ctx is done. A
// non-positive interval disables it.
func (l *RevocationLedger) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := l.PurgeExpired(ctx, now)
			if err != nil {
				logger.Log.WithError(err).Error("Ledger purge failed")
				continue
			}
			logger.Log.WithFields(logrus.Fields{"deleted": n}).Info("Purged expired ledger entries")
		}
	}
}
