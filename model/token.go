// file: model/token.go

package model

import "time"

// RevokedAccessToken is a ledger entry for a logged-out access token. Only the
// SHA-256 digest of the token string is stored.
type RevokedAccessToken struct {
	TokenHash string    `json:"-"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at"`
}

// RevokedRefreshToken is a ledger entry keyed by the refresh token's jti.
type RevokedRefreshToken struct {
	JTI       string    `json:"jti"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at"`
}
