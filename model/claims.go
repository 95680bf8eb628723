package model

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// AppClaims is the JWT payload for both token kinds. Subject carries the user
// id and ID carries the unique token identifier (jti).
type AppClaims struct {
	Role string    `json:"role,omitempty"`
	Kind TokenKind `json:"token_type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *AppClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}
