package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"wedding-api/config"
	"wedding-api/logger"
	"wedding-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrMalformedToken   = errors.New("malformed token")
)

// TokenCodec issues and decodes HS256 tokens. It has no notion of
// revocation.
type TokenCodec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	parser     *jwt.Parser
}

func NewTokenCodec(cfg config.JWTConfig) *TokenCodec {
	return &TokenCodec{
		secret:     []byte(cfg.SecretKey),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		// Claims are checked by hand so that expiry and completeness are
		// reported separately from signature failures. Strict decoding
		// rejects signatures with non-canonical base64.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
			jwt.WithStrictDecoding(),
		),
	}
}

func (c *TokenCodec) TTL(kind model.TokenKind) time.Duration {
	if kind == model.TokenKindRefresh {
		return c.refreshTTL
	}
	return c.accessTTL
}

// Issue signs a new token of the given kind for userID. The role claim is
// only embedded in access tokens.
func (c *TokenCodec) Issue(userID int64, role string, kind model.TokenKind, now time.Time) (string, *model.AppClaims, error) {
	claims := &model.AppClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.TTL(kind))),
		},
	}
	if kind == model.TokenKindAccess {
		claims.Role = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign JWT")
		return "", nil, fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, claims, nil
}

// Decode verifies the signature, then expiry (now >= exp is expired), then
// that every required claim is present.
func (c *TokenCodec) Decode(tokenString string, now time.Time) (*model.AppClaims, error) {
	return c.decode(tokenString, now, true)
}

// DecodeAllowExpired is Decode without the expiry check.
func (c *TokenCodec) DecodeAllowExpired(tokenString string, now time.Time) (*model.AppClaims, error) {
	return c.decode(tokenString, now, false)
}

func (c *TokenCodec) decode(tokenString string, now time.Time, checkExpiry bool) (*model.AppClaims, error) {
	// The signature is checked over the raw segments before anything is
	// parsed, so a damaged header or payload reads as a bad signature.
	parts := strings.SplitN(tokenString, ".", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: token has %d segments", ErrMalformedToken, len(parts))
	}
	sig, err := c.parser.DecodeSegment(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if err := jwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], sig, c.secret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	claims := &model.AppClaims{}
	_, err = c.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if checkExpiry && claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	if err := requireClaims(claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func requireClaims(claims *model.AppClaims) error {
	switch {
	case claims.Subject == "":
		return fmt.Errorf("%w: missing sub", ErrMalformedToken)
	case claims.ID == "":
		return fmt.Errorf("%w: missing jti", ErrMalformedToken)
	case claims.IssuedAt == nil:
		return fmt.Errorf("%w: missing iat", ErrMalformedToken)
	case claims.ExpiresAt == nil:
		return fmt.Errorf("%w: missing exp", ErrMalformedToken)
	}

	switch claims.Kind {
	case model.TokenKindAccess:
		if claims.Role == "" {
			return fmt.Errorf("%w: missing role", ErrMalformedToken)
		}
	case model.TokenKindRefresh:
	default:
		return fmt.Errorf("%w: unknown token_type %q", ErrMalformedToken, claims.Kind)
	}

	if _, err := claims.UserID(); err != nil {
		return fmt.Errorf("%w: sub is not a user id", ErrMalformedToken)
	}
	return nil
}
