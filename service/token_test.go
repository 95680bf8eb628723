package service

import (
	"encoding/base64"
	"testing"
	"time"
	"wedding-api/config"
	"wedding-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() *TokenCodec {
	return NewTokenCodec(config.JWTConfig{
		SecretKey:  "test-secret-do-not-use",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})
}

func signRaw(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestTokenCodec_IssueAndDecode(t *testing.T) {
	codec := newTestCodec()
	now := time.Now()

	access, issued, err := codec.Issue(7, "admin", model.TokenKindAccess, now)
	require.NoError(t, err)

	claims, err := codec.Decode(access, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, model.TokenKindAccess, claims.Kind)
	assert.Equal(t, issued.ID, claims.ID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
	assert.Equal(t, 30*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	refresh, _, err := codec.Issue(7, "admin", model.TokenKindRefresh, now)
	require.NoError(t, err)
	claims, err = codec.Decode(refresh, now)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
	assert.Equal(t, model.TokenKindRefresh, claims.Kind)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenCodec_UniqueIdentifiers(t *testing.T) {
	codec := newTestCodec()
	now := time.Now()

	_, a, err := codec.Issue(1, "", model.TokenKindRefresh, now)
	require.NoError(t, err)
	_, b, err := codec.Issue(1, "", model.TokenKindRefresh, now)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTokenCodec_Expiry(t *testing.T) {
	codec := newTestCodec()
	now := time.Now().Truncate(time.Second)

	token, claims, err := codec.Issue(1, "admin", model.TokenKindAccess, now)
	require.NoError(t, err)

	_, err = codec.Decode(token, claims.ExpiresAt.Time.Add(-time.Second))
	assert.NoError(t, err)

	_, err = codec.Decode(token, claims.ExpiresAt.Time)
	assert.ErrorIs(t, err, ErrTokenExpired)

	decoded, err := codec.DecodeAllowExpired(token, claims.ExpiresAt.Time.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, claims.ID, decoded.ID)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	codec := newTestCodec()
	other := NewTokenCodec(config.JWTConfig{SecretKey: "another-secret", AccessTTL: time.Minute})

	token, _, err := other.Issue(1, "admin", model.TokenKindAccess, time.Now())
	require.NoError(t, err)

	_, err = codec.Decode(token, time.Now())
	assert.ErrorIs(t, err, ErrInvalidSignature)
	_, err = codec.DecodeAllowExpired(token, time.Now())
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenCodec_SingleBitTamper(t *testing.T) {
	codec := newTestCodec()
	now := time.Now()

	for _, kind := range []model.TokenKind{model.TokenKindAccess, model.TokenKindRefresh} {
		token, _, err := codec.Issue(42, "admin", kind, now)
		require.NoError(t, err)

		for i := 0; i < len(token); i++ {
			for bit := 0; bit < 8; bit++ {
				tampered := []byte(token)
				tampered[i] ^= 1 << bit

				// Only breaking a separator changes the token's shape.
				want := ErrInvalidSignature
				if token[i] == '.' {
					want = ErrMalformedToken
				}
				_, err := codec.Decode(string(tampered), now)
				if !assert.ErrorIs(t, err, want, "kind=%s pos=%d bit=%d", kind, i, bit) {
					return
				}
			}
		}
	}
}

func TestTokenCodec_RejectsOtherAlgorithms(t *testing.T) {
	codec := newTestCodec()
	claims := jwt.MapClaims{"sub": "1", "jti": "x", "token_type": "access", "role": "admin",
		"iat": time.Now().Unix(), "exp": time.Now().Add(time.Hour).Unix()}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = codec.Decode(unsigned, time.Now())
	assert.ErrorIs(t, err, ErrInvalidSignature)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret-do-not-use"))
	require.NoError(t, err)
	_, err = codec.Decode(hs512, time.Now())
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = codec.Decode("a.b.c", time.Now())
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := newTestCodec()
	now := time.Now()

	for _, token := range []string{"", "not-a-token", "abc.def"} {
		_, err := codec.Decode(token, now)
		assert.ErrorIs(t, err, ErrMalformedToken, "token=%q", token)
	}

	t.Run("signed payload that is not json", func(t *testing.T) {
		header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
		payload := base64.RawURLEncoding.EncodeToString([]byte("not json"))
		sig, err := jwt.SigningMethodHS256.Sign(header+"."+payload, []byte("test-secret-do-not-use"))
		require.NoError(t, err)

		_, err = codec.Decode(header+"."+payload+"."+base64.RawURLEncoding.EncodeToString(sig), now)
		assert.ErrorIs(t, err, ErrMalformedToken)
		assert.NotErrorIs(t, err, ErrInvalidSignature)
	})
}

func TestTokenCodec_MissingClaims(t *testing.T) {
	codec := newTestCodec()
	now := time.Now()
	full := func() jwt.MapClaims {
		return jwt.MapClaims{"sub": "1", "jti": "abc", "token_type": "access", "role": "admin",
			"iat": now.Unix(), "exp": now.Add(time.Hour).Unix()}
	}

	for _, name := range []string{"sub", "jti", "iat", "exp", "role", "token_type"} {
		t.Run("without "+name, func(t *testing.T) {
			claims := full()
			delete(claims, name)

			_, err := codec.Decode(signRaw(t, claims, "test-secret-do-not-use"), now)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}

	t.Run("refresh without role is complete", func(t *testing.T) {
		claims := full()
		claims["token_type"] = "refresh"
		delete(claims, "role")

		_, err := codec.Decode(signRaw(t, claims, "test-secret-do-not-use"), now)
		assert.NoError(t, err)
	})

	t.Run("non numeric subject", func(t *testing.T) {
		claims := full()
		claims["sub"] = "admin"

		_, err := codec.Decode(signRaw(t, claims, "test-secret-do-not-use"), now)
		assert.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("expiry is reported before completeness", func(t *testing.T) {
		claims := full()
		claims["exp"] = now.Add(-time.Minute).Unix()
		delete(claims, "jti")

		_, err := codec.Decode(signRaw(t, claims, "test-secret-do-not-use"), now)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}
