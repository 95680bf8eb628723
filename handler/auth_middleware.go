package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"wedding-api/common"
	"wedding-api/config"
	"wedding-api/logger"
	"wedding-api/model"
	"wedding-api/service"

	"github.com/sirupsen/logrus"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller of a protected route.
type Principal struct {
	UserID int64
	Role   string
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// GateCheck inspects a request and either passes it on, possibly with an
// enriched context, or rejects it.
type GateCheck func(r *http.Request) (*http.Request, *common.AppError)

// Gate runs its checks in order in front of every request that is not under
// an excluded prefix.
type Gate struct {
	codec  *service.TokenCodec
	ledger *service.RevocationLedger
	cfg    config.GateConfig
	now    func() time.Time
	checks []GateCheck
}

func NewGate(codec *service.TokenCodec, ledger *service.RevocationLedger, cfg config.GateConfig) *Gate {
	if cfg.PrivilegedRole == "" {
		cfg.PrivilegedRole = string(model.RoleAdmin)
	}
	g := &Gate{codec: codec, ledger: ledger, cfg: cfg, now: time.Now}
	g.checks = []GateCheck{g.blacklistCheck, g.authorizationCheck}
	return g
}

func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasPrefix(r.URL.Path, g.cfg.ExcludedPrefixes) {
			next.ServeHTTP(w, r)
			return
		}
		for _, check := range g.checks {
			var appErr *common.AppError
			r, appErr = check(r)
			if appErr != nil {
				appErr.Send(w)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func (g *Gate) reject(r *http.Request, code int, message, cause string) *common.AppError {
	logger.Log.WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"method": r.Method,
		"cause":  cause,
	}).Warn("Request rejected by gate")
	return common.NewAppError(code, message, nil)
}

func (g *Gate) blacklistCheck(r *http.Request) (*http.Request, *common.AppError) {
	token, ok := bearerToken(r)
	if !ok {
		return r, nil
	}
	revoked, err := g.ledger.IsAccessRevoked(r.Context(), token)
	if err != nil {
		return nil, common.NewAppError(http.StatusInternalServerError, "Could not verify token", err)
	}
	if revoked {
		return nil, g.reject(r, http.StatusUnauthorized, "Access token in blacklist, re-login", "revoked")
	}
	return r, nil
}

func (g *Gate) authorizationCheck(r *http.Request) (*http.Request, *common.AppError) {
	if !hasPrefix(r.URL.Path, g.cfg.ProtectedPrefixes) {
		return r, nil
	}

	if r.Header.Get("Authorization") == "" {
		return nil, g.reject(r, http.StatusUnauthorized, "Authorization header is required", "missing header")
	}
	token, ok := bearerToken(r)
	if !ok {
		return nil, g.reject(r, http.StatusUnauthorized, "Invalid authorization header format", "malformed header")
	}

	claims, err := g.codec.Decode(token, g.now())
	if err != nil {
		return nil, g.reject(r, http.StatusUnauthorized, "Invalid or expired token", decodeCause(err))
	}
	if claims.Kind != model.TokenKindAccess {
		return nil, g.reject(r, http.StatusUnauthorized, "Invalid or expired token", "not an access token")
	}
	if claims.Role != g.cfg.PrivilegedRole {
		return nil, g.reject(r, http.StatusForbidden, "Access denied. Admin privileges required.", "insufficient role")
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, g.reject(r, http.StatusUnauthorized, "Invalid or expired token", "malformed")
	}
	ctx := context.WithValue(r.Context(), principalKey, Principal{UserID: userID, Role: claims.Role})
	return r.WithContext(ctx), nil
}

func decodeCause(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "expired"
	case errors.Is(err, service.ErrInvalidSignature):
		return "invalid signature"
	case errors.Is(err, service.ErrMalformedToken):
		return "malformed"
	}
	return err.Error()
}
