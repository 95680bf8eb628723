package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wedding-api/logger"
	"wedding-api/model"
	"wedding-api/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrBadPassword          = errors.New("bad password")
	ErrInvalidTokens        = errors.New("invalid tokens")
	ErrTokensAlreadyRevoked = errors.New("tokens already revoked")
	ErrRevocationFailed     = errors.New("revocation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles login and logout.
type AuthService struct {
	users  repository.IUserRepository
	hasher *PasswordHasher
	codec  *TokenCodec
	ledger *RevocationLedger
	now    func() time.Time
}

func NewAuthService(users repository.IUserRepository, hasher *PasswordHasher, codec *TokenCodec, ledger *RevocationLedger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		codec:  codec,
		ledger: ledger,
		now:    time.Now,
	}
}

// Login checks the credentials and mints an access token carrying the
// user's stored role together with a refresh token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	log := logger.Log.WithField("username", username)

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Login attempt for unknown user")
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not load user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Warn("Login attempt with wrong password")
		return nil, ErrBadPassword
	}

	now := s.now()
	access, _, err := s.codec.Issue(user.ID, string(user.Role), model.TokenKindAccess, now)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.codec.Issue(user.ID, "", model.TokenKindRefresh, now)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User logged in")
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout revokes an access/refresh pair belonging to the same user. Expired
// tokens are accepted so that a client can always end its session.
func (s *AuthService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	now := s.now()

	refresh, err := s.codec.DecodeAllowExpired(refreshToken, now)
	if err != nil {
		return fmt.Errorf("%w: refresh: %v", ErrInvalidTokens, err)
	}
	access, err := s.codec.DecodeAllowExpired(accessToken, now)
	if err != nil {
		return fmt.Errorf("%w: access: %v", ErrInvalidTokens, err)
	}
	if refresh.Kind != model.TokenKindRefresh || access.Kind != model.TokenKindAccess {
		return fmt.Errorf("%w: wrong token_type", ErrInvalidTokens)
	}
	if refresh.Subject != access.Subject {
		return fmt.Errorf("%w: tokens belong to different users", ErrInvalidTokens)
	}
	// Ledger entries older than the retention window may already be purged.
	if refresh.ExpiresAt.Time.Before(now.Add(-s.ledger.Retention())) {
		return fmt.Errorf("%w: refresh token expired beyond retention", ErrInvalidTokens)
	}

	accessRevoked, err := s.ledger.IsAccessRevoked(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRevocationFailed, err)
	}
	refreshRevoked, err := s.ledger.IsRefreshRevoked(ctx, refresh.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRevocationFailed, err)
	}
	if accessRevoked || refreshRevoked {
		return ErrTokensAlreadyRevoked
	}

	if err := s.ledger.RevokePair(ctx, accessToken, access, refresh); err != nil {
		if errors.Is(err, ErrAlreadyRevoked) {
			return ErrTokensAlreadyRevoked
		}
		return fmt.Errorf("%w: %v", ErrRevocationFailed, err)
	}

	logger.Log.WithFields(logrus.Fields{"user_id": access.Subject, "jti": refresh.ID}).Info("User logged out")
	return nil
}
