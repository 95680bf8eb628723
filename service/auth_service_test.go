// file: service/auth_service_test.go

package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"
	"wedding-api/model"
	"wedding-api/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	svc    *AuthService
	users  *mockUserRepo
	codec  *TokenCodec
	ledger *RevocationLedger
	sql    sqlmock.Sqlmock
	cache  *fakeCache
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	db, mock := newMockDB(t)
	users := new(mockUserRepo)
	codec := newTestCodec()
	cache := newFakeCache()
	ledger := NewRevocationLedger(repository.NewRevocationRepository(db), cache)
	return &authFixture{
		svc:    NewAuthService(users, NewPasswordHasher(bcrypt.MinCost), codec, ledger),
		users:  users,
		codec:  codec,
		ledger: ledger,
		sql:    mock,
		cache:  cache,
	}
}

func storedUser(t *testing.T, id int64, username, password string, role model.Role) *model.User {
	t.Helper()
	hash, err := NewPasswordHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	return &model.User{ID: id, Username: username, PasswordHash: hash, Role: role}
}

func (f *authFixture) expectNotRevoked() {
	f.sql.ExpectQuery(`FROM revoked_access_tokens`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	f.sql.ExpectQuery(`FROM revoked_refresh_tokens`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
}

func (f *authFixture) expectRevokePair() {
	f.sql.ExpectBegin()
	f.sql.ExpectExec(`INSERT INTO revoked_access_tokens`).WillReturnResult(sqlmock.NewResult(1, 1))
	f.sql.ExpectExec(`INSERT INTO revoked_refresh_tokens`).WillReturnResult(sqlmock.NewResult(1, 1))
	f.sql.ExpectCommit()
}

// cutoffArg records the time bound passed to a purge statement.
type cutoffArg struct {
	got *time.Time
}

func (a cutoffArg) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	if ok {
		*a.got = ts
	}
	return ok
}

func TestAuthService_Login(t *testing.T) {
	t.Run("role claim comes from the stored user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("GetUserByUsername", "admin").Return(storedUser(t, 1, "admin", "Secret123", model.RoleAdmin), nil).Once()

		pair, err := f.svc.Login(context.Background(), "admin", "Secret123")
		require.NoError(t, err)

		claims, err := f.codec.Decode(pair.AccessToken, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "1", claims.Subject)
		assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))

		refresh, err := f.codec.Decode(pair.RefreshToken, time.Now())
		require.NoError(t, err)
		assert.Equal(t, model.TokenKindRefresh, refresh.Kind)
		f.users.AssertExpectations(t)
	})

	t.Run("member gets member role", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("GetUserByUsername", "clerk").Return(storedUser(t, 2, "clerk", "Secret123", model.RoleMember), nil).Once()

		pair, err := f.svc.Login(context.Background(), "clerk", "Secret123")
		require.NoError(t, err)
		claims, err := f.codec.Decode(pair.AccessToken, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "member", claims.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("GetUserByUsername", "ghost").Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.Login(context.Background(), "ghost", "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("GetUserByUsername", "admin").Return(storedUser(t, 1, "admin", "Secret123", model.RoleAdmin), nil).Once()

		_, err := f.svc.Login(context.Background(), "admin", "Secret124")
		assert.ErrorIs(t, err, ErrBadPassword)
	})

	t.Run("storage error", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.On("GetUserByUsername", "admin").Return(nil, errors.New("db down")).Once()

		_, err := f.svc.Login(context.Background(), "admin", "Secret123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("success then replay", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, refresh, _ := issuePair(t, f.codec, 1, time.Now())

		f.expectNotRevoked()
		f.expectRevokePair()
		require.NoError(t, f.svc.Logout(context.Background(), refresh, access))

		// The second attempt is answered from the mirrored cache entries.
		err := f.svc.Logout(context.Background(), refresh, access)
		assert.ErrorIs(t, err, ErrTokensAlreadyRevoked)
	})

	t.Run("already revoked in database", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, refresh, _ := issuePair(t, f.codec, 1, time.Now())

		f.sql.ExpectQuery(`FROM revoked_access_tokens`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		f.sql.ExpectQuery(`FROM revoked_refresh_tokens`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := f.svc.Logout(context.Background(), refresh, access)
		assert.ErrorIs(t, err, ErrTokensAlreadyRevoked)
	})

	t.Run("concurrent logout loses the insert race", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, refresh, _ := issuePair(t, f.codec, 1, time.Now())

		f.expectNotRevoked()
		f.sql.ExpectBegin()
		f.sql.ExpectExec(`INSERT INTO revoked_access_tokens`).WillReturnResult(sqlmock.NewResult(0, 0))
		f.sql.ExpectRollback()

		err := f.svc.Logout(context.Background(), refresh, access)
		assert.ErrorIs(t, err, ErrTokensAlreadyRevoked)
	})

	t.Run("expired tokens are accepted", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, refresh, _ := issuePair(t, f.codec, 1, time.Now().Add(-7*24*time.Hour-time.Hour))

		f.expectNotRevoked()
		f.expectRevokePair()
		assert.NoError(t, f.svc.Logout(context.Background(), refresh, access))
	})

	t.Run("refresh expired beyond retention", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, refresh, _ := issuePair(t, f.codec, 1, time.Now().Add(-8*24*time.Hour-time.Hour))

		err := f.svc.Logout(context.Background(), refresh, access)
		assert.ErrorIs(t, err, ErrInvalidTokens)
	})

	t.Run("replay after purge", func(t *testing.T) {
		f := newAuthFixture(t)
		now := time.Now()
		f.svc.now = func() time.Time { return now }
		// Refresh expired an hour ago, inside the retention window.
		access, _, refresh, refreshClaims := issuePair(t, f.codec, 1, now.Add(-7*24*time.Hour-time.Hour))

		f.expectNotRevoked()
		f.expectRevokePair()
		require.NoError(t, f.svc.Logout(context.Background(), refresh, access))
		assert.Empty(t, f.cache.data, "expired tokens are not mirrored")

		var accessCutoff, refreshCutoff time.Time
		f.sql.ExpectExec(`DELETE FROM revoked_access_tokens`).
			WithArgs(cutoffArg{&accessCutoff}).
			WillReturnResult(sqlmock.NewResult(0, 1))
		f.sql.ExpectExec(`DELETE FROM revoked_refresh_tokens`).
			WithArgs(cutoffArg{&refreshCutoff}).
			WillReturnResult(sqlmock.NewResult(0, 0))
		_, err := f.ledger.PurgeExpired(context.Background(), now)
		require.NoError(t, err)

		assert.Equal(t, now.Add(-DefaultRetention), refreshCutoff)
		assert.Equal(t, refreshCutoff, accessCutoff)
		assert.False(t, refreshClaims.ExpiresAt.Time.Before(refreshCutoff), "refresh entry must survive the purge")

		f.sql.ExpectQuery(`FROM revoked_access_tokens`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		f.sql.ExpectQuery(`FROM revoked_refresh_tokens`).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		err = f.svc.Logout(context.Background(), refresh, access)
		assert.ErrorIs(t, err, ErrTokensAlreadyRevoked)

		// Once the refresh entry is old enough to be purged, the pair is
		// refused before the ledger is consulted.
		later := now.Add(DefaultRetention + time.Minute)
		f.svc.now = func() time.Time { return later }
		assert.True(t, refreshClaims.ExpiresAt.Time.Before(later.Add(-DefaultRetention)))
		err = f.svc.Logout(context.Background(), refresh, access)
		assert.ErrorIs(t, err, ErrInvalidTokens)
	})

	t.Run("swapped tokens", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, refresh, _ := issuePair(t, f.codec, 1, time.Now())

		err := f.svc.Logout(context.Background(), access, refresh)
		assert.ErrorIs(t, err, ErrInvalidTokens)
	})

	t.Run("tokens of different users", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, _, _ := issuePair(t, f.codec, 1, time.Now())
		_, _, refresh, _ := issuePair(t, f.codec, 2, time.Now())

		err := f.svc.Logout(context.Background(), refresh, access)
		assert.ErrorIs(t, err, ErrInvalidTokens)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, _, _ := issuePair(t, f.codec, 1, time.Now())

		err := f.svc.Logout(context.Background(), "garbage", access)
		assert.ErrorIs(t, err, ErrInvalidTokens)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newAuthFixture(t)
		access, _, refresh, _ := issuePair(t, f.codec, 1, time.Now())

		f.expectNotRevoked()
		f.sql.ExpectBegin()
		f.sql.ExpectExec(`INSERT INTO revoked_access_tokens`).WillReturnResult(sqlmock.NewResult(1, 1))
		f.sql.ExpectExec(`INSERT INTO revoked_refresh_tokens`).WillReturnError(errors.New("disk full"))
		f.sql.ExpectRollback()

		err := f.svc.Logout(context.Background(), refresh, access)
		assert.ErrorIs(t, err, ErrRevocationFailed)
	})
}
