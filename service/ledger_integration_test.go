//go:build integration

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"
	"wedding-api/db"
	"wedding-api/model"
	"wedding-api/repository"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("venue"),
		postgres.WithUsername("venue"),
		postgres.WithPassword("venue"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

func TestLedgerAgainstPostgres(t *testing.T) {
	database := startPostgres(t)
	ctx := context.Background()

	users := repository.NewUserRepository(database)
	user := &model.User{Username: "alice", PasswordHash: "x", Role: model.RoleAdmin}
	require.NoError(t, users.CreateUser(ctx, user))

	codec := newTestCodec()
	ledger := NewRevocationLedger(repository.NewRevocationRepository(database), nil)

	now := time.Now()
	access, accessClaims, err := codec.Issue(user.ID, "admin", model.TokenKindAccess, now)
	require.NoError(t, err)
	_, refreshClaims, err := codec.Issue(user.ID, "", model.TokenKindRefresh, now)
	require.NoError(t, err)

	require.NoError(t, ledger.RevokePair(ctx, access, accessClaims, refreshClaims))

	revoked, err := ledger.IsAccessRevoked(ctx, access)
	require.NoError(t, err)
	assert.True(t, revoked)
	revoked, err = ledger.IsRefreshRevoked(ctx, refreshClaims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	// Replaying the pair rolls back and leaves the ledger unchanged.
	assert.ErrorIs(t, ledger.RevokePair(ctx, access, accessClaims, refreshClaims), ErrAlreadyRevoked)

	// Entries stay for the retention window after the tokens expire.
	n, err := ledger.PurgeExpired(ctx, now.Add(7*24*time.Hour+time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	revoked, err = ledger.IsRefreshRevoked(ctx, refreshClaims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	n, err = ledger.PurgeExpired(ctx, now.Add(7*24*time.Hour+DefaultRetention+time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	revoked, err = ledger.IsAccessRevoked(ctx, access)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestLedgerRollsBackPartialPair(t *testing.T) {
	database := startPostgres(t)
	ctx := context.Background()

	users := repository.NewUserRepository(database)
	user := &model.User{Username: "bob", PasswordHash: "x", Role: model.RoleMember}
	require.NoError(t, users.CreateUser(ctx, user))

	codec := newTestCodec()
	ledger := NewRevocationLedger(repository.NewRevocationRepository(database), nil)
	now := time.Now()

	_, refreshClaims, err := codec.Issue(user.ID, "", model.TokenKindRefresh, now)
	require.NoError(t, err)
	require.NoError(t, ledger.RevokeRefresh(ctx, refreshClaims))

	access, accessClaims, err := codec.Issue(user.ID, "member", model.TokenKindAccess, now)
	require.NoError(t, err)
	assert.ErrorIs(t, ledger.RevokePair(ctx, access, accessClaims, refreshClaims), ErrAlreadyRevoked)

	revoked, err := ledger.IsAccessRevoked(ctx, access)
	require.NoError(t, err)
	assert.False(t, revoked, "access insert must be rolled back")
}
