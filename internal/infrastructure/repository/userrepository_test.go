package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/db"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database, nopLogger())
	ctx := context.Background()

	t.Run("create assigns id and defaults", func(t *testing.T) {
		u := createTestUser(t, repo, "anne@example.com")
		assert.NotZero(t, u.ID())

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "anne@example.com", found.Email())
		assert.Equal(t, user.NoBillingCustomer, found.BillingCustomerID())
		assert.Nil(t, found.ClubID())
	})

	t.Run("duplicate email", func(t *testing.T) {
		u, err := user.NewUser("ANNE@example.com", "Other", "Rider", "hash")
		require.NoError(t, err)
		err = repo.Create(ctx, u)
		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("soft deleted user is not found", func(t *testing.T) {
		u := createTestUser(t, repo, "gone@example.com")
		require.NoError(t, repo.Delete(ctx, u.ID()))
		_, err := repo.GetByID(ctx, u.ID())
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestUserRepository_Membership(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database, nopLogger())
	ctx := context.Background()

	t.Run("attach only when unaffiliated", func(t *testing.T) {
		u := createTestUser(t, repo, "member@example.com")

		ok, err := repo.AttachToClubIfUnaffiliated(ctx, u.ID(), 1)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.AttachToClubIfUnaffiliated(ctx, u.ID(), 2)
		require.NoError(t, err)
		assert.False(t, ok)

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		require.NotNil(t, found.ClubID())
		assert.Equal(t, uint(1), *found.ClubID())
		assert.False(t, found.IsClubAdmin())
	})

	t.Run("set admin requires membership of that club", func(t *testing.T) {
		u := createTestUser(t, repo, "admin@example.com")
		_, err := repo.AttachToClubIfUnaffiliated(ctx, u.ID(), 3)
		require.NoError(t, err)

		ok, err := repo.SetClubAdmin(ctx, u.ID(), 4, true)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.SetClubAdmin(ctx, u.ID(), 3, true)
		require.NoError(t, err)
		assert.True(t, ok)

		admins, err := repo.ListClubAdmins(ctx, 3)
		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, u.ID(), admins[0].ID())
	})

	t.Run("detach clears the admin flag", func(t *testing.T) {
		u := createTestUser(t, repo, "leaver@example.com")
		_, err := repo.AttachToClubIfUnaffiliated(ctx, u.ID(), 5)
		require.NoError(t, err)
		_, err = repo.SetClubAdmin(ctx, u.ID(), 5, true)
		require.NoError(t, err)

		ok, err := repo.DetachFromClub(ctx, u.ID(), 6)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.DetachFromClub(ctx, u.ID(), 5)
		require.NoError(t, err)
		assert.True(t, ok)

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Nil(t, found.ClubID())
		assert.False(t, found.IsClubAdmin())
	})

	t.Run("members are listed admins first", func(t *testing.T) {
		a := createTestUser(t, repo, "a7@example.com")
		b := createTestUser(t, repo, "b7@example.com")
		for _, u := range []*user.User{a, b} {
			_, err := repo.AttachToClubIfUnaffiliated(ctx, u.ID(), 7)
			require.NoError(t, err)
		}
		_, err := repo.SetClubAdmin(ctx, b.ID(), 7, true)
		require.NoError(t, err)

		members, total, err := repo.ListByClub(ctx, 7, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, members, 2)
		assert.Equal(t, b.ID(), members[0].ID())

		require.NoError(t, repo.DetachAllFromClub(ctx, 7))
		count, err := repo.CountByClub(ctx, 7)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("attach is rolled back with the transaction", func(t *testing.T) {
		u := createTestUser(t, repo, "rollback@example.com")
		tm := db.NewTransactionManager(database)
		boom := errors.New("boom")

		err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
			ok, err := repo.AttachToClubIfUnaffiliated(txCtx, u.ID(), 8)
			require.NoError(t, err)
			require.True(t, ok)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Nil(t, found.ClubID())
	})
}

func TestUserRepository_BillingCustomers(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database, nopLogger())
	ctx := context.Background()

	createTestUser(t, repo, "free@example.com")
	paying := createTestUser(t, repo, "paying@example.com")
	require.NoError(t, paying.AttachBillingCustomer("cus_123"))
	require.NoError(t, repo.Update(ctx, paying))

	users, err := repo.ListWithBillingCustomer(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "cus_123", users[0].BillingCustomerID())
}

func TestUserFollowRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserFollowRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, 1, 2))
	require.NoError(t, repo.Create(ctx, 1, 2))
	require.NoError(t, repo.Create(ctx, 3, 2))

	exists, err := repo.Exists(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)

	followers, total, err := repo.ListFollowerIDs(ctx, 2, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.ElementsMatch(t, []uint{1, 3}, followers)

	removed, err := repo.Delete(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Delete(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, repo.DeleteAllForUser(ctx, 2))
	following, total, err := repo.ListFollowingIDs(ctx, 3, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, following)
}

func TestSessionRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSessionRepository(database)
	ctx := context.Background()

	active, err := user.NewSession(1, 24*time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, active))

	expired, err := user.NewSession(1, -time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, expired))

	found, err := repo.GetByID(ctx, active.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive())

	require.NoError(t, repo.Revoke(ctx, active.ID))
	found, err = repo.GetByID(ctx, active.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive())

	n, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.GetByID(ctx, expired.ID)
	assert.ErrorIs(t, err, user.ErrSessionNotFound)
}
