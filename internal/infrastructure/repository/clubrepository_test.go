package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/domain/club"
)

func TestClubRepository_CRUD(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClubRepository(database, nopLogger())
	ctx := context.Background()

	c := createTestClub(t, repo, "Vélo Club d'Évry")
	createTestClub(t, repo, "Cyclo Lyon")

	t.Run("search ignores accents and case", func(t *testing.T) {
		clubs, total, err := repo.List(ctx, club.ListFilter{Page: 1, PageSize: 10, Search: "velo CLUB"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, clubs, 1)
		assert.Equal(t, c.ID(), clubs[0].ID())
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, c.Update(club.Details{
			Name:             "VC Évry",
			OrganizationType: club.OrganizationInformal,
			Address:          club.Address{City: "Évry", Department: "91"},
		}))
		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.GetByID(ctx, c.ID())
		require.NoError(t, err)
		assert.Equal(t, "VC Évry", found.Name())
		assert.Equal(t, "91", found.Address().Department)
	})

	t.Run("deleted club is not found", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, c.ID()))
		_, err := repo.GetByID(ctx, c.ID())
		assert.ErrorIs(t, err, club.ErrClubNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, c.ID()), club.ErrClubNotFound)
	})
}

func TestJoinRequestRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewJoinRequestRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &club.JoinRequest{UserID: 1, ClubID: 10}))
	require.NoError(t, repo.Create(ctx, &club.JoinRequest{UserID: 1, ClubID: 11}))
	require.NoError(t, repo.Create(ctx, &club.JoinRequest{UserID: 2, ClubID: 10}))

	t.Run("duplicate pair", func(t *testing.T) {
		err := repo.Create(ctx, &club.JoinRequest{UserID: 1, ClubID: 10})
		assert.ErrorIs(t, err, club.ErrDuplicateJoinRequest)
	})

	t.Run("list by club", func(t *testing.T) {
		reqs, err := repo.ListByClub(ctx, 10)
		require.NoError(t, err)
		require.Len(t, reqs, 2)
		assert.Equal(t, uint(1), reqs[0].UserID)
	})

	t.Run("delete all for user spans clubs", func(t *testing.T) {
		require.NoError(t, repo.DeleteAllForUser(ctx, 1))
		for _, clubID := range []uint{10, 11} {
			exists, err := repo.Exists(ctx, 1, clubID)
			require.NoError(t, err)
			assert.False(t, exists)
		}
		exists, err := repo.Exists(ctx, 2, 10)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("delete reports missing rows", func(t *testing.T) {
		removed, err := repo.Delete(ctx, 2, 10)
		require.NoError(t, err)
		assert.True(t, removed)
		removed, err = repo.Delete(ctx, 2, 10)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestClubFollowRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewClubFollowRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, 1, 10))
	require.NoError(t, repo.Create(ctx, 1, 11))
	require.NoError(t, repo.Create(ctx, 2, 10))

	count, err := repo.CountByClub(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ids, err := repo.ListClubIDsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11}, ids)

	require.NoError(t, repo.DeleteAllForClub(ctx, 10))
	count, err = repo.CountByClub(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}
