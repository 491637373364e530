package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/domain/hike"
)

func newTestHike(t *testing.T, repo *HikeRepository, clubID *uint, days int, dept string) *hike.Hike {
	t.Helper()
	h, err := hike.NewHike(1, clubID, hike.Details{
		Title:      "Ride",
		StartsAt:   inDays(days),
		Department: dept,
		Difficulty: hike.DifficultyMedium,
		DistanceKm: 80,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), h))
	return h
}

func TestHikeRepository_Search(t *testing.T) {
	database := setupTestDB(t)
	repo := NewHikeRepository(database)
	ctx := context.Background()

	clubID := uint(10)
	soon := newTestHike(t, repo, &clubID, 2, "69")
	later := newTestHike(t, repo, nil, 20, "69")
	newTestHike(t, repo, nil, 3, "38")

	cancelled := newTestHike(t, repo, nil, 4, "69")
	require.NoError(t, cancelled.Cancel())
	require.NoError(t, repo.Update(ctx, cancelled))

	t.Run("department and window", func(t *testing.T) {
		to := inDays(10)
		list, total, err := repo.Search(ctx, hike.SearchFilter{From: inDays(0), To: &to, Department: "69", Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, soon.ID(), list[0].ID())
	})

	t.Run("ordered by start", func(t *testing.T) {
		list, _, err := repo.Search(ctx, hike.SearchFilter{From: inDays(0), Department: "69", Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, soon.ID(), list[0].ID())
		assert.Equal(t, later.ID(), list[1].ID())
	})

	t.Run("by club", func(t *testing.T) {
		list, _, err := repo.Search(ctx, hike.SearchFilter{From: inDays(0), ClubID: &clubID, Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, soon.ID(), list[0].ID())
	})
}

func TestHikeRepository_TripsAndCascade(t *testing.T) {
	database := setupTestDB(t)
	hikes := NewHikeRepository(database)
	trips := NewTripRepository(database)
	hypes := NewHypeRepository(database)
	images := NewHikeImageRepository(database)
	ctx := context.Background()

	clubID := uint(5)
	h := newTestHike(t, hikes, &clubID, 7, "73")

	pos, err := trips.NextPosition(ctx, h.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	trip, err := hike.NewTrip(h.ID(), pos, "Climb", "Bourg", "Col", 12.5, []hike.Point{{6.06, 45.05}, {6.1, 45.1}})
	require.NoError(t, err)
	require.NoError(t, trips.Create(ctx, trip))

	pos, err = trips.NextPosition(ctx, h.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	found, err := trips.GetByID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.Path, found.Path)

	require.NoError(t, hypes.Create(ctx, h.ID(), 2))
	counts, err := hypes.CountByHikes(ctx, []uint{h.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[h.ID()])

	require.NoError(t, images.Create(ctx, h.ID(), "hikes/1.jpg"))

	paths, err := hikes.DeleteAllForClub(ctx, clubID)
	require.NoError(t, err)
	assert.Equal(t, []string{"hikes/1.jpg"}, paths)

	_, err = hikes.GetByID(ctx, h.ID())
	assert.ErrorIs(t, err, hike.ErrHikeNotFound)
	list, err := trips.ListByHike(ctx, h.ID())
	require.NoError(t, err)
	assert.Empty(t, list)
}
