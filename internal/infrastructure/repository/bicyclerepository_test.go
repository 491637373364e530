package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/domain/bicycle"
)

func TestBicycleRepository(t *testing.T) {
	database := setupTestDB(t)
	repo := NewBicycleRepository(database)
	ctx := context.Background()

	b, err := bicycle.NewBicycle(3, bicycle.Specs{Name: "Gravel", Brand: "Canyon", Kind: bicycle.KindGravel, Year: 2022})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, b))

	b.ReplacePhoto("bicycles/3/1.jpg")
	require.NoError(t, repo.Update(ctx, b))

	list, err := repo.ListByOwner(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bicycles/3/1.jpg", list[0].PhotoPath())
	assert.Equal(t, bicycle.KindGravel, list[0].Specs().Kind)

	require.NoError(t, repo.Delete(ctx, b.ID()))
	_, err = repo.GetByID(ctx, b.ID())
	assert.ErrorIs(t, err, bicycle.ErrBicycleNotFound)
}
