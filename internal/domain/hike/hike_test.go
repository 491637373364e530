package hike

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() Details {
	return Details{
		Title:      "Col de la Croix de Fer",
		StartsAt:   time.Now().Add(48 * time.Hour),
		Department: "73",
		City:       "Saint-Jean-de-Maurienne",
		DistanceKm: 62.5,
		ElevationM: 1500,
		Difficulty: DifficultyHard,
	}
}

func TestNewHike(t *testing.T) {
	h, err := NewHike(1, nil, validDetails())
	require.NoError(t, err)

	assert.Equal(t, StatusPlanned, h.Status())
	assert.False(t, h.IsCancelled())
}

func TestNewHike_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Details)
		wantErr error
	}{
		{name: "missing title", mutate: func(d *Details) { d.Title = "" }, wantErr: ErrTitleRequired},
		{name: "missing start", mutate: func(d *Details) { d.StartsAt = time.Time{} }, wantErr: ErrStartRequired},
		{name: "past start", mutate: func(d *Details) { d.StartsAt = time.Now().Add(-time.Hour) }, wantErr: ErrStartInPast},
		{name: "bad difficulty", mutate: func(d *Details) { d.Difficulty = "extreme" }, wantErr: ErrInvalidDifficulty},
		{name: "negative distance", mutate: func(d *Details) { d.DistanceKm = -1 }, wantErr: ErrNegativeMetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)
			_, err := NewHike(1, nil, d)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHikeCancel(t *testing.T) {
	h, err := NewHike(1, nil, validDetails())
	require.NoError(t, err)

	require.NoError(t, h.Cancel())
	assert.True(t, h.IsCancelled())
	assert.ErrorIs(t, h.Cancel(), ErrHikeCancelled)
	assert.ErrorIs(t, h.Update(validDetails()), ErrHikeCancelled)
}

func TestHikeCanBeManagedBy(t *testing.T) {
	club := uint(3)
	other := uint(4)
	h, err := NewHike(1, &club, validDetails())
	require.NoError(t, err)

	assert.True(t, h.CanBeManagedBy(1, nil))
	assert.True(t, h.CanBeManagedBy(2, &club))
	assert.False(t, h.CanBeManagedBy(2, &other))
	assert.False(t, h.CanBeManagedBy(2, nil))
}

func TestNewTrip(t *testing.T) {
	trip, err := NewTrip(1, 0, "Montée", "Bourg", "Col", 22, []Point{{6.2, 45.2}, {6.21, 45.25}})
	require.NoError(t, err)
	assert.Len(t, trip.Path, 2)

	_, err = NewTrip(1, 0, " ", "", "", 1, nil)
	assert.ErrorIs(t, err, ErrTripLabelRequired)

	_, err = NewTrip(1, 0, "x", "", "", 1, []Point{{200, 10}})
	assert.ErrorIs(t, err, ErrInvalidPath)
}
