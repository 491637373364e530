package bicycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBicycle(t *testing.T) {
	b, err := NewBicycle(1, Specs{Name: " Fuji ", Brand: "Fuji", Kind: KindRoad, Year: 2020})
	require.NoError(t, err)
	assert.Equal(t, "Fuji", b.Specs().Name)

	_, err = NewBicycle(1, Specs{Name: "x", Kind: "tandem"})
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = NewBicycle(1, Specs{Name: "", Kind: KindMTB})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewBicycle(1, Specs{Name: "old", Kind: KindCity, Year: 1850})
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestBicycleReplacePhoto(t *testing.T) {
	b, err := NewBicycle(1, Specs{Name: "Gravel", Kind: KindGravel})
	require.NoError(t, err)

	assert.Equal(t, "", b.ReplacePhoto("bicycles/1.jpg"))
	assert.Equal(t, "bicycles/1.jpg", b.ReplacePhoto("bicycles/2.jpg"))
}
