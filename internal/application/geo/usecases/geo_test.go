package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type stubGeocoder struct {
	addresses []geo.Address
	err       error
	lastLimit int
}

func (s *stubGeocoder) Search(ctx context.Context, query string, limit int) ([]geo.Address, error) {
	s.lastLimit = limit
	return s.addresses, s.err
}

func (s *stubGeocoder) Reverse(ctx context.Context, longitude, latitude float64) ([]geo.Address, error) {
	return s.addresses, s.err
}

func TestSearchAddress(t *testing.T) {
	ctx := context.Background()
	geocoder := &stubGeocoder{addresses: []geo.Address{{Label: "8 Boulevard du Port 80000 Amiens", DepartmentCode: "80"}}}
	uc := NewSearchAddressUseCase(geocoder, logger.NewNopLogger())

	got, err := uc.Execute(ctx, SearchAddressQuery{Query: "8 bd du port"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "80", got[0].DepartmentCode)
	assert.Equal(t, defaultSearchLimit, geocoder.lastLimit)

	_, err = uc.Execute(ctx, SearchAddressQuery{Query: " a "})
	assert.True(t, errors.IsValidationError(err))

	geocoder.err = fmt.Errorf("%w: status 500", geo.ErrGeocoderUnavailable)
	_, err = uc.Execute(ctx, SearchAddressQuery{Query: "amiens"})
	require.Error(t, err)
	assert.Equal(t, 502, errors.GetAppError(err).Code)
}

func TestReverseGeocode(t *testing.T) {
	ctx := context.Background()
	geocoder := &stubGeocoder{addresses: []geo.Address{{City: "Lyon"}}}
	uc := NewReverseGeocodeUseCase(geocoder, logger.NewNopLogger())

	got, err := uc.Execute(ctx, ReverseGeocodeQuery{Longitude: 4.83, Latitude: 45.76})
	require.NoError(t, err)
	assert.Equal(t, "Lyon", got[0].City)

	_, err = uc.Execute(ctx, ReverseGeocodeQuery{Longitude: 200, Latitude: 45})
	assert.True(t, errors.IsValidationError(err))
}

func TestListDepartments(t *testing.T) {
	departments, err := NewListDepartmentsUseCase(logger.NewNopLogger()).Execute(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, departments)
	assert.Equal(t, "01", departments[0].Code)
}
