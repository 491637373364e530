package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridecrew/ridecrew/internal/application/geo/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers/testutil"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

type mockSearchAddressUC struct {
	query usecases.SearchAddressQuery
	err   error
}

func (m *mockSearchAddressUC) Execute(ctx context.Context, query usecases.SearchAddressQuery) ([]geo.Address, error) {
	m.query = query
	return []geo.Address{{Label: "8 Boulevard du Port 80000 Amiens"}}, m.err
}

type mockReverseGeocodeUC struct {
	called bool
}

func (m *mockReverseGeocodeUC) Execute(ctx context.Context, query usecases.ReverseGeocodeQuery) ([]geo.Address, error) {
	m.called = true
	return nil, nil
}

func TestGeoHandler_SearchAddress_PassesLimit(t *testing.T) {
	mockUC := &mockSearchAddressUC{}
	handler := NewGeoHandler(mockUC, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/geo/search", nil)
	testutil.SetQueryParams(c, map[string]string{"q": "8 bd du port", "limit": "3"})

	handler.SearchAddress(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.SearchAddressQuery{Query: "8 bd du port", Limit: 3}, mockUC.query)
}

func TestGeoHandler_SearchAddress_UpstreamFailure(t *testing.T) {
	handler := NewGeoHandler(&mockSearchAddressUC{err: errors.NewUpstreamError("geocoding service unavailable")}, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/geo/search", nil)
	testutil.SetQueryParams(c, map[string]string{"q": "8 bd du port"})

	handler.SearchAddress(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGeoHandler_ReverseGeocode_RequiresNumbers(t *testing.T) {
	mockUC := &mockReverseGeocodeUC{}
	handler := NewGeoHandler(nil, mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/geo/reverse", nil)
	testutil.SetQueryParams(c, map[string]string{"lon": "2.29"})

	handler.ReverseGeocode(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, mockUC.called)
}
