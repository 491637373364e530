package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/application/geo/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

var _ = geo.Address{}

type GeoHandler struct {
	searchUseCase      searchAddressUseCase
	reverseUseCase     reverseGeocodeUseCase
	departmentsUseCase listDepartmentsUseCase
	logger             logger.Interface
}

func NewGeoHandler(
	searchUC searchAddressUseCase,
	reverseUC reverseGeocodeUseCase,
	departmentsUC listDepartmentsUseCase,
	logger logger.Interface,
) *GeoHandler {
	return &GeoHandler{
		searchUseCase:      searchUC,
		reverseUseCase:     reverseUC,
		departmentsUseCase: departmentsUC,
		logger:             logger,
	}
}

// SearchAddress geocodes a free-text address
// @Summary Search address
// @Tags Geo
// @Produce json
// @Param q query string true "Address text, at least 3 characters"
// @Param limit query int false "Maximum results"
// @Success 200 {object} utils.APIResponse{data=[]geo.Address}
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /geo/search [get]
func (h *GeoHandler) SearchAddress(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewFieldValidationError("Validation failed", map[string]string{
				"limit": "limit must be an integer",
			}))
			return
		}
		limit = n
	}

	addresses, err := h.searchUseCase.Execute(c.Request.Context(), usecases.SearchAddressQuery{
		Query: c.Query("q"),
		Limit: limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", addresses)
}

// ReverseGeocode finds the addresses near a coordinate
// @Summary Reverse geocode
// @Tags Geo
// @Produce json
// @Param lon query number true "Longitude"
// @Param lat query number true "Latitude"
// @Success 200 {object} utils.APIResponse{data=[]geo.Address}
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /geo/reverse [get]
func (h *GeoHandler) ReverseGeocode(c *gin.Context) {
	fields := map[string]string{}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		fields["lon"] = "lon must be a number"
	}
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		fields["lat"] = "lat must be a number"
	}
	if len(fields) > 0 {
		utils.ErrorResponseWithError(c, errors.NewFieldValidationError("Validation failed", fields))
		return
	}

	addresses, err := h.reverseUseCase.Execute(c.Request.Context(), usecases.ReverseGeocodeQuery{
		Longitude: lon,
		Latitude:  lat,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", addresses)
}

// ListDepartments returns the department catalog
// @Summary List departments
// @Tags Geo
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]geo.Department}
// @Router /geo/departments [get]
func (h *GeoHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", departments)
}
