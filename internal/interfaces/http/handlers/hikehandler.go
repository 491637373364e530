package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/application/hike/dto"
	"github.com/ridecrew/ridecrew/internal/application/hike/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

var _ = dto.HikeResponse{}

// HikeHandler serves hikes, their trips, hypes and images.
type HikeHandler struct {
	createUseCase     createHikeUseCase
	updateUseCase     updateHikeUseCase
	cancelUseCase     cancelHikeUseCase
	getUseCase        getHikeUseCase
	searchUseCase     searchHikesUseCase
	addTripUseCase    addTripUseCase
	removeTripUseCase removeTripUseCase
	toggleHypeUseCase toggleHypeUseCase
	addImageUseCase   addHikeImageUseCase
	logger            logger.Interface
}

// HikeUseCases groups the use cases served by HikeHandler.
type HikeUseCases struct {
	Create     createHikeUseCase
	Update     updateHikeUseCase
	Cancel     cancelHikeUseCase
	Get        getHikeUseCase
	Search     searchHikesUseCase
	AddTrip    addTripUseCase
	RemoveTrip removeTripUseCase
	ToggleHype toggleHypeUseCase
	AddImage   addHikeImageUseCase
}

func NewHikeHandler(uc HikeUseCases, logger logger.Interface) *HikeHandler {
	return &HikeHandler{
		createUseCase:     uc.Create,
		updateUseCase:     uc.Update,
		cancelUseCase:     uc.Cancel,
		getUseCase:        uc.Get,
		searchUseCase:     uc.Search,
		addTripUseCase:    uc.AddTrip,
		removeTripUseCase: uc.RemoveTrip,
		toggleHypeUseCase: uc.ToggleHype,
		addImageUseCase:   uc.AddImage,
		logger:            logger,
	}
}

type HikeRequest struct {
	Title        string    `json:"title" binding:"required,min=3,max=150"`
	Description  string    `json:"description" binding:"max=5000"`
	StartsAt     time.Time `json:"starts_at" binding:"required"`
	Department   string    `json:"department" binding:"required,department"`
	City         string    `json:"city" binding:"required,max=100"`
	MeetingPoint string    `json:"meeting_point" binding:"max=200"`
	DistanceKm   float64   `json:"distance_km" binding:"gte=0"`
	ElevationM   int       `json:"elevation_m" binding:"gte=0"`
	Difficulty   string    `json:"difficulty" binding:"required,oneof=easy medium hard"`
}

type CreateHikeRequest struct {
	HikeRequest
	// AsClub organizes the hike in the name of the caller's club.
	AsClub bool `json:"as_club"`
}

type TripRequest struct {
	Label      string       `json:"label" binding:"required,max=120"`
	StartLabel string       `json:"start_label" binding:"max=200"`
	EndLabel   string       `json:"end_label" binding:"max=200"`
	DistanceKm float64      `json:"distance_km" binding:"gte=0"`
	Path       [][2]float64 `json:"path"`
}

func (r HikeRequest) toInput() usecases.HikeDetailsInput {
	return usecases.HikeDetailsInput{
		Title:        r.Title,
		Description:  r.Description,
		StartsAt:     r.StartsAt,
		Department:   r.Department,
		City:         r.City,
		MeetingPoint: r.MeetingPoint,
		DistanceKm:   r.DistanceKm,
		ElevationM:   r.ElevationM,
		Difficulty:   r.Difficulty,
	}
}

// SearchHikes lists planned hikes in a date window
// @Summary Search hikes
// @Tags Hikes
// @Produce json
// @Param from query string false "Window start (RFC3339 or YYYY-MM-DD), default now"
// @Param to query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param department query string false "Department code"
// @Param club_id query int false "Organizing club"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 422 {object} utils.APIResponse
// @Router /hikes [get]
func (h *HikeHandler) SearchHikes(c *gin.Context) {
	p := utils.ParsePagination(c)
	query := usecases.SearchHikesQuery{
		Department: c.Query("department"),
		ViewerID:   viewerID(c),
		Page:       p.Page,
		PageSize:   p.PageSize,
	}

	fields := map[string]string{}
	if raw := c.Query("from"); raw != "" {
		if t, ok := parseDateParam(raw); ok {
			query.From = &t
		} else {
			fields["from"] = "from must be an RFC3339 timestamp or a YYYY-MM-DD date"
		}
	}
	if raw := c.Query("to"); raw != "" {
		if t, ok := parseDateParam(raw); ok {
			query.To = &t
		} else {
			fields["to"] = "to must be an RFC3339 timestamp or a YYYY-MM-DD date"
		}
	}
	if raw := c.Query("club_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			fields["club_id"] = "club_id must be a positive integer"
		} else {
			clubID := uint(id)
			query.ClubID = &clubID
		}
	}
	if len(fields) > 0 {
		utils.ErrorResponseWithError(c, errors.NewFieldValidationError("Validation failed", fields))
		return
	}

	result, err := h.searchUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Hikes, result.Total, p.Page, p.PageSize)
}

// CreateHike plans a hike
// @Summary Create hike
// @Description Requires an active premium plan.
// @Tags Hikes
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateHikeRequest true "Hike"
// @Success 201 {object} utils.APIResponse{data=dto.HikeResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /hikes [post]
func (h *HikeHandler) CreateHike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateHikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateHikeCommand{
		CreatorID:        userID,
		AsClub:           req.AsClub,
		HikeDetailsInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created, "hike created")
}

// GetHike returns a hike with trips, hypes and images
// @Summary Get hike
// @Tags Hikes
// @Produce json
// @Param id path int true "Hike ID"
// @Success 200 {object} utils.APIResponse{data=dto.HikeResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /hikes/{id} [get]
func (h *HikeHandler) GetHike(c *gin.Context) {
	hikeID, err := utils.ParseIDParam(c, "id", "hike")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetHikeQuery{
		HikeID:   hikeID,
		ViewerID: viewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", found)
}

// UpdateHike updates a planned hike
// @Summary Update hike
// @Tags Hikes
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Hike ID"
// @Param request body HikeRequest true "Hike"
// @Success 200 {object} utils.APIResponse{data=dto.HikeResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /hikes/{id} [put]
func (h *HikeHandler) UpdateHike(c *gin.Context) {
	userID, hikeID, ok := h.actorAndHike(c)
	if !ok {
		return
	}

	var req HikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateHikeCommand{
		HikeID:           hikeID,
		ActorID:          userID,
		HikeDetailsInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "hike updated", updated)
}

// CancelHike cancels a planned hike
// @Summary Cancel hike
// @Tags Hikes
// @Produce json
// @Security Bearer
// @Param id path int true "Hike ID"
// @Success 202 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /hikes/{id}/cancel [post]
func (h *HikeHandler) CancelHike(c *gin.Context) {
	userID, hikeID, ok := h.actorAndHike(c)
	if !ok {
		return
	}

	if err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelHikeCommand{
		HikeID:  hikeID,
		ActorID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.AcceptedResponse(c, nil, "hike cancelled")
}

// AddTrip appends a trip to a hike
// @Summary Add trip
// @Tags Hikes
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Hike ID"
// @Param request body TripRequest true "Trip"
// @Success 201 {object} utils.APIResponse{data=dto.TripResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /hikes/{id}/trips [post]
func (h *HikeHandler) AddTrip(c *gin.Context) {
	userID, hikeID, ok := h.actorAndHike(c)
	if !ok {
		return
	}

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	path := make([]hike.Point, len(req.Path))
	for i, p := range req.Path {
		path[i] = hike.Point(p)
	}

	trip, err := h.addTripUseCase.Execute(c.Request.Context(), usecases.AddTripCommand{
		HikeID:     hikeID,
		ActorID:    userID,
		Label:      req.Label,
		StartLabel: req.StartLabel,
		EndLabel:   req.EndLabel,
		DistanceKm: req.DistanceKm,
		Path:       path,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, trip, "trip added")
}

// RemoveTrip removes a trip from a hike
// @Summary Remove trip
// @Tags Hikes
// @Produce json
// @Security Bearer
// @Param id path int true "Hike ID"
// @Param tripId path int true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /hikes/{id}/trips/{tripId} [delete]
func (h *HikeHandler) RemoveTrip(c *gin.Context) {
	userID, hikeID, ok := h.actorAndHike(c)
	if !ok {
		return
	}
	tripID, err := utils.ParseIDParam(c, "tripId", "trip")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeTripUseCase.Execute(c.Request.Context(), usecases.RemoveTripCommand{
		HikeID:  hikeID,
		TripID:  tripID,
		ActorID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "trip removed", nil)
}

// ToggleHype hypes or unhypes a hike
// @Summary Hype or unhype hike
// @Tags Hikes
// @Produce json
// @Security Bearer
// @Param id path int true "Hike ID"
// @Success 201 {object} utils.APIResponse "Hype"
// @Success 202 {object} utils.APIResponse "Unhype"
// @Router /hikes/{id}/hypeOrUnhype [post]
func (h *HikeHandler) ToggleHype(c *gin.Context) {
	userID, hikeID, ok := h.actorAndHike(c)
	if !ok {
		return
	}

	result, err := h.toggleHypeUseCase.Execute(c.Request.Context(), usecases.ToggleHypeCommand{
		HikeID: hikeID,
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondToggle(c, result)
}

// AddImage attaches an image to a hike
// @Summary Add hike image
// @Tags Hikes
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "Hike ID"
// @Param image formData file true "Image"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /hikes/{id}/images [post]
func (h *HikeHandler) AddImage(c *gin.Context) {
	userID, hikeID, ok := h.actorAndHike(c)
	if !ok {
		return
	}

	image, closeFn, err := imageFromForm(c, "image")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeFn()

	url, err := h.addImageUseCase.Execute(c.Request.Context(), usecases.AddHikeImageCommand{
		HikeID:  hikeID,
		ActorID: userID,
		Image:   image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"url": url}, "image added")
}

func (h *HikeHandler) actorAndHike(c *gin.Context) (uint, uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return 0, 0, false
	}
	hikeID, err := utils.ParseIDParam(c, "id", "hike")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return userID, hikeID, true
}

func parseDateParam(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
