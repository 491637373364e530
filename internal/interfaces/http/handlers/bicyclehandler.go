package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/application/bicycle/usecases"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

type BicycleHandler struct {
	createUseCase      createBicycleUseCase
	updateUseCase      updateBicycleUseCase
	deleteUseCase      deleteBicycleUseCase
	listUseCase        listBicyclesUseCase
	updatePhotoUseCase updateBicyclePhotoUseCase
	logger             logger.Interface
}

func NewBicycleHandler(
	createUC createBicycleUseCase,
	updateUC updateBicycleUseCase,
	deleteUC deleteBicycleUseCase,
	listUC listBicyclesUseCase,
	updatePhotoUC updateBicyclePhotoUseCase,
	logger logger.Interface,
) *BicycleHandler {
	return &BicycleHandler{
		createUseCase:      createUC,
		updateUseCase:      updateUC,
		deleteUseCase:      deleteUC,
		listUseCase:        listUC,
		updatePhotoUseCase: updatePhotoUC,
		logger:             logger,
	}
}

type BicycleRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Brand string `json:"brand" binding:"max=100"`
	Model string `json:"model" binding:"max=100"`
	Kind  string `json:"kind" binding:"required,oneof=road mtb gravel city ebike other"`
	Year  int    `json:"year" binding:"omitempty,gte=1900"`
}

func (r BicycleRequest) toInput() usecases.SpecsInput {
	return usecases.SpecsInput{
		Name:  r.Name,
		Brand: r.Brand,
		Model: r.Model,
		Kind:  r.Kind,
		Year:  r.Year,
	}
}

// ListMine lists the caller's bicycles
// @Summary List own bicycles
// @Tags Bicycles
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.BicycleResponse}
// @Router /bicycles [get]
func (h *BicycleHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.list(c, userID)
}

// ListByUser lists the bicycles of a user
// @Summary List user bicycles
// @Tags Bicycles
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.BicycleResponse}
// @Router /users/{id}/bicycles [get]
func (h *BicycleHandler) ListByUser(c *gin.Context) {
	ownerID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.list(c, ownerID)
}

func (h *BicycleHandler) list(c *gin.Context, ownerID uint) {
	bicycles, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListBicyclesQuery{OwnerID: ownerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", bicycles)
}

// Create registers a bicycle
// @Summary Create bicycle
// @Tags Bicycles
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body BicycleRequest true "Bicycle"
// @Success 201 {object} utils.APIResponse{data=dto.BicycleResponse}
// @Failure 422 {object} utils.APIResponse
// @Router /bicycles [post]
func (h *BicycleHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req BicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateBicycleCommand{
		OwnerID:    userID,
		SpecsInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created, "bicycle created")
}

// Update updates an owned bicycle
// @Summary Update bicycle
// @Tags Bicycles
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Bicycle ID"
// @Param request body BicycleRequest true "Bicycle"
// @Success 200 {object} utils.APIResponse{data=dto.BicycleResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /bicycles/{id} [put]
func (h *BicycleHandler) Update(c *gin.Context) {
	userID, bicycleID, ok := h.actorAndBicycle(c)
	if !ok {
		return
	}

	var req BicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateBicycleCommand{
		BicycleID:  bicycleID,
		ActorID:    userID,
		SpecsInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "bicycle updated", updated)
}

// Delete removes an owned bicycle
// @Summary Delete bicycle
// @Tags Bicycles
// @Produce json
// @Security Bearer
// @Param id path int true "Bicycle ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /bicycles/{id} [delete]
func (h *BicycleHandler) Delete(c *gin.Context) {
	userID, bicycleID, ok := h.actorAndBicycle(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteBicycleCommand{
		BicycleID: bicycleID,
		ActorID:   userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "bicycle deleted", nil)
}

// UpdatePhoto replaces the photo of an owned bicycle
// @Summary Upload bicycle photo
// @Tags Bicycles
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "Bicycle ID"
// @Param photo formData file true "Photo"
// @Success 201 {object} utils.APIResponse{data=dto.BicycleResponse}
// @Router /bicycles/{id}/photo [post]
func (h *BicycleHandler) UpdatePhoto(c *gin.Context) {
	userID, bicycleID, ok := h.actorAndBicycle(c)
	if !ok {
		return
	}

	image, closeFn, err := imageFromForm(c, "photo")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeFn()

	updated, err := h.updatePhotoUseCase.Execute(c.Request.Context(), usecases.UpdateBicyclePhotoCommand{
		BicycleID: bicycleID,
		ActorID:   userID,
		Image:     image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, updated, "photo updated")
}

func (h *BicycleHandler) actorAndBicycle(c *gin.Context) (uint, uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return 0, 0, false
	}
	bicycleID, err := utils.ParseIDParam(c, "id", "bicycle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return userID, bicycleID, true
}
