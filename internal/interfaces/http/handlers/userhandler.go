package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clubusecases "github.com/ridecrew/ridecrew/internal/application/club/usecases"
	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/application/user/usecases"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

var _ = dto.ProfileResponse{}

// UserHandler serves profiles, follows and account management.
type UserHandler struct {
	getUserUseCase       getUserUseCase
	updateProfileUseCase updateProfileUseCase
	updateAvatarUseCase  updateAvatarUseCase
	deleteAccountUseCase deleteAccountUseCase
	leaveClubUseCase     leaveClubUseCase
	toggleFollowUseCase  toggleFollowUserUseCase
	listFollowsUseCase   listFollowsUseCase
	listUsersUseCase     listUsersUseCase
	logger               logger.Interface
}

func NewUserHandler(
	getUserUC getUserUseCase,
	updateProfileUC updateProfileUseCase,
	updateAvatarUC updateAvatarUseCase,
	deleteAccountUC deleteAccountUseCase,
	leaveClubUC leaveClubUseCase,
	toggleFollowUC toggleFollowUserUseCase,
	listFollowsUC listFollowsUseCase,
	listUsersUC listUsersUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getUserUseCase:       getUserUC,
		updateProfileUseCase: updateProfileUC,
		updateAvatarUseCase:  updateAvatarUC,
		deleteAccountUseCase: deleteAccountUC,
		leaveClubUseCase:     leaveClubUC,
		toggleFollowUseCase:  toggleFollowUC,
		listFollowsUseCase:   listFollowsUC,
		listUsersUseCase:     listUsersUC,
		logger:               logger,
	}
}

type UpdateProfileRequest struct {
	FirstName  string `json:"first_name" binding:"required,min=1,max=100"`
	LastName   string `json:"last_name" binding:"required,min=1,max=100"`
	Bio        string `json:"bio" binding:"max=1000"`
	City       string `json:"city" binding:"max=100"`
	Department string `json:"department" binding:"omitempty,department"`
}

// GetUser returns a public profile
// @Summary Get user profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=dto.ProfileResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profile, err := h.getUserUseCase.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID:   userID,
		ViewerID: viewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateProfile updates the caller's profile
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateProfileRequest true "Profile"
// @Success 200 {object} utils.APIResponse{data=dto.CurrentUserResponse}
// @Failure 422 {object} utils.APIResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	current, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:     userID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Bio:        req.Bio,
		City:       req.City,
		Department: req.Department,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", current)
}

// UpdateAvatar replaces the caller's avatar
// @Summary Upload own avatar
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param avatar formData file true "Avatar image"
// @Success 201 {object} utils.APIResponse{data=dto.ProfileResponse}
// @Failure 422 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /users/me/avatar [post]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	image, closeFn, err := imageFromForm(c, "avatar")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeFn()

	profile, err := h.updateAvatarUseCase.Execute(c.Request.Context(), usecases.UpdateAvatarCommand{
		UserID: userID,
		Image:  image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, profile, "avatar updated")
}

// DeleteAccount soft-deletes the caller's account
// @Summary Delete own account
// @Tags Users
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /users/me [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.deleteAccountUseCase.Execute(c.Request.Context(), usecases.DeleteAccountCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("account deleted", "user_id", userID)
	utils.SuccessResponse(c, http.StatusOK, "account deleted", nil)
}

// LeaveClub detaches the caller from their club
// @Summary Leave club
// @Tags Users
// @Produce json
// @Security Bearer
// @Success 202 {object} utils.APIResponse
// @Router /users/leaveClub [put]
func (h *UserHandler) LeaveClub(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.leaveClubUseCase.Execute(c.Request.Context(), clubusecases.LeaveClubCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.AcceptedResponse(c, nil, "club left")
}

// ToggleFollow follows or unfollows a user
// @Summary Follow or unfollow user
// @Tags Users
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 201 {object} utils.APIResponse "Follow"
// @Success 202 {object} utils.APIResponse "Unfollow"
// @Failure 422 {object} utils.APIResponse
// @Router /users/{id}/followOrUnfollow [post]
func (h *UserHandler) ToggleFollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleFollowUseCase.Execute(c.Request.Context(), usecases.ToggleFollowUserCommand{
		FollowerID: userID,
		TargetID:   targetID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondToggle(c, result)
}

// ListFollowers lists the users following the given user
// @Summary List followers
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /users/{id}/followers [get]
func (h *UserHandler) ListFollowers(c *gin.Context) {
	h.listFollows(c, usecases.FollowDirectionFollowers)
}

// ListFollowing lists the users the given user follows
// @Summary List followed users
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /users/{id}/following [get]
func (h *UserHandler) ListFollowing(c *gin.Context) {
	h.listFollows(c, usecases.FollowDirectionFollowing)
}

func (h *UserHandler) listFollows(c *gin.Context, direction usecases.FollowDirection) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listFollowsUseCase.Execute(c.Request.Context(), usecases.ListFollowsQuery{
		UserID:    userID,
		Direction: direction,
		Page:      p.Page,
		PageSize:  p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}

// ListUsers lists platform users for moderation
// @Summary List users (admin)
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param search query string false "Email or name search"
// @Param role query string false "Role filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUsersUseCase.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		Search:   c.Query("search"),
		Role:     c.Query("role"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}
