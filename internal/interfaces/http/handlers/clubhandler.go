package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/application/club/dto"
	"github.com/ridecrew/ridecrew/internal/application/club/usecases"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

var _ = dto.ClubResponse{}

// ClubHandler serves the club directory and the membership workflow.
type ClubHandler struct {
	createUseCase        createClubUseCase
	updateUseCase        updateClubUseCase
	updateAvatarUseCase  updateClubAvatarUseCase
	getUseCase           getClubUseCase
	listUseCase          listClubsUseCase
	listMembersUseCase   listMembersUseCase
	deleteUseCase        deleteClubUseCase
	requestToJoinUseCase requestToJoinUseCase
	acceptUseCase        acceptRequestUseCase
	denyUseCase          denyRequestUseCase
	showRequestsUseCase  showJoinRequestsUseCase
	expelUseCase         expelMemberUseCase
	changeAdminUseCase   changeAdminUseCase
	toggleFollowUseCase  toggleFollowClubUseCase
	logger               logger.Interface
}

// ClubUseCases groups the use cases served by ClubHandler.
type ClubUseCases struct {
	Create        createClubUseCase
	Update        updateClubUseCase
	UpdateAvatar  updateClubAvatarUseCase
	Get           getClubUseCase
	List          listClubsUseCase
	ListMembers   listMembersUseCase
	Delete        deleteClubUseCase
	RequestToJoin requestToJoinUseCase
	Accept        acceptRequestUseCase
	Deny          denyRequestUseCase
	ShowRequests  showJoinRequestsUseCase
	Expel         expelMemberUseCase
	ChangeAdmin   changeAdminUseCase
	ToggleFollow  toggleFollowClubUseCase
}

func NewClubHandler(uc ClubUseCases, logger logger.Interface) *ClubHandler {
	return &ClubHandler{
		createUseCase:        uc.Create,
		updateUseCase:        uc.Update,
		updateAvatarUseCase:  uc.UpdateAvatar,
		getUseCase:           uc.Get,
		listUseCase:          uc.List,
		listMembersUseCase:   uc.ListMembers,
		deleteUseCase:        uc.Delete,
		requestToJoinUseCase: uc.RequestToJoin,
		acceptUseCase:        uc.Accept,
		denyUseCase:          uc.Deny,
		showRequestsUseCase:  uc.ShowRequests,
		expelUseCase:         uc.Expel,
		changeAdminUseCase:   uc.ChangeAdmin,
		toggleFollowUseCase:  uc.ToggleFollow,
		logger:               logger,
	}
}

type ClubRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=120"`
	OrganizationType string `json:"organization_type" binding:"required,oneof=association company informal"`
	Description      string `json:"description" binding:"max=2000"`
	Street           string `json:"street" binding:"max=200"`
	PostalCode       string `json:"postal_code" binding:"max=10"`
	City             string `json:"city" binding:"required,max=100"`
	Department       string `json:"department" binding:"required,department"`
}

func (r ClubRequest) toInput() usecases.ClubDetailsInput {
	return usecases.ClubDetailsInput{
		Name:             r.Name,
		OrganizationType: r.OrganizationType,
		Description:      r.Description,
		Street:           r.Street,
		PostalCode:       r.PostalCode,
		City:             r.City,
		Department:       r.Department,
	}
}

// ListClubs searches the club directory
// @Summary List clubs
// @Tags Clubs
// @Produce json
// @Param search query string false "Name or city, accents ignored"
// @Param department query string false "Department code"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListClubsQuery{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Search:     c.Query("search"),
		Department: c.Query("department"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Clubs, result.Total, p.Page, p.PageSize)
}

// CreateClub creates a club administered by the caller
// @Summary Create club
// @Description Requires the Premium 2 plan. The caller must not belong to a club.
// @Tags Clubs
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ClubRequest true "Club details"
// @Success 201 {object} utils.APIResponse{data=dto.ClubResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	club, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateClubCommand{
		CreatorID:        userID,
		ClubDetailsInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, club, "club created")
}

// GetClub returns a club with its counters
// @Summary Get club
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} utils.APIResponse{data=dto.ClubResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	clubID, err := utils.ParseIDParam(c, "id", "club")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	club, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetClubQuery{
		ClubID:   clubID,
		ViewerID: viewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", club)
}

// UpdateClub updates the club details
// @Summary Update club
// @Tags Clubs
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Param request body ClubRequest true "Club details"
// @Success 200 {object} utils.APIResponse{data=dto.ClubResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /clubs/{id} [put]
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	userID, clubID, ok := h.actorAndClub(c)
	if !ok {
		return
	}

	var req ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	club, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateClubCommand{
		ClubID:           clubID,
		ActorID:          userID,
		ClubDetailsInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "club updated", club)
}

// UpdateAvatar replaces the club avatar
// @Summary Upload club avatar
// @Tags Clubs
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Param avatar formData file true "Avatar image"
// @Success 201 {object} utils.APIResponse{data=dto.ClubResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /clubs/{id}/avatar [post]
func (h *ClubHandler) UpdateAvatar(c *gin.Context) {
	userID, clubID, ok := h.actorAndClub(c)
	if !ok {
		return
	}

	image, closeFn, err := imageFromForm(c, "avatar")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer closeFn()

	club, err := h.updateAvatarUseCase.Execute(c.Request.Context(), usecases.UpdateClubAvatarCommand{
		ClubID:  clubID,
		ActorID: userID,
		Image:   image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, club, "avatar updated")
}

// DeleteClub deletes the club and everything it owns
// @Summary Delete club
// @Tags Clubs
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /clubs/{id} [delete]
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	h.deleteClub(c, false)
}

// ModerateDeleteClub deletes a club on behalf of the platform
// @Summary Delete club (admin)
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admin/clubs/{id} [delete]
func (h *ClubHandler) ModerateDeleteClub(c *gin.Context) {
	h.deleteClub(c, true)
}

func (h *ClubHandler) deleteClub(c *gin.Context, moderation bool) {
	userID, clubID, ok := h.actorAndClub(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteClubCommand{
		ClubID:     clubID,
		ActorID:    userID,
		Moderation: moderation,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("club deleted", "club_id", clubID, "actor_id", userID, "moderation", moderation)
	utils.SuccessResponse(c, http.StatusOK, "club deleted", nil)
}

// ListMembers lists the members of a club
// @Summary List club members
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /clubs/{id}/members [get]
func (h *ClubHandler) ListMembers(c *gin.Context) {
	clubID, err := utils.ParseIDParam(c, "id", "club")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listMembersUseCase.Execute(c.Request.Context(), usecases.ListMembersQuery{
		ClubID:   clubID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Members, result.Total, p.Page, p.PageSize)
}

// RequestToJoin files a join request
// @Summary Request to join club
// @Tags Membership
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /clubs/{id}/requestToJoin [post]
func (h *ClubHandler) RequestToJoin(c *gin.Context) {
	userID, clubID, ok := h.actorAndClub(c)
	if !ok {
		return
	}

	if err := h.requestToJoinUseCase.Execute(c.Request.Context(), usecases.RequestToJoinCommand{
		ClubID: clubID,
		UserID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "join request sent")
}

// AcceptRequestToJoin accepts a pending request
// @Summary Accept join request
// @Description Returns the club's remaining pending requests.
// @Tags Membership
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Param request body UserIDRequest true "Requester"
// @Success 201 {object} utils.APIResponse{data=[]dto.JoinRequestResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /clubs/{id}/acceptRequestToJoin [post]
func (h *ClubHandler) AcceptRequestToJoin(c *gin.Context) {
	userID, clubID, req, ok := h.membershipAction(c)
	if !ok {
		return
	}

	pending, err := h.acceptUseCase.Execute(c.Request.Context(), usecases.AcceptRequestCommand{
		ClubID:  clubID,
		ActorID: userID,
		UserID:  req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, pending, "join request accepted")
}

// DenyRequestToJoin deletes a pending request
// @Summary Deny join request
// @Tags Membership
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Param request body UserIDRequest true "Requester"
// @Success 202 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /clubs/{id}/denyRequestToJoin [delete]
func (h *ClubHandler) DenyRequestToJoin(c *gin.Context) {
	userID, clubID, req, ok := h.membershipAction(c)
	if !ok {
		return
	}

	if err := h.denyUseCase.Execute(c.Request.Context(), usecases.DenyRequestCommand{
		ClubID:  clubID,
		ActorID: userID,
		UserID:  req.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.AcceptedResponse(c, nil, "join request denied")
}

// ShowJoinRequests lists the pending requests of a club
// @Summary Show join requests
// @Tags Membership
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.JoinRequestResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /clubs/{id}/showJoinRequests [get]
func (h *ClubHandler) ShowJoinRequests(c *gin.Context) {
	userID, clubID, ok := h.actorAndClub(c)
	if !ok {
		return
	}

	pending, err := h.showRequestsUseCase.Execute(c.Request.Context(), usecases.ShowJoinRequestsQuery{
		ClubID:  clubID,
		ActorID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", pending)
}

// ExpelMember removes a member from the club
// @Summary Expel member
// @Tags Membership
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Param request body UserIDRequest true "Member"
// @Success 202 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /clubs/{id}/expel [post]
func (h *ClubHandler) ExpelMember(c *gin.Context) {
	userID, clubID, req, ok := h.membershipAction(c)
	if !ok {
		return
	}

	if err := h.expelUseCase.Execute(c.Request.Context(), usecases.ExpelMemberCommand{
		ClubID:  clubID,
		ActorID: userID,
		UserID:  req.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.AcceptedResponse(c, nil, "member expelled")
}

// ChangeAdmin hands the club administration to another member
// @Summary Change club admin
// @Tags Membership
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Param request body UserIDRequest true "New admin"
// @Success 201 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /clubs/{id}/changeAdmin [post]
func (h *ClubHandler) ChangeAdmin(c *gin.Context) {
	userID, clubID, req, ok := h.membershipAction(c)
	if !ok {
		return
	}

	if err := h.changeAdminUseCase.Execute(c.Request.Context(), usecases.ChangeAdminCommand{
		ClubID:  clubID,
		ActorID: userID,
		UserID:  req.UserID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "club admin changed")
}

// ToggleFollow follows or unfollows a club
// @Summary Follow or unfollow club
// @Tags Clubs
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Success 201 {object} utils.APIResponse "Follow"
// @Success 202 {object} utils.APIResponse "Unfollow"
// @Router /clubs/{id}/followOrUnfollow [post]
func (h *ClubHandler) ToggleFollow(c *gin.Context) {
	userID, clubID, ok := h.actorAndClub(c)
	if !ok {
		return
	}

	result, err := h.toggleFollowUseCase.Execute(c.Request.Context(), usecases.ToggleFollowClubCommand{
		ClubID: clubID,
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondToggle(c, result)
}

func (h *ClubHandler) actorAndClub(c *gin.Context) (uint, uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return 0, 0, false
	}
	clubID, err := utils.ParseIDParam(c, "id", "club")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, 0, false
	}
	return userID, clubID, true
}

func (h *ClubHandler) membershipAction(c *gin.Context) (uint, uint, UserIDRequest, bool) {
	var req UserIDRequest
	userID, clubID, ok := h.actorAndClub(c)
	if !ok {
		return 0, 0, req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return 0, 0, req, false
	}
	return userID, clubID, req, true
}
