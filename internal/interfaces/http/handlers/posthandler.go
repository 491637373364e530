package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/application/feed/dto"
	"github.com/ridecrew/ridecrew/internal/application/feed/usecases"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

var _ = dto.PostResponse{}

const postImagesField = "images[]"

// PostHandler serves the social feed.
type PostHandler struct {
	createUseCase        createPostUseCase
	deleteUseCase        deletePostUseCase
	getUseCase           getPostUseCase
	timelineUseCase      getTimelineUseCase
	listClubPostsUseCase listClubPostsUseCase
	listUserPostsUseCase listUserPostsUseCase
	addCommentUseCase    addCommentUseCase
	deleteCommentUseCase deleteCommentUseCase
	toggleLikeUseCase    toggleLikeUseCase
	logger               logger.Interface
}

// PostUseCases groups the use cases served by PostHandler.
type PostUseCases struct {
	Create        createPostUseCase
	Delete        deletePostUseCase
	Get           getPostUseCase
	Timeline      getTimelineUseCase
	ListClubPosts listClubPostsUseCase
	ListUserPosts listUserPostsUseCase
	AddComment    addCommentUseCase
	DeleteComment deleteCommentUseCase
	ToggleLike    toggleLikeUseCase
}

func NewPostHandler(uc PostUseCases, logger logger.Interface) *PostHandler {
	return &PostHandler{
		createUseCase:        uc.Create,
		deleteUseCase:        uc.Delete,
		getUseCase:           uc.Get,
		timelineUseCase:      uc.Timeline,
		listClubPostsUseCase: uc.ListClubPosts,
		listUserPostsUseCase: uc.ListUserPosts,
		addCommentUseCase:    uc.AddComment,
		deleteCommentUseCase: uc.DeleteComment,
		toggleLikeUseCase:    uc.ToggleLike,
		logger:               logger,
	}
}

type PostRequest struct {
	Content string `json:"content" form:"content" binding:"required"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// GetTimeline returns the caller's feed
// @Summary Timeline
// @Description Own posts, posts of followed users, followed clubs and the caller's club, newest first.
// @Tags Feed
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /feed [get]
func (h *PostHandler) GetTimeline(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.timelineUseCase.Execute(c.Request.Context(), usecases.TimelineQuery{
		UserID:   userID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Posts, result.Total, p.Page, p.PageSize)
}

// CreatePost publishes a post as the caller
// @Summary Create post
// @Description Markdown content with up to 4 images, sent as JSON or multipart.
// @Tags Feed
// @Accept json,multipart/form-data
// @Produce json
// @Security Bearer
// @Param content formData string true "Markdown content"
// @Param images[] formData file false "Images"
// @Success 201 {object} utils.APIResponse{data=dto.PostResponse}
// @Failure 422 {object} utils.APIResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.createPost(c, userID, nil)
}

// CreateClubPost publishes a post in the name of a club
// @Summary Create club post
// @Tags Feed
// @Accept json,multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "Club ID"
// @Param content formData string true "Markdown content"
// @Param images[] formData file false "Images"
// @Success 201 {object} utils.APIResponse{data=dto.PostResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /clubs/{id}/posts [post]
func (h *PostHandler) CreateClubPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	clubID, err := utils.ParseIDParam(c, "id", "club")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.createPost(c, userID, &clubID)
}

func (h *PostHandler) createPost(c *gin.Context, userID uint, clubID *uint) {
	var req PostRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	var images []common.ImageUpload
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		uploads, closeFn, err := imagesFromForm(c, postImagesField, constants.MaxPostImages)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		defer closeFn()
		images = uploads
	}

	post, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreatePostCommand{
		AuthorID: userID,
		ClubID:   clubID,
		Content:  req.Content,
		Images:   images,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, post, "post created")
}

// GetPost returns a post with its comments
// @Summary Get post
// @Tags Feed
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.APIResponse{data=dto.PostResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := utils.ParseIDParam(c, "id", "post")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	post, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetPostQuery{
		PostID:   postID,
		ViewerID: viewerID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", post)
}

// DeletePost deletes a post
// @Summary Delete post
// @Description Allowed to the author and, for club posts, the club admin.
// @Tags Feed
// @Produce json
// @Security Bearer
// @Param id path int true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	h.deletePost(c, false)
}

// ModerateDeletePost deletes a post on behalf of the platform
// @Summary Delete post (admin)
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param id path int true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/posts/{id} [delete]
func (h *PostHandler) ModerateDeletePost(c *gin.Context) {
	h.deletePost(c, true)
}

func (h *PostHandler) deletePost(c *gin.Context, moderation bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, err := utils.ParseIDParam(c, "id", "post")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeletePostCommand{
		PostID:     postID,
		ActorID:    userID,
		Moderation: moderation,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "post deleted", nil)
}

// AddComment comments a post
// @Summary Add comment
// @Tags Feed
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Post ID"
// @Param request body CommentRequest true "Comment"
// @Success 201 {object} utils.APIResponse{data=dto.CommentResponse}
// @Router /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, err := utils.ParseIDParam(c, "id", "post")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	comment, err := h.addCommentUseCase.Execute(c.Request.Context(), usecases.AddCommentCommand{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, comment, "comment added")
}

// DeleteComment deletes a comment
// @Summary Delete comment
// @Description Allowed to the comment author and the post author.
// @Tags Feed
// @Produce json
// @Security Bearer
// @Param id path int true "Post ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /posts/{id}/comments/{commentId} [delete]
func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, err := utils.ParseIDParam(c, "id", "post")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	commentID, err := utils.ParseIDParam(c, "commentId", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCommentUseCase.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		PostID:    postID,
		CommentID: commentID,
		ActorID:   userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "comment deleted", nil)
}

// ToggleLike likes or unlikes a post
// @Summary Like or unlike post
// @Tags Feed
// @Produce json
// @Security Bearer
// @Param id path int true "Post ID"
// @Success 201 {object} utils.APIResponse "Like"
// @Success 202 {object} utils.APIResponse "Unlike"
// @Router /posts/{id}/likeOrUnlike [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, err := utils.ParseIDParam(c, "id", "post")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleLikeUseCase.Execute(c.Request.Context(), usecases.ToggleLikeCommand{
		PostID: postID,
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondToggle(c, result)
}

// ListClubPosts lists the posts published as a club
// @Summary List club posts
// @Tags Feed
// @Produce json
// @Param id path int true "Club ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /clubs/{id}/posts [get]
func (h *PostHandler) ListClubPosts(c *gin.Context) {
	clubID, err := utils.ParseIDParam(c, "id", "club")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listClubPostsUseCase.Execute(c.Request.Context(), usecases.ListClubPostsQuery{
		ClubID:   clubID,
		ViewerID: viewerID(c),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Posts, result.Total, p.Page, p.PageSize)
}

// ListUserPosts lists the posts authored by a user
// @Summary List user posts
// @Tags Feed
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /users/{id}/posts [get]
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listUserPostsUseCase.Execute(c.Request.Context(), usecases.ListUserPostsQuery{
		UserID:   userID,
		ViewerID: viewerID(c),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Posts, result.Total, p.Page, p.PageSize)
}
