package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/application/user/usecases"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase       registerUseCase
	loginUseCase          loginUseCase
	logoutUseCase         logoutUseCase
	getCurrentUserUseCase getCurrentUserUseCase
	secureCookies         bool
	logger                logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	logoutUC logoutUseCase,
	getCurrentUserUC getCurrentUserUseCase,
	secureCookies bool,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:       registerUC,
		loginUseCase:          loginUC,
		logoutUseCase:         logoutUC,
		getCurrentUserUseCase: getCurrentUserUC,
		secureCookies:         secureCookies,
		logger:                logger,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// UseCookie additionally stores the access token in an HttpOnly cookie.
	UseCookie bool `json:"use_cookie"`
}

type LoginResponse struct {
	AccessToken string                   `json:"access_token"`
	TokenType   string                   `json:"token_type"`
	ExpiresAt   time.Time                `json:"expires_at"`
	User        *dto.CurrentUserResponse `json:"user"`
}

// Register creates an account
// @Summary Register
// @Description Create a user account with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} utils.APIResponse{data=dto.ProfileResponse}
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	profile, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, profile, "registration successful")
}

// Login authenticates with email and password
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=LoginResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnw("login failed", "email", utils.MaskEmail(req.Email), "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	if req.UseCookie {
		maxAge := int(time.Until(result.ExpiresAt).Seconds())
		utils.SetAccessTokenCookie(c, result.AccessToken, maxAge, h.secureCookies)
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   result.ExpiresAt,
		User:        result.User,
	})
}

// Logout revokes the current session
// @Summary Logout
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)
	if sessionID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAccessTokenCookie(c, h.secureCookies)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

// Me returns the authenticated user with the computed premium attributes
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.CurrentUserResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	current, err := h.getCurrentUserUseCase.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", current)
}
