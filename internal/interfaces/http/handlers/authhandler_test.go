package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/application/user/usecases"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers/testutil"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result *dto.ProfileResponse
	err    error
	cmd    usecases.RegisterCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.ProfileResponse, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	return m.result, m.err
}

type mockLogoutUC struct {
	err       error
	sessionID string
}

func (m *mockLogoutUC) Execute(ctx context.Context, cmd usecases.LogoutCommand) error {
	m.sessionID = cmd.SessionID
	return m.err
}

type mockGetCurrentUserUC struct {
	result *dto.CurrentUserResponse
	err    error
}

func (m *mockGetCurrentUserUC) Execute(ctx context.Context, query usecases.GetCurrentUserQuery) (*dto.CurrentUserResponse, error) {
	return m.result, m.err
}

func newTestAuthHandler(reg registerUseCase, login loginUseCase, logout logoutUseCase, me getCurrentUserUseCase) *AuthHandler {
	return NewAuthHandler(reg, login, logout, me, false, testutil.NewMockLogger())
}

// =====================================================================
// Register
// =====================================================================

func TestAuthHandler_Register_Success(t *testing.T) {
	mockUC := &mockRegisterUC{result: &dto.ProfileResponse{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}
	handler := newTestAuthHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Email:     "ada@example.com",
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ada@example.com", mockUC.cmd.Email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAuthHandler_Register_ValidationFields(t *testing.T) {
	handler := newTestAuthHandler(&mockRegisterUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"email":      "not-an-email",
		"password":   "short",
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "email")
	assert.Contains(t, resp.Error.Fields, "password")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler := newTestAuthHandler(&mockRegisterUC{err: errors.NewConflictError("email already registered")}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", RegisterRequest{
		Email:     "ada@example.com",
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// Login / Logout / Me
// =====================================================================

func TestAuthHandler_Login_SetsCookieWhenRequested(t *testing.T) {
	mockUC := &mockLoginUC{result: &usecases.LoginResult{
		AccessToken: "token-value",
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        &dto.CurrentUserResponse{ID: 1, Email: "ada@example.com"},
	}}
	handler := newTestAuthHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:     "ada@example.com",
		Password:  "correct-horse",
		UseCookie: true,
	})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(cookie, constants.AccessTokenCookie+"=token-value"), cookie)
	assert.Contains(t, cookie, "HttpOnly")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := newTestAuthHandler(nil, &mockLoginUC{err: errors.NewUnauthorizedError("invalid email or password")}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestAuthHandler_Logout_RevokesContextSession(t *testing.T) {
	mockUC := &mockLogoutUC{}
	handler := newTestAuthHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)
	testutil.SetAuthContext(c, 1)

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-session-id", mockUC.sessionID)
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, nil, &mockGetCurrentUserUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me_IncludesPremiumAttributes(t *testing.T) {
	handler := newTestAuthHandler(nil, nil, nil, &mockGetCurrentUserUC{result: &dto.CurrentUserResponse{
		ID:             1,
		PlanName:       "Premium 2",
		PremiumActive:  false,
		PremiumLapsing: true,
	}})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
	testutil.SetAuthContext(c, 1)

	handler.Me(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"plan_name":"Premium 2"`)
	assert.Contains(t, string(resp.Data), `"premium_lapsing":true`)
}
