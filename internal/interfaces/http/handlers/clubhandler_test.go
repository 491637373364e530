package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/application/club/dto"
	"github.com/ridecrew/ridecrew/internal/application/club/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers/testutil"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateClubUC struct {
	result *dto.ClubResponse
	err    error
	cmd    usecases.CreateClubCommand
}

func (m *mockCreateClubUC) Execute(ctx context.Context, cmd usecases.CreateClubCommand) (*dto.ClubResponse, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockAcceptRequestUC struct {
	result []*dto.JoinRequestResponse
	err    error
	cmd    usecases.AcceptRequestCommand
}

func (m *mockAcceptRequestUC) Execute(ctx context.Context, cmd usecases.AcceptRequestCommand) ([]*dto.JoinRequestResponse, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDenyRequestUC struct {
	err error
}

func (m *mockDenyRequestUC) Execute(ctx context.Context, cmd usecases.DenyRequestCommand) error {
	return m.err
}

type mockChangeAdminUC struct {
	err error
}

func (m *mockChangeAdminUC) Execute(ctx context.Context, cmd usecases.ChangeAdminCommand) error {
	return m.err
}

type mockToggleFollowClubUC struct {
	result *shared.ToggleResult
	err    error
}

func (m *mockToggleFollowClubUC) Execute(ctx context.Context, cmd usecases.ToggleFollowClubCommand) (*shared.ToggleResult, error) {
	return m.result, m.err
}

type mockDeleteClubUC struct {
	err error
	cmd usecases.DeleteClubCommand
}

func (m *mockDeleteClubUC) Execute(ctx context.Context, cmd usecases.DeleteClubCommand) error {
	m.cmd = cmd
	return m.err
}

func validClubRequest() ClubRequest {
	return ClubRequest{
		Name:             "Les Rouleurs",
		OrganizationType: "association",
		City:             "Paris",
		Department:       "75",
	}
}

// =====================================================================
// Tests
// =====================================================================

func TestClubHandler_CreateClub_Success(t *testing.T) {
	mockUC := &mockCreateClubUC{result: &dto.ClubResponse{ID: 3, Name: "Les Rouleurs", IsAdmin: true}}
	handler := NewClubHandler(ClubUseCases{Create: mockUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/clubs", validClubRequest())
	testutil.SetAuthContext(c, 7)

	handler.CreateClub(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), mockUC.cmd.CreatorID)
	assert.Equal(t, "75", mockUC.cmd.Department)
}

func TestClubHandler_CreateClub_UnknownDepartment(t *testing.T) {
	handler := NewClubHandler(ClubUseCases{Create: &mockCreateClubUC{}}, testutil.NewMockLogger())

	req := validClubRequest()
	req.Department = "XX"
	c, w := testutil.NewTestContext(http.MethodPost, "/clubs", req)
	testutil.SetAuthContext(c, 7)

	handler.CreateClub(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "department")
}

func TestClubHandler_CreateClub_AlreadyAffiliated(t *testing.T) {
	handler := NewClubHandler(ClubUseCases{
		Create: &mockCreateClubUC{err: errors.NewConflictError("you already belong to a club")},
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/clubs", validClubRequest())
	testutil.SetAuthContext(c, 7)

	handler.CreateClub(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClubHandler_AcceptRequestToJoin_Success(t *testing.T) {
	mockUC := &mockAcceptRequestUC{result: []*dto.JoinRequestResponse{}}
	handler := NewClubHandler(ClubUseCases{Accept: mockUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/clubs/3/acceptRequestToJoin", UserIDRequest{UserID: 12})
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.AcceptRequestToJoin(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.AcceptRequestCommand{ClubID: 3, ActorID: 7, UserID: 12}, mockUC.cmd)
}

func TestClubHandler_AcceptRequestToJoin_MissingUserID(t *testing.T) {
	handler := NewClubHandler(ClubUseCases{Accept: &mockAcceptRequestUC{}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/clubs/3/acceptRequestToJoin", map[string]any{})
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.AcceptRequestToJoin(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestClubHandler_AcceptRequestToJoin_AlreadyAffiliated(t *testing.T) {
	handler := NewClubHandler(ClubUseCases{
		Accept: &mockAcceptRequestUC{err: errors.NewConflictError("user already belongs to a club")},
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/clubs/3/acceptRequestToJoin", UserIDRequest{UserID: 12})
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.AcceptRequestToJoin(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClubHandler_DenyRequestToJoin_Accepted(t *testing.T) {
	handler := NewClubHandler(ClubUseCases{Deny: &mockDenyRequestUC{}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/clubs/3/denyRequestToJoin", UserIDRequest{UserID: 12})
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.DenyRequestToJoin(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestClubHandler_ChangeAdmin_NonMember(t *testing.T) {
	handler := NewClubHandler(ClubUseCases{
		ChangeAdmin: &mockChangeAdminUC{err: errors.NewValidationError("user is not a member of this club")},
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/clubs/3/changeAdmin", UserIDRequest{UserID: 99})
	testutil.SetAuthContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.ChangeAdmin(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestClubHandler_ToggleFollow_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		result shared.ToggleResult
		want   int
	}{
		{"follow", shared.ToggleResult{Action: shared.ActionFollow, Active: true}, http.StatusCreated},
		{"unfollow", shared.ToggleResult{Action: shared.ActionUnfollow, Active: false}, http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.result
			handler := NewClubHandler(ClubUseCases{ToggleFollow: &mockToggleFollowClubUC{result: &result}}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/clubs/3/followOrUnfollow", nil)
			testutil.SetAuthContext(c, 7)
			testutil.SetURLParam(c, "id", "3")

			handler.ToggleFollow(c)

			assert.Equal(t, tt.want, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, string(tt.result.Action), resp.Message)
		})
	}
}

func TestClubHandler_ModerateDeleteClub_SetsModeration(t *testing.T) {
	mockUC := &mockDeleteClubUC{}
	handler := NewClubHandler(ClubUseCases{Delete: mockUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/admin/clubs/3", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "3")

	handler.ModerateDeleteClub(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.cmd.Moderation)
	assert.Equal(t, uint(3), mockUC.cmd.ClubID)
}

func TestClubHandler_GetClub_InvalidID(t *testing.T) {
	handler := NewClubHandler(ClubUseCases{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/clubs/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetClub(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
