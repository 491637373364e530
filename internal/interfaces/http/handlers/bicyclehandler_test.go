package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridecrew/ridecrew/internal/application/bicycle/dto"
	"github.com/ridecrew/ridecrew/internal/application/bicycle/usecases"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers/testutil"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

type mockCreateBicycleUC struct {
	result *dto.BicycleResponse
	err    error
	cmd    usecases.CreateBicycleCommand
}

func (m *mockCreateBicycleUC) Execute(ctx context.Context, cmd usecases.CreateBicycleCommand) (*dto.BicycleResponse, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateBicycleUC struct {
	result *dto.BicycleResponse
	err    error
	cmd    usecases.UpdateBicycleCommand
}

func (m *mockUpdateBicycleUC) Execute(ctx context.Context, cmd usecases.UpdateBicycleCommand) (*dto.BicycleResponse, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteBicycleUC struct {
	err error
	cmd usecases.DeleteBicycleCommand
}

func (m *mockDeleteBicycleUC) Execute(ctx context.Context, cmd usecases.DeleteBicycleCommand) error {
	m.cmd = cmd
	return m.err
}

type mockListBicyclesUC struct {
	result []*dto.BicycleResponse
	query  usecases.ListBicyclesQuery
}

func (m *mockListBicyclesUC) Execute(ctx context.Context, query usecases.ListBicyclesQuery) ([]*dto.BicycleResponse, error) {
	m.query = query
	return m.result, nil
}

type mockUpdateBicyclePhotoUC struct {
	result *dto.BicycleResponse
	cmd    usecases.UpdateBicyclePhotoCommand
}

func (m *mockUpdateBicyclePhotoUC) Execute(ctx context.Context, cmd usecases.UpdateBicyclePhotoCommand) (*dto.BicycleResponse, error) {
	m.cmd = cmd
	return m.result, nil
}

func validBicycleRequest() BicycleRequest {
	return BicycleRequest{Name: "Daily", Brand: "Canyon", Kind: "gravel", Year: 2023}
}

func TestBicycleHandler_Create_Success(t *testing.T) {
	create := &mockCreateBicycleUC{result: &dto.BicycleResponse{ID: 1, Name: "Daily"}}
	handler := NewBicycleHandler(create, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/bicycles", validBicycleRequest())
	testutil.SetAuthContext(c, 6)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(6), create.cmd.OwnerID)
	assert.Equal(t, "gravel", create.cmd.Kind)
}

func TestBicycleHandler_Create_InvalidKind(t *testing.T) {
	create := &mockCreateBicycleUC{}
	handler := NewBicycleHandler(create, nil, nil, nil, nil, testutil.NewMockLogger())

	req := validBicycleRequest()
	req.Kind = "tandem"
	c, w := testutil.NewTestContext(http.MethodPost, "/bicycles", req)
	testutil.SetAuthContext(c, 6)

	handler.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, create.cmd.OwnerID, "use case must not run")
}

func TestBicycleHandler_Update_NotOwner(t *testing.T) {
	update := &mockUpdateBicycleUC{err: errors.NewForbiddenError("bicycle belongs to another user")}
	handler := NewBicycleHandler(nil, update, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/bicycles/2", validBicycleRequest())
	testutil.SetURLParam(c, "id", "2")
	testutil.SetAuthContext(c, 6)

	handler.Update(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, uint(2), update.cmd.BicycleID)
	assert.Equal(t, uint(6), update.cmd.ActorID)
}

func TestBicycleHandler_Delete(t *testing.T) {
	del := &mockDeleteBicycleUC{}
	handler := NewBicycleHandler(nil, nil, del, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/bicycles/2", nil)
	testutil.SetURLParam(c, "id", "2")
	testutil.SetAuthContext(c, 6)

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), del.cmd.BicycleID)
}

func TestBicycleHandler_ListByUser(t *testing.T) {
	list := &mockListBicyclesUC{result: []*dto.BicycleResponse{{ID: 1}}}
	handler := NewBicycleHandler(nil, nil, nil, list, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/users/11/bicycles", nil)
	testutil.SetURLParam(c, "id", "11")

	handler.ListByUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(11), list.query.OwnerID)
}

func TestBicycleHandler_ListMine_Unauthenticated(t *testing.T) {
	handler := NewBicycleHandler(nil, nil, nil, &mockListBicyclesUC{}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/bicycles", nil)

	handler.ListMine(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBicycleHandler_UpdatePhoto(t *testing.T) {
	photo := &mockUpdateBicyclePhotoUC{result: &dto.BicycleResponse{ID: 2, PhotoURL: "https://cdn.example.com/bicycles/x.png"}}
	handler := NewBicycleHandler(nil, nil, nil, nil, photo, testutil.NewMockLogger())

	c, w := testutil.NewMultipartContext(http.MethodPost, "/bicycles/2/photo", "photo", nil, pngHeader)
	testutil.SetURLParam(c, "id", "2")
	testutil.SetAuthContext(c, 6)

	handler.UpdatePhoto(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "image/png", photo.cmd.Image.ContentType)
}

func TestBicycleHandler_UpdatePhoto_MissingFile(t *testing.T) {
	handler := NewBicycleHandler(nil, nil, nil, nil, &mockUpdateBicyclePhotoUC{}, testutil.NewMockLogger())

	c, w := testutil.NewMultipartContext(http.MethodPost, "/bicycles/2/photo", "photo", map[string]string{"note": "x"})
	testutil.SetURLParam(c, "id", "2")
	testutil.SetAuthContext(c, 6)

	handler.UpdatePhoto(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
