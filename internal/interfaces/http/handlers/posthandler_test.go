package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/application/feed/dto"
	"github.com/ridecrew/ridecrew/internal/application/feed/usecases"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers/testutil"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type mockCreatePostUC struct {
	result     *dto.PostResponse
	err        error
	cmd        usecases.CreatePostCommand
	imageTypes []string
}

func (m *mockCreatePostUC) Execute(ctx context.Context, cmd usecases.CreatePostCommand) (*dto.PostResponse, error) {
	m.cmd = cmd
	for _, img := range cmd.Images {
		m.imageTypes = append(m.imageTypes, img.ContentType)
		_, _ = io.Copy(io.Discard, img.Body)
	}
	return m.result, m.err
}

type mockTimelineUC struct {
	result *usecases.ListPostsResult
	query  usecases.TimelineQuery
}

func (m *mockTimelineUC) Execute(ctx context.Context, query usecases.TimelineQuery) (*usecases.ListPostsResult, error) {
	m.query = query
	return m.result, nil
}

func TestPostHandler_CreatePost_JSON(t *testing.T) {
	mockUC := &mockCreatePostUC{result: &dto.PostResponse{ID: 1, Content: "hello"}}
	handler := NewPostHandler(PostUseCases{Create: mockUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/posts", PostRequest{Content: "hello"})
	testutil.SetAuthContext(c, 4)

	handler.CreatePost(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(4), mockUC.cmd.AuthorID)
	assert.Nil(t, mockUC.cmd.ClubID)
	assert.Empty(t, mockUC.cmd.Images)
}

func TestPostHandler_CreatePost_MultipartImages(t *testing.T) {
	mockUC := &mockCreatePostUC{result: &dto.PostResponse{ID: 1}}
	handler := NewPostHandler(PostUseCases{Create: mockUC}, testutil.NewMockLogger())

	c, w := testutil.NewMultipartContext(http.MethodPost, "/posts", postImagesField,
		map[string]string{"content": "ride report"}, pngHeader, pngHeader)
	testutil.SetAuthContext(c, 4)

	handler.CreatePost(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ride report", mockUC.cmd.Content)
	assert.Equal(t, []string{"image/png", "image/png"}, mockUC.imageTypes)
}

func TestPostHandler_CreatePost_TooManyImages(t *testing.T) {
	mockUC := &mockCreatePostUC{}
	handler := NewPostHandler(PostUseCases{Create: mockUC}, testutil.NewMockLogger())

	c, w := testutil.NewMultipartContext(http.MethodPost, "/posts", postImagesField,
		map[string]string{"content": "too many"}, pngHeader, pngHeader, pngHeader, pngHeader, pngHeader)
	testutil.SetAuthContext(c, 4)

	handler.CreatePost(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, mockUC.cmd.Content)
}

func TestPostHandler_CreateClubPost_PassesClub(t *testing.T) {
	mockUC := &mockCreatePostUC{result: &dto.PostResponse{ID: 1}}
	handler := NewPostHandler(PostUseCases{Create: mockUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/clubs/9/posts", PostRequest{Content: "club news"})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "9")

	handler.CreateClubPost(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.cmd.ClubID)
	assert.Equal(t, uint(9), *mockUC.cmd.ClubID)
}

func TestPostHandler_GetTimeline_Paginates(t *testing.T) {
	mockUC := &mockTimelineUC{result: &usecases.ListPostsResult{Posts: []*dto.PostResponse{{ID: 2}, {ID: 1}}, Total: 12}}
	handler := NewPostHandler(PostUseCases{Timeline: mockUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/feed", nil)
	testutil.SetAuthContext(c, 4)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "5"})

	handler.GetTimeline(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.TimelineQuery{UserID: 4, Page: 2, PageSize: 5}, mockUC.query)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(12), list.Total)
	assert.Equal(t, 3, list.TotalPages)
}
