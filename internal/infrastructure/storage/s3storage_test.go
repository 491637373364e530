package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type mockS3Client struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	headErr error
}

func newMockS3() *mockS3Client {
	return &mockS3Client{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *mockS3Client) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, _ := io.ReadAll(input.Body)
	m.objects[*input.Key] = data
	m.types[*input.Key] = *input.ContentType
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3Client) HeadObject(_ context.Context, input *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if m.headErr != nil {
		return nil, m.headErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[*input.Key]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (m *mockS3Client) DeleteObject(_ context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, *input.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage(t *testing.T) {
	client := newMockS3()
	store := newS3Storage(client, config.StorageConfig{
		Bucket:        "ridecrew",
		PublicBaseURL: "https://cdn.example.com/",
	}, logger.NewNopLogger())
	ctx := context.Background()

	exists, err := store.Exists(ctx, "avatars/a.png")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Store(ctx, "avatars/a.png", strings.NewReader("png"), 3, "image/png"))
	exists, err = store.Exists(ctx, "avatars/a.png")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "image/png", client.types["avatars/a.png"])

	assert.Equal(t, "https://cdn.example.com/avatars/a.png", store.URL("avatars/a.png"))
	assert.Empty(t, store.URL(""))

	require.NoError(t, store.Delete(ctx, "avatars/a.png"))
	exists, err = store.Exists(ctx, "avatars/a.png")
	require.NoError(t, err)
	assert.False(t, exists)

	client.headErr = errors.New("network down")
	_, err = store.Exists(ctx, "avatars/a.png")
	assert.Error(t, err)
}

func TestDisabledStorage(t *testing.T) {
	store := New(config.StorageConfig{}, logger.NewNopLogger())
	err := store.Store(context.Background(), "k", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, services.ErrStorageNotConfigured)
	assert.NoError(t, store.Delete(context.Background(), "k"))
}

func TestImageKey(t *testing.T) {
	key, err := ImageKey("posts", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "posts/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	_, err = ImageKey("posts", "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedContentType)
}
