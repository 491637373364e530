package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserPost(t *testing.T) {
	p, err := NewUserPost(1, "  Sortie au Ventoux  ", "<p>Sortie au Ventoux</p>")
	require.NoError(t, err)

	assert.Equal(t, "Sortie au Ventoux", p.Content())
	assert.False(t, p.IsClubPost())
	assert.Nil(t, p.ClubID())
}

func TestNewPost_Validation(t *testing.T) {
	_, err := NewUserPost(1, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = NewUserPost(1, strings.Repeat("a", MaxContentLength+1), "")
	assert.ErrorIs(t, err, ErrContentTooLong)

	_, err = NewUserPost(0, "hello", "")
	assert.Error(t, err)
}

func TestPostCanBeDeletedBy(t *testing.T) {
	userPost, err := NewUserPost(1, "hello", "")
	require.NoError(t, err)
	assert.True(t, userPost.CanBeDeletedBy(1, false))
	assert.False(t, userPost.CanBeDeletedBy(2, true))

	clubPost, err := NewClubPost(1, 5, "club news", "")
	require.NoError(t, err)
	assert.True(t, clubPost.IsClubPost())
	assert.True(t, clubPost.CanBeDeletedBy(2, true), "current club admin may delete")
	assert.True(t, clubPost.CanBeDeletedBy(1, false), "original author may delete")
	assert.False(t, clubPost.CanBeDeletedBy(3, false))
}

func TestCommentCanBeDeletedBy(t *testing.T) {
	c, err := NewComment(10, 2, "nice", "")
	require.NoError(t, err)

	assert.True(t, c.CanBeDeletedBy(2, 1))
	assert.True(t, c.CanBeDeletedBy(1, 1))
	assert.False(t, c.CanBeDeletedBy(3, 1))

	_, err = NewComment(10, 2, "", "")
	assert.ErrorIs(t, err, ErrEmptyContent)
}
