package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/biztime"
)

const MaxContentLength = 5000

// Post is authored by a user. When clubID is set the post is published in the
// name of that club by one of its admins.
type Post struct {
	id           uint
	authorUserID uint
	clubID       *uint
	content      string
	contentHTML  string
	images       []string
	createdAt    time.Time
}

func newPost(authorUserID uint, clubID *uint, content, contentHTML string) (*Post, error) {
	if authorUserID == 0 {
		return nil, fmt.Errorf("author is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len([]rune(content)) > MaxContentLength {
		return nil, ErrContentTooLong
	}
	return &Post{
		authorUserID: authorUserID,
		clubID:       clubID,
		content:      content,
		contentHTML:  contentHTML,
		createdAt:    biztime.NowUTC(),
	}, nil
}

// NewUserPost creates a post on the author's own wall.
func NewUserPost(authorUserID uint, content, contentHTML string) (*Post, error) {
	return newPost(authorUserID, nil, content, contentHTML)
}

// NewClubPost creates a post published as the club.
func NewClubPost(authorUserID, clubID uint, content, contentHTML string) (*Post, error) {
	id := clubID
	return newPost(authorUserID, &id, content, contentHTML)
}

func ReconstructPost(id, authorUserID uint, clubID *uint, content, contentHTML string, images []string, createdAt time.Time) *Post {
	return &Post{
		id:           id,
		authorUserID: authorUserID,
		clubID:       clubID,
		content:      content,
		contentHTML:  contentHTML,
		images:       images,
		createdAt:    createdAt,
	}
}

func (p *Post) ID() uint { return p.id }
func (p *Post) AuthorUserID() uint { return p.authorUserID }
func (p *Post) ClubID() *uint { return p.clubID }
func (p *Post) Content() string { return p.content }
func (p *Post) ContentHTML() string { return p.contentHTML }
func (p *Post) Images() []string { return p.images }
func (p *Post) CreatedAt() time.Time { return p.createdAt }

func (p *Post) SetID(id uint) { p.id = id }

func (p *Post) IsClubPost() bool { return p.clubID != nil }

// AttachImage records a stored image path.
func (p *Post) AttachImage(path string) {
	p.images = append(p.images, path)
}

// CanBeDeletedBy reports whether actor may delete the post. isAdminOfPostClub is
// true when actor administers the club the post was published for.
func (p *Post) CanBeDeletedBy(actorID uint, isAdminOfPostClub bool) bool {
	if p.IsClubPost() {
		return isAdminOfPostClub || p.authorUserID == actorID
	}
	return p.authorUserID == actorID
}
