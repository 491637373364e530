package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ridecrew/ridecrew/internal/shared/biztime"
)

// Session backs an access token. Logout revokes the session, which invalidates
// every token issued for it.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, ttl time.Duration) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := biztime.NowUTC()
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

// IsActive reports whether the session is neither expired nor revoked.
func (s *Session) IsActive() bool {
	return s.RevokedAt == nil && biztime.NowUTC().Before(s.ExpiresAt)
}

func (s *Session) Revoke() {
	if s.RevokedAt == nil {
		now := biztime.NowUTC()
		s.RevokedAt = &now
	}
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Revoke(ctx context.Context, sessionID string) error
	RevokeAllForUser(ctx context.Context, userID uint) error
	// DeleteExpired removes expired or revoked sessions and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
