package usecases

import (
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/authorization"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens bound to a session.
type TokenIssuer interface {
	Generate(userID uint, sessionID string, role authorization.UserRole, sessionExpiresAt time.Time) (string, time.Time, error)
}
