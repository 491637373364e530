package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create inserts the user and assigns its ID
	Create(ctx context.Context, user *User) error

	// GetByID returns ErrUserNotFound when no live user has the id
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs returns users keyed by ID; missing ids are skipped
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update persists every mutable attribute, including membership columns
	Update(ctx context.Context, user *User) error

	// Delete soft deletes a user
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// ListByClub returns the members of a club, admin first
	ListByClub(ctx context.Context, clubID uint, page, pageSize int) ([]*User, int64, error)

	// ListClubAdmins returns the admin-flagged members of a club
	ListClubAdmins(ctx context.Context, clubID uint) ([]*User, error)

	// CountByClub returns the number of members of a club
	CountByClub(ctx context.Context, clubID uint) (int64, error)

	// AttachToClubIfUnaffiliated sets club_id only when it is still NULL.
	// It reports false when the user already belonged to a club.
	AttachToClubIfUnaffiliated(ctx context.Context, userID, clubID uint) (bool, error)

	// DetachFromClub clears club_id and the admin flag when the user is a member
	// of clubID. It reports false when the user was not a member.
	DetachFromClub(ctx context.Context, userID, clubID uint) (bool, error)

	// DetachAllFromClub clears club_id and the admin flag for every member.
	DetachAllFromClub(ctx context.Context, clubID uint) error

	// SetClubAdmin sets the admin flag of a member of clubID.
	// It reports false when the user is not a member of that club.
	SetClubAdmin(ctx context.Context, userID, clubID uint, admin bool) (bool, error)

	// ListWithBillingCustomer returns users that have a billing customer id.
	ListWithBillingCustomer(ctx context.Context) ([]*User, error)
}

// ListFilter represents filtering and pagination options for user list
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

// FollowRepository stores user -> user follow relations.
type FollowRepository interface {
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	Create(ctx context.Context, followerID, followedID uint) error
	// Delete reports whether a row was removed
	Delete(ctx context.Context, followerID, followedID uint) (bool, error)
	ListFollowerIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error)
	ListFollowingIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error)
	// DeleteAllForUser removes relations in both directions
	DeleteAllForUser(ctx context.Context, userID uint) error
}
