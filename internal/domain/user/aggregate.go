package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/authorization"
	"github.com/ridecrew/ridecrew/internal/shared/biztime"
)

// NoBillingCustomer is stored in billing_customer_id until the user first starts a checkout.
const NoBillingCustomer = "none"

// User is the account aggregate. A user belongs to at most one club at a time and
// the club admin flag is only ever set while clubID is set.
type User struct {
	id                uint
	email             string
	firstName         string
	lastName          string
	passwordHash      string
	role              authorization.UserRole
	avatarPath        string
	bio               string
	city              string
	department        string
	clubID            *uint
	isClubAdmin       bool
	billingCustomerID string
	createdAt         time.Time
	updatedAt         time.Time
}

// Profile holds the editable profile attributes.
type Profile struct {
	FirstName  string
	LastName   string
	Bio        string
	City       string
	Department string
}

// NewUser creates an unaffiliated user with no billing record.
func NewUser(email, firstName, lastName, passwordHash string) (*User, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrNameRequired
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		email:             normalized,
		firstName:         strings.TrimSpace(firstName),
		lastName:          strings.TrimSpace(lastName),
		passwordHash:      passwordHash,
		role:              authorization.RoleUser,
		billingCustomerID: NoBillingCustomer,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	email, firstName, lastName, passwordHash string,
	role authorization.UserRole,
	avatarPath, bio, city, department string,
	clubID *uint,
	isClubAdmin bool,
	billingCustomerID string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if billingCustomerID == "" {
		billingCustomerID = NoBillingCustomer
	}
	// A dangling admin flag without a club is never surfaced.
	if clubID == nil {
		isClubAdmin = false
	}

	return &User{
		id:                id,
		email:             email,
		firstName:         firstName,
		lastName:          lastName,
		passwordHash:      passwordHash,
		role:              authorization.ParseUserRole(string(role)),
		avatarPath:        avatarPath,
		bio:               bio,
		city:              city,
		department:        department,
		clubID:            clubID,
		isClubAdmin:       isClubAdmin,
		billingCustomerID: billingCustomerID,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func (u *User) ID() uint { return u.id }
func (u *User) Email() string { return u.email }
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string { return u.lastName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) AvatarPath() string { return u.avatarPath }
func (u *User) Bio() string { return u.bio }
func (u *User) City() string { return u.city }
func (u *User) Department() string { return u.department }
func (u *User) ClubID() *uint { return u.clubID }
func (u *User) IsClubAdmin() bool { return u.isClubAdmin }
func (u *User) BillingCustomerID() string { return u.billingCustomerID }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// FullName returns "First Last".
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

// SetID sets the ID after the first insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile replaces the editable profile attributes.
func (u *User) UpdateProfile(p Profile) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return ErrNameRequired
	}
	u.firstName = strings.TrimSpace(p.FirstName)
	u.lastName = strings.TrimSpace(p.LastName)
	u.bio = p.Bio
	u.city = p.City
	u.department = p.Department
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ReplaceAvatar sets a new avatar path and returns the previous one.
func (u *User) ReplaceAvatar(path string) (previous string) {
	previous = u.avatarPath
	u.avatarPath = path
	u.updatedAt = biztime.NowUTC()
	return previous
}

// ChangePasswordHash stores a new password hash.
func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
}

// IsAffiliated reports whether the user is a member of any club.
func (u *User) IsAffiliated() bool {
	return u.clubID != nil
}

// IsMemberOf reports whether the user is a member of the given club.
func (u *User) IsMemberOf(clubID uint) bool {
	return u.clubID != nil && *u.clubID == clubID
}

// IsAdminOf reports whether the user administers the given club.
func (u *User) IsAdminOf(clubID uint) bool {
	return u.IsMemberOf(clubID) && u.isClubAdmin
}

// FoundClub makes the user the first member and admin of a freshly created club.
func (u *User) FoundClub(clubID uint) error {
	if u.IsAffiliated() {
		return ErrAlreadyInClub
	}
	id := clubID
	u.clubID = &id
	u.isClubAdmin = true
	u.updatedAt = biztime.NowUTC()
	return nil
}

// JoinClub makes an unaffiliated user a plain member of clubID.
func (u *User) JoinClub(clubID uint) error {
	if u.IsAffiliated() {
		return ErrAlreadyInClub
	}
	id := clubID
	u.clubID = &id
	u.isClubAdmin = false
	u.updatedAt = biztime.NowUTC()
	return nil
}

// LeaveClub detaches the user from their club. The admin flag is cleared together
// with the membership so that an ex-member never keeps admin rights.
func (u *User) LeaveClub() {
	u.clubID = nil
	u.isClubAdmin = false
	u.updatedAt = biztime.NowUTC()
}

// PromoteToClubAdmin grants the admin flag for the club the user belongs to.
func (u *User) PromoteToClubAdmin(clubID uint) error {
	if !u.IsMemberOf(clubID) {
		return ErrNotClubMember
	}
	u.isClubAdmin = true
	u.updatedAt = biztime.NowUTC()
	return nil
}

// DemoteClubAdmin clears the admin flag while keeping the membership.
func (u *User) DemoteClubAdmin() {
	u.isClubAdmin = false
	u.updatedAt = biztime.NowUTC()
}

// HasBillingCustomer reports whether a billing customer was created for the user.
func (u *User) HasBillingCustomer() bool {
	return u.billingCustomerID != "" && u.billingCustomerID != NoBillingCustomer
}

// AttachBillingCustomer records the provider customer id.
func (u *User) AttachBillingCustomer(customerID string) error {
	if customerID == "" || customerID == NoBillingCustomer {
		return fmt.Errorf("invalid billing customer id %q", customerID)
	}
	u.billingCustomerID = customerID
	u.updatedAt = biztime.NowUTC()
	return nil
}
