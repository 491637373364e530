package club

import (
	"fmt"
	"strings"
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/biztime"
)

// OrganizationType classifies the legal form of a club.
type OrganizationType string

const (
	OrganizationAssociation OrganizationType = "association"
	OrganizationCompany     OrganizationType = "company"
	OrganizationInformal    OrganizationType = "informal"
)

func (o OrganizationType) IsValid() bool {
	switch o {
	case OrganizationAssociation, OrganizationCompany, OrganizationInformal:
		return true
	}
	return false
}

// Address is where the club is based.
type Address struct {
	Street     string
	PostalCode string
	City       string
	Department string
}

// Club is the club aggregate. Membership lives on the user side (users.club_id).
type Club struct {
	id               uint
	name             string
	organizationType OrganizationType
	description      string
	address          Address
	avatarPath       string
	createdAt        time.Time
	updatedAt        time.Time
}

// Details holds the editable attributes of a club.
type Details struct {
	Name             string
	OrganizationType OrganizationType
	Description      string
	Address          Address
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if !d.OrganizationType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrganizationType, d.OrganizationType)
	}
	if strings.TrimSpace(d.Address.City) == "" {
		return ErrCityRequired
	}
	return nil
}

func NewClub(d Details) (*Club, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Club{
		name:             strings.TrimSpace(d.Name),
		organizationType: d.OrganizationType,
		description:      d.Description,
		address:          d.Address,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructClub(id uint, d Details, avatarPath string, createdAt, updatedAt time.Time) (*Club, error) {
	if id == 0 {
		return nil, fmt.Errorf("club ID cannot be zero")
	}
	return &Club{
		id:               id,
		name:             d.Name,
		organizationType: d.OrganizationType,
		description:      d.Description,
		address:          d.Address,
		avatarPath:       avatarPath,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Club) ID() uint { return c.id }
func (c *Club) Name() string { return c.name }
func (c *Club) OrganizationType() OrganizationType { return c.organizationType }
func (c *Club) Description() string { return c.description }
func (c *Club) Address() Address { return c.address }
func (c *Club) AvatarPath() string { return c.avatarPath }
func (c *Club) CreatedAt() time.Time { return c.createdAt }
func (c *Club) UpdatedAt() time.Time { return c.updatedAt }

func (c *Club) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("club ID is already set")
	}
	c.id = id
	return nil
}

// Update replaces the editable attributes.
func (c *Club) Update(d Details) error {
	if err := d.validate(); err != nil {
		return err
	}
	c.name = strings.TrimSpace(d.Name)
	c.organizationType = d.OrganizationType
	c.description = d.Description
	c.address = d.Address
	c.updatedAt = biztime.NowUTC()
	return nil
}

// ReplaceAvatar sets a new avatar path and returns the previous one.
func (c *Club) ReplaceAvatar(path string) (previous string) {
	previous = c.avatarPath
	c.avatarPath = path
	c.updatedAt = biztime.NowUTC()
	return previous
}
