package bicycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/biztime"
)

var (
	ErrBicycleNotFound = errors.New("bicycle not found")
	ErrNameRequired    = errors.New("bicycle name is required")
	ErrInvalidKind     = errors.New("invalid bicycle kind")
	ErrInvalidYear     = errors.New("invalid bicycle year")
)

type Kind string

const (
	KindRoad   Kind = "road"
	KindMTB    Kind = "mtb"
	KindGravel Kind = "gravel"
	KindCity   Kind = "city"
	KindEBike  Kind = "ebike"
	KindOther  Kind = "other"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindRoad, KindMTB, KindGravel, KindCity, KindEBike, KindOther:
		return true
	}
	return false
}

type Specs struct {
	Name  string
	Brand string
	Model string
	Kind  Kind
	Year  int
}

func (s Specs) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameRequired
	}
	if !s.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, s.Kind)
	}
	if s.Year != 0 && (s.Year < 1900 || s.Year > biztime.NowUTC().Year()+1) {
		return ErrInvalidYear
	}
	return nil
}

// Bicycle is a bike in a user's garage.
type Bicycle struct {
	id        uint
	ownerID   uint
	specs     Specs
	photoPath string
	createdAt time.Time
	updatedAt time.Time
}

func NewBicycle(ownerID uint, s Specs) (*Bicycle, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	s.Name = strings.TrimSpace(s.Name)
	return &Bicycle{ownerID: ownerID, specs: s, createdAt: now, updatedAt: now}, nil
}

func ReconstructBicycle(id, ownerID uint, s Specs, photoPath string, createdAt, updatedAt time.Time) *Bicycle {
	return &Bicycle{id: id, ownerID: ownerID, specs: s, photoPath: photoPath, createdAt: createdAt, updatedAt: updatedAt}
}

func (b *Bicycle) ID() uint { return b.id }
func (b *Bicycle) OwnerID() uint { return b.ownerID }
func (b *Bicycle) Specs() Specs { return b.specs }
func (b *Bicycle) PhotoPath() string { return b.photoPath }
func (b *Bicycle) CreatedAt() time.Time { return b.createdAt }
func (b *Bicycle) UpdatedAt() time.Time { return b.updatedAt }

func (b *Bicycle) SetID(id uint) { b.id = id }

func (b *Bicycle) Update(s Specs) error {
	if err := s.validate(); err != nil {
		return err
	}
	s.Name = strings.TrimSpace(s.Name)
	b.specs = s
	b.updatedAt = biztime.NowUTC()
	return nil
}

// ReplacePhoto sets a new photo path and returns the previous one.
func (b *Bicycle) ReplacePhoto(path string) (previous string) {
	previous = b.photoPath
	b.photoPath = path
	b.updatedAt = biztime.NowUTC()
	return previous
}

type Repository interface {
	Create(ctx context.Context, b *Bicycle) error
	GetByID(ctx context.Context, id uint) (*Bicycle, error)
	Update(ctx context.Context, b *Bicycle) error
	Delete(ctx context.Context, id uint) error
	ListByOwner(ctx context.Context, ownerID uint) ([]*Bicycle, error)
}
