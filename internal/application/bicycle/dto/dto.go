package dto

import (
	"time"

	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/domain/bicycle"
)

type BicycleResponse struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"owner_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Model     string    `json:"model,omitempty"`
	Kind      string    `json:"kind"`
	Year      int       `json:"year,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToBicycleResponse(b *bicycle.Bicycle, url commondto.URLFunc) *BicycleResponse {
	s := b.Specs()
	return &BicycleResponse{
		ID:        b.ID(),
		OwnerID:   b.OwnerID(),
		Name:      s.Name,
		Brand:     s.Brand,
		Model:     s.Model,
		Kind:      string(s.Kind),
		Year:      s.Year,
		PhotoURL:  url(b.PhotoPath()),
		UpdatedAt: b.UpdatedAt(),
	}
}
