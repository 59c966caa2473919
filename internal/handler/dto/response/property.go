package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Address     *string   `json:"address"`
	Description *string   `json:"description"`
	MaxGuests   int       `json:"max_guests"`
	ExportToken string    `json:"export_token"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromPropertyView(v *queries.PropertyView) (*PropertyResponse, error) {
	var out PropertyResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromPropertyViews(vs []*queries.PropertyView) ([]PropertyResponse, error) {
	out := make([]PropertyResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}
