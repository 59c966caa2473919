//go:build unit || e2e

package builder

import (
	"stayhub/internal/domain/property"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Address     *string
	Description *string
	MaxGuests   int
	ExportToken string
}

func NewPropertyBuilder() *PropertyBuilder {
	address := "Calle Mayor 1, Madrid"
	return &PropertyBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Apartamento Centro",
		Address:     &address,
		MaxGuests:   4,
		ExportToken: "export-token-123",
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

func (p *PropertyBuilder) Attributes() property.Attributes {
	return property.Attributes{
		Name:        p.Name,
		Address:     p.Address,
		Description: p.Description,
		MaxGuests:   p.MaxGuests,
	}
}

// BuildDomain keeps the builder's id so callers can line it up with mocks.
func (p *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.Reconstruct(p.ID, p.OwnerID, p.Attributes(), p.ExportToken, BaseTime, BaseTime)
}

func (p *PropertyBuilder) BuildInfra() sqlc.Properties {
	return sqlc.Properties{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Address:     pgconv.StringPtrToPgtype(p.Address),
		Description: pgconv.StringPtrToPgtype(p.Description),
		MaxGuests:   int32(p.MaxGuests),
		ExportToken: p.ExportToken,
		CreatedAt:   pgconv.TimeToPgtype(BaseTime),
		UpdatedAt:   pgconv.TimeToPgtype(BaseTime),
	}
}

func (p *PropertyBuilder) BuildView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Address:     p.Address,
		Description: p.Description,
		MaxGuests:   p.MaxGuests,
		ExportToken: p.ExportToken,
		CreatedAt:   BaseTime,
		UpdatedAt:   BaseTime,
	}
}

// Fluent builder methods
func (p *PropertyBuilder) WithID(id uuid.UUID) *PropertyBuilder {
	p.ID = id
	return p
}

func (p *PropertyBuilder) WithOwner(ownerID uuid.UUID) *PropertyBuilder {
	p.OwnerID = ownerID
	return p
}

func (p *PropertyBuilder) WithName(name string) *PropertyBuilder {
	p.Name = name
	return p
}

func (p *PropertyBuilder) WithAddress(address *string) *PropertyBuilder {
	p.Address = address
	return p
}

func (p *PropertyBuilder) WithMaxGuests(n int) *PropertyBuilder {
	p.MaxGuests = n
	return p
}
