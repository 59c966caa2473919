package converter

import (
	"math"

	"stayhub/internal/domain/property"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/pgconv"
)

var ErrMaxGuestsOutOfRange = errs.Mark(errs.New("max guests out of int32 range"), errs.ErrInvalidInput)

func PropertyToCreateParams(p *property.Property) (sqlc.CreatePropertyParams, error) {
	maxGuests, err := maxGuestsToInt32(p.MaxGuests())
	if err != nil {
		return sqlc.CreatePropertyParams{}, err
	}
	return sqlc.CreatePropertyParams{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Name:        p.Name(),
		Address:     pgconv.StringPtrToPgtype(p.Address()),
		Description: pgconv.StringPtrToPgtype(p.Description()),
		MaxGuests:   maxGuests,
		ExportToken: p.ExportToken(),
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
	}, nil
}

func PropertyToUpdateParams(p *property.Property) (sqlc.UpdatePropertyParams, error) {
	maxGuests, err := maxGuestsToInt32(p.MaxGuests())
	if err != nil {
		return sqlc.UpdatePropertyParams{}, err
	}
	return sqlc.UpdatePropertyParams{
		ID:          p.ID(),
		Name:        p.Name(),
		Address:     pgconv.StringPtrToPgtype(p.Address()),
		Description: pgconv.StringPtrToPgtype(p.Description()),
		MaxGuests:   maxGuests,
		ExportToken: p.ExportToken(),
		UpdatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
	}, nil
}

func PropertyFromInfra(row sqlc.Properties) (*property.Property, error) {
	attrs := property.Attributes{
		Name:        row.Name,
		Address:     pgconv.StringPtrFromPgtype(row.Address),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		MaxGuests:   int(row.MaxGuests),
	}
	return property.Reconstruct(row.ID, row.OwnerID, attrs, row.ExportToken, row.CreatedAt.Time, row.UpdatedAt.Time)
}

func maxGuestsToInt32(n int) (int32, error) {
	if n > math.MaxInt32 {
		return 0, ErrMaxGuestsOutOfRange
	}
	return int32(n), nil
}
