package commands

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/patch"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRequiredFieldCleared = errs.Mark(errs.New("required field cannot be cleared"), errs.ErrInvalidInput)

type CreatePropertyInput struct {
	Name        string
	Address     *string
	Description *string
	MaxGuests   int
}

// UpdatePropertyInput distinguishes an omitted field from an explicit null.
type UpdatePropertyInput struct {
	Name        patch.Field[string]
	Address     patch.Field[string]
	Description patch.Field[string]
	MaxGuests   patch.Field[int]
}

type PropertyCommands interface {
	CreateProperty(ctx context.Context, callerUserID uuid.UUID, in CreatePropertyInput) (*queries.PropertyView, error)
	UpdateProperty(ctx context.Context, callerUserID, propertyID uuid.UUID, in UpdatePropertyInput) (*queries.PropertyView, error)
	DeleteProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) error
	RotateExportToken(ctx context.Context, callerUserID, propertyID uuid.UUID) (*queries.PropertyView, error)
}

type propertyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPropertyCommands(uow shared.UnitOfWork, clk clock.Clock) PropertyCommands {
	return &propertyCommandsImpl{uow: uow, clock: clk}
}

func (c *propertyCommandsImpl) CreateProperty(ctx context.Context, callerUserID uuid.UUID, in CreatePropertyInput) (*queries.PropertyView, error) {
	p, err := property.NewProperty(callerUserID, property.Attributes{
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		MaxGuests:   in.MaxGuests,
	}, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Properties().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, err
	}
	return propertyView(p), nil
}

func (c *propertyCommandsImpl) UpdateProperty(ctx context.Context, callerUserID, propertyID uuid.UUID, in UpdatePropertyInput) (*queries.PropertyView, error) {
	if in.Name.IsNull() || in.MaxGuests.IsNull() {
		return nil, ErrRequiredFieldCleared
	}

	var updated *property.Property
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := lockOwnedProperty(ctx, tx, callerUserID, propertyID)
		if err != nil {
			return err
		}

		current := p.Attributes()
		attrs := property.Attributes{
			Name:        in.Name.Apply(current.Name),
			Address:     in.Address.ApplyPtr(current.Address),
			Description: in.Description.ApplyPtr(current.Description),
			MaxGuests:   in.MaxGuests.Apply(current.MaxGuests),
		}
		if err := p.Update(attrs, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Properties().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return propertyView(updated), nil
}

// DeleteProperty removes the property; bookings and calendar data cascade.
func (c *propertyCommandsImpl) DeleteProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockOwnedProperty(ctx, tx, callerUserID, propertyID); err != nil {
			return err
		}
		err := tx.Properties().Delete(ctx, tx.DB(), propertyID)
		if infra.IsKind(err, infra.KindNotFound) {
			return queries.ErrPropertyNotFound
		}
		return err
	})
}

func (c *propertyCommandsImpl) RotateExportToken(ctx context.Context, callerUserID, propertyID uuid.UUID) (*queries.PropertyView, error) {
	var updated *property.Property
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := lockOwnedProperty(ctx, tx, callerUserID, propertyID)
		if err != nil {
			return err
		}
		p.RotateExportToken(c.clock.Now())
		if err := tx.Properties().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return propertyView(updated), nil
}

// lockOwnedProperty takes the property row lock, then checks ownership.
// A missing property is NotFound; someone else's is Forbidden.
func lockOwnedProperty(ctx context.Context, tx shared.Tx, callerUserID, propertyID uuid.UUID) (*property.Property, error) {
	p, err := tx.Properties().LockByID(ctx, tx.DB(), propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrPropertyNotFound
		}
		return nil, err
	}
	if !p.IsOwnedBy(callerUserID) {
		return nil, queries.ErrPropertyAccess
	}
	return p, nil
}
