package queries

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound = errs.Mark(errs.New("property not found"), errs.ErrNotFound)
	ErrPropertyAccess   = errs.Mark(errs.New("property belongs to another user"), errs.ErrForbidden)
)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	FindByExportToken(ctx context.Context, token string) (*PropertyView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PropertyView, error)
}

type PropertyQueries interface {
	GetProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) (*PropertyView, error)
	ListProperties(ctx context.Context, callerUserID uuid.UUID) ([]*PropertyView, error)
	ResolveProperty(ctx context.Context, propertyID uuid.UUID) (*PropertyRef, error)
}

type propertyQueriesImpl struct {
	store PropertyReadStore
}

func NewPropertyQueries(store PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store}
}

func (q *propertyQueriesImpl) GetProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) (*PropertyView, error) {
	return authorizeProperty(ctx, q.store, callerUserID, propertyID)
}

func (q *propertyQueriesImpl) ListProperties(ctx context.Context, callerUserID uuid.UUID) ([]*PropertyView, error) {
	return q.store.ListByOwner(ctx, callerUserID)
}

func (q *propertyQueriesImpl) ResolveProperty(ctx context.Context, propertyID uuid.UUID) (*PropertyRef, error) {
	p, err := findProperty(ctx, q.store, propertyID)
	if err != nil {
		return nil, err
	}
	return &PropertyRef{ID: p.ID, OwnerID: p.OwnerID}, nil
}

func findProperty(ctx context.Context, store PropertyReadStore, propertyID uuid.UUID) (*PropertyView, error) {
	p, err := store.FindByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

// authorizeProperty checks existence before ownership, so a foreign id
// yields Forbidden rather than NotFound.
func authorizeProperty(ctx context.Context, store PropertyReadStore, callerUserID, propertyID uuid.UUID) (*PropertyView, error) {
	p, err := findProperty(ctx, store, propertyID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != callerUserID {
		return nil, ErrPropertyAccess
	}
	return p, nil
}
