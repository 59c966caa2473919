package queries

import (
	"context"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*AvailabilityView, error)
}

type AvailabilityQueries interface {
	ListForProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) ([]*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	properties PropertyReadStore
	store      AvailabilityReadStore
}

func NewAvailabilityQueries(properties PropertyReadStore, store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{properties: properties, store: store}
}

func (q *availabilityQueriesImpl) ListForProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) ([]*AvailabilityView, error) {
	if _, err := authorizeProperty(ctx, q.properties, callerUserID, propertyID); err != nil {
		return nil, err
	}
	return q.store.ListByProperty(ctx, propertyID)
}
