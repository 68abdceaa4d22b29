package domain

import "context"

// ComponentStore is the external persistence boundary for trip components.
// The contract is deliberately small and non-transactional: replacing a hotel
// during replanning is a delete followed by an independent create, with no
// atomicity guarantee, matching the upstream data layer.
type ComponentStore interface {
	// ListByTrip returns all components persisted for the given trip,
	// in creation order.
	ListByTrip(ctx context.Context, tripID string) ([]TripComponent, error)

	// Create persists a new component and returns it with its generated
	// identity populated.
	Create(ctx context.Context, component TripComponent) (TripComponent, error)

	// Delete removes a component by ID. Returns ErrComponentNotFound when
	// no such component exists.
	Delete(ctx context.Context, id string) error
}
