// Package memory provides an in-memory ComponentStore for development and
// testing. Components live only as long as the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// Store is a thread-safe in-memory implementation of domain.ComponentStore.
type Store struct {
	mu         sync.RWMutex
	components map[string]domain.TripComponent
	order      []string
}

// NewStore creates an empty in-memory component store.
func NewStore() *Store {
	return &Store{
		components: make(map[string]domain.TripComponent),
	}
}

// ListByTrip implements domain.ComponentStore.ListByTrip.
func (s *Store) ListByTrip(_ context.Context, tripID string) ([]domain.TripComponent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.TripComponent
	for _, id := range s.order {
		if c, ok := s.components[id]; ok && c.TripID == tripID {
			result = append(result, c)
		}
	}
	return result, nil
}

// Create implements domain.ComponentStore.Create.
func (s *Store) Create(_ context.Context, component domain.TripComponent) (domain.TripComponent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if component.ID == "" {
		component.ID = uuid.NewString()
	}
	if _, exists := s.components[component.ID]; exists {
		return domain.TripComponent{}, fmt.Errorf("component %s already exists", component.ID)
	}

	s.components[component.ID] = component
	s.order = append(s.order, component.ID)
	return component, nil
}

// Delete implements domain.ComponentStore.Delete.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.components[id]; !ok {
		return domain.ErrComponentNotFound
	}
	delete(s.components, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ensure Store implements ComponentStore at compile time.
var _ domain.ComponentStore = (*Store)(nil)
