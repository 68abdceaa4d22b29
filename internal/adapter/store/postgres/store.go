// Package postgres provides a pgx-backed ComponentStore. Flight and hotel
// details are stored as JSONB so the table survives detail-shape evolution
// without migrations.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// Schema is the DDL for the component table. Applied by the operator or at
// startup; CREATE IF NOT EXISTS keeps it idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS trip_components (
    id             UUID PRIMARY KEY,
    trip_id        TEXT NOT NULL,
    component_type TEXT NOT NULL,
    title          TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    price          DOUBLE PRECISION NOT NULL DEFAULT 0,
    flight_details JSONB,
    hotel_details  JSONB,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS trip_components_trip_id_idx ON trip_components (trip_id);
`

// Store is a Postgres implementation of domain.ComponentStore.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a component store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema applies the component table DDL.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply component schema: %w", err)
	}
	return nil
}

// ListByTrip implements domain.ComponentStore.ListByTrip.
func (s *Store) ListByTrip(ctx context.Context, tripID string) ([]domain.TripComponent, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, trip_id, component_type, title, description, price,
		       flight_details, hotel_details, created_at
		FROM trip_components
		WHERE trip_id = $1
		ORDER BY created_at, id
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	var components []domain.TripComponent
	for rows.Next() {
		var (
			c           domain.TripComponent
			id          uuid.UUID
			flightJSON  []byte
			hotelJSON   []byte
			componentTy string
		)
		if err := rows.Scan(&id, &c.TripID, &componentTy, &c.Title, &c.Description,
			&c.Price, &flightJSON, &hotelJSON, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		c.ID = id.String()
		c.Type = domain.ComponentType(componentTy)

		if len(flightJSON) > 0 {
			c.Flight = &domain.FlightDetails{}
			if err := json.Unmarshal(flightJSON, c.Flight); err != nil {
				return nil, fmt.Errorf("decode flight details for %s: %w", c.ID, err)
			}
		}
		if len(hotelJSON) > 0 {
			c.Hotel = &domain.HotelDetails{}
			if err := json.Unmarshal(hotelJSON, c.Hotel); err != nil {
				return nil, fmt.Errorf("decode hotel details for %s: %w", c.ID, err)
			}
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	return components, nil
}

// Create implements domain.ComponentStore.Create.
func (s *Store) Create(ctx context.Context, component domain.TripComponent) (domain.TripComponent, error) {
	if s.pool == nil {
		return domain.TripComponent{}, errors.New("nil postgres pool")
	}

	if component.ID == "" {
		component.ID = uuid.NewString()
	}
	id, err := uuid.Parse(component.ID)
	if err != nil {
		return domain.TripComponent{}, fmt.Errorf("invalid component id: %w", err)
	}

	var flightJSON, hotelJSON []byte
	if component.Flight != nil {
		if flightJSON, err = json.Marshal(component.Flight); err != nil {
			return domain.TripComponent{}, fmt.Errorf("encode flight details: %w", err)
		}
	}
	if component.Hotel != nil {
		if hotelJSON, err = json.Marshal(component.Hotel); err != nil {
			return domain.TripComponent{}, fmt.Errorf("encode hotel details: %w", err)
		}
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO trip_components (
			id, trip_id, component_type, title, description, price,
			flight_details, hotel_details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		id,
		component.TripID,
		string(component.Type),
		component.Title,
		component.Description,
		component.Price,
		flightJSON,
		hotelJSON,
		component.CreatedAt.UTC(),
	)
	if err != nil {
		return domain.TripComponent{}, fmt.Errorf("insert component: %w", err)
	}
	return component, nil
}

// Delete implements domain.ComponentStore.Delete.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}

	componentID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrComponentNotFound
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM trip_components WHERE id = $1`, componentID)
	if err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrComponentNotFound
	}
	return nil
}

// Ensure Store implements ComponentStore at compile time.
var _ domain.ComponentStore = (*Store)(nil)
