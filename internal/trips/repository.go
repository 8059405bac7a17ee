package trips

import (
	"context"
	"fmt"

	"duka/internal/shared/schema"
	"duka/pkg/hasura"
)

type Repository interface {
	GetTripBus(ctx context.Context, id string) (*TripBus, error)
	CreateTripHistory(ctx context.Context, busID, driverID, tripID string) (string, error)
}

type repository struct {
	gql hasura.Executor
}

func NewRepository(gql hasura.Executor) Repository {
	return &repository{gql: gql}
}

func (r *repository) GetTripBus(ctx context.Context, id string) (*TripBus, error) {
	resp, err := hasura.Do(ctx, r.gql, schema.GetTripBus, map[string]interface{}{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get trip bus %s: %w", id, err)
	}

	var data struct {
		TripBus *TripBus `json:"trip_bus_by_pk"`
	}
	if err := resp.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to get trip bus %s: %w", id, err)
	}
	if data.TripBus == nil {
		return nil, &NotFoundError{ID: id}
	}
	return data.TripBus, nil
}

// CreateTripHistory returns the id of the new trip_history row
func (r *repository) CreateTripHistory(ctx context.Context, busID, driverID, tripID string) (string, error) {
	resp, err := hasura.Do(ctx, r.gql, schema.CreateTripHistory, map[string]interface{}{
		"bus":    busID,
		"driver": driverID,
		"trip":   tripID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create trip history: %w", err)
	}

	var data struct {
		TripHistory struct {
			ID string `json:"id"`
		} `json:"insert_trip_history_one"`
	}
	if err := resp.Decode(&data); err != nil {
		return "", fmt.Errorf("failed to create trip history: %w", err)
	}
	return data.TripHistory.ID, nil
}
