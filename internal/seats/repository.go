package seats

import (
	"context"
	"fmt"

	"duka/internal/shared/schema"
	"duka/pkg/hasura"
)

type Repository interface {
	CreateSeats(ctx context.Context, seats []SeatInput) (int, error)
	CreateTripBusSeats(ctx context.Context, seats []TripBusSeatInput) (int, error)
	GetTripBusSeat(ctx context.Context, id string) (*TripBusSeat, error)
	UpdateTripBusSeatStatus(ctx context.Context, id, status string) error
}

type repository struct {
	gql hasura.Executor
}

func NewRepository(gql hasura.Executor) Repository {
	return &repository{gql: gql}
}

func (r *repository) CreateSeats(ctx context.Context, seats []SeatInput) (int, error) {
	resp, err := hasura.Do(ctx, r.gql, schema.CreateSeats, map[string]interface{}{"objects": seats})
	if err != nil {
		return 0, fmt.Errorf("failed to create seats: %w", err)
	}

	var data insertSeatResponse
	if err := resp.Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to create seats: %w", err)
	}
	return data.InsertSeat.AffectedRows, nil
}

func (r *repository) CreateTripBusSeats(ctx context.Context, seats []TripBusSeatInput) (int, error) {
	resp, err := hasura.Do(ctx, r.gql, schema.CreateTripBusSeats, map[string]interface{}{"objects": seats})
	if err != nil {
		return 0, fmt.Errorf("failed to create trip bus seats: %w", err)
	}

	var data insertTripBusSeatResponse
	if err := resp.Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to create trip bus seats: %w", err)
	}
	return data.InsertTripBusSeat.AffectedRows, nil
}

func (r *repository) GetTripBusSeat(ctx context.Context, id string) (*TripBusSeat, error) {
	resp, err := hasura.Do(ctx, r.gql, schema.GetTripBusSeat, map[string]interface{}{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get trip bus seat %s: %w", id, err)
	}

	var data getTripBusSeatResponse
	if err := resp.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to get trip bus seat %s: %w", id, err)
	}
	if data.TripBusSeat == nil {
		return nil, &SeatNotFoundError{ID: id}
	}
	return data.TripBusSeat, nil
}

func (r *repository) UpdateTripBusSeatStatus(ctx context.Context, id, status string) error {
	_, err := hasura.Do(ctx, r.gql, schema.UpdateTripBusSeat, map[string]interface{}{
		"id":     id,
		"status": status,
	})
	if err != nil {
		return fmt.Errorf("failed to update trip bus seat %s: %w", id, err)
	}
	return nil
}
