package seats

import (
	"context"
	"fmt"
	"strconv"

	"duka/internal/buses"
	"duka/internal/shared/errs"
	"duka/pkg/logger"
)

type Service interface {
	// Provisioning
	AddSeats(ctx context.Context, busID string, seatNo int) (string, error)
	AddTripBusSeats(ctx context.Context, tripBusID, busID string) (string, error)

	// Booking
	IsSeatAvailable(ctx context.Context, tripBusSeatIDs []string) ([]TripBusSeat, error)
	UpdateStatus(ctx context.Context, tripBusSeatID, status string) error
}

type service struct {
	repo   Repository
	buses  buses.Repository
	logger *logger.Logger
}

func NewService(repo Repository, busRepo buses.Repository, log *logger.Logger) Service {
	return &service{
		repo:   repo,
		buses:  busRepo,
		logger: log,
	}
}

// AddSeats creates seats named 1..seatNo-1 for the bus. Callers pass
// total_seat+1.
func (s *service) AddSeats(ctx context.Context, busID string, seatNo int) (string, error) {
	if seatNo < 2 {
		return "", errs.BadRequest("total_seat must be at least 1, got %d", seatNo-1)
	}

	seats := make([]SeatInput, 0, seatNo-1)
	for i := 1; i < seatNo; i++ {
		seats = append(seats, SeatInput{Bus: busID, Name: strconv.Itoa(i)})
	}

	if _, err := s.repo.CreateSeats(ctx, seats); err != nil {
		return "", err
	}

	s.logger.LogSeatsProvisioned(ctx, "bus", busID, len(seats))
	return fmt.Sprintf("%d seats have been added for bus_id: %s", len(seats), busID), nil
}

func (s *service) AddTripBusSeats(ctx context.Context, tripBusID, busID string) (string, error) {
	bus, err := s.buses.GetBus(ctx, busID)
	if err != nil {
		return "", err
	}

	seats := make([]TripBusSeatInput, 0, len(bus.Seats))
	for _, seat := range bus.Seats {
		seats = append(seats, TripBusSeatInput{
			TripBus: tripBusID,
			Seat:    seat.ID,
			Status:  StatusAvailable,
		})
	}

	if _, err := s.repo.CreateTripBusSeats(ctx, seats); err != nil {
		return "", err
	}

	s.logger.LogSeatsProvisioned(ctx, "trip_bus", tripBusID, len(seats))
	return fmt.Sprintf("Seats has been added for trip_bus_id: %s", tripBusID), nil
}

// IsSeatAvailable looks the seats up one at a time and returns them in
// input order only if every one is available.
func (s *service) IsSeatAvailable(ctx context.Context, tripBusSeatIDs []string) ([]TripBusSeat, error) {
	available := make([]TripBusSeat, 0, len(tripBusSeatIDs))
	var unavailable []string

	for _, id := range tripBusSeatIDs {
		seat, err := s.repo.GetTripBusSeat(ctx, id)
		if err != nil {
			return nil, err
		}
		if !seat.IsAvailable() {
			unavailable = append(unavailable, seat.SeatInfo.Name)
			continue
		}
		available = append(available, *seat)
	}

	if len(unavailable) > 0 {
		return nil, &UnavailableSeatsError{Names: unavailable}
	}
	return available, nil
}

func (s *service) UpdateStatus(ctx context.Context, tripBusSeatID, status string) error {
	return s.repo.UpdateTripBusSeatStatus(ctx, tripBusSeatID, status)
}
