package trips

import (
	"context"

	"duka/internal/buses"
	"duka/pkg/logger"
)

type Service interface {
	GetTripBus(ctx context.Context, id string) (*TripBus, error)
	AddTripHistory(ctx context.Context, busID, tripID string) (string, error)
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

func (s *service) GetTripBus(ctx context.Context, id string) (*TripBus, error) {
	return s.repo.GetTripBus(ctx, id)
}

// AddTripHistory records the trip against the bus and its current driver
func (s *service) AddTripHistory(ctx context.Context, busID, tripID string) (string, error) {
	bus, err := s.buses.GetBus(ctx, busID)
	if err != nil {
		return "", err
	}

	if _, err := s.repo.CreateTripHistory(ctx, busID, bus.Driver, tripID); err != nil {
		return "", err
	}

	s.logger.LogTripHistoryCreated(ctx, busID, tripID, bus.Driver)
	return "Trip History has been created.", nil
}
