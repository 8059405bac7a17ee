package deliveries

import (
	"context"
	"log/slog"
	"net/http"

	"duka/pkg/logger"
)

// Service answers "was this delivery already handled" and records outcomes.
// Lookup and record failures are logged and never fail the webhook.
type Service interface {
	AlreadyProcessed(ctx context.Context, eventID, endpoint string) bool
	Record(ctx context.Context, delivery Delivery)
}

type service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{repo: repo, logger: log}
}

func (s *service) AlreadyProcessed(ctx context.Context, eventID, endpoint string) bool {
	if eventID == "" {
		return false
	}
	done, err := s.repo.HasSucceeded(ctx, eventID, endpoint)
	if err != nil {
		s.logger.WarnContext(ctx, "Delivery lookup failed, processing anyway",
			slog.String("event_id", eventID),
			slog.String("error", err.Error()),
		)
		return false
	}
	return done
}

func (s *service) Record(ctx context.Context, delivery Delivery) {
	delivery.Succeeded = delivery.StatusCode >= http.StatusOK && delivery.StatusCode < http.StatusMultipleChoices
	if err := s.repo.Create(ctx, &delivery); err != nil {
		s.logger.WarnContext(ctx, "Failed to record delivery",
			slog.String("event_id", delivery.EventID),
			slog.String("error", err.Error()),
		)
	}
}

type noopService struct{}

// NewNoopService is used when the delivery log is disabled
func NewNoopService() Service {
	return noopService{}
}

func (noopService) AlreadyProcessed(context.Context, string, string) bool { return false }

func (noopService) Record(context.Context, Delivery) {}
