package tickets

import (
	"context"
	"log/slog"

	"duka/internal/notifications"
	"duka/internal/seats"
	"duka/internal/trips"
	"duka/pkg/logger"
)

// MessageTicketCreated is the success detail of create-ticket
const MessageTicketCreated = "Ticket has been created"

type Service interface {
	// CreateTicket runs the whole create-ticket workflow
	CreateTicket(ctx context.Context, cmd CreateTicketCommand) (string, error)

	// Issue writes ticket, passenger, payment and seat status for each
	// seat/passenger pair in order, stopping at the first failure.
	Issue(ctx context.Context, req IssueRequest) ([]Ticket, error)
}

type service struct {
	repo      Repository
	trips     trips.Service
	seats     seats.Service
	publisher notifications.Publisher
	logger    *logger.Logger
	newCode   func() (string, error)
}

func NewService(repo Repository, tripService trips.Service, seatService seats.Service, publisher notifications.Publisher, log *logger.Logger) Service {
	return &service{
		repo:      repo,
		trips:     tripService,
		seats:     seatService,
		publisher: publisher,
		logger:    log,
		newCode:   NewCode,
	}
}

func (s *service) CreateTicket(ctx context.Context, cmd CreateTicketCommand) (string, error) {
	role, err := ParseRole(cmd.Role)
	if err != nil {
		return "", err
	}

	tripBus, err := s.trips.GetTripBus(ctx, cmd.TripBusID)
	if err != nil {
		return "", err
	}

	available, err := s.seats.IsSeatAvailable(ctx, cmd.SeatIDs)
	if err != nil {
		return "", err
	}

	if !cmd.PaymentMethod.IssuesTickets() {
		s.logger.LogUngatedPayment(ctx, string(cmd.PaymentMethod), cmd.UserID)
		return MessageTicketCreated, nil
	}

	issued, err := s.Issue(ctx, IssueRequest{
		BusID:         tripBus.Bus,
		TripID:        tripBus.Trip,
		Seats:         available,
		Price:         tripBus.Price(),
		Passengers:    cmd.Passengers,
		Role:          role,
		UserID:        cmd.UserID,
		PaymentMethod: cmd.PaymentMethod,
	})
	if err != nil {
		return "", err
	}

	s.publishIssued(ctx, cmd, tripBus, issued)
	return MessageTicketCreated, nil
}

func (s *service) Issue(ctx context.Context, req IssueRequest) ([]Ticket, error) {
	issued := make([]Ticket, 0, len(req.Seats))

	for i, seat := range req.Seats {
		passenger := req.Passengers[i]

		code, err := s.newCode()
		if err != nil {
			return issued, err
		}

		ticketID, err := s.repo.CreateTicket(ctx, req.Role, TicketInput{
			Bus:    req.BusID,
			Trip:   req.TripID,
			Seat:   seat.ID,
			Code:   code,
			Owner:  req.UserID,
			Status: StatusPending,
		})
		if err != nil {
			return issued, err
		}

		if err := s.repo.CreatePassenger(ctx, ticketID, passenger); err != nil {
			s.logger.LogOrphanedTicket(ctx, ticketID, seat.ID, "passenger", err)
			return issued, err
		}

		if err := s.repo.CreatePaymentHistory(ctx, PaymentInput{
			Ticket:      ticketID,
			TotalPrice:  req.Price,
			SystemPrice: SystemPrice,
			Method:      req.PaymentMethod,
		}); err != nil {
			s.logger.LogOrphanedTicket(ctx, ticketID, seat.ID, "payment_history", err)
			return issued, err
		}

		if err := s.seats.UpdateStatus(ctx, seat.ID, seats.StatusSelected); err != nil {
			s.logger.LogOrphanedTicket(ctx, ticketID, seat.ID, "seat_status", err)
			return issued, err
		}

		s.logger.LogTicketIssued(ctx, ticketID, seat.ID, string(req.Role), req.UserID)
		issued = append(issued, Ticket{ID: ticketID, Code: code, Seat: seat, Passenger: passenger})
	}

	return issued, nil
}

// publishIssued never fails the request; the tickets are already written
func (s *service) publishIssued(ctx context.Context, cmd CreateTicketCommand, tripBus *trips.TripBus, issued []Ticket) {
	if len(issued) == 0 {
		return
	}

	event := notifications.NewTicketIssued()
	event.TripBusID = cmd.TripBusID
	event.TripID = tripBus.Trip
	event.BusID = tripBus.Bus
	event.IssuedBy = cmd.UserID
	event.Role = cmd.Role
	event.PaymentMethod = string(cmd.PaymentMethod)
	event.Price = tripBus.Price()
	for _, t := range issued {
		event.Tickets = append(event.Tickets, notifications.IssuedTicket{
			TicketID:       t.ID,
			Code:           t.Code,
			TripBusSeatID:  t.Seat.ID,
			SeatName:       t.Seat.SeatInfo.Name,
			PassengerName:  t.Passenger.FullName(),
			PassengerEmail: t.Passenger.Email,
			PassengerPhone: t.Passenger.PhoneNumber,
		})
	}

	if err := s.publisher.PublishTicketIssued(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish ticket event",
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
