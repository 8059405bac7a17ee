package tickets

import (
	"context"
	"errors"
	"fmt"

	"duka/internal/shared/schema"
	"duka/pkg/hasura"
)

type Repository interface {
	CreateTicket(ctx context.Context, role Role, ticket TicketInput) (string, error)
	CreatePassenger(ctx context.Context, ticketID string, passenger Passenger) error
	CreatePaymentHistory(ctx context.Context, payment PaymentInput) error
}

type repository struct {
	gql hasura.Executor
}

func NewRepository(gql hasura.Executor) Repository {
	return &repository{gql: gql}
}

// CreateTicket returns the id of the inserted ticket
func (r *repository) CreateTicket(ctx context.Context, role Role, ticket TicketInput) (string, error) {
	resp, err := hasura.Do(ctx, r.gql, role.Mutation(), ticket.Variables(role))
	if err != nil {
		return "", fmt.Errorf("failed to create ticket: %w", err)
	}

	var data struct {
		Ticket *struct {
			ID string `json:"id"`
		} `json:"insert_ticket_one"`
	}
	if err := resp.Decode(&data); err != nil {
		return "", fmt.Errorf("failed to create ticket: %w", err)
	}
	if data.Ticket == nil || data.Ticket.ID == "" {
		return "", errors.New("failed to create ticket: no id returned")
	}
	return data.Ticket.ID, nil
}

func (r *repository) CreatePassenger(ctx context.Context, ticketID string, p Passenger) error {
	_, err := hasura.Do(ctx, r.gql, schema.CreatePassenger, map[string]interface{}{
		"first_name":   p.FirstName,
		"last_name":    p.LastName,
		"phone_number": p.PhoneNumber,
		"gender":       p.Gender,
		"email":        p.Email,
		"ticket":       ticketID,
	})
	if err != nil {
		return fmt.Errorf("failed to create passenger: %w", err)
	}
	return nil
}

func (r *repository) CreatePaymentHistory(ctx context.Context, payment PaymentInput) error {
	_, err := hasura.Do(ctx, r.gql, schema.CreatePaymentHistory, map[string]interface{}{
		"ticket":       payment.Ticket,
		"total_price":  payment.TotalPrice,
		"system_price": payment.SystemPrice,
		"method":       string(payment.Method),
	})
	if err != nil {
		return fmt.Errorf("failed to create payment history: %w", err)
	}
	return nil
}
