package tickets

import "duka/internal/seats"

// StatusPending is the status of a freshly issued ticket
const StatusPending = "Pending"

// TicketInput is the variable set of a role's CreateTicketBy* mutation
type TicketInput struct {
	Bus    string
	Trip   string
	Seat   string
	Code   string
	Owner  string
	Status string
}

// Variables renders the input with the role's owner column
func (t TicketInput) Variables(role Role) map[string]interface{} {
	return map[string]interface{}{
		"bus":             t.Bus,
		"trip":            t.Trip,
		"seat":            t.Seat,
		"code":            t.Code,
		"status":          t.Status,
		role.OwnerField(): t.Owner,
	}
}

// PaymentInput is one payment_history row
type PaymentInput struct {
	Ticket      string
	TotalPrice  float64
	SystemPrice float64
	Method      PaymentMethod
}

// IssueRequest is everything needed to write tickets for one request.
// Seats and Passengers are index aligned.
type IssueRequest struct {
	BusID         string
	TripID        string
	Seats         []seats.TripBusSeat
	Price         float64
	Passengers    []Passenger
	Role          Role
	UserID        string
	PaymentMethod PaymentMethod
}

// Ticket is an issued ticket
type Ticket struct {
	ID        string
	Code      string
	Seat      seats.TripBusSeat
	Passenger Passenger
}

// CreateTicketCommand is a validated create-ticket request
type CreateTicketCommand struct {
	TripBusID     string
	SeatIDs       []string
	Passengers    []Passenger
	PaymentMethod PaymentMethod
	Role          string
	UserID        string
}
