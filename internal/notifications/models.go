package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeTicketIssued EventType = "TICKET_ISSUED"
)

// IssuedTicket is one ticket of an issuance
type IssuedTicket struct {
	TicketID       string `json:"ticket_id"`
	Code           string `json:"code"`
	TripBusSeatID  string `json:"trip_bus_seat_id"`
	SeatName       string `json:"seat_name"`
	PassengerName  string `json:"passenger_name"`
	PassengerEmail string `json:"passenger_email,omitempty"`
	PassengerPhone string `json:"passenger_phone"`
}

// TicketIssued is published once per successful create-ticket request
type TicketIssued struct {
	ID            uuid.UUID      `json:"id"`
	Type          EventType      `json:"type"`
	TripBusID     string         `json:"trip_bus_id"`
	TripID        string         `json:"trip_id"`
	BusID         string         `json:"bus_id"`
	IssuedBy      string         `json:"issued_by"`
	Role          string         `json:"role"`
	PaymentMethod string         `json:"payment_method"`
	Price         float64        `json:"price"`
	Tickets       []IssuedTicket `json:"tickets"`
	CreatedAt     time.Time      `json:"created_at"`
}

// NewTicketIssued stamps a new event id and time
func NewTicketIssued() *TicketIssued {
	return &TicketIssued{
		ID:        uuid.New(),
		Type:      EventTypeTicketIssued,
		CreatedAt: time.Now().UTC(),
	}
}

// GetPartitionKey keeps all events of a trip on one partition
func (e *TicketIssued) GetPartitionKey() string {
	return e.TripID
}

func (e *TicketIssued) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
