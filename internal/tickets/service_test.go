package tickets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"duka/internal/buses"
	"duka/internal/notifications"
	"duka/internal/seats"
	"duka/internal/shared/schema"
	"duka/internal/trips"
	"duka/pkg/hasura"
	"duka/pkg/hasura/hasuratest"
	"duka/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []*notifications.TicketIssued
	err    error
}

func (p *recordingPublisher) PublishTicketIssued(_ context.Context, e *notifications.TicketIssued) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func newTestService(gql *hasuratest.Recorder, pub notifications.Publisher) Service {
	log := logger.NewWithWriter(io.Discard, "error", true)
	busRepo := buses.NewRepository(gql)
	return NewService(
		NewRepository(gql),
		trips.NewService(trips.NewRepository(gql), busRepo, log),
		seats.NewService(seats.NewRepository(gql), busRepo, log),
		pub,
		log,
	)
}

// fixture scripts a trip bus priced 450 and seats whose status is looked up
// in statuses; tickets get ids ticket-1, ticket-2, ...
func fixture(statuses map[string]string) *hasuratest.Recorder {
	gql := hasuratest.New().
		OnData(schema.GetTripBus, map[string]interface{}{
			"trip_bus_by_pk": map[string]interface{}{
				"bus":       "bus-1",
				"trip":      "trip-1",
				"status":    "Active",
				"trip_info": map[string]interface{}{"route_info": map[string]interface{}{"price": 450}},
			},
		}).
		On(schema.GetTripBusSeat, func(vars map[string]interface{}) (*hasura.Response, error) {
			id := vars["id"].(string)
			status, ok := statuses[id]
			if !ok {
				return hasuratest.Data(map[string]interface{}{"trip_bus_seat_by_pk": nil}), nil
			}
			return hasuratest.Data(map[string]interface{}{
				"trip_bus_seat_by_pk": map[string]interface{}{
					"id": id, "seat_info": map[string]string{"name": "seat-" + id}, "status": status,
				},
			}), nil
		})

	n := 0
	ticketHandler := func(map[string]interface{}) (*hasura.Response, error) {
		n++
		return hasuratest.Data(map[string]interface{}{
			"insert_ticket_one": map[string]string{"id": fmt.Sprintf("ticket-%d", n)},
		}), nil
	}
	gql.On(schema.CreateTicketByCustomer, ticketHandler).
		On(schema.CreateTicketByOperator, ticketHandler).
		On(schema.CreateTicketByTicketer, ticketHandler)
	return gql
}

func passengers(n int) []Passenger {
	out := make([]Passenger, n)
	for i := range out {
		out[i] = Passenger{
			FirstName:   fmt.Sprintf("First%d", i),
			LastName:    "Last",
			Email:       fmt.Sprintf("p%d@example.com", i),
			PhoneNumber: "+251911234567",
			Gender:      "Male",
		}
	}
	return out
}

func queries(calls []hasuratest.Call) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = schema.OperationName(c.Query)
	}
	return out
}

func isWrite(query string) bool {
	switch query {
	case schema.GetTripBus, schema.GetTripBusSeat, schema.GetBus:
		return false
	}
	return true
}

func writes(calls []hasuratest.Call) []hasuratest.Call {
	var out []hasuratest.Call
	for _, c := range calls {
		if isWrite(c.Query) {
			out = append(out, c)
		}
	}
	return out
}

func TestCreateTicket_CashTwoSeats(t *testing.T) {
	gql := fixture(map[string]string{"s1": seats.StatusAvailable, "s2": seats.StatusAvailable})
	pub := &recordingPublisher{}

	msg, err := newTestService(gql, pub).CreateTicket(context.Background(), CreateTicketCommand{
		TripBusID:     "tb-1",
		SeatIDs:       []string{"s1", "s2"},
		Passengers:    passengers(2),
		PaymentMethod: PaymentCash,
		Role:          "customer",
		UserID:        "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, MessageTicketCreated, msg)

	calls := gql.Calls()
	assert.Equal(t, []string{
		"GetTripBus", "GetTripBusSeat", "GetTripBusSeat",
		"CreateTicketByCustomer", "CreatePassenger", "CreatePaymentHistory", "UpdateTripBusSeat",
		"CreateTicketByCustomer", "CreatePassenger", "CreatePaymentHistory", "UpdateTripBusSeat",
	}, queries(calls))

	tickets := gql.CallsTo(schema.CreateTicketByCustomer)
	require.Len(t, tickets, 2)
	for i, c := range tickets {
		assert.Equal(t, "bus-1", c.Variables["bus"])
		assert.Equal(t, "trip-1", c.Variables["trip"])
		assert.Equal(t, "user-1", c.Variables["customer"])
		assert.Equal(t, StatusPending, c.Variables["status"])
		assert.Equal(t, fmt.Sprintf("s%d", i+1), c.Variables["seat"])
		assert.Len(t, c.Variables["code"], 11)
	}
	assert.NotEqual(t, tickets[0].Variables["code"], tickets[1].Variables["code"])

	passengerCalls := gql.CallsTo(schema.CreatePassenger)
	assert.Equal(t, "ticket-1", passengerCalls[0].Variables["ticket"])
	assert.Equal(t, "First0", passengerCalls[0].Variables["first_name"])
	assert.Equal(t, "ticket-2", passengerCalls[1].Variables["ticket"])
	assert.Equal(t, "First1", passengerCalls[1].Variables["first_name"])

	for _, c := range gql.CallsTo(schema.CreatePaymentHistory) {
		assert.Equal(t, float64(450), c.Variables["total_price"])
		assert.Equal(t, float64(SystemPrice), c.Variables["system_price"])
		assert.Equal(t, "Cash", c.Variables["method"])
	}

	for _, c := range gql.CallsTo(schema.UpdateTripBusSeat) {
		assert.Equal(t, seats.StatusSelected, c.Variables["status"])
	}

	require.Len(t, pub.events, 1)
	assert.Len(t, pub.events[0].Tickets, 2)
	assert.Equal(t, "p1@example.com", pub.events[0].Tickets[1].PassengerEmail)
}

func TestCreateTicket_UngatedPaymentWritesNothing(t *testing.T) {
	gql := fixture(map[string]string{"s1": seats.StatusAvailable})
	pub := &recordingPublisher{}

	msg, err := newTestService(gql, pub).CreateTicket(context.Background(), CreateTicketCommand{
		TripBusID:     "tb-1",
		SeatIDs:       []string{"s1"},
		Passengers:    passengers(1),
		PaymentMethod: "Telebirr",
		Role:          "customer",
		UserID:        "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, MessageTicketCreated, msg)
	assert.Empty(t, writes(gql.Calls()))
	assert.Empty(t, pub.events)
}

func TestCreateTicket_UnavailableSeatWritesNothing(t *testing.T) {
	gql := fixture(map[string]string{"s1": seats.StatusAvailable, "s2": seats.StatusSelected})

	_, err := newTestService(gql, &recordingPublisher{}).CreateTicket(context.Background(), CreateTicketCommand{
		TripBusID:     "tb-1",
		SeatIDs:       []string{"s1", "s2"},
		Passengers:    passengers(2),
		PaymentMethod: PaymentCash,
		Role:          "customer",
		UserID:        "user-1",
	})

	var unavailable *seats.UnavailableSeatsError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{"seat-s2"}, unavailable.Names)
	assert.Empty(t, writes(gql.Calls()))
}

func TestCreateTicket_MissingTripBus(t *testing.T) {
	gql := hasuratest.New().OnData(schema.GetTripBus, map[string]interface{}{"trip_bus_by_pk": nil})

	_, err := newTestService(gql, &recordingPublisher{}).CreateTicket(context.Background(), CreateTicketCommand{
		TripBusID: "tb-x", PaymentMethod: PaymentCash, Role: "customer",
	})

	var nf *trips.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Len(t, gql.Calls(), 1)
}

func TestCreateTicket_RejectedRolesMakeNoRemoteCalls(t *testing.T) {
	for _, role := range []string{"admin", "", "driver"} {
		gql := fixture(map[string]string{"s1": seats.StatusAvailable})

		_, err := newTestService(gql, &recordingPublisher{}).CreateTicket(context.Background(), CreateTicketCommand{
			TripBusID:     "tb-1",
			SeatIDs:       []string{"s1"},
			Passengers:    passengers(1),
			PaymentMethod: PaymentCash,
			Role:          role,
			UserID:        "user-1",
		})

		assert.Error(t, err, role)
		assert.Empty(t, gql.Calls(), role)
	}
}

func TestIssue_RoleSelectsMutationAndOwner(t *testing.T) {
	tests := []struct {
		role  Role
		query string
	}{
		{RoleCustomer, schema.CreateTicketByCustomer},
		{RoleOperator, schema.CreateTicketByOperator},
		{RoleTicketer, schema.CreateTicketByTicketer},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			gql := fixture(nil)

			_, err := newTestService(gql, &recordingPublisher{}).Issue(context.Background(), IssueRequest{
				BusID:         "bus-1",
				TripID:        "trip-1",
				Seats:         []seats.TripBusSeat{{ID: "s1"}},
				Price:         100,
				Passengers:    passengers(1),
				Role:          tt.role,
				UserID:        "user-9",
				PaymentMethod: PaymentCBEBirr,
			})
			require.NoError(t, err)

			calls := gql.CallsTo(tt.query)
			require.Len(t, calls, 1)
			assert.Equal(t, "user-9", calls[0].Variables[string(tt.role)])
		})
	}
}

func TestIssue_StopsAtFirstFailedStep(t *testing.T) {
	gql := fixture(nil)
	gql.OnErrors(schema.CreatePaymentHistory, "check constraint violated")

	issued, err := newTestService(gql, &recordingPublisher{}).Issue(context.Background(), IssueRequest{
		BusID:         "bus-1",
		TripID:        "trip-1",
		Seats:         []seats.TripBusSeat{{ID: "s1"}, {ID: "s2"}},
		Price:         100,
		Passengers:    passengers(2),
		Role:          RoleCustomer,
		UserID:        "user-1",
		PaymentMethod: PaymentCash,
	})

	var remote *hasura.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Empty(t, issued)
	assert.Equal(t, []string{"CreateTicketByCustomer", "CreatePassenger", "CreatePaymentHistory"}, queries(gql.Calls()))
}

func TestIssue_TicketFailureAborts(t *testing.T) {
	gql := fixture(nil)
	gql.OnErrors(schema.CreateTicketByCustomer, "foreign key violation")

	_, err := newTestService(gql, &recordingPublisher{}).Issue(context.Background(), IssueRequest{
		Seats:         []seats.TripBusSeat{{ID: "s1"}},
		Passengers:    passengers(1),
		Role:          RoleCustomer,
		PaymentMethod: PaymentCash,
	})

	var remote *hasura.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Len(t, gql.Calls(), 1)
}

func TestCreateTicket_PublishFailureIsIgnored(t *testing.T) {
	gql := fixture(map[string]string{"s1": seats.StatusAvailable})
	pub := &recordingPublisher{err: errors.New("kafka: client has run out of available brokers")}

	msg, err := newTestService(gql, pub).CreateTicket(context.Background(), CreateTicketCommand{
		TripBusID:     "tb-1",
		SeatIDs:       []string{"s1"},
		Passengers:    passengers(1),
		PaymentMethod: PaymentNibBranch,
		Role:          "operator",
		UserID:        "user-1",
	})

	require.NoError(t, err)
	assert.Equal(t, MessageTicketCreated, msg)
	assert.Len(t, pub.events, 1)
}
