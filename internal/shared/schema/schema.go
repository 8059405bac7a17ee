// Package schema is the fixed catalog of GraphQL documents sent to Hasura.
package schema

import "regexp"

const CreateSeats = `
mutation CreateSeats($objects: [seat_insert_input!]!) {
  insert_seat(objects: $objects) {
    affected_rows
  }
}
`

const CreateTripHistory = `
mutation CreateTripHistory($bus: uuid!, $driver: uuid!, $trip: uuid!) {
  insert_trip_history_one(object: {bus: $bus, driver: $driver, trip: $trip}) {
    id
  }
}
`

const GetBus = `
query GetBus($id: uuid!) {
  bus_by_pk(id: $id) {
    id
    driver
    seats {
      id
    }
  }
}
`

const CreateTripBusSeats = `
mutation CreateTripBusSeat($objects: [trip_bus_seat_insert_input!]!) {
  insert_trip_bus_seat(objects: $objects) {
    affected_rows
  }
}
`

const GetTripBus = `
query GetTripBus($id: uuid!) {
  trip_bus_by_pk(id: $id) {
    bus
    trip
    status
    trip_info {
      route_info {
        price
      }
    }
  }
}
`

const GetTripBusSeat = `
query GetTripBusSeat($id: uuid!) {
  trip_bus_seat_by_pk(id: $id) {
    id
    seat_info {
      name
    }
    status
  }
}
`

const CreateTicketByCustomer = `
mutation CreateTicketByCustomer($bus: uuid!, $code: String!, $customer: uuid!, $seat: uuid!, $trip: uuid!, $status: ticket_status_enum!) {
  insert_ticket_one(object: {code: $code, bus: $bus, trip: $trip, seat: $seat, customer: $customer, status: $status}) {
    id
  }
}
`

const CreateTicketByOperator = `
mutation CreateTicketByOperator($bus: uuid!, $code: String!, $operator: uuid!, $seat: uuid!, $trip: uuid!, $status: ticket_status_enum!) {
  insert_ticket_one(object: {code: $code, bus: $bus, trip: $trip, seat: $seat, operator: $operator, status: $status}) {
    id
  }
}
`

const CreateTicketByTicketer = `
mutation CreateTicketByTicketer($bus: uuid!, $code: String!, $ticketer: uuid!, $seat: uuid!, $trip: uuid!, $status: ticket_status_enum!) {
  insert_ticket_one(object: {code: $code, bus: $bus, trip: $trip, seat: $seat, ticketer: $ticketer, status: $status}) {
    id
  }
}
`

const CreatePassenger = `
mutation CreatePassenger($first_name: String!, $last_name: String!, $phone_number: String!, $gender: users_gender_enum!, $email: String!, $ticket: uuid!) {
  insert_passenger_one(object: {first_name: $first_name, last_name: $last_name, phone_number: $phone_number, gender: $gender, email: $email, ticket: $ticket}) {
    id
  }
}
`

const CreatePaymentHistory = `
mutation CreatePaymentHistory($ticket: uuid!, $total_price: numeric!, $system_price: numeric!, $method: payment_method_enum!) {
  insert_payment_history_one(object: {ticket: $ticket, total_price: $total_price, system_price: $system_price, method: $method}) {
    id
  }
}
`

const UpdateTripBusSeat = `
mutation UpdateTripBusSeat($id: uuid!, $status: seat_status_enum!) {
  update_trip_bus_seat_by_pk(pk_columns: {id: $id}, _set: {status: $status}) {
    id
    status
  }
}
`

var operationNamePattern = regexp.MustCompile(`^\s*(?:query|mutation)\s+([A-Za-z_][A-Za-z0-9_]*)`)

// OperationName extracts the operation name of a document for logging,
// e.g. "CreateSeats". It returns "anonymous" when none is declared.
func OperationName(document string) string {
	if m := operationNamePattern.FindStringSubmatch(document); m != nil {
		return m[1]
	}
	return "anonymous"
}
