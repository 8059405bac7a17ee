package tickets

import (
	"fmt"
	"reflect"

	"duka/internal/shared/validation"

	"github.com/go-playground/validator/v10"
)

// CreateTicketInput is the action input of create-ticket
type CreateTicketInput struct {
	Data CreateTicketData `json:"data"`
}

type CreateTicketData struct {
	TripBus       string        `json:"trip_bus" validate:"required"`
	TripBusSeat   []string      `json:"trip_bus_seat" validate:"required"`
	Passengers    []Passenger   `json:"passengers" validate:"required,dive"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required"`
}

type Passenger struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	Gender      string `json:"gender" validate:"required"`
}

// FullName joins first and last name
func (p Passenger) FullName() string {
	return p.FirstName + " " + p.LastName
}

const seatsMatchTag = "seats_match"

// RegisterValidations adds the passenger/seat count rule to v
func RegisterValidations(v *validation.Validator) {
	v.RegisterStructValidation(validateSeatsMatch, CreateTicketData{})
	v.RegisterMessage(seatsMatchTag, func(fe validator.FieldError) string {
		passengers := 0
		if val := reflect.ValueOf(fe.Value()); val.Kind() == reflect.Slice {
			passengers = val.Len()
		}
		return fmt.Sprintf("passengers and seats are not matched, passengers is %d and seats are %s", passengers, fe.Param())
	})
}

func validateSeatsMatch(sl validator.StructLevel) {
	data := sl.Current().Interface().(CreateTicketData)
	if len(data.Passengers) != len(data.TripBusSeat) {
		sl.ReportError(data.Passengers, "passengers", "Passengers", seatsMatchTag, fmt.Sprint(len(data.TripBusSeat)))
	}
}
