package seats

// SeatInput is one object of CreateSeats
type SeatInput struct {
	Bus  string `json:"bus"`
	Name string `json:"name"`
}

// TripBusSeatInput is one object of CreateTripBusSeat
type TripBusSeatInput struct {
	TripBus string `json:"trip_bus"`
	Seat    string `json:"seat"`
	Status  string `json:"status"`
}

// TripBusRow is the new row image of a trip_bus insert event
type TripBusRow struct {
	ID  string `json:"id" validate:"required"`
	Bus string `json:"bus" validate:"required"`
}
