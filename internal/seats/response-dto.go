package seats

type affectedRows struct {
	AffectedRows int `json:"affected_rows"`
}

type insertSeatResponse struct {
	InsertSeat affectedRows `json:"insert_seat"`
}

type insertTripBusSeatResponse struct {
	InsertTripBusSeat affectedRows `json:"insert_trip_bus_seat"`
}

type getTripBusSeatResponse struct {
	TripBusSeat *TripBusSeat `json:"trip_bus_seat_by_pk"`
}
