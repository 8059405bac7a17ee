package seats

import (
	"fmt"
	"net/http"
	"strings"
)

// Trip-bus seat statuses
const (
	StatusAvailable = "Available"
	StatusSelected  = "Selected"
)

// TripBusSeat is a per-trip instance of a physical seat
type TripBusSeat struct {
	ID       string   `json:"id"`
	SeatInfo SeatInfo `json:"seat_info"`
	Status   string   `json:"status"`
}

// SeatInfo is the physical seat behind a trip-bus seat
type SeatInfo struct {
	Name string `json:"name"`
}

// IsAvailable reports whether the seat can be booked
func (s *TripBusSeat) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// SeatNotFoundError is returned when trip_bus_seat_by_pk is null
type SeatNotFoundError struct {
	ID string
}

func (e *SeatNotFoundError) Error() string {
	return "There is no trip_bus_seat_id: " + e.ID
}

func (e *SeatNotFoundError) StatusCode() int {
	return http.StatusBadRequest
}

// UnavailableSeatsError lists the names of requested seats that are taken
type UnavailableSeatsError struct {
	Names []string
}

func (e *UnavailableSeatsError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("'%s'", n)
	}
	return fmt.Sprintf("The seat: [%s] cant be booked", strings.Join(quoted, ", "))
}

func (e *UnavailableSeatsError) StatusCode() int {
	return http.StatusBadRequest
}
