package buses

import (
	"net/http"
	"strconv"
)

// Bus is the slice of a bus row this service needs: its driver and seats
type Bus struct {
	ID     string    `json:"id"`
	Driver string    `json:"driver"`
	Seats  []SeatRef `json:"seats"`
}

// SeatRef is a seat id belonging to a bus
type SeatRef struct {
	ID string `json:"id"`
}

// Row is the new row image of a bus insert event
type Row struct {
	ID        string    `json:"id" validate:"required"`
	TotalSeat SeatCount `json:"total_seat" validate:"min=1"`
}

// SeatCount accepts total_seat as a JSON number or numeric string
type SeatCount int

func (n *SeatCount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*n = SeatCount(v)
	return nil
}

// NotFoundError is returned when bus_by_pk is null
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "There is no bus_id: " + e.ID
}

func (e *NotFoundError) StatusCode() int {
	return http.StatusBadRequest
}
