package trips

import "net/http"

// TripBus is a bus assigned to a trip, read fresh per request
type TripBus struct {
	Bus      string   `json:"bus"`
	Trip     string   `json:"trip"`
	Status   string   `json:"status"`
	TripInfo TripInfo `json:"trip_info"`
}

type TripInfo struct {
	RouteInfo RouteInfo `json:"route_info"`
}

type RouteInfo struct {
	Price float64 `json:"price"`
}

// Price is the route price of the trip
func (t *TripBus) Price() float64 {
	return t.TripInfo.RouteInfo.Price
}

// Row is the new row image of a trip_bus insert event
type Row struct {
	ID   string `json:"id"`
	Bus  string `json:"bus" validate:"required"`
	Trip string `json:"trip" validate:"required"`
}

// NotFoundError is returned when trip_bus_by_pk is null
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "There is no trip_bus_id: " + e.ID
}

func (e *NotFoundError) StatusCode() int {
	return http.StatusBadRequest
}
