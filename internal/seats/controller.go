package seats

import (
	"context"

	"duka/internal/buses"
	"duka/internal/deliveries"
	"duka/internal/shared/validation"
	"duka/pkg/hasura"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service    Service
	validator  *validation.Validator
	deliveries deliveries.Service
}

func NewController(service Service, v *validation.Validator, log deliveries.Service) *Controller {
	return &Controller{service: service, validator: v, deliveries: log}
}

// CreateSeat handles the bus insert event
func (c *Controller) CreateSeat(ctx *gin.Context) {
	deliveries.EventHandler[buses.Row]{
		Validator:  c.validator,
		Deliveries: c.deliveries,
		Process: func(rc context.Context, event *hasura.EventTrigger[buses.Row]) (string, error) {
			row := event.Row()
			return c.service.AddSeats(rc, row.ID, int(row.TotalSeat)+1)
		},
	}.Handle(ctx)
}

// CreateTripBusSeat handles the trip_bus insert event
func (c *Controller) CreateTripBusSeat(ctx *gin.Context) {
	deliveries.EventHandler[TripBusRow]{
		Validator:  c.validator,
		Deliveries: c.deliveries,
		Process: func(rc context.Context, event *hasura.EventTrigger[TripBusRow]) (string, error) {
			row := event.Row()
			return c.service.AddTripBusSeats(rc, row.ID, row.Bus)
		},
	}.Handle(ctx)
}
