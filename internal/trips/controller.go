package trips

import (
	"context"

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

// CreateTripHistory handles the trip_bus insert event
func (c *Controller) CreateTripHistory(ctx *gin.Context) {
	deliveries.EventHandler[Row]{
		Validator:  c.validator,
		Deliveries: c.deliveries,
		Process: func(rc context.Context, event *hasura.EventTrigger[Row]) (string, error) {
			row := event.Row()
			return c.service.AddTripHistory(rc, row.Bus, row.Trip)
		},
	}.Handle(ctx)
}
