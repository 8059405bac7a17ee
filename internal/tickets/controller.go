package tickets

import (
	"net/http"

	"duka/internal/shared/middleware"
	"duka/internal/shared/utils/response"
	"duka/internal/shared/validation"
	"duka/pkg/hasura"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service   Service
	validator *validation.Validator
}

func NewController(service Service, v *validation.Validator) *Controller {
	RegisterValidations(v)
	return &Controller{service: service, validator: v}
}

// CreateTicket handles the create-ticket action
func (c *Controller) CreateTicket(ctx *gin.Context) {
	var action hasura.Action[CreateTicketInput]
	if err := ctx.ShouldBindJSON(&action); err != nil {
		response.RespondError(ctx, validation.DecodeError(err))
		return
	}
	if err := c.validator.Struct(&action); err != nil {
		response.RespondError(ctx, err)
		return
	}

	data := action.Input.Data
	message, err := c.service.CreateTicket(ctx.Request.Context(), CreateTicketCommand{
		TripBusID:     data.TripBus,
		SeatIDs:       data.TripBusSeat,
		Passengers:    data.Passengers,
		PaymentMethod: data.PaymentMethod,
		Role:          action.SessionVariables.Role,
		UserID:        middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = ctx.Error(err)
		response.RespondError(ctx, err)
		return
	}

	response.RespondDetail(ctx, http.StatusOK, message)
}
