package deliveries

import (
	"context"
	"fmt"
	"net/http"

	"duka/internal/shared/utils/response"
	"duka/internal/shared/validation"
	"duka/pkg/hasura"

	"github.com/gin-gonic/gin"
)

// EventHandler binds, validates, dedupes and records one event-trigger
// endpoint. Process returns the success message.
type EventHandler[T any] struct {
	Validator  *validation.Validator
	Deliveries Service
	Process    func(ctx context.Context, event *hasura.EventTrigger[T]) (string, error)
}

// Handle is the gin handler
func (h EventHandler[T]) Handle(c *gin.Context) {
	var event hasura.EventTrigger[T]
	if err := c.ShouldBindJSON(&event); err != nil {
		response.RespondError(c, validation.DecodeError(err))
		return
	}
	if err := h.Validator.Struct(&event); err != nil {
		response.RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	endpoint := c.FullPath()

	if h.Deliveries.AlreadyProcessed(ctx, event.ID, endpoint) {
		response.RespondDetail(c, http.StatusOK, fmt.Sprintf("Event %s already processed", event.ID))
		return
	}

	message, err := h.Process(ctx, &event)

	code := http.StatusOK
	if err != nil {
		code = response.RespondError(c, err)
		message = err.Error()
		_ = c.Error(err)
	} else {
		response.RespondDetail(c, code, message)
	}

	h.Deliveries.Record(ctx, Delivery{
		EventID:     event.ID,
		Endpoint:    endpoint,
		TriggerName: event.Trigger.Name,
		SourceTable: event.Table.Schema + "." + event.Table.Name,
		StatusCode:  code,
		Message:     message,
	})
}
