package response

import (
	"errors"
	"net/http"

	"duka/internal/shared/validation"
	"duka/pkg/hasura"

	"github.com/gin-gonic/gin"
)

// Coded is implemented by errors that carry their own HTTP status
type Coded interface {
	error
	StatusCode() int
}

// RespondDetail writes {"detail": detail} with code
func RespondDetail(c *gin.Context, code int, detail interface{}) {
	c.JSON(code, DetailResponse{Detail: detail})
}

// RespondError maps err onto the error taxonomy and writes the response.
// It returns the status code written.
func RespondError(c *gin.Context, err error) int {
	var (
		remote *hasura.RemoteError
		verr   *validation.Error
		coded  Coded
	)

	switch {
	case errors.As(err, &verr):
		RespondDetail(c, http.StatusUnprocessableEntity, verr.Fields)
		return http.StatusUnprocessableEntity
	case errors.As(err, &remote):
		RespondDetail(c, http.StatusBadRequest, remote.Errors)
		return http.StatusBadRequest
	case errors.As(err, &coded):
		RespondDetail(c, coded.StatusCode(), coded.Error())
		return coded.StatusCode()
	case errors.Is(err, hasura.ErrTransport):
		RespondDetail(c, http.StatusBadGateway, "GraphQL endpoint is unreachable")
		return http.StatusBadGateway
	default:
		RespondDetail(c, http.StatusInternalServerError, "Internal server error")
		return http.StatusInternalServerError
	}
}
