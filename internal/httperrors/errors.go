package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/budget-planner/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrUnauthorized is the message sent when HTTP Basic authentication fails.
var ErrUnauthorized = errors.New("Unauthorized Access")

// New writes an error response with the status code and the message.
//
// msgAndArgs is either a single message or a format string followed by its arguments.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		} else {
			msg = fmt.Sprintf("%+v", msgAndArgs[0])
		}
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Message: msg,
	})
}

// Respond writes the error response for e.
func Respond(c *gin.Context, e Error) {
	New(c, e.Status, e.Error())
}

// Parse maps an error from the models package to an Error with the
// matching HTTP status.
//
// Errors that the user cannot act on are logged with the request ID and
// reported with a general message.
func Parse(c *gin.Context, err error) Error {
	if errors.Is(err, models.ErrResourceNotFound) {
		return Error{
			Status: http.StatusNotFound,
			Err:    err,
		}
	}

	if errors.Is(err, models.ErrLoginTaken) {
		return Error{
			Status: http.StatusForbidden,
			Err:    err,
		}
	}

	if errors.Is(err, models.ErrLoginFormat) || errors.Is(err, models.ErrPasswordTooShort) {
		return Error{
			Status: http.StatusUnprocessableEntity,
			Err:    err,
		}
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return Error{
		Status: http.StatusInternalServerError,
		Err:    fmt.Errorf("%w, please contact your server administrator. The request id is '%v'", models.ErrGeneral, requestid.Get(c)),
	}
}
