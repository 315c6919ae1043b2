package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/gin-gonic/gin"
)

var ErrNotAnInteger = errors.New("the value is not an integer")

// Param returns the value of a request parameter. The query string is
// checked first, then url-encoded or multipart form fields.
func Param(c *gin.Context, key string) (string, bool) {
	if value, ok := c.GetQuery(key); ok {
		return value, true
	}

	return c.GetPostForm(key)
}

// RequiredParam returns the value of a request parameter or a 400 error
// if the parameter is missing.
func RequiredParam(c *gin.Context, key string) (string, httperrors.Error) {
	value, ok := Param(c, key)
	if !ok {
		return "", httperrors.Error{
			Status: http.StatusBadRequest,
			Err:    fmt.Errorf("The request is missing the required parameter '%s'.", key),
		}
	}

	return value, httperrors.Error{}
}

// ParseInteger parses a base 10 integer. Surrounding whitespace and a
// leading sign are accepted.
func ParseInteger(s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrNotAnInteger, s)
	}

	return i, nil
}

// ParseID parses a resource ID from a path parameter.
//
// Values that are not integers are a 400 error with the message
// "<resource> id must be integer.". Integers that can never be an ID,
// like negative numbers, parse to 0 which does not match any resource.
func ParseID(s, resource string) (uint, httperrors.Error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, httperrors.Error{}
	}

	if err != nil {
		return 0, httperrors.Error{
			Status: http.StatusBadRequest,
			Err:    fmt.Errorf("%s id must be integer.", resource),
		}
	}

	if i <= 0 {
		return 0, httperrors.Error{}
	}

	return uint(i), httperrors.Error{}
}
