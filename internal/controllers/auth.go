package controllers

import (
	"errors"
	"net/http"

	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/budget-planner/backend/internal/models"
	"github.com/budget-planner/backend/internal/password"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const userKey = "budget-planner/user"

// Authenticated verifies HTTP Basic credentials. The authenticated user
// is available to the following handlers through currentUser.
func (co Controller) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		login, pw, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c)
			return
		}

		user, err := models.UserByLogin(co.DB, login)
		if errors.Is(err, models.ErrResourceNotFound) {
			unauthorized(c)
			return
		}

		if err != nil {
			httperrors.Respond(c, httperrors.Parse(c, err))
			c.Abort()
			return
		}

		match, err := password.Verify(pw, user.PasswordHash)
		if err != nil {
			log.Warn().Str("request-id", requestid.Get(c)).Uint("user", user.ID).Err(err).Msg("stored password hash cannot be verified")
		}

		if !match {
			unauthorized(c)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="Authentication Required"`)
	httperrors.New(c, http.StatusUnauthorized, httperrors.ErrUnauthorized.Error())
	c.Abort()
}

// currentUser returns the user set by Authenticated.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}

// protected returns the handlers for a route that is only authenticated
// when budget routes are protected.
func (co Controller) protected(handler gin.HandlerFunc) []gin.HandlerFunc {
	if co.ProtectBudgetRoutes {
		return []gin.HandlerFunc{co.Authenticated(), handler}
	}

	return []gin.HandlerFunc{handler}
}
