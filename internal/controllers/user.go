package controllers

import (
	"errors"
	"net/http"

	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/budget-planner/backend/internal/httputil"
	"github.com/budget-planner/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/getMe", httputil.OptionsGet)
	r.GET("/getMe", co.Authenticated(), co.GetMe)

	r.OPTIONS("/signUp", httputil.OptionsPost)
	r.POST("/signUp", co.SignUp)
}

type UserMeResponse struct {
	UserID   uint   `json:"user_id" example:"7"`
	UserName string `json:"user_name" example:"Jane Doe"`
	WalletID uint   `json:"wallet_id" example:"3"`
}

// Messages for failed sign ups, keyed by their cause
var signUpMessages = map[error]error{
	models.ErrLoginTaken:       errors.New("Username already exists."),
	models.ErrLoginFormat:      errors.New("Invalid username format. Username must be 5-20 characters long. Latin letters, digits and _ are allowed."),
	models.ErrPasswordTooShort: errors.New("Invalid password format. Password must be at least 8 characters long."),
}

// @Summary		Get the authenticated user
// @Description	Returns the authenticated user and the ID of their wallet
// @Tags			Users
// @Produce		json
// @Security		BasicAuth
// @Success		200	{object}	UserMeResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/user/getMe [get]
func (co Controller) GetMe(c *gin.Context) {
	user := currentUser(c)

	wallet, err := models.WalletForUser(co.DB, user.ID)
	if errors.Is(err, models.ErrResourceNotFound) {
		// Every user gets a wallet at sign up, a missing one is a server side problem
		log.Error().Str("request-id", requestid.Get(c)).Uint("user", user.ID).Msg("user has no wallet")
		httperrors.New(c, http.StatusInternalServerError, "%s, the request id is '%s'", models.ErrGeneral, requestid.Get(c))
		return
	}

	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	c.JSON(http.StatusOK, UserMeResponse{
		UserID:   user.ID,
		UserName: user.Name,
		WalletID: wallet.ID,
	})
}

// @Summary		Sign up
// @Description	Creates a user together with their wallet
// @Tags			Users
// @Produce		json
// @Param			name		query		string	true	"Display name"
// @Param			login		query		string	true	"Login, 5-20 latin letters, digits or _"
// @Param			password	query		string	true	"Password, at least 8 characters"
// @Success		201			{object}	MessageResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		403			{object}	httperrors.HTTPError
// @Failure		422			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Router			/v1/user/signUp [post]
func (co Controller) SignUp(c *gin.Context) {
	params := make(map[string]string, 3)
	for _, key := range []string{"name", "login", "password"} {
		value, e := httputil.RequiredParam(c, key)
		if !e.Nil() {
			httperrors.Respond(c, e)
			return
		}
		params[key] = value
	}

	err := models.CheckSignUp(co.DB, params["login"], params["password"])
	if err != nil {
		httperrors.Respond(c, signUpError(c, err))
		return
	}

	hash, err := co.Passwords.Hash(params["password"])
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	_, _, err = models.CreateUserWithWallet(co.DB, params["name"], params["login"], hash)
	if err != nil {
		httperrors.Respond(c, signUpError(c, err))
		return
	}

	respondCreated(c, "User successfully created.")
}

// signUpError replaces the message for validation errors with the one shown to users.
func signUpError(c *gin.Context, err error) httperrors.Error {
	e := httperrors.Parse(c, err)
	for cause, message := range signUpMessages {
		if errors.Is(err, cause) {
			e.Err = message
		}
	}

	return e
}
