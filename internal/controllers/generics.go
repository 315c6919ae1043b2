package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/budget-planner/backend/internal/httputil"
	"github.com/budget-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// getResourceByID parses the ID and returns the resource with that ID.
//
// A malformed ID is a 400 error, a missing resource a 404 error
// with the message "<Resource> not found.".
func getResourceByID[T models.Model](c *gin.Context, co Controller, idString string) (resource T, e httperrors.Error) {
	id, e := httputil.ParseID(idString, resource.Self())
	if !e.Nil() {
		return
	}

	return findResource[T](c, co, id)
}

// findResource returns the resource with the ID.
func findResource[T models.Model](c *gin.Context, co Controller, id uint) (resource T, e httperrors.Error) {
	err := co.DB.First(&resource, id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return resource, notFound(resource)
	}

	if err != nil {
		return resource, httperrors.Parse(c, err)
	}

	return resource, httperrors.Error{}
}

func notFound(resource models.Model) httperrors.Error {
	return httperrors.Error{
		Status: http.StatusNotFound,
		Err:    fmt.Errorf("%s not found.", resource.Self()),
	}
}

// accessDenied is returned when the authenticated user does not own the wallet.
var accessDenied = httperrors.Error{
	Status: http.StatusForbidden,
	Err:    errors.New("Access denied."),
}

// ownWallet returns the wallet if the authenticated user owns it.
func ownWallet(c *gin.Context, wallet models.Wallet) httperrors.Error {
	if currentUser(c).ID != wallet.UserID {
		return accessDenied
	}

	return httperrors.Error{}
}

// respondCreated is the response for a successful creation that only returns a message.
func respondCreated(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, MessageResponse{Message: message})
}

// respondOK is the response for a successful update or deletion.
func respondOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}
