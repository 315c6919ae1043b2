package controllers

import (
	"time"

	"github.com/budget-planner/backend/internal/models"
	"github.com/budget-planner/backend/internal/password"
	"gorm.io/gorm"
)

// Controller holds everything the request handlers need.
type Controller struct {
	DB        *gorm.DB
	Passwords password.Hasher

	// ProtectBudgetRoutes requires authentication for creating, updating
	// and deleting budgets and items.
	ProtectBudgetRoutes bool

	// Now and Invites default to time.Now and models.RandomInvite
	Now     func() time.Time
	Invites models.InviteGenerator
}

func (co Controller) now() time.Time {
	if co.Now != nil {
		return co.Now()
	}
	return time.Now()
}

func (co Controller) invites() models.InviteGenerator {
	if co.Invites != nil {
		return co.Invites
	}
	return models.RandomInvite
}

// MessageResponse is the body of responses that only confirm an action.
type MessageResponse struct {
	Message string `json:"message" example:"Expense updated."`
}

// IDResponse is the body of responses for created resources.
type IDResponse struct {
	ID uint `json:"id" example:"5"`
}
