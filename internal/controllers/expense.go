package controllers

import (
	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/budget-planner/backend/internal/httputil"
	"github.com/budget-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", httputil.OptionsPutDelete)
	r.PUT("/:id", co.Authenticated(), co.UpdateExpense)
	r.DELETE("/:id", co.Authenticated(), co.DeleteExpense)
}

// ownExpense returns the expense for the ID in the path if it is on a
// wallet of the authenticated user.
func (co Controller) ownExpense(c *gin.Context) (models.Expense, httperrors.Error) {
	expense, e := getResourceByID[models.Expense](c, co, c.Param("id"))
	if !e.Nil() {
		return expense, e
	}

	wallet, e := findResource[models.Wallet](c, co, expense.WalletID)
	if !e.Nil() {
		return expense, e
	}

	return expense, ownWallet(c, wallet)
}

// @Summary		Update expense
// @Description	Updates the name and amount of an expense. Each value is only
// @Description	applied if it is present and valid, the others are still applied.
// @Tags			Expenses
// @Produce		json
// @Security		BasicAuth
// @Param			id		path		string	true	"ID of the expense"
// @Param			name	query		string	false	"New name"
// @Param			amount	query		int		false	"New amount, ignored if zero or not an integer"
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Router			/v1/expense/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	expense, e := co.ownExpense(c)
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	if name, ok := httputil.Param(c, "name"); ok {
		expense.Name = name
	}

	if value, ok := httputil.Param(c, "amount"); ok {
		if amount, e := parseNonZeroAmount(value); e.Nil() {
			expense.Amount = amount
		}
	}

	err := co.DB.Save(&expense).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	respondOK(c, "Expense updated.")
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Produce		json
// @Security		BasicAuth
// @Param			id	path		string	true	"ID of the expense"
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		403	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/expense/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	expense, e := co.ownExpense(c)
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	err := co.DB.Delete(&expense).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	respondOK(c, "Expense deleted.")
}
