package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/budget-planner/backend/internal/httputil"
	"github.com/budget-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsPost)
		r.POST("", co.protected(co.CreateBudget)...)
	}

	// Invites
	{
		r.OPTIONS("/resolveInvite/:code", httputil.OptionsGet)
		r.GET("/resolveInvite/:code", co.ResolveInvite)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", co.GetBudget)
		r.PUT("/:id", co.protected(co.UpdateBudget)...)
		r.DELETE("/:id", co.protected(co.DeleteBudget)...)

		r.OPTIONS("/:id/getExpenses", httputil.OptionsGet)
		r.GET("/:id/getExpenses", co.GetBudgetExpenses)

		r.OPTIONS("/:id/addItem", httputil.OptionsPost)
		r.POST("/:id/addItem", co.protected(co.AddItem)...)
	}
}

type BudgetResponse struct {
	Name          string                 `json:"name" example:"Summer holiday"`
	Invite        string                 `json:"invite" example:"qwert"`
	InviteExpires time.Time              `json:"invite_expires" example:"2024-07-08T15:04:05Z"`
	Items         []models.ItemAvailable `json:"items"`
}

var errInvalidInvite = httperrors.Error{
	Status: http.StatusNotFound,
	Err:    errors.New("Invalid budget invite."),
}

// @Summary		Create budget
// @Description	Creates a budget with an invite that is valid for seven days
// @Tags			Budgets
// @Produce		json
// @Param			name	query		string	true	"Name of the budget"
// @Success		201		{object}	IDResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Router			/v1/budget [post]
func (co Controller) CreateBudget(c *gin.Context) {
	name, e := httputil.RequiredParam(c, "name")
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	budget, err := models.CreateBudget(co.DB, name, co.now(), co.invites())
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: budget.ID})
}

// @Summary		Resolve invite
// @Description	Returns the ID of the budget for an invite that has not expired
// @Tags			Budgets
// @Produce		json
// @Param			code	path		string	true	"Invite"
// @Success		200		{object}	IDResponse
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Router			/v1/budget/resolveInvite/{code} [get]
func (co Controller) ResolveInvite(c *gin.Context) {
	budget, err := models.BudgetByInvite(co.DB, c.Param("code"), co.now())
	if errors.Is(err, models.ErrResourceNotFound) {
		httperrors.Respond(c, errInvalidInvite)
		return
	}

	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	c.JSON(http.StatusOK, IDResponse{ID: budget.ID})
}

// @Summary		Get budget
// @Description	Returns a budget with all its items and the amount still available on each item
// @Tags			Budgets
// @Produce		json
// @Param			id	path		string	true	"ID of the budget"
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/budget/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, e := getResourceByID[models.Budget](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	items, err := budget.ItemsWithAvailable(co.DB)
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{
		Name:          budget.Name,
		Invite:        budget.Invite,
		InviteExpires: budget.InviteExpires,
		Items:         items,
	})
}

// @Summary		Get budget expenses
// @Description	Returns the expenses concerning a budget. An expense on one of the budget's items
// @Description	is included together with every later expense of the same wallet.
// @Tags			Budgets
// @Produce		json
// @Param			id	path		string	true	"ID of the budget"
// @Success		200	{array}		models.BudgetExpense
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/budget/{id}/getExpenses [get]
func (co Controller) GetBudgetExpenses(c *gin.Context) {
	budget, e := getResourceByID[models.Budget](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	expenses, err := budget.Expenses(co.DB)
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// @Summary		Update budget
// @Description	Renames a budget
// @Tags			Budgets
// @Produce		json
// @Param			id		path		string	true	"ID of the budget"
// @Param			name	query		string	true	"New name"
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Router			/v1/budget/{id} [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, e := getResourceByID[models.Budget](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	name, e := httputil.RequiredParam(c, "name")
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	err := co.DB.Model(&budget).Update("name", name).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	respondOK(c, "Budget updated.")
}

// @Summary		Delete budget
// @Description	Deletes a budget. Its items are kept.
// @Tags			Budgets
// @Produce		json
// @Param			id	path		string	true	"ID of the budget"
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/budget/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	budget, e := getResourceByID[models.Budget](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	err := co.DB.Delete(&budget).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	respondOK(c, "Budget deleted.")
}

// @Summary		Add item
// @Description	Adds an item to a budget
// @Tags			Budgets
// @Produce		json
// @Param			id		path		string	true	"ID of the budget"
// @Param			name	query		string	true	"Name of the item"
// @Param			amount	query		int		true	"Allocated amount, must be positive"
// @Success		201		{object}	IDResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		422		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Router			/v1/budget/{id}/addItem [post]
func (co Controller) AddItem(c *gin.Context) {
	budget, e := getResourceByID[models.Budget](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	amountParam, e := httputil.RequiredParam(c, "amount")
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	amount, e := parsePositiveAmount(amountParam)
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	name, e := httputil.RequiredParam(c, "name")
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	item := models.Item{
		Name:     name,
		Amount:   amount,
		BudgetID: budget.ID,
	}

	err := co.DB.Create(&item).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: item.ID})
}
