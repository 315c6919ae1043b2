package controllers

import (
	"errors"
	"net/http"

	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/budget-planner/backend/internal/httputil"
	"github.com/budget-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterWalletRoutes registers the routes for wallets with
// the RouterGroup that is passed.
func (co Controller) RegisterWalletRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", httputil.OptionsGet)
	r.GET("/:id", co.GetWallet)

	r.OPTIONS("/:id/addExpense", httputil.OptionsPost)
	r.POST("/:id/addExpense", co.Authenticated(), co.AddExpense)
}

type WalletResponse struct {
	UserName string                 `json:"user_name" example:"Jane Doe"`
	Balance  int64                  `json:"balance" example:"1250"` // Sum of the amounts of all expenses
	Expenses []models.WalletExpense `json:"expenses"`
}

var (
	errAmountNotInteger = httperrors.Error{Status: http.StatusBadRequest, Err: errors.New("Amount must be integer.")}
	errAmountZero       = httperrors.Error{Status: http.StatusUnprocessableEntity, Err: errors.New("Amount must be non-zero.")}
)

// parseNonZeroAmount parses an amount that must be a non-zero integer.
func parseNonZeroAmount(value string) (int64, httperrors.Error) {
	amount, err := httputil.ParseInteger(value)
	if err != nil {
		return 0, errAmountNotInteger
	}

	if amount == 0 {
		return 0, errAmountZero
	}

	return amount, httperrors.Error{}
}

// @Summary		Get wallet
// @Description	Returns the owner, the balance and all expenses of a wallet
// @Tags			Wallets
// @Produce		json
// @Param			id	path		string	true	"ID of the wallet"
// @Success		200	{object}	WalletResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/wallet/{id} [get]
func (co Controller) GetWallet(c *gin.Context) {
	wallet, e := getResourceByID[models.Wallet](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	owner, e := findResource[models.User](c, co, wallet.UserID)
	if !e.Nil() {
		if e.Status == http.StatusNotFound {
			e = notFound(wallet)
		}
		httperrors.Respond(c, e)
		return
	}

	expenses, err := wallet.WalletExpenses(co.DB)
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	c.JSON(http.StatusOK, WalletResponse{
		UserName: owner.Name,
		Balance:  models.Balance(expenses),
		Expenses: expenses,
	})
}

// @Summary		Add expense
// @Description	Adds an expense to a wallet of the authenticated user
// @Tags			Wallets
// @Produce		json
// @Security		BasicAuth
// @Param			id		path		string	true	"ID of the wallet"
// @Param			name	query		string	true	"Name of the expense"
// @Param			amount	query		int		true	"Amount, negative for spending"
// @Success		201		{object}	MessageResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		422		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Router			/v1/wallet/{id}/addExpense [post]
func (co Controller) AddExpense(c *gin.Context) {
	name, e := httputil.RequiredParam(c, "name")
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	amountParam, e := httputil.RequiredParam(c, "amount")
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	wallet, e := getResourceByID[models.Wallet](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	e = ownWallet(c, wallet)
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	amount, e := parseNonZeroAmount(amountParam)
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	expense := models.Expense{
		Name:     name,
		Amount:   amount,
		WalletID: wallet.ID,
	}

	err := co.DB.Create(&expense).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	respondCreated(c, "Expense successfully created.")
}
