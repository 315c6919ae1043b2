package controllers

import (
	"errors"
	"net/http"

	"github.com/budget-planner/backend/internal/httperrors"
	"github.com/budget-planner/backend/internal/httputil"
	"github.com/budget-planner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterItemRoutes registers the routes for items with
// the RouterGroup that is passed.
func (co Controller) RegisterItemRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", httputil.OptionsPutDelete)
	r.PUT("/:id", co.protected(co.UpdateItem)...)
	r.DELETE("/:id", co.protected(co.DeleteItem)...)

	r.OPTIONS("/:id/putMoney", httputil.OptionsPost)
	r.POST("/:id/putMoney", co.Authenticated(), co.PutMoney)
}

var (
	errAmountNotPositive = httperrors.Error{Status: http.StatusUnprocessableEntity, Err: errors.New("Amount must be positive.")}
	errWalletIDParam     = httperrors.Error{Status: http.StatusBadRequest, Err: errors.New("Wallet id is either not specified or not an integer.")}
)

// parsePositiveAmount parses an amount that must be a positive integer.
func parsePositiveAmount(value string) (int64, httperrors.Error) {
	amount, err := httputil.ParseInteger(value)
	if err != nil {
		return 0, errAmountNotInteger
	}

	if amount <= 0 {
		return 0, errAmountNotPositive
	}

	return amount, httperrors.Error{}
}

// @Summary		Put money into item
// @Description	Creates an expense on a wallet of the authenticated user that is linked to the item.
// @Description	The amount is stored as given, a negative amount makes money available on the item.
// @Tags			Items
// @Produce		json
// @Security		BasicAuth
// @Param			id			path		string	true	"ID of the item"
// @Param			wallet_id	query		int		true	"ID of the wallet to book the expense on"
// @Param			amount		query		int		true	"Amount, must not be zero"
// @Success		201			{object}	MessageResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		403			{object}	httperrors.HTTPError
// @Failure		404			{object}	httperrors.HTTPError
// @Failure		422			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Router			/v1/item/{id}/putMoney [post]
func (co Controller) PutMoney(c *gin.Context) {
	item, e := getResourceByID[models.Item](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	walletParam, _ := httputil.Param(c, "wallet_id")
	walletID, err := httputil.ParseInteger(walletParam)
	if err != nil {
		httperrors.Respond(c, errWalletIDParam)
		return
	}

	// IDs are positive, anything else can never match a wallet
	if walletID <= 0 {
		httperrors.Respond(c, notFound(models.Wallet{}))
		return
	}

	wallet, e := findResource[models.Wallet](c, co, uint(walletID))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	e = ownWallet(c, wallet)
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	amountParam, _ := httputil.Param(c, "amount")
	amount, e := parseNonZeroAmount(amountParam)
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	expense := models.Expense{
		Name:     models.TransferName(item),
		Amount:   amount,
		WalletID: wallet.ID,
		ItemID:   &item.ID,
	}

	err = co.DB.Create(&expense).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	respondCreated(c, "Money put.")
}

// @Summary		Update item
// @Description	Updates the name and amount of an item. Each value is only
// @Description	applied if it is present and valid, the others are still applied.
// @Tags			Items
// @Produce		json
// @Param			id		path		string	true	"ID of the item"
// @Param			name	query		string	false	"New name"
// @Param			amount	query		int		false	"New amount, ignored unless it is a positive integer"
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Router			/v1/item/{id} [put]
func (co Controller) UpdateItem(c *gin.Context) {
	item, e := getResourceByID[models.Item](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	if name, ok := httputil.Param(c, "name"); ok {
		item.Name = name
	}

	if value, ok := httputil.Param(c, "amount"); ok {
		if amount, e := parsePositiveAmount(value); e.Nil() {
			item.Amount = amount
		}
	}

	err := co.DB.Save(&item).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	respondOK(c, "Item updated.")
}

// @Summary		Delete item
// @Description	Deletes an item. Expenses linked to it are kept.
// @Tags			Items
// @Produce		json
// @Param			id	path		string	true	"ID of the item"
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/item/{id} [delete]
func (co Controller) DeleteItem(c *gin.Context) {
	item, e := getResourceByID[models.Item](c, co, c.Param("id"))
	if !e.Nil() {
		httperrors.Respond(c, e)
		return
	}

	err := co.DB.Delete(&item).Error
	if err != nil {
		httperrors.Respond(c, httperrors.Parse(c, err))
		return
	}

	respondOK(c, "Item deleted.")
}
