package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/budget-planner/backend/internal/controllers"
	"github.com/budget-planner/backend/internal/models"
	"github.com/budget-planner/backend/test"
)

// createTestExpense adds an expense for the user and returns it.
func (suite *TestSuiteStandard) createTestExpense(login string, walletID uint, name string, amount int64) models.Expense {
	suite.addTestExpense(login, walletID, name, amount)

	var expense models.Expense
	suite.Require().Nil(suite.controller.DB.Where("wallet_id = ?", walletID).Order("id DESC").First(&expense).Error)
	return expense
}

func (suite *TestSuiteStandard) reloadExpense(expense models.Expense) models.Expense {
	var reloaded models.Expense
	suite.Require().Nil(suite.controller.DB.First(&reloaded, expense.ID).Error)
	return reloaded
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	_, wallet := suite.createTestUser("jane_doe")
	expense := suite.createTestExpense("jane_doe", wallet.ID, "Rent", -700)

	r := test.Request(suite.controller, suite.T(), http.MethodPut, endpoint("/expense/"+id(expense.ID), url.Values{
		"name":   {"Rent March"},
		"amount": {"-720"},
	}), "", auth("jane_doe"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Expense updated.", response.Message)

	updated := suite.reloadExpense(expense)
	suite.Assert().Equal("Rent March", updated.Name)
	suite.Assert().Equal(int64(-720), updated.Amount)
}

// TestUpdateExpensePartial verifies that every value is applied on
// its own. Invalid amounts are ignored and do not fail the request.
func (suite *TestSuiteStandard) TestUpdateExpensePartial() {
	_, wallet := suite.createTestUser("jane_doe")
	expense := suite.createTestExpense("jane_doe", wallet.ID, "Rent", -700)

	tests := []struct {
		name       string
		values     url.Values
		wantName   string
		wantAmount int64
	}{
		{"Nothing", url.Values{}, "Rent", -700},
		{"Name only", url.Values{"name": {"Flat"}}, "Flat", -700},
		{"Amount only", url.Values{"amount": {"-650"}}, "Flat", -650},
		{"Invalid amount", url.Values{"name": {"Rent"}, "amount": {"abc"}}, "Rent", -650},
		{"Zero amount", url.Values{"amount": {"0"}}, "Rent", -650},
		{"Positive amount", url.Values{"amount": {"25"}}, "Rent", 25},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPut, endpoint("/expense/"+id(expense.ID), tt.values), "", auth("jane_doe"))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			updated := suite.reloadExpense(expense)
			suite.Assert().Equal(tt.wantName, updated.Name)
			suite.Assert().Equal(tt.wantAmount, updated.Amount)
			suite.Assert().Equal(wallet.ID, updated.WalletID)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateExpenseRejected() {
	_, wallet := suite.createTestUser("jane_doe")
	suite.createTestUser("john_doe")
	expense := suite.createTestExpense("jane_doe", wallet.ID, "Rent", -700)

	tests := []struct {
		name    string
		login   string
		id      string
		status  int
		message string
	}{
		{"Other user", "john_doe", id(expense.ID), http.StatusForbidden, "Access denied."},
		{"Unknown expense", "jane_doe", "4711", http.StatusNotFound, "Expense not found."},
		{"Invalid ID", "jane_doe", "abc", http.StatusBadRequest, "Expense id must be integer."},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPut, endpoint("/expense/"+tt.id, url.Values{"name": {"Stolen"}}), "", auth(tt.login))
			test.AssertHTTPStatus(t, &r, tt.status)
			suite.Assert().Equal(tt.message, test.DecodeError(t, r.Body.Bytes()))
		})
	}

	suite.Assert().Equal("Rent", suite.reloadExpense(expense).Name)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	_, wallet := suite.createTestUser("jane_doe")
	expense := suite.createTestExpense("jane_doe", wallet.ID, "Rent", -700)

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, endpoint("/expense/"+id(expense.ID), nil), "", auth("jane_doe"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Expense deleted.", response.Message)
	suite.Assert().Equal(int64(0), suite.count(&models.Expense{}))

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, endpoint("/expense/"+id(expense.ID), nil), "", auth("jane_doe"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("Expense not found.", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestDeleteExpenseOtherUser() {
	_, wallet := suite.createTestUser("jane_doe")
	suite.createTestUser("john_doe")
	expense := suite.createTestExpense("jane_doe", wallet.ID, "Rent", -700)

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, endpoint("/expense/"+id(expense.ID), nil), "", auth("john_doe"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
	suite.Assert().Equal(int64(1), suite.count(&models.Expense{}))
}

func (suite *TestSuiteStandard) TestExpenseUnauthorized() {
	_, wallet := suite.createTestUser("jane_doe")
	expense := suite.createTestExpense("jane_doe", wallet.ID, "Rent", -700)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(suite.controller, t, method, endpoint("/expense/"+id(expense.ID), url.Values{"name": {"Flat"}}), "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}

	suite.Assert().Equal("Rent", suite.reloadExpense(expense).Name)
}

func (suite *TestSuiteStandard) TestExpenseOptions() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, endpoint("/expense/1", nil), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, PUT, DELETE", r.Header().Get("allow"))
}
