package controllers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/budget-planner/backend/internal/controllers"
	"github.com/budget-planner/backend/internal/models"
	"github.com/budget-planner/backend/test"
)

func (suite *TestSuiteStandard) TestGetWallet() {
	_, wallet := suite.createTestUser("jane_doe")
	budgetID := suite.createTestBudget("Holiday")
	itemID := suite.createTestItem(budgetID, "Flights", 600)

	suite.addTestExpense("jane_doe", wallet.ID, "Salary", 1000)
	suite.putTestMoney("jane_doe", itemID, wallet.ID, 200)
	suite.addTestExpense("jane_doe", wallet.ID, "Groceries", -63)

	r := test.Request(suite.controller, suite.T(), http.MethodGet, endpoint("/wallet/"+id(wallet.ID), nil), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.WalletResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Test jane_doe", response.UserName)
	suite.Assert().Equal(int64(1137), response.Balance)
	suite.Require().Len(response.Expenses, 3)

	suite.Assert().Equal("Salary", response.Expenses[0].Name)
	suite.Assert().Equal("", response.Expenses[0].BudgetName)

	suite.Assert().Equal("Budget item Flights transfer", response.Expenses[1].Name)
	suite.Assert().Equal(int64(200), response.Expenses[1].Amount)
	suite.Assert().Equal("Holiday", response.Expenses[1].BudgetName)

	suite.Assert().Equal("Groceries", response.Expenses[2].Name)
}

func (suite *TestSuiteStandard) TestGetWalletWithoutExpenses() {
	_, wallet := suite.createTestUser("jane_doe")

	r := test.Request(suite.controller, suite.T(), http.MethodGet, endpoint("/wallet/"+id(wallet.ID), nil), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"user_name": "Test jane_doe", "balance": 0, "expenses": []}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGetWalletDeletedBudget() {
	_, wallet := suite.createTestUser("jane_doe")
	budgetID := suite.createTestBudget("Holiday")
	itemID := suite.createTestItem(budgetID, "Flights", 600)
	suite.putTestMoney("jane_doe", itemID, wallet.ID, -40)

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, endpoint("/budget/"+id(budgetID), nil), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, endpoint("/wallet/"+id(wallet.ID), nil), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.WalletResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Expenses, 1)
	suite.Assert().Equal("", response.Expenses[0].BudgetName)
	suite.Assert().Equal(int64(-40), response.Balance)
}

func (suite *TestSuiteStandard) TestGetWalletInvalidID() {
	tests := []struct {
		id      string
		status  int
		message string
	}{
		{"4711", http.StatusNotFound, "Wallet not found."},
		{"0", http.StatusNotFound, "Wallet not found."},
		{"-3", http.StatusNotFound, "Wallet not found."},
		{"99999999999999999999", http.StatusNotFound, "Wallet not found."},
		{"abc", http.StatusBadRequest, "Wallet id must be integer."},
		{"1.5", http.StatusBadRequest, "Wallet id must be integer."},
	}

	for _, tt := range tests {
		suite.T().Run(tt.id, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, endpoint("/wallet/"+tt.id, nil), "")
			test.AssertHTTPStatus(t, &r, tt.status)
			suite.Assert().Equal(tt.message, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestAddExpense() {
	_, wallet := suite.createTestUser("jane_doe")

	r := test.Request(suite.controller, suite.T(), http.MethodPost, endpoint(fmt.Sprintf("/wallet/%d/addExpense", wallet.ID), url.Values{
		"name":   {"Rent"},
		"amount": {"-700"},
	}), "", auth("jane_doe"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Expense successfully created.", response.Message)

	var expense models.Expense
	suite.Require().Nil(suite.controller.DB.First(&expense).Error)
	suite.Assert().Equal("Rent", expense.Name)
	suite.Assert().Equal(int64(-700), expense.Amount)
	suite.Assert().Equal(wallet.ID, expense.WalletID)
	suite.Assert().Nil(expense.ItemID)
}

// TestAddExpenseRejected verifies the order in which the parameters
// are checked. No expense is created for any of the requests.
func (suite *TestSuiteStandard) TestAddExpenseRejected() {
	_, wallet := suite.createTestUser("jane_doe")
	_, otherWallet := suite.createTestUser("john_doe")

	tests := []struct {
		name    string
		wallet  string
		values  url.Values
		status  int
		message string
	}{
		{"Missing name", "4711", url.Values{"amount": {"abc"}}, http.StatusBadRequest, "The request is missing the required parameter 'name'."},
		{"Missing amount", "4711", url.Values{"name": {"Rent"}}, http.StatusBadRequest, "The request is missing the required parameter 'amount'."},
		{"Unknown wallet", "4711", url.Values{"name": {"Rent"}, "amount": {"abc"}}, http.StatusNotFound, "Wallet not found."},
		{"Invalid wallet ID", "abc", url.Values{"name": {"Rent"}, "amount": {"abc"}}, http.StatusBadRequest, "Wallet id must be integer."},
		{"Wallet of other user", id(otherWallet.ID), url.Values{"name": {"Rent"}, "amount": {"abc"}}, http.StatusForbidden, "Access denied."},
		{"Amount not an integer", id(wallet.ID), url.Values{"name": {"Rent"}, "amount": {"abc"}}, http.StatusBadRequest, "Amount must be integer."},
		{"Amount is a float", id(wallet.ID), url.Values{"name": {"Rent"}, "amount": {"12.5"}}, http.StatusBadRequest, "Amount must be integer."},
		{"Amount is zero", id(wallet.ID), url.Values{"name": {"Rent"}, "amount": {"0"}}, http.StatusUnprocessableEntity, "Amount must be non-zero."},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, endpoint(fmt.Sprintf("/wallet/%s/addExpense", tt.wallet), tt.values), "", auth("jane_doe"))
			test.AssertHTTPStatus(t, &r, tt.status)
			suite.Assert().Equal(tt.message, test.DecodeError(t, r.Body.Bytes()))
		})
	}

	suite.Assert().Equal(int64(0), suite.count(&models.Expense{}))
}

func (suite *TestSuiteStandard) TestAddExpenseUnauthorized() {
	_, wallet := suite.createTestUser("jane_doe")

	r := test.Request(suite.controller, suite.T(), http.MethodPost, endpoint(fmt.Sprintf("/wallet/%d/addExpense", wallet.ID), url.Values{
		"name":   {"Rent"},
		"amount": {"-700"},
	}), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	suite.Assert().Equal(int64(0), suite.count(&models.Expense{}))
}

func (suite *TestSuiteStandard) TestWalletOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/wallet/1", "OPTIONS, GET"},
		{"/wallet/1/addExpense", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodOptions, endpoint(tt.path, nil), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			suite.Assert().Equal(tt.allow, r.Header().Get("allow"))
		})
	}
}
