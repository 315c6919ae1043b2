package models_test

import (
	"github.com/budget-planner/backend/internal/models"
)

func (suite *TestSuiteStandard) TestWalletExpenses() {
	_, wallet := suite.createTestUser("ledger")
	budget := suite.createTestBudget("Flat")
	item := suite.createTestItem(budget.ID, "Rent", 900)

	suite.createTestExpense(wallet.ID, nil, "Salary", 2500)
	suite.createTestExpense(wallet.ID, &item.ID, "Budget item Rent transfer", -900)

	expenses, err := wallet.WalletExpenses(suite.db)
	suite.Require().NoError(err)
	suite.Require().Len(expenses, 2)

	suite.Assert().Equal("Salary", expenses[0].Name)
	suite.Assert().Equal("", expenses[0].BudgetName)
	suite.Assert().Equal("Budget item Rent transfer", expenses[1].Name)
	suite.Assert().Equal("Flat", expenses[1].BudgetName)

	suite.Assert().Equal(int64(1600), models.Balance(expenses))
}

func (suite *TestSuiteStandard) TestWalletExpensesDanglingItem() {
	_, wallet := suite.createTestUser("dangling")
	budget := suite.createTestBudget("Gone")
	item := suite.createTestItem(budget.ID, "Soon deleted", 10)

	suite.createTestExpense(wallet.ID, &item.ID, "Linked", -5)
	suite.Require().NoError(suite.db.Delete(&item).Error)

	expenses, err := wallet.WalletExpenses(suite.db)
	suite.Require().NoError(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().Equal("", expenses[0].BudgetName)
}

func (suite *TestSuiteStandard) TestWalletExpensesEmpty() {
	_, wallet := suite.createTestUser("empty_wallet")

	expenses, err := wallet.WalletExpenses(suite.db)
	suite.Require().NoError(err)
	suite.Assert().Empty(expenses)
	suite.Assert().Equal(int64(0), models.Balance(expenses))
}

func (suite *TestSuiteStandard) TestBalanceIsOrderIndependent() {
	amounts := []int64{-30, 120, -7, 55, -1}

	forward := make([]models.WalletExpense, 0)
	backward := make([]models.WalletExpense, 0)
	for i := range amounts {
		forward = append(forward, models.WalletExpense{Amount: amounts[i]})
		backward = append(backward, models.WalletExpense{Amount: amounts[len(amounts)-1-i]})
	}

	suite.Assert().Equal(int64(137), models.Balance(forward))
	suite.Assert().Equal(models.Balance(forward), models.Balance(backward))
}
