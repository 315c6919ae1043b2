package models

import (
	"gorm.io/gorm"
)

// Wallet is the ledger of a user. Its balance is the sum of all its expenses.
type Wallet struct {
	DefaultModel
	UserID   uint      `json:"userId" gorm:"index;not null" example:"7"`
	Expenses []Expense `json:"-"`
}

func (Wallet) Self() string {
	return "Wallet"
}

// WalletExpense is an expense of a wallet together with the name of the
// budget its item belongs to.
type WalletExpense struct {
	ID         uint   `json:"id" example:"12"`
	Amount     int64  `json:"amount" example:"-250"`
	Name       string `json:"name" example:"Groceries"`
	BudgetName string `json:"budget_name" example:"Holiday"` // Empty if the expense is not linked to an item of an existing budget
}

// WalletForUser returns the first wallet of the user.
func WalletForUser(db *gorm.DB, userID uint) (Wallet, error) {
	var wallet Wallet
	err := db.Where("user_id = ?", userID).Order("id ASC").First(&wallet).Error
	return wallet, err
}

// WalletExpenses returns all expenses of the wallet in creation order.
//
// Budget names are resolved with joins. References to deleted items or
// budgets resolve to an empty budget name.
func (w Wallet) WalletExpenses(db *gorm.DB) ([]WalletExpense, error) {
	expenses := make([]WalletExpense, 0)

	err := db.
		Table("expenses").
		Select("expenses.id, expenses.amount, expenses.name, COALESCE(budgets.name, '') AS budget_name").
		Joins("LEFT JOIN items ON items.id = expenses.item_id").
		Joins("LEFT JOIN budgets ON budgets.id = items.budget_id").
		Where("expenses.wallet_id = ?", w.ID).
		Order("expenses.id ASC").
		Scan(&expenses).
		Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// Balance returns the sum of the amounts of the expenses.
func Balance(expenses []WalletExpense) int64 {
	var balance int64
	for _, e := range expenses {
		balance += e.Amount
	}

	return balance
}
