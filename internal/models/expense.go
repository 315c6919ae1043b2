package models

import (
	"fmt"
)

// Expense is a signed amount on a wallet. Negative amounts are spending,
// positive amounts deposits. ItemID links the expense to a budget item.
type Expense struct {
	DefaultModel
	Amount   int64  `json:"amount" gorm:"not null" example:"-1200"`
	WalletID uint   `json:"walletId" gorm:"index;not null" example:"3"`
	ItemID   *uint  `json:"itemId" gorm:"index" example:"8"`
	Name     string `json:"name" example:"Train tickets"`
}

func (Expense) Self() string {
	return "Expense"
}

// TransferName is the name of expenses created when money is put into an item.
func TransferName(item Item) string {
	return fmt.Sprintf("Budget item %s transfer", item.Name)
}
