package models

import (
	"gorm.io/gorm"
)

// Item is a named allocation inside a budget.
type Item struct {
	DefaultModel
	Name     string `json:"name" example:"Flights"`
	Amount   int64  `json:"amount" gorm:"not null" example:"600"`
	BudgetID uint   `json:"budgetId" gorm:"index;not null" example:"2"`
}

func (Item) Self() string {
	return "Item"
}

// ItemAvailable is an item with the amount that is still available on it.
type ItemAvailable struct {
	ID              uint   `json:"id" example:"8"`
	Name            string `json:"name" example:"Flights"`
	Amount          int64  `json:"amount" example:"600"`
	AvailableAmount int64  `json:"available_amount" example:"150"` // Negated sum of the amounts of all expenses linked to the item
}

// ItemsWithAvailable returns all items of the budget in creation order.
//
// Expenses taking money from an item are stored with a negative amount,
// the available amount is therefore the negated sum of all linked expenses.
func (b Budget) ItemsWithAvailable(db *gorm.DB) ([]ItemAvailable, error) {
	items := make([]ItemAvailable, 0)

	err := db.
		Table("items").
		Select("items.id, items.name, items.amount, COALESCE(CAST(-SUM(expenses.amount) AS BIGINT), 0) AS available_amount").
		Joins("LEFT JOIN expenses ON expenses.item_id = items.id").
		Where("items.budget_id = ?", b.ID).
		Group("items.id, items.name, items.amount").
		Order("items.id ASC").
		Scan(&items).
		Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
