package models

import (
	"math/rand"
	"time"

	"gorm.io/gorm"
)

const (
	// InviteLength is the number of letters in a budget invite.
	InviteLength = 5

	// InviteValidity is how long an invite can be resolved after the budget was created.
	InviteValidity = 7 * 24 * time.Hour

	// maxInviteAttempts bounds the number of candidates tried for a new invite.
	maxInviteAttempts = 100
)

const inviteLetters = "abcdefghijklmnopqrstuvwxyz"

// Budget is a pool of money shared between users. Users find a budget
// through its invite while the invite has not expired.
type Budget struct {
	DefaultModel
	Name          string    `json:"name" example:"Summer holiday"`
	Invite        string    `json:"invite" gorm:"index" example:"qwert"`
	InviteExpires time.Time `json:"invite_expires" example:"2024-07-08T15:04:05Z"`
}

func (Budget) Self() string {
	return "Budget"
}

// InviteGenerator returns invite candidates.
type InviteGenerator func() string

// RandomInvite returns InviteLength random lowercase letters.
func RandomInvite() string {
	invite := make([]byte, InviteLength)
	for i := range invite {
		invite[i] = inviteLetters[rand.Intn(len(inviteLetters))]
	}

	return string(invite)
}

// InviteInUse reports if any budget has the invite, expired or not.
func InviteInUse(db *gorm.DB, invite string) (bool, error) {
	var count int64
	err := db.Model(&Budget{}).Where("invite = ?", invite).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateBudget creates a budget with a fresh invite that is valid for
// InviteValidity from now.
//
// Candidates from generate are drawn until one is not held by any budget.
// After maxInviteAttempts candidates, ErrInviteExhausted is returned.
func CreateBudget(db *gorm.DB, name string, now time.Time, generate InviteGenerator) (Budget, error) {
	for i := 0; i < maxInviteAttempts; i++ {
		invite := generate()

		inUse, err := InviteInUse(db, invite)
		if err != nil {
			return Budget{}, err
		}

		if inUse {
			continue
		}

		budget := Budget{
			Name:          name,
			Invite:        invite,
			InviteExpires: now.Add(InviteValidity).In(time.UTC),
		}

		err = db.Create(&budget).Error
		if err != nil {
			return Budget{}, err
		}

		return budget, nil
	}

	return Budget{}, ErrInviteExhausted
}

// BudgetByInvite returns the budget for an invite if the invite has not
// expired at the given time.
func BudgetByInvite(db *gorm.DB, invite string, now time.Time) (Budget, error) {
	var budget Budget
	err := db.Where("invite = ?", invite).Order("id ASC").First(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	if !budget.InviteExpires.After(now) {
		return Budget{}, ErrResourceNotFound
	}

	return budget, nil
}

// BudgetExpense is an expense as listed for a budget.
type BudgetExpense struct {
	Amount   int64  `json:"amount" example:"-40"`
	Name     string `json:"name" example:"Budget item Flights transfer"`
	UserName string `json:"user_name" example:"Jane Doe"`
	WalletID uint   `json:"wallet_id" example:"3"`
	ItemID   *uint  `json:"-"`
}

// ItemIDs returns the IDs of all items of the budget.
func (b Budget) ItemIDs(db *gorm.DB) ([]uint, error) {
	ids := make([]uint, 0)
	err := db.Model(&Item{}).Where("budget_id = ?", b.ID).Order("id ASC").Pluck("id", &ids).Error
	return ids, err
}

// Expenses returns all expenses that concern the budget.
//
// All expenses are scanned in creation order. An expense linked to one of
// the budget's items is included and marks its wallet. Every later expense
// of a marked wallet is included as well, earlier ones are not.
func (b Budget) Expenses(db *gorm.DB) ([]BudgetExpense, error) {
	itemIDs, err := b.ItemIDs(db)
	if err != nil {
		return nil, err
	}

	var expenses []BudgetExpense
	err = db.
		Table("expenses").
		Select("expenses.amount, expenses.name, expenses.wallet_id, expenses.item_id, COALESCE(users.name, '') AS user_name").
		Joins("LEFT JOIN wallets ON wallets.id = expenses.wallet_id").
		Joins("LEFT JOIN users ON users.id = wallets.user_id").
		Order("expenses.id ASC").
		Scan(&expenses).
		Error
	if err != nil {
		return nil, err
	}

	return SelectBudgetExpenses(itemIDs, expenses), nil
}

// SelectBudgetExpenses runs a single pass over the expenses, which must be
// in creation order, and returns the ones that concern a budget with the
// given item IDs.
func SelectBudgetExpenses(itemIDs []uint, expenses []BudgetExpense) []BudgetExpense {
	items := make(map[uint]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		items[id] = struct{}{}
	}

	wallets := make(map[uint]struct{})
	selected := make([]BudgetExpense, 0)

	for _, e := range expenses {
		if _, ok := wallets[e.WalletID]; ok {
			selected = append(selected, e)
			continue
		}

		if e.ItemID == nil {
			continue
		}

		if _, ok := items[*e.ItemID]; ok {
			wallets[e.WalletID] = struct{}{}
			selected = append(selected, e)
		}
	}

	return selected
}
