package models

import (
	"time"
)

// Model is implemented by all resources that can be looked up by ID.
type Model interface {
	Self() string
}

// DefaultModel is the base model for all models. IDs are assigned
// sequentially by the database.
type DefaultModel struct {
	ID uint `json:"id" gorm:"primaryKey" example:"42"`
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
