package models

import (
	"time"
)

// Purchase status constants
const (
	PurchaseStatusActive    = "active"
	PurchaseStatusCompleted = "completed"
)

// Purchase is a user's subscription to a product. DailyIncome is snapshotted
// from the product at purchase time and never re-read afterwards. EndDate is
// purchase_date + duration days; only the rebate operation may shorten it.
type Purchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	ProductID    uint      `gorm:"index" json:"product_id"`
	PurchaseDate time.Time `json:"purchase_date"`
	EndDate      time.Time `json:"end_date"`
	DailyIncome  float64   `json:"daily_income"`
	Status       string    `gorm:"default:'active'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
