package models

import (
	"time"
)

// Recharge status constants. The admin verify endpoint accepts
// approve/reject actions but rows only ever carry these three states.
const (
	RechargeStatusPending   = "pending"
	RechargeStatusCompleted = "completed"
	RechargeStatusFailed    = "failed"
)

// Recharge is a user's request to top up their recharge balance. The UTR
// (ReferenceID) is attached by the user after payment and is the key the
// admin resolves the request by.
type Recharge struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index" json:"user_id"`
	Amount      float64    `json:"amount"`
	Status      string     `gorm:"default:'pending'" json:"status"`
	ReferenceID string     `gorm:"index" json:"reference_id"`
	ProcessedAt *time.Time `json:"processed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
