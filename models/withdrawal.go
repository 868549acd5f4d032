package models

import (
	"time"
)

// Withdrawal status constants
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// Withdrawal methods
const (
	WithdrawalMethodBank = "bank"
	WithdrawalMethodUPI  = "upi"
)

// Withdrawal is a user's request to cash out profit balance. The balance is
// only debited when an admin approves; a rejected withdrawal never counts
// against the one-per-24h rule.
type Withdrawal struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"index" json:"user_id"`
	Amount            float64    `json:"amount"`
	Method            string     `json:"method"`
	BankName          string     `json:"bank_name,omitempty"`
	IfscCode          string     `json:"ifsc_code,omitempty"`
	AccountNumber     string     `json:"account_number,omitempty"`
	AccountHolderName string     `json:"account_holder_name,omitempty"`
	UpiID             string     `json:"upi_id,omitempty"`
	Status            string     `gorm:"default:'pending'" json:"status"`
	ProcessedAt       *time.Time `json:"processed_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
