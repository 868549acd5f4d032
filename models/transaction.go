package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeInvestment       = "investment"
	TransactionTypeDailyIncome      = "daily_income"
	TransactionTypeRecharge         = "recharge"
	TransactionTypeWithdrawal       = "withdrawal"
	TransactionTypeAdminAdjustment  = "admin_adjustment"
	TransactionTypeInvestmentRebate = "investment_rebate"
)

// TransactionStatusCompleted is the only status a written entry ever has;
// pending states live on Recharge and Withdrawal instead.
const TransactionStatusCompleted = "completed"

// Transaction is an append-only ledger entry. Rows are never updated or
// deleted; the daily accrual job uses them as its de-duplication key.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Type        string    `gorm:"index" json:"type"`
	Amount      float64   `json:"amount"`
	Status      string    `gorm:"default:'completed'" json:"status"`
	Description string    `json:"description"`
	ReferenceID string    `gorm:"index" json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}
