package models

import (
	"time"
)

// User represents a platform member. Two balances are tracked separately:
// RechargeBalance holds topped-up funds and can only be spent on plan
// purchases; Balance holds earned profit and is the only withdrawable pool.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `json:"name"`
	Username        string    `gorm:"uniqueIndex;not null" json:"username"`
	PhoneNumber     string    `gorm:"uniqueIndex;not null" json:"phone_number"`
	PasswordHash    string    `json:"-"`
	ReferralCode    string    `gorm:"uniqueIndex" json:"referral_code"`
	ReferredBy      *uint     `json:"referred_by"`
	Balance         float64   `gorm:"default:0" json:"balance"`
	RechargeBalance float64   `gorm:"default:0" json:"recharge_balance"`
	TotalInvested   float64   `gorm:"default:0" json:"total_invested"`
	TotalWithdrawn  float64   `gorm:"default:0" json:"total_withdrawn"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	IsAdmin         bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Product is an investment plan in the catalog.
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `json:"price"`
	DailyIncome float64 `json:"daily_income"`
	Duration    int     `json:"duration"`
	TotalReturn float64 `json:"total_return"`
	Profit      float64 `json:"profit"`
}
