package controllers

import (
	"strconv"
	"sync"
	"time"

	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"gorm.io/gorm"
)

// Balance mutations are read-validate-write sequences, so two concurrent
// requests for the same user could both pass their balance check before
// either debit lands. Every balance-affecting operation therefore takes the
// user's lock for the duration of its database transaction.
var userLocks sync.Map

// lockUser acquires the per-user mutex and returns the unlock function.
func lockUser(userID uint) func() {
	v, _ := userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// appendTransaction writes an immutable ledger entry. Entries are only ever
// inserted, never updated or deleted.
func appendTransaction(tx *gorm.DB, userID uint, txType string, amount float64, description, referenceID string) (*models.Transaction, error) {
	transaction := models.Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Status:      models.TransactionStatusCompleted,
		Description: description,
		ReferenceID: referenceID,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// purchaseReference is the transaction reference for a purchase row.
func purchaseReference(purchaseID uint) string {
	return strconv.FormatUint(uint64(purchaseID), 10)
}

// hasPurchaseThisMonth reports whether the user already bought this product
// within the current calendar month.
func hasPurchaseThisMonth(db *gorm.DB, userID, productID uint, now time.Time) (bool, error) {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfNextMonth := startOfMonth.AddDate(0, 1, 0)

	var count int64
	err := db.Model(&models.Purchase{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Where("purchase_date >= ? AND purchase_date < ?", startOfMonth, startOfNextMonth).
		Count(&count).Error
	return count > 0, err
}

// hasRecentWithdrawal reports whether a non-rejected withdrawal exists for
// the user within the preceding 24 hours.
func hasRecentWithdrawal(db *gorm.DB, userID uint, now time.Time) (bool, error) {
	cutoff := now.Add(-utils.WithdrawalCooldownHours * time.Hour)

	var count int64
	err := db.Model(&models.Withdrawal{}).
		Where("user_id = ? AND status <> ?", userID, models.WithdrawalStatusRejected).
		Where("created_at >= ?", cutoff).
		Count(&count).Error
	return count > 0, err
}

// dailyIncomeRecorded reports whether an accrual transaction already exists
// for this purchase on the given calendar day. This is the idempotence
// guard for the daily accrual run.
func dailyIncomeRecorded(db *gorm.DB, purchaseID uint, day time.Time) (bool, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var count int64
	err := db.Model(&models.Transaction{}).
		Where("reference_id = ? AND type = ?", purchaseReference(purchaseID), models.TransactionTypeDailyIncome).
		Where("created_at >= ? AND created_at < ?", startOfDay, endOfDay).
		Count(&count).Error
	return count > 0, err
}

// creditBalance adds to the user's withdrawable profit balance.
func creditBalance(tx *gorm.DB, userID uint, amount float64) error {
	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount)).Error
}

// debitBalance subtracts from the profit balance. Callers validate
// sufficiency under the user lock before calling.
func debitBalance(tx *gorm.DB, userID uint, amount float64) error {
	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount)).Error
}

// creditRechargeBalance adds to the non-withdrawable funding pool.
func creditRechargeBalance(tx *gorm.DB, userID uint, amount float64) error {
	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("recharge_balance", gorm.Expr("recharge_balance + ?", amount)).Error
}
