package controllers

import (
	"fmt"
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RunDailyAccrual credits one day's income to every active purchase whose
// window covers now, at most once per calendar day per purchase. Running it
// again the same day is a no-op; the existing daily_income transaction is
// the guard. It never changes purchase status or end dates.
//
// Invoked by the cron scheduler and by the admin daily-profit endpoint.
func RunDailyAccrual(now time.Time) (int, error) {
	var purchases []models.Purchase
	err := config.DB.
		Where("status = ?", models.PurchaseStatusActive).
		Where("purchase_date <= ? AND end_date >= ?", now, now).
		Find(&purchases).Error
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, purchase := range purchases {
		credited, err := accrueOnce(purchase, now)
		if err != nil {
			// Keep going; one bad row must not starve the rest of the book
			utils.LogError("Accrual failed for purchase %d: %v", purchase.ID, err)
			continue
		}
		if credited {
			processed++
		}
	}
	return processed, nil
}

func accrueOnce(purchase models.Purchase, now time.Time) (bool, error) {
	unlock := lockUser(purchase.UserID)
	defer unlock()

	credited := false
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		recorded, err := dailyIncomeRecorded(tx, purchase.ID, now)
		if err != nil {
			return err
		}
		if recorded {
			return nil
		}

		if err := creditBalance(tx, purchase.UserID, purchase.DailyIncome); err != nil {
			return err
		}

		description := fmt.Sprintf("Daily income from plan %d investment", purchase.ProductID)
		if _, err := appendTransaction(tx, purchase.UserID, models.TransactionTypeDailyIncome, purchase.DailyIncome, description, purchaseReference(purchase.ID)); err != nil {
			return err
		}
		credited = true
		return nil
	})
	return credited, err
}

// ProcessDailyProfit is the admin trigger for the daily accrual run
func ProcessDailyProfit(c *gin.Context) {
	processed, err := RunDailyAccrual(time.Now())
	if err != nil {
		utils.LogError("Daily profit run failed: %v", err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("Daily profit processed for %d investments", processed)
	utils.Success(c, gin.H{
		"message": fmt.Sprintf("Processed daily profit for %d investments", processed),
	})
}
