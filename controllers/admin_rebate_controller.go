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

// RebateRequest represents the rebate trigger body
type RebateRequest struct {
	Confirm bool `json:"confirm"`
}

// ProcessInvestmentRebate fast-forwards every active purchase by one day:
// it credits one day's income and shortens the end date by one calendar day,
// completing purchases that run out of days.
//
// Unlike the daily accrual there is deliberately NO idempotence guard:
// calling this twice pays out twice and shortens schedules by two days.
// That is why the request must carry an explicit confirm flag.
func ProcessInvestmentRebate(c *gin.Context) {
	var req RebateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		utils.BadRequest(c, "Rebate pays out immediately on every call; set confirm to true to proceed")
		return
	}

	now := time.Now()

	var purchases []models.Purchase
	err := config.DB.
		Where("status = ? AND end_date > ?", models.PurchaseStatusActive, now).
		Find(&purchases).Error
	if err != nil {
		utils.LogError("Failed to fetch active purchases: %v", err)
		utils.InternalServerError(c)
		return
	}

	usersAffected := 0
	totalAmountAdded := 0.0

	for _, purchase := range purchases {
		if err := rebateOne(purchase, now); err != nil {
			utils.LogError("Rebate failed for purchase %d: %v", purchase.ID, err)
			continue
		}
		usersAffected++
		totalAmountAdded += purchase.DailyIncome
	}

	utils.LogInfo("Investment rebate applied: %d purchases, %.2f total", usersAffected, totalAmountAdded)
	utils.Success(c, gin.H{
		"message":          "Investment rebate applied successfully",
		"usersAffected":    usersAffected,
		"totalAmountAdded": totalAmountAdded,
	})
}

func rebateOne(purchase models.Purchase, now time.Time) error {
	unlock := lockUser(purchase.UserID)
	defer unlock()

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := creditBalance(tx, purchase.UserID, purchase.DailyIncome); err != nil {
			return err
		}

		description := fmt.Sprintf("Investment rebate: Daily profit added for plan %d", purchase.ProductID)
		if _, err := appendTransaction(tx, purchase.UserID, models.TransactionTypeInvestmentRebate, purchase.DailyIncome, description, purchaseReference(purchase.ID)); err != nil {
			return err
		}

		newEndDate := purchase.EndDate.AddDate(0, 0, -1)
		updates := map[string]interface{}{"end_date": newEndDate}
		if !newEndDate.After(now) {
			updates["status"] = models.PurchaseStatusCompleted
		}
		return tx.Model(&models.Purchase{}).Where("id = ?", purchase.ID).Updates(updates).Error
	})
}
