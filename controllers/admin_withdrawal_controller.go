package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WithdrawalStatusRequest represents the withdrawal resolution body
type WithdrawalStatusRequest struct {
	Status string `json:"status"`
}

// UpdateWithdrawalStatus resolves a pending withdrawal. Approval is the only
// point where the profit balance is debited and total_withdrawn credited;
// rejection changes nothing and frees the user's 24-hour window.
func UpdateWithdrawalStatus(c *gin.Context) {
	withdrawalID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid withdrawal ID")
		return
	}

	var req WithdrawalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Status must be approved, rejected, or pending")
		return
	}
	if req.Status != models.WithdrawalStatusApproved &&
		req.Status != models.WithdrawalStatusRejected &&
		req.Status != models.WithdrawalStatusPending {
		utils.BadRequest(c, "Status must be approved, rejected, or pending")
		return
	}

	var withdrawal models.Withdrawal
	err = config.DB.First(&withdrawal, withdrawalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("Withdrawal with ID %d not found", withdrawalID))
			return
		}
		utils.LogError("Withdrawal lookup failed for %d: %v", withdrawalID, err)
		utils.InternalServerError(c)
		return
	}

	unlock := lockUser(withdrawal.UserID)
	defer unlock()

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var current models.Withdrawal
		if err := tx.First(&current, withdrawal.ID).Error; err != nil {
			return err
		}

		// approved and rejected are terminal
		if current.Status == models.WithdrawalStatusApproved || current.Status == models.WithdrawalStatusRejected {
			return utils.ConflictError("This withdrawal has already been processed", nil)
		}

		now := time.Now()
		if err := tx.Model(&current).Updates(map[string]interface{}{
			"status":       req.Status,
			"processed_at": now,
		}).Error; err != nil {
			return err
		}

		if req.Status != models.WithdrawalStatusApproved {
			return nil
		}

		if err := tx.Model(&models.User{}).Where("id = ?", current.UserID).UpdateColumns(map[string]interface{}{
			"balance":         gorm.Expr("balance - ?", current.Amount),
			"total_withdrawn": gorm.Expr("total_withdrawn + ?", current.Amount),
		}).Error; err != nil {
			return err
		}

		destination := current.UpiID
		if current.Method == models.WithdrawalMethodBank {
			destination = current.BankName
		}
		description := fmt.Sprintf("Withdrawal via %s: %s", current.Method, destination)
		_, err := appendTransaction(tx, current.UserID, models.TransactionTypeWithdrawal, current.Amount, description, strconv.FormatUint(uint64(current.ID), 10))
		return err
	})
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Withdrawal %d set to %s", withdrawal.ID, req.Status)
	utils.Success(c, gin.H{
		"message": fmt.Sprintf("Withdrawal %s successfully", req.Status),
	})
}
