package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VerifyUTRRequest represents the recharge resolution body
type VerifyUTRRequest struct {
	UTR    string `json:"utr"`
	Action string `json:"action"`
}

// VerifyUTR resolves a pending recharge by its payment reference. Approve
// credits the recharge balance and writes the ledger entry; reject marks
// the request failed with no credit. A resolved recharge is immutable.
func VerifyUTR(c *gin.Context) {
	var req VerifyUTRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "UTR number is required")
		return
	}

	if req.UTR == "" {
		utils.BadRequest(c, "UTR number is required")
		return
	}
	if req.Action != "approve" && req.Action != "reject" {
		utils.BadRequest(c, "Action must be approve or reject")
		return
	}

	// Lookup is by UTR only; a request whose owner never attached one
	// cannot be resolved
	var recharge models.Recharge
	err := config.DB.Where("reference_id = ?", req.UTR).First(&recharge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, fmt.Sprintf("Recharge with UTR %s not found or UTR number not submitted by user", req.UTR))
			return
		}
		utils.LogError("Recharge lookup failed for UTR %s: %v", req.UTR, err)
		utils.InternalServerError(c)
		return
	}

	unlock := lockUser(recharge.UserID)
	defer unlock()

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var current models.Recharge
		if err := tx.First(&current, recharge.ID).Error; err != nil {
			return err
		}
		if current.Status != models.RechargeStatusPending {
			return utils.ConflictError("This recharge has already been processed", nil)
		}

		now := time.Now()
		newStatus := models.RechargeStatusFailed
		if req.Action == "approve" {
			newStatus = models.RechargeStatusCompleted
		}

		if err := tx.Model(&current).Updates(map[string]interface{}{
			"status":       newStatus,
			"processed_at": now,
		}).Error; err != nil {
			return err
		}

		if req.Action != "approve" {
			return nil
		}

		if err := creditRechargeBalance(tx, current.UserID, current.Amount); err != nil {
			return err
		}
		description := fmt.Sprintf("Recharge via UTR: %s", req.UTR)
		_, err := appendTransaction(tx, current.UserID, models.TransactionTypeRecharge, current.Amount, description, req.UTR)
		return err
	})
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	verdict := "rejected"
	if req.Action == "approve" {
		verdict = "approved"
	}
	utils.LogInfo("Recharge %d %s via UTR %s", recharge.ID, verdict, req.UTR)
	utils.Success(c, gin.H{
		"message": fmt.Sprintf("Recharge %s successfully", verdict),
	})
}
