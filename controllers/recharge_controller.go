package controllers

import (
	"errors"
	"strconv"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RechargeRequest represents the recharge request body
type RechargeRequest struct {
	Amount float64 `json:"amount"`
}

// UpdateUTRRequest represents the UTR attachment body
type UpdateUTRRequest struct {
	UTR string `json:"utr"`
}

// RequestRecharge opens a pending top-up request. No UTR yet and no balance
// change; the credit happens only when an admin approves the UTR.
func RequestRecharge(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	var req RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		utils.BadRequest(c, "Amount is required and must be greater than 0")
		return
	}

	recharge := models.Recharge{
		UserID: user.ID,
		Amount: req.Amount,
		Status: models.RechargeStatusPending,
	}
	if err := config.DB.Create(&recharge).Error; err != nil {
		utils.LogError("Failed to create recharge for user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("User %d requested recharge of %.2f", user.ID, req.Amount)
	utils.Success(c, gin.H{
		"message":  "Recharge request created successfully",
		"recharge": recharge,
	})
}

// UpdateRechargeUTR attaches the payment reference to the user's own pending
// recharge. Status stays untouched until admin verification.
func UpdateRechargeUTR(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	rechargeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid recharge ID")
		return
	}

	var req UpdateUTRRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UTR == "" {
		utils.BadRequest(c, "UTR is required")
		return
	}

	var recharge models.Recharge
	err = config.DB.Where("id = ? AND user_id = ?", rechargeID, user.ID).First(&recharge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Recharge request not found or does not belong to user")
			return
		}
		utils.LogError("Failed to fetch recharge %d: %v", rechargeID, err)
		utils.InternalServerError(c)
		return
	}

	recharge.ReferenceID = req.UTR
	if err := config.DB.Model(&recharge).Update("reference_id", req.UTR).Error; err != nil {
		utils.LogError("Failed to update UTR on recharge %d: %v", recharge.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("User %d attached UTR to recharge %d", user.ID, recharge.ID)
	utils.Success(c, gin.H{
		"message":  "UTR submitted successfully. Admin will verify it shortly.",
		"recharge": recharge,
	})
}
