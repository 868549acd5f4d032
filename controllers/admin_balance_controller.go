package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BalanceAdjustmentRequest represents the manual balance credit body
type BalanceAdjustmentRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// findUserByAnyIdentifier resolves an admin-supplied identifier as a user
// ID first, then a phone number, then a username.
func findUserByAnyIdentifier(identifier string) (*models.User, error) {
	var user models.User

	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		if err := config.DB.First(&user, uint(id)).Error; err == nil {
			return &user, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	err := config.DB.Where("phone_number = ?", identifier).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = config.DB.Where("username = ?", identifier).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, gorm.ErrRecordNotFound
}

// UpdateUserBalance credits a user's profit balance directly. Single-step,
// no approval workflow; the mandatory reason lands in the ledger entry.
func UpdateUserBalance(c *gin.Context) {
	var req BalanceAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Valid amount is required")
		return
	}
	if req.Amount <= 0 {
		utils.BadRequest(c, "Valid amount is required")
		return
	}
	if req.Reason == "" {
		utils.BadRequest(c, "Reason is required")
		return
	}

	user, err := findUserByAnyIdentifier(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found. Please enter a valid User ID, Phone Number, or Username.")
			return
		}
		utils.LogError("User lookup failed: %v", err)
		utils.InternalServerError(c)
		return
	}

	unlock := lockUser(user.ID)
	defer unlock()

	var transaction *models.Transaction
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := creditBalance(tx, user.ID, req.Amount); err != nil {
			return err
		}

		description := fmt.Sprintf("Admin adjustment: %s", req.Reason)
		reference := "ADJ-" + uuid.New().String()
		transaction, err = appendTransaction(tx, user.ID, models.TransactionTypeAdminAdjustment, req.Amount, description, reference)
		return err
	})
	if err != nil {
		utils.LogError("Balance adjustment failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	var updated models.User
	if err := config.DB.First(&updated, user.ID).Error; err != nil {
		utils.LogError("Failed to reload user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("Admin credited %.2f to user %d (%s)", req.Amount, user.ID, req.Reason)
	utils.Success(c, gin.H{
		"message":     "Balance updated successfully",
		"user":        updated,
		"transaction": transaction,
	})
}
