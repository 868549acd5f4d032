package controllers

import (
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WithdrawalRequest represents the withdrawal request body
type WithdrawalRequest struct {
	Amount            float64 `json:"amount"`
	Method            string  `json:"method"`
	BankName          string  `json:"bank_name"`
	IfscCode          string  `json:"ifsc_code"`
	AccountNumber     string  `json:"account_number"`
	AccountHolderName string  `json:"account_holder_name"`
	UpiID             string  `json:"upi_id"`
}

// RequestWithdrawal opens a pending cash-out request against the profit
// balance. The balance is not debited here; that happens only when an admin
// approves. One non-rejected request per rolling 24 hours.
func RequestWithdrawal(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	var req WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	if req.Amount <= 0 {
		utils.BadRequest(c, "Amount is required and must be greater than 0")
		return
	}

	switch req.Method {
	case models.WithdrawalMethodBank:
		if req.BankName == "" || req.IfscCode == "" || req.AccountNumber == "" || req.AccountHolderName == "" {
			utils.BadRequest(c, "Bank details are required for bank withdrawal")
			return
		}
	case models.WithdrawalMethodUPI:
		if req.UpiID == "" {
			utils.BadRequest(c, "UPI ID is required for UPI withdrawal")
			return
		}
	default:
		utils.BadRequest(c, `Method must be either "bank" or "upi"`)
		return
	}

	unlock := lockUser(user.ID)
	defer unlock()

	var withdrawal models.Withdrawal
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var current models.User
		if err := tx.First(&current, user.ID).Error; err != nil {
			return utils.NotFoundError("User not found", err)
		}

		// Recharge balance is never withdrawable
		if current.Balance < req.Amount {
			return utils.ConflictError("Insufficient profit balance. You can only withdraw profits from investments.", nil)
		}

		if req.Amount < utils.MinWithdrawalAmount {
			return utils.ConflictError("Minimum withdrawal amount is ₹100", nil)
		}

		recent, err := hasRecentWithdrawal(tx, user.ID, time.Now())
		if err != nil {
			return err
		}
		if recent {
			return utils.ConflictError("You can only make one withdrawal every 24 hours", nil)
		}

		withdrawal = models.Withdrawal{
			UserID: user.ID,
			Amount: req.Amount,
			Method: req.Method,
			Status: models.WithdrawalStatusPending,
		}
		if req.Method == models.WithdrawalMethodBank {
			withdrawal.BankName = req.BankName
			withdrawal.IfscCode = req.IfscCode
			withdrawal.AccountNumber = req.AccountNumber
			withdrawal.AccountHolderName = req.AccountHolderName
		} else {
			withdrawal.UpiID = req.UpiID
		}

		return tx.Create(&withdrawal).Error
	})
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("User %d requested withdrawal of %.2f via %s", user.ID, req.Amount, req.Method)
	utils.Success(c, gin.H{
		"message":    "Withdrawal request submitted successfully",
		"withdrawal": withdrawal,
	})
}
