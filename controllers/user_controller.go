package controllers

import (
	"sort"
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
)

// getCurrentUser pulls the authenticated user out of the request context.
// Responds with the appropriate error and returns ok=false on failure.
func getCurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.InternalServerError(c)
		return models.User{}, false
	}
	return user, true
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}
	utils.Success(c, user)
}

// GetUserProducts returns the user's purchases with product names attached
func GetUserProducts(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	var purchases []models.Purchase
	if err := config.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&purchases).Error; err != nil {
		utils.LogError("Failed to fetch purchases for user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	result := make([]gin.H, 0, len(purchases))
	for _, p := range purchases {
		entry := gin.H{
			"id":            p.ID,
			"user_id":       p.UserID,
			"product_id":    p.ProductID,
			"purchase_date": p.PurchaseDate,
			"end_date":      p.EndDate,
			"daily_income":  p.DailyIncome,
			"status":        p.Status,
			"created_at":    p.CreatedAt,
		}

		var product models.Product
		if err := config.DB.First(&product, p.ProductID).Error; err == nil {
			entry["product_name"] = product.Name
		} else {
			// Product may have been removed from the catalog since purchase
			entry["product_name"] = "Unknown plan"
		}
		result = append(result, entry)
	}

	utils.Success(c, result)
}

// transactionEntry is one row of the merged user transaction feed
type transactionEntry struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetUserTransactions returns the user's ledger entries merged with their
// pending withdrawal and recharge requests, newest first
func GetUserTransactions(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Where("user_id = ?", user.ID).Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions for user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	var pendingWithdrawals []models.Withdrawal
	if err := config.DB.Where("user_id = ? AND status = ?", user.ID, models.WithdrawalStatusPending).Find(&pendingWithdrawals).Error; err != nil {
		utils.LogError("Failed to fetch pending withdrawals for user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	var pendingRecharges []models.Recharge
	if err := config.DB.Where("user_id = ? AND status = ?", user.ID, models.RechargeStatusPending).Find(&pendingRecharges).Error; err != nil {
		utils.LogError("Failed to fetch pending recharges for user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	entries := make([]transactionEntry, 0, len(transactions)+len(pendingWithdrawals)+len(pendingRecharges))
	for _, t := range transactions {
		entries = append(entries, transactionEntry{
			ID:          t.ID,
			UserID:      t.UserID,
			Type:        t.Type,
			Amount:      t.Amount,
			Status:      t.Status,
			Description: t.Description,
			ReferenceID: t.ReferenceID,
			CreatedAt:   t.CreatedAt,
		})
	}
	for _, w := range pendingWithdrawals {
		entries = append(entries, transactionEntry{
			ID:          w.ID,
			UserID:      w.UserID,
			Type:        "withdrawal_pending",
			Amount:      w.Amount,
			Status:      models.WithdrawalStatusPending,
			Description: "Pending withdrawal request via " + w.Method,
			CreatedAt:   w.CreatedAt,
		})
	}
	for _, r := range pendingRecharges {
		entries = append(entries, transactionEntry{
			ID:          r.ID,
			UserID:      r.UserID,
			Type:        "recharge_pending",
			Amount:      r.Amount,
			Status:      models.RechargeStatusPending,
			Description: "Pending recharge request",
			CreatedAt:   r.CreatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	utils.Success(c, entries)
}
