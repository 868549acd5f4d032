package controllers

import (
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the admin console overview numbers
func GetDashboardStats(c *gin.Context) {
	var totalUsers int64
	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c)
		return
	}

	now := time.Now()
	var activeProducts int64
	if err := config.DB.Model(&models.Purchase{}).
		Where("status = ? AND end_date >= ?", models.PurchaseStatusActive, now).
		Count(&activeProducts).Error; err != nil {
		utils.LogError("Failed to count active purchases: %v", err)
		utils.InternalServerError(c)
		return
	}

	var totalRecharges float64
	if err := config.DB.Model(&models.Recharge{}).
		Where("status = ?", models.RechargeStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRecharges).Error; err != nil {
		utils.LogError("Failed to sum recharges: %v", err)
		utils.InternalServerError(c)
		return
	}

	var pendingWithdrawals int64
	if err := config.DB.Model(&models.Withdrawal{}).
		Where("status = ?", models.WithdrawalStatusPending).
		Count(&pendingWithdrawals).Error; err != nil {
		utils.LogError("Failed to count pending withdrawals: %v", err)
		utils.InternalServerError(c)
		return
	}

	utils.Success(c, gin.H{
		"totalUsers":         totalUsers,
		"activeProducts":     activeProducts,
		"totalRecharges":     totalRecharges,
		"pendingWithdrawals": pendingWithdrawals,
	})
}

// GetAllUsers returns user records a page at a time (password hashes never
// serialize)
func GetAllUsers(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	var users []models.User
	if err := config.DB.Order("id ASC").Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.Success(c, users)
}

// GetAllTransactions returns the ledger a page at a time, newest first
func GetAllTransactions(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	var transactions []models.Transaction
	if err := config.DB.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.Success(c, transactions)
}

// GetAllWithdrawals returns all withdrawals with owner phone and username
func GetAllWithdrawals(c *gin.Context) {
	var withdrawals []models.Withdrawal
	if err := config.DB.Order("created_at DESC").Find(&withdrawals).Error; err != nil {
		utils.LogError("Failed to fetch withdrawals: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.Success(c, attachUserDetails(withdrawalRows(withdrawals)))
}

// GetAllRecharges returns all recharges with owner phone and username
func GetAllRecharges(c *gin.Context) {
	var recharges []models.Recharge
	if err := config.DB.Order("created_at DESC").Find(&recharges).Error; err != nil {
		utils.LogError("Failed to fetch recharges: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.Success(c, attachUserDetails(rechargeRows(recharges)))
}

// GetAllProducts returns the catalog for the admin console
func GetAllProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("id ASC").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.Success(c, products)
}

// GetAllReferrals lists every referred user with their referrer
func GetAllReferrals(c *gin.Context) {
	var referred []models.User
	if err := config.DB.Where("referred_by IS NOT NULL").Order("created_at ASC").Find(&referred).Error; err != nil {
		utils.LogError("Failed to fetch referrals: %v", err)
		utils.InternalServerError(c)
		return
	}

	result := make([]gin.H, 0, len(referred))
	for _, u := range referred {
		entry := gin.H{
			"id":            u.ID,
			"user_name":     u.Name,
			"user_username": u.Username,
			"referrer_id":   nil,
			"referral_date": u.CreatedAt,
		}
		var referrer models.User
		if err := config.DB.First(&referrer, *u.ReferredBy).Error; err == nil {
			entry["referrer_id"] = referrer.ID
		}
		result = append(result, entry)
	}
	utils.Success(c, result)
}

type userDetailRow struct {
	payload gin.H
	userID  uint
}

func withdrawalRows(withdrawals []models.Withdrawal) []userDetailRow {
	rows := make([]userDetailRow, 0, len(withdrawals))
	for _, w := range withdrawals {
		rows = append(rows, userDetailRow{payload: gin.H{
			"id":                  w.ID,
			"user_id":             w.UserID,
			"amount":              w.Amount,
			"method":              w.Method,
			"bank_name":           w.BankName,
			"ifsc_code":           w.IfscCode,
			"account_number":      w.AccountNumber,
			"account_holder_name": w.AccountHolderName,
			"upi_id":              w.UpiID,
			"status":              w.Status,
			"processed_at":        w.ProcessedAt,
			"created_at":          w.CreatedAt,
		}, userID: w.UserID})
	}
	return rows
}

func rechargeRows(recharges []models.Recharge) []userDetailRow {
	rows := make([]userDetailRow, 0, len(recharges))
	for _, r := range recharges {
		rows = append(rows, userDetailRow{payload: gin.H{
			"id":           r.ID,
			"user_id":      r.UserID,
			"amount":       r.Amount,
			"status":       r.Status,
			"reference_id": r.ReferenceID,
			"processed_at": r.ProcessedAt,
			"created_at":   r.CreatedAt,
		}, userID: r.UserID})
	}
	return rows
}

// attachUserDetails joins the owner's phone and username onto each row
func attachUserDetails(rows []userDetailRow) []gin.H {
	result := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		row.payload["user_phone"] = "Unknown"
		row.payload["user_username"] = "Unknown"
		var user models.User
		if err := config.DB.First(&user, row.userID).Error; err == nil {
			row.payload["user_phone"] = user.PhoneNumber
			row.payload["user_username"] = user.Username
		}
		result = append(result, row.payload)
	}
	return result
}
