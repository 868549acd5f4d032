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

// ListProducts returns the plan catalog
func ListProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("price ASC").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c)
		return
	}
	utils.Success(c, products)
}

// PurchaseRequest represents the purchase request body
type PurchaseRequest struct {
	ProductID uint `json:"product_id"`
}

// PurchaseProduct buys an investment plan. The price is funded exclusively
// from the recharge balance; the profit balance is never touched. A user may
// buy a given plan at most once per calendar month.
func PurchaseProduct(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == 0 {
		utils.BadRequest(c, "Product ID is required")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to fetch product %d: %v", req.ProductID, err)
		utils.InternalServerError(c)
		return
	}

	unlock := lockUser(user.ID)
	defer unlock()

	var purchase models.Purchase
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read the balance inside the transaction; the context copy may
		// be stale by the time the lock is held.
		var current models.User
		if err := tx.First(&current, user.ID).Error; err != nil {
			return utils.NotFoundError("User not found", err)
		}

		if current.RechargeBalance < product.Price {
			return utils.ConflictError("Insufficient recharge balance", nil)
		}

		already, err := hasPurchaseThisMonth(tx, user.ID, product.ID, time.Now())
		if err != nil {
			return err
		}
		if already {
			return utils.ConflictError("You can only buy this product once per month", nil)
		}

		purchaseDate := time.Now()
		endDate := purchaseDate.AddDate(0, 0, product.Duration)

		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).UpdateColumns(map[string]interface{}{
			"recharge_balance": gorm.Expr("recharge_balance - ?", product.Price),
			"total_invested":   gorm.Expr("total_invested + ?", product.Price),
		}).Error; err != nil {
			return err
		}

		purchase = models.Purchase{
			UserID:       user.ID,
			ProductID:    product.ID,
			PurchaseDate: purchaseDate,
			EndDate:      endDate,
			DailyIncome:  product.DailyIncome,
			Status:       models.PurchaseStatusActive,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Purchased %s investment plan", product.Name)
		_, err = appendTransaction(tx, user.ID, models.TransactionTypeInvestment, product.Price, description, purchaseReference(purchase.ID))
		return err
	})
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("User %d purchased product %d", user.ID, product.ID)
	utils.Success(c, gin.H{
		"message": "Product purchased successfully",
		"product": purchase,
	})
}
