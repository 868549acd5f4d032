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

// ProductRequest represents the product creation body
type ProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	DailyIncome *float64 `json:"daily_income"`
	Duration    *int     `json:"duration"`
	TotalReturn *float64 `json:"total_return"`
	Profit      *float64 `json:"profit"`
}

// CreateProduct adds a plan to the catalog. Every field is required.
func CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	if req.Name == nil || *req.Name == "" || req.Price == nil || req.DailyIncome == nil ||
		req.Duration == nil || req.TotalReturn == nil || req.Profit == nil {
		utils.BadRequest(c, "All product fields are required")
		return
	}

	product := models.Product{
		Name:        *req.Name,
		Price:       *req.Price,
		DailyIncome: *req.DailyIncome,
		Duration:    *req.Duration,
		TotalReturn: *req.TotalReturn,
		Profit:      *req.Profit,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("Product %d created", product.ID)
	utils.Created(c, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct patches a whitelist of plan fields. Numeric fields arriving
// as strings are coerced.
func UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(productID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Product lookup failed for %d: %v", productID, err)
		utils.InternalServerError(c)
		return
	}

	updates := map[string]interface{}{}
	for key, value := range body {
		switch key {
		case "name":
			updates[key] = value
		case "price", "daily_income", "total_return", "profit":
			if f, ok := coerceFloat(value); ok {
				updates[key] = f
			}
		case "duration":
			if f, ok := coerceFloat(value); ok {
				updates[key] = int(f)
			}
		}
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
			utils.LogError("Failed to update product %d: %v", productID, err)
			utils.InternalServerError(c)
			return
		}
	}

	var updated models.Product
	if err := config.DB.First(&updated, product.ID).Error; err != nil {
		utils.LogError("Failed to reload product %d: %v", product.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("Product %d updated (%d fields)", product.ID, len(updates))
	utils.Success(c, gin.H{
		"message": "Product updated successfully",
		"product": updated,
	})
}

// DeleteProduct removes a plan from the catalog. Blocked while any active
// purchase still references the plan.
func DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, uint(productID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Product lookup failed for %d: %v", productID, err)
		utils.InternalServerError(c)
		return
	}

	var activeCount int64
	if err := config.DB.Model(&models.Purchase{}).
		Where("product_id = ? AND status = ?", product.ID, models.PurchaseStatusActive).
		Count(&activeCount).Error; err != nil {
		utils.LogError("Failed to count active purchases for product %d: %v", product.ID, err)
		utils.InternalServerError(c)
		return
	}
	if activeCount > 0 {
		utils.BadRequest(c, "Cannot delete product with active investments. Please wait for all investments to complete.")
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("Product %d deleted", product.ID)
	utils.Success(c, gin.H{
		"message": "Product deleted successfully",
		"product": product,
	})
}

// coerceFloat accepts JSON numbers and numeric strings
func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
