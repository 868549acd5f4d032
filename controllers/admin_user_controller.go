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

// allowedUserFields is the whitelist an admin may patch directly. Anything
// else in the body is silently dropped; passwords take the hashing path.
var allowedUserFields = map[string]bool{
	"username":         true,
	"name":             true,
	"phone_number":     true,
	"balance":          true,
	"recharge_balance": true,
	"total_invested":   true,
	"total_withdrawn":  true,
	"referral_code":    true,
	"referred_by":      true,
	"is_active":        true,
	"is_admin":         true,
}

// UpdateUser applies a whitelisted partial update to a user record,
// bypassing the ledger guards. Admin console only.
func UpdateUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, uint(userID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.LogError("User lookup failed for %d: %v", userID, err)
		utils.InternalServerError(c)
		return
	}

	updates := map[string]interface{}{}
	for key, value := range body {
		if allowedUserFields[key] {
			updates[key] = value
		}
	}

	// A supplied password is hashed, never stored raw
	if password, ok := body["password"].(string); ok && password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			utils.LogError("Failed to hash password for user %d: %v", userID, err)
			utils.InternalServerError(c)
			return
		}
		updates["password_hash"] = hash
	}

	unlock := lockUser(user.ID)
	defer unlock()

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.LogError("Failed to update user %d: %v", userID, err)
			utils.InternalServerError(c)
			return
		}
	}

	var updated models.User
	if err := config.DB.First(&updated, user.ID).Error; err != nil {
		utils.LogError("Failed to reload user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("Admin updated user %d (%d fields)", user.ID, len(updates))
	utils.Success(c, gin.H{
		"message": "User updated successfully",
		"user":    updated,
	})
}
