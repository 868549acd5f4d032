package controllers

import (
	"errors"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VerifyReferralRequest represents the referral claim body
type VerifyReferralRequest struct {
	ReferralCode string `json:"referral_code"`
}

// VerifyReferral is the strict referral claim: unlike registration, an
// unknown code is an error here, and the claim can only ever happen once.
func VerifyReferral(c *gin.Context) {
	user, ok := getCurrentUser(c)
	if !ok {
		return
	}

	var req VerifyReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReferralCode == "" {
		utils.BadRequest(c, "Referral code is required")
		return
	}

	var referrer models.User
	err := config.DB.Where("referral_code = ?", req.ReferralCode).First(&referrer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.BadRequest(c, "Invalid referral code")
			return
		}
		utils.LogError("Referral lookup failed: %v", err)
		utils.InternalServerError(c)
		return
	}

	if referrer.ID == user.ID {
		utils.BadRequest(c, "Cannot use your own referral code")
		return
	}

	// Re-read under the lock so two concurrent claims cannot both pass the
	// already-used check
	unlock := lockUser(user.ID)
	defer unlock()

	var current models.User
	if err := config.DB.First(&current, user.ID).Error; err != nil {
		utils.LogError("Failed to reload user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	if current.ReferredBy != nil {
		utils.BadRequest(c, "You have already used a referral code")
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("referred_by", referrer.ID).Error; err != nil {
		utils.LogError("Failed to set referred_by for user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("User %d claimed referral code of user %d", user.ID, referrer.ID)
	utils.Success(c, gin.H{
		"message": "Referral code applied successfully",
		"referrer": gin.H{
			"id":       referrer.ID,
			"name":     referrer.Name,
			"username": referrer.Username,
		},
	})
}
