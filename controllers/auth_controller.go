package controllers

import (
	"errors"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	PhoneNumber     string `json:"phone_number"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	ReferralCode    string `json:"referral_code"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// RegisterUser handles user registration
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Registration attempt failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format")
		return
	}

	utils.LogInfo("Registration attempt for phone: %s, username: %s", req.PhoneNumber, req.Username)

	if req.Name == "" || req.Username == "" || req.PhoneNumber == "" || req.Password == "" || req.ConfirmPassword == "" {
		utils.BadRequest(c, "All fields are required")
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match")
		return
	}

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.BadRequest(c, msg)
		return
	}
	if valid, msg := utils.ValidatePhone(req.PhoneNumber); !valid {
		utils.BadRequest(c, msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, msg)
		return
	}

	// Combined uniqueness lookup; when both collide the phone conflict wins
	var existing models.User
	err := config.DB.Where("phone_number = ? OR username = ?", req.PhoneNumber, req.Username).First(&existing).Error
	if err == nil {
		if existing.PhoneNumber == req.PhoneNumber {
			utils.BadRequest(c, "Phone number already registered")
		} else {
			utils.BadRequest(c, "Username already taken")
		}
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError("Registration lookup failed: %v", err)
		utils.InternalServerError(c)
		return
	}

	// An invalid referral code is ignored at registration time; the strict
	// path is the verify-referral endpoint.
	var referredBy *uint
	if req.ReferralCode != "" {
		var referrer models.User
		if err := config.DB.Where("referral_code = ?", req.ReferralCode).First(&referrer).Error; err == nil {
			referredBy = &referrer.ID
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c)
		return
	}

	referralCode, err := utils.GenerateReferralCode(config.DB, req.Username)
	if err != nil {
		utils.LogError("Failed to generate referral code: %v", err)
		utils.InternalServerError(c)
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
		IsActive:     true,
		IsAdmin:      false,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("User registered successfully: %d", user.ID)
	utils.Success(c, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginUser handles user login
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	if req.PhoneNumber == "" || req.Password == "" {
		utils.BadRequest(c, "Phone number and password are required")
		return
	}

	var user models.User
	if err := config.DB.Where("phone_number = ?", req.PhoneNumber).First(&user).Error; err != nil {
		// Same message whether the phone exists or not
		utils.LogError("Login failed - user not found for phone: %s", req.PhoneNumber)
		utils.Unauthorized(c, "Invalid phone number or password")
		return
	}

	if !user.IsActive {
		utils.LogError("Login attempt for deactivated account: %d", user.ID)
		utils.Unauthorized(c, "Account is deactivated")
		return
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.LogError("Login failed - wrong password for user: %d", user.ID)
		utils.Unauthorized(c, "Invalid phone number or password")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c)
		return
	}

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
