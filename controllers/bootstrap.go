package controllers

import (
	"errors"
	"os"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"gorm.io/gorm"
)

// CreateSampleAdmin ensures a bootstrap admin account exists so the console
// is reachable on a fresh database. Credentials come from the environment
// with development defaults.
func CreateSampleAdmin() error {
	phone := os.Getenv("ADMIN_PHONE")
	if phone == "" {
		phone = "9999999999"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing models.User
	err := config.DB.Where("phone_number = ?", phone).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin User",
		Username:     "admin",
		PhoneNumber:  phone,
		PasswordHash: hash,
		ReferralCode: "ADMIN001",
		IsActive:     true,
		IsAdmin:      true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Bootstrap admin created with phone %s", phone)
	return nil
}
