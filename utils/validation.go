package utils

import (
	"regexp"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	phoneRegex    = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateUsername checks username format
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "Username is required"
	}
	if !usernameRegex.MatchString(username) {
		return false, "Username must be 3-20 characters and contain only letters, numbers, and underscores"
	}
	return true, ""
}

// ValidatePhone checks the phone number format
func ValidatePhone(phone string) (bool, string) {
	if phone == "" {
		return false, "Phone number is required"
	}
	if !phoneRegex.MatchString(phone) {
		return false, "Phone number must be 10 digits"
	}
	return true, ""
}

// ValidatePassword enforces the minimum password policy
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, "Password must be at least 6 characters long"
	}
	return true, ""
}
