package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// referralCodePrefix builds the alphabetic part of a referral code from the
// first four characters of the username, uppercased and padded with X.
func referralCodePrefix(username string) string {
	prefix := strings.ToUpper(username)
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	for len(prefix) < 4 {
		prefix += "X"
	}
	return prefix
}

// GenerateReferralCode produces a unique referral code of the form
// PREFIX + 4 digits. The random suffix can collide, so the generated code
// is checked against existing users and regenerated; after a few misses it
// falls back to a UUID fragment, which is unique for practical purposes.
func GenerateReferralCode(db *gorm.DB, username string) (string, error) {
	prefix := referralCodePrefix(username)

	for attempt := 0; attempt < 5; attempt++ {
		code := fmt.Sprintf("%s%04d", prefix, 1000+rand.Intn(9000))

		var count int64
		if err := db.Table("users").Where("referral_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}

	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return prefix + suffix, nil
}
