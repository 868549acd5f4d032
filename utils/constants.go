package utils

// Application constants
const (
	// Application name
	AppName = "WealthNest"

	// Default port
	DefaultPort = "8080"

	// Minimum password length
	MinPasswordLength = 6

	// Minimum withdrawal amount in rupees
	MinWithdrawalAmount = 100.0

	// Hours a non-rejected withdrawal blocks the next request for
	WithdrawalCooldownHours = 24

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100
)
