package config

import (
	"github.com/arjun-629/WealthNest/models"
)

// SeedProducts inserts the default plan catalog if the table is empty
func SeedProducts() error {
	var count int64
	if err := DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultProducts := []models.Product{
		{Name: "Starter Plan", Price: 490.00, DailyIncome: 80.00, Duration: 9, TotalReturn: 720.00, Profit: 230.00},
		{Name: "Smart Saver", Price: 750.00, DailyIncome: 85.00, Duration: 14, TotalReturn: 1190.00, Profit: 440.00},
		{Name: "Bronze Booster", Price: 1000.00, DailyIncome: 100.00, Duration: 15, TotalReturn: 1500.00, Profit: 500.00},
		{Name: "Silver Growth", Price: 1500.00, DailyIncome: 115.00, Duration: 20, TotalReturn: 2300.00, Profit: 800.00},
		{Name: "Gold Income", Price: 2000.00, DailyIncome: 135.00, Duration: 23, TotalReturn: 3105.00, Profit: 1105.00},
		{Name: "Platinum Plan", Price: 2500.00, DailyIncome: 160.00, Duration: 24, TotalReturn: 3840.00, Profit: 1340.00},
		{Name: "Elite Earning", Price: 3000.00, DailyIncome: 180.00, Duration: 25, TotalReturn: 4500.00, Profit: 1500.00},
		{Name: "VIP Profiter", Price: 3500.00, DailyIncome: 200.00, Duration: 27, TotalReturn: 5400.00, Profit: 1900.00},
		{Name: "Executive Growth", Price: 4000.00, DailyIncome: 220.00, Duration: 28, TotalReturn: 6160.00, Profit: 2160.00},
		{Name: "Royal Investor", Price: 5000.00, DailyIncome: 250.00, Duration: 30, TotalReturn: 7500.00, Profit: 2500.00},
	}

	return DB.Create(&defaultProducts).Error
}
