package main

import (
	"log"
	"time"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/controllers"
	"github.com/arjun-629/WealthNest/routes"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/robfig/cron/v3"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed the plan catalog
	if err := config.SeedProducts(); err != nil {
		utils.LogError("Failed to seed products: %v", err)
		log.Fatal("Failed to seed products:", err)
	}

	// Create bootstrap admin
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Schedule the daily accrual run. The admin daily-profit endpoint calls
	// the same primitive, and both are idempotent within a calendar day.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("5 0 * * *", func() {
		processed, err := controllers.RunDailyAccrual(time.Now())
		if err != nil {
			utils.LogError("Scheduled accrual run failed: %v", err)
			return
		}
		utils.LogInfo("Scheduled accrual credited %d investments", processed)
	}); err != nil {
		utils.LogError("Failed to schedule accrual job: %v", err)
		log.Fatal("Failed to schedule accrual job:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Set up router
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = utils.DefaultPort
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
