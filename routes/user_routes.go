package routes

import (
	"github.com/arjun-629/WealthNest/controllers"
	"github.com/arjun-629/WealthNest/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes the public and user-facing routes
func initUserRoutes(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)
	}

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.GET("/products", controllers.GetUserProducts)
		user.GET("/transactions", controllers.GetUserTransactions)
	}

	products := router.Group("/products")
	{
		products.GET("", controllers.ListProducts)
		products.POST("/purchase", middleware.AuthMiddleware(), controllers.PurchaseProduct)
		// Manual accrual trigger; the cron scheduler calls the same primitive
		products.POST("/daily-profit", middleware.AuthMiddleware(), middleware.AdminMiddleware(), controllers.ProcessDailyProfit)
	}

	recharge := router.Group("/recharge")
	recharge.Use(middleware.AuthMiddleware())
	{
		recharge.POST("/request", controllers.RequestRecharge)
		recharge.POST("/update-utr/:id", controllers.UpdateRechargeUTR)
	}

	withdrawals := router.Group("/withdrawals")
	withdrawals.Use(middleware.AuthMiddleware())
	{
		withdrawals.POST("/request", controllers.RequestWithdrawal)
	}

	referral := router.Group("/referral")
	referral.Use(middleware.AuthMiddleware())
	{
		referral.POST("/verify-referral", controllers.VerifyReferral)
	}
}
