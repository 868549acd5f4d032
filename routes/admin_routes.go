package routes

import (
	"github.com/arjun-629/WealthNest/controllers"
	"github.com/arjun-629/WealthNest/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes the admin console routes
func initAdminRoutes(router *gin.Engine) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard-stats", controllers.GetDashboardStats)
		admin.GET("/users", controllers.GetAllUsers)
		admin.GET("/transactions", controllers.GetAllTransactions)
		admin.GET("/withdrawals", controllers.GetAllWithdrawals)
		admin.GET("/recharges", controllers.GetAllRecharges)
		admin.GET("/products", controllers.GetAllProducts)
		admin.GET("/referrals", controllers.GetAllReferrals)

		admin.POST("/user/:id/balance", controllers.UpdateUserBalance)
		admin.PUT("/user/:id", controllers.UpdateUser)

		admin.POST("/verify-utr", controllers.VerifyUTR)
		admin.PUT("/withdrawal/:id", controllers.UpdateWithdrawalStatus)
		admin.POST("/process-investment-rebate", controllers.ProcessInvestmentRebate)

		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)

		admin.GET("/reports/transactions/excel", controllers.DownloadTransactionReportExcel)
		admin.GET("/reports/transactions/pdf", controllers.DownloadTransactionReportPDF)
	}
}
