package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/helpgames/helpgames-api/handlers"
	"github.com/helpgames/helpgames-api/services"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/refresh", authHandler.Refresh)
	rg.POST("/auth/logout", authHandler.Logout)
}

// SetupFinanceRoutes sets up the budget engine routes: financial profile,
// leisure allocation and betting spend tracking.
func SetupFinanceRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	financeService := services.NewFinanceService(db)
	allocationService := services.NewAllocationService(db)

	h := handlers.NewFinanceHandler(financeService, allocationService, ws)

	rg.GET("/financial-profile", h.GetFinancialProfile)
	rg.PUT("/financial-profile", h.UpsertFinancialProfile)
	rg.GET("/financial-profile/distribution", h.GetDistribution)

	rg.GET("/leisure-allocation", h.GetLeisureAllocation)
	rg.PUT("/leisure-allocation", h.UpdateLeisureAllocation)
	rg.GET("/leisure-allocation/breakdown", h.GetAllocationBreakdown)

	rg.GET("/betting/limit", h.GetBettingLimit)
	rg.GET("/betting/spent", h.GetBettingSpent)
	rg.POST("/betting/spending", h.AddBettingSpending)
}

// SetupBlockageRoutes sets up the temporary access blockage routes.
func SetupBlockageRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	blockageService := services.NewBlockageService(db)

	h := handlers.NewBlockageHandler(blockageService, ws)

	rg.POST("/blockage/activate", h.Activate)
	rg.GET("/blockage/status", h.GetStatus)
	rg.GET("/blockage/history", h.GetHistory)
	rg.GET("/blockage/stats", h.GetStats)
}

// SetupRecoveryRoutes sets up avoided bets, goals, crisis messages and
// statistics routes.
func SetupRecoveryRoutes(rg *gin.RouterGroup, db *sql.DB) {
	recoveryService := services.NewRecoveryService(db)

	h := handlers.NewRecoveryHandler(recoveryService)

	rg.POST("/avoided-bets", h.CreateAvoidedBet)
	rg.GET("/avoided-bets", h.ListAvoidedBets)
	rg.GET("/avoided-bets/total-preserved", h.GetTotalPreserved)

	rg.POST("/goals", h.CreateGoal)
	rg.GET("/goals", h.ListGoals)
	rg.PUT("/goals/:id", h.UpdateGoal)
	rg.DELETE("/goals/:id", h.DeleteGoal)

	rg.POST("/crisis-messages", h.CreateCrisisMessage)
	rg.GET("/crisis-messages", h.ListCrisisMessages)
	rg.PUT("/crisis-messages/:id", h.UpdateCrisisMessage)
	rg.DELETE("/crisis-messages/:id", h.DeleteCrisisMessage)

	rg.GET("/statistics", h.GetStatistics)
}

// SetupGamblingRoutes sets up gambling-site search, hobby and access-attempt
// routes.
func SetupGamblingRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	financeService := services.NewFinanceService(db)
	blockageService := services.NewBlockageService(db)
	gamblingService := services.NewGamblingService(db, financeService, blockageService)

	h := handlers.NewGamblingHandler(gamblingService, financeService, ws)

	rg.GET("/gambling-sites", h.SearchSites)
	rg.GET("/hobbies", h.ListHobbies)
	rg.POST("/hobbies", h.AddHobby)
	rg.POST("/access-attempts", h.RegisterAttempt)
	rg.GET("/access-attempts", h.ListAttempts)
}

// SetupUserRoutes sets up protected user routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.PUT("/user/profile", userHandler.UpdateProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
	rg.DELETE("/user/account", userHandler.DeleteAccount)
}
