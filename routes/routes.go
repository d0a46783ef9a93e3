package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aleembhd/pocket-pals-budget/handlers"
	"github.com/aleembhd/pocket-pals-budget/services"
	"github.com/aleembhd/pocket-pals-budget/storage"
)

// SetupExpenseRoutes sets up the expense ledger and statistics routes.
func SetupExpenseRoutes(rg *gin.RouterGroup, repo *storage.Repository) {
	ledger := services.NewLedgerService(repo)

	expenseHandler := &handlers.ExpenseHandler{Ledger: ledger}
	statsHandler := &handlers.StatsHandler{Ledger: ledger}

	rg.GET("/expenses", expenseHandler.ListExpenses)
	rg.POST("/expenses", expenseHandler.CreateExpense)

	rg.GET("/stats/categories", statsHandler.Categories)
	rg.GET("/stats/payment-modes", statsHandler.PaymentModes)
	rg.GET("/stats/daily", statsHandler.Daily)
	rg.GET("/stats/weekly", statsHandler.Weekly)
}

// SetupBudgetRoutes sets up the monthly budget routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, repo *storage.Repository, hub *handlers.EventHub) {
	budgetService := services.NewBudgetService(repo)

	h := &handlers.BudgetHandler{Budget: budgetService, Hub: hub}

	rg.GET("/budget", h.GetStatus)
	rg.PUT("/budget", h.SetBudget)
}

// SetupGoalRoutes sets up the savings goal routes.
func SetupGoalRoutes(rg *gin.RouterGroup, repo *storage.Repository, hub *handlers.EventHub) {
	goalService := services.NewGoalService(repo)

	h := &handlers.GoalHandler{Goals: goalService, Hub: hub}

	rg.GET("/goals", h.ListGoals)
	rg.POST("/goals", h.CreateGoal)
	rg.POST("/goals/:id/funds", h.AddFunds)
}

// SetupProfileRoutes sets up the user profile routes.
func SetupProfileRoutes(rg *gin.RouterGroup, repo *storage.Repository, hub *handlers.EventHub, log *logrus.Logger) {
	profileService := services.NewProfileService(repo)

	h := &handlers.ProfileHandler{Profile: profileService, Hub: hub, Log: log}

	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.UpdateProfile)
}

// SetupGamificationRoutes sets up the level and badge routes.
func SetupGamificationRoutes(rg *gin.RouterGroup, repo *storage.Repository) {
	gamificationService := services.NewGamificationService(repo)

	h := &handlers.GamificationHandler{Gamification: gamificationService}

	rg.GET("/gamification", h.GetSnapshot)
}

// SetupInsightsRoutes sets up the weekly tip routes.
func SetupInsightsRoutes(rg *gin.RouterGroup, repo *storage.Repository, hub *handlers.EventHub) {
	insightsService := services.NewInsightsService(repo)

	h := &handlers.InsightsHandler{Insights: insightsService, Hub: hub}

	rg.GET("/insights/tip", h.GetWeeklyTip)
}

// SetupPaymentRoutes sets up the UPI payment routes.
func SetupPaymentRoutes(rg *gin.RouterGroup, repo *storage.Repository, log *logrus.Logger) {
	ledger := services.NewLedgerService(repo)

	h := &handlers.PaymentHandler{Ledger: ledger, Log: log}

	rg.POST("/payments/link", h.BuildLink)
	rg.POST("/payments/confirm", h.Confirm)
}

// SetupExportRoutes sets up the data export and reset routes.
func SetupExportRoutes(rg *gin.RouterGroup, repo *storage.Repository, hub *handlers.EventHub) {
	exportService := services.NewExportService(repo)

	h := &handlers.ExportHandler{Export: exportService, Hub: hub}

	rg.GET("/export", h.ExportData)
	rg.POST("/reset", h.ResetData)
}
