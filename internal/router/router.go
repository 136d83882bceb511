// Package router assembles the gin engine serving the finance API.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spendwise/internal/docs" // swagger docs
	"spendwise/internal/handlers"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

// Services bundles the business services the HTTP layer depends on.
type Services struct {
	Sessions   services.SessionServicer
	Expenses   services.ExpenseServicer
	Categories services.CategoryServicer
	Budgets    services.BudgetServicer
	Stats      services.StatsServicer
	Audit      services.AuditServicer
}

// New builds the engine with every route mounted under /api.
func New(svc Services, sessionTTL time.Duration) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Sessions, svc.Audit, sessionTTL)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses, svc.Audit)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories, svc.Audit)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets, svc.Stats, svc.Audit)
	statsHandler := handlers.NewStatsHandler(svc.Stats)

	validator.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/session", authHandler.CreateSession)
	auth.POST("/logout", authHandler.Logout)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.SessionAuth(svc.Sessions))

	protected.GET("/auth/me", authHandler.Me)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.POST("", budgetHandler.UpsertBudget)
	budgets.GET("/progress", budgetHandler.GetBudgetProgress)

	protected.GET("/stats/monthly", statsHandler.MonthlyStats)

	export := protected.Group("/export")
	export.GET("/csv", statsHandler.ExportCSV)
	export.GET("/xlsx", statsHandler.ExportXLSX)

	return router
}
