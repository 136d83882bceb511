package services

import (
	"context"
	"io"

	"gorm.io/gorm"

	"spendwise/internal/models"
)

// SessionServicer defines the contract for sign-in, session validation and logout.
type SessionServicer interface {
	ExchangeSession(ctx context.Context, sessionID string) (*models.User, *models.Session, error)
	Authenticate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// ExpenseInput holds the mutable fields of an expense. Update replaces all of them.
type ExpenseInput struct {
	Title    string
	Amount   float64
	Category string
	Date     string
	Notes    *string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context, userID, month string) ([]models.Expense, error)
	CreateExpense(ctx context.Context, userID string, input ExpenseInput) (*models.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, input ExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID, name, color string) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	SeedPredefined(tx *gorm.DB, userID string) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	ListBudgets(ctx context.Context, userID, month string) ([]models.Budget, error)
	UpsertBudget(ctx context.Context, userID, category string, amount float64, month string) (*models.Budget, error)
}

// StatsServicer defines the contract for monthly aggregation and export.
type StatsServicer interface {
	MonthlyStats(ctx context.Context, userID, month string) (*models.MonthlyStats, error)
	BudgetProgress(ctx context.Context, userID, month string) ([]models.BudgetProgress, error)
	ExportCSV(ctx context.Context, userID, month string, w io.Writer) error
	ExportXLSX(ctx context.Context, userID, month string, w io.Writer) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
