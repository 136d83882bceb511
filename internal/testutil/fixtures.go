package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email: email,
		Name:  "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSession stores a session for token that expires at expiresAt.
func CreateTestSession(t *testing.T, db *gorm.DB, userID, token string, expiresAt time.Time) *models.Session {
	t.Helper()

	session := &models.Session{
		SessionToken: token,
		UserID:       userID,
		ExpiresAt:    expiresAt,
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return session
}

// CreateTestCategory creates a user-defined category.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()
	return createCategory(t, db, userID, false)
}

// CreateTestPredefinedCategory creates a category flagged as predefined.
func CreateTestPredefinedCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()
	return createCategory(t, db, userID, true)
}

func createCategory(t *testing.T, db *gorm.DB, userID string, predefined bool) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Category %d", nextID()),
		Color:        "#123456",
		IsPredefined: predefined,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense with the given category, amount and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, category string, amount float64, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a budget for category in month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category, month string, amount float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Month:    month,
		Amount:   amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CountRows returns the number of rows of model matching the optional condition.
func CountRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
