package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// ListExpenses returns the user's expenses, newest date first. A non-empty
// month keeps only expenses whose date string starts with it.
func (s *expenseService) ListExpenses(ctx context.Context, userID, month string) ([]models.Expense, error) {
	expenses, err := findExpenses(s.db.WithContext(ctx), userID, month)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// CreateExpense stores a new expense. The category is not checked against the
// user's categories and the amount may be zero or negative.
func (s *expenseService) CreateExpense(ctx context.Context, userID string, input ExpenseInput) (*models.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    input.Title,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     input.Date,
		Notes:    input.Notes,
	}
	if err := s.db.WithContext(ctx).Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// UpdateExpense replaces the five mutable fields of an expense owned by userID.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, input ExpenseInput) (*models.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	var expense models.Expense
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Expense{}).
			Scopes(ownedBy(userID)).
			Where("expense_id = ?", expenseID).
			Updates(map[string]interface{}{
				"title":    input.Title,
				"amount":   input.Amount,
				"category": input.Category,
				"date":     input.Date,
				"notes":    input.Notes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrExpenseNotFound
		}
		return tx.Scopes(ownedBy(userID)).Where("expense_id = ?", expenseID).First(&expense).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// DeleteExpense removes an expense owned by userID.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	result := s.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Where("expense_id = ?", expenseID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// findExpenses is shared by listing, stats and export so all three select the
// same rows.
func findExpenses(db *gorm.DB, userID, month string) ([]models.Expense, error) {
	var expenses []models.Expense
	err := db.Scopes(ownedBy(userID), datePrefix(month), pagination.Cap(pagination.ExpenseListCap)).
		Order("date DESC").
		Order("id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return pagination.NonNil(expenses), nil
}

func validateExpenseInput(input ExpenseInput) error {
	switch {
	case input.Title == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	case input.Category == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	case input.Date == "":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return nil
}
