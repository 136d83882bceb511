package services

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// ListBudgets returns the user's budgets in insertion order, optionally for a
// single month.
func (s *budgetService) ListBudgets(ctx context.Context, userID, month string) ([]models.Budget, error) {
	query := s.db.WithContext(ctx).Scopes(ownedBy(userID), pagination.Cap(pagination.CollectionCap))
	if month != "" {
		query = query.Where("month = ?", month)
	}

	var budgets []models.Budget
	if err := query.Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return pagination.NonNil(budgets), nil
}

// UpsertBudget sets the amount for (userID, category, month). An existing
// budget keeps its id and created_at. The write is a single atomic upsert on
// the unique key, so concurrent callers never create duplicates.
func (s *budgetService) UpsertBudget(ctx context.Context, userID, category string, amount float64, month string) (*models.Budget, error) {
	if category == "" || month == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category and month are required")
	}

	var budget models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := models.Budget{
			UserID:   userID,
			Category: category,
			Month:    month,
			Amount:   amount,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount"}),
		}).Create(&candidate).Error; err != nil {
			return err
		}
		return tx.Scopes(ownedBy(userID)).
			Where("category = ? AND month = ?", category, month).
			First(&budget).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}
