package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns the user's categories in insertion order.
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).
		Scopes(ownedBy(userID), pagination.Cap(pagination.CollectionCap)).
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return pagination.NonNil(categories), nil
}

// CreateCategory creates a user-defined category. Names are not unique.
func (s *categoryService) CreateCategory(ctx context.Context, userID, name, color string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := &models.Category{
		UserID:       userID,
		Name:         name,
		Color:        color,
		IsPredefined: false,
	}
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// DeleteCategory removes a user-defined category. Expenses that reference its
// name are left untouched.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	db := s.db.WithContext(ctx)

	var category models.Category
	if err := db.Scopes(ownedBy(userID)).Where("category_id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if category.IsPredefined {
		return apperrors.ErrPredefinedCategory
	}

	result := db.Scopes(ownedBy(userID)).
		Where("category_id = ? AND is_predefined = ?", categoryID, false).
		Delete(&models.Category{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// SeedPredefined inserts the fixed predefined categories for a new user
// inside the caller's transaction.
func (s *categoryService) SeedPredefined(tx *gorm.DB, userID string) error {
	categories := make([]models.Category, 0, len(models.PredefinedCategories))
	for _, p := range models.PredefinedCategories {
		categories = append(categories, models.Category{
			UserID:       userID,
			Name:         p.Name,
			Color:        p.Color,
			IsPredefined: true,
		})
	}
	return tx.Create(&categories).Error
}
