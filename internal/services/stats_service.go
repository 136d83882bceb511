package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// Budget progress thresholds, in percent of the budgeted amount.
const (
	budgetWarningPercent = 80
	budgetOverPercent    = 100
)

// ExpenseSheetName is the worksheet written by ExportXLSX.
const ExpenseSheetName = "Expenses"

var exportHeaders = []string{"Date", "Title", "Category", "Amount", "Notes"}

// statsService aggregates expenses and renders exports.
type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB) StatsServicer {
	return &statsService{db: db}
}

// MonthlyStats totals the user's expenses whose date starts with month.
// Category totals use the expense's stored category string.
func (s *statsService) MonthlyStats(ctx context.Context, userID, month string) (*models.MonthlyStats, error) {
	if month == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}

	expenses, err := findExpenses(s.db.WithContext(ctx), userID, month)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return aggregate(month, expenses), nil
}

// BudgetProgress compares each of the month's budgets with the month's spending.
func (s *statsService) BudgetProgress(ctx context.Context, userID, month string) ([]models.BudgetProgress, error) {
	if month == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required")
	}

	db := s.db.WithContext(ctx)

	var budgets []models.Budget
	if err := db.Scopes(ownedBy(userID), pagination.Cap(pagination.CollectionCap)).
		Where("month = ?", month).
		Order("id ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenses, err := findExpenses(db, userID, month)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	stats := aggregate(month, expenses)

	progress := make([]models.BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		spent := stats.ByCategory[b.Category]
		var percentage float64
		if b.Amount > 0 {
			percentage = spent / b.Amount * 100
		}
		progress = append(progress, models.BudgetProgress{
			BudgetID:   b.BudgetID,
			Category:   b.Category,
			Month:      b.Month,
			Budgeted:   b.Amount,
			Spent:      spent,
			Remaining:  b.Amount - spent,
			Percentage: percentage,
			Status:     budgetStatus(percentage),
		})
	}
	return progress, nil
}

// ExportCSV writes the user's expenses as Date,Title,Category,Amount,Notes.
// Commas in notes become semicolons; no other field is quoted or escaped.
func (s *statsService) ExportCSV(ctx context.Context, userID, month string, w io.Writer) error {
	expenses, err := findExpenses(s.db.WithContext(ctx), userID, month)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	b.WriteByte('\n')
	for _, e := range expenses {
		notes := ""
		if e.Notes != nil {
			notes = strings.ReplaceAll(*e.Notes, ",", ";")
		}
		b.WriteString(strings.Join([]string{e.Date, e.Title, e.Category, formatAmount(e.Amount), notes}, ","))
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing csv export: %w", err)
	}
	return nil
}

// ExportXLSX writes the same rows as ExportCSV to a single-sheet workbook.
func (s *statsService) ExportXLSX(ctx context.Context, userID, month string, w io.Writer) error {
	expenses, err := findExpenses(s.db.WithContext(ctx), userID, month)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ExpenseSheetName); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(ExpenseSheetName, cell, header)
	}
	_ = f.SetCellStyle(ExpenseSheetName, "A1", "E1", headerStyle)
	_ = f.SetColWidth(ExpenseSheetName, "A", "A", 12)
	_ = f.SetColWidth(ExpenseSheetName, "B", "B", 30)
	_ = f.SetColWidth(ExpenseSheetName, "C", "C", 16)
	_ = f.SetColWidth(ExpenseSheetName, "E", "E", 40)

	for i, e := range expenses {
		row := i + 2
		notes := ""
		if e.Notes != nil {
			notes = *e.Notes
		}
		values := []interface{}{e.Date, e.Title, e.Category, e.Amount, notes}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(ExpenseSheetName, cell, &values); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx export: %w", err)
	}
	return nil
}

func aggregate(month string, expenses []models.Expense) *models.MonthlyStats {
	stats := &models.MonthlyStats{
		Month:      month,
		Count:      len(expenses),
		ByCategory: make(map[string]float64),
	}
	for _, e := range expenses {
		stats.Total += e.Amount
		stats.ByCategory[e.Category] += e.Amount
	}
	return stats
}

func budgetStatus(percentage float64) string {
	switch {
	case percentage > budgetOverPercent:
		return models.BudgetStatusOver
	case percentage > budgetWarningPercent:
		return models.BudgetStatusWarning
	default:
		return models.BudgetStatusOK
	}
}

// formatAmount renders an amount with the fewest digits that round-trip.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
