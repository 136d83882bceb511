package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

type mockStatsService struct {
	monthlyStatsFn   func(ctx context.Context, userID, month string) (*models.MonthlyStats, error)
	budgetProgressFn func(ctx context.Context, userID, month string) ([]models.BudgetProgress, error)
	exportCSVFn      func(ctx context.Context, userID, month string, w io.Writer) error
	exportXLSXFn     func(ctx context.Context, userID, month string, w io.Writer) error
}

var _ services.StatsServicer = (*mockStatsService)(nil)

func (m *mockStatsService) MonthlyStats(ctx context.Context, userID, month string) (*models.MonthlyStats, error) {
	if m.monthlyStatsFn != nil {
		return m.monthlyStatsFn(ctx, userID, month)
	}
	return &models.MonthlyStats{Month: month, ByCategory: map[string]float64{}}, nil
}

func (m *mockStatsService) BudgetProgress(ctx context.Context, userID, month string) ([]models.BudgetProgress, error) {
	if m.budgetProgressFn != nil {
		return m.budgetProgressFn(ctx, userID, month)
	}
	return []models.BudgetProgress{}, nil
}

func (m *mockStatsService) ExportCSV(ctx context.Context, userID, month string, w io.Writer) error {
	if m.exportCSVFn != nil {
		return m.exportCSVFn(ctx, userID, month, w)
	}
	_, err := io.WriteString(w, "Date,Title,Category,Amount,Notes\n")
	return err
}

func (m *mockStatsService) ExportXLSX(ctx context.Context, userID, month string, w io.Writer) error {
	if m.exportXLSXFn != nil {
		return m.exportXLSXFn(ctx, userID, month, w)
	}
	_, err := io.WriteString(w, "PK")
	return err
}

func setupStatsRouter(handler *StatsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/stats/monthly", handler.MonthlyStats)
	auth.GET("/export/csv", handler.ExportCSV)
	auth.GET("/export/xlsx", handler.ExportXLSX)
	return r
}

func TestStatsHandler_MonthlyStats(t *testing.T) {
	t.Run("returns totals", func(t *testing.T) {
		svc := &mockStatsService{
			monthlyStatsFn: func(_ context.Context, _, month string) (*models.MonthlyStats, error) {
				return &models.MonthlyStats{Month: month, Total: 17, Count: 2, ByCategory: map[string]float64{"Food": 17}}, nil
			},
		}
		r := setupStatsRouter(NewStatsHandler(svc))

		rec := doRequest(r, "GET", "/stats/monthly?month=2024-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["month"] != "2024-01" || result["total"] != 17.0 || result["count"] != 2.0 {
			t.Errorf("unexpected body: %v", result)
		}
		if byCat, ok := result["by_category"].(map[string]interface{}); !ok || byCat["Food"] != 17.0 {
			t.Errorf("unexpected by_category: %v", result["by_category"])
		}
	})

	t.Run("returns 400 without month", func(t *testing.T) {
		r := setupStatsRouter(NewStatsHandler(&mockStatsService{}))

		rec := doRequest(r, "GET", "/stats/monthly", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestStatsHandler_ExportCSV(t *testing.T) {
	t.Run("names file after month", func(t *testing.T) {
		var gotMonth string
		svc := &mockStatsService{
			exportCSVFn: func(_ context.Context, _, month string, w io.Writer) error {
				gotMonth = month
				_, err := io.WriteString(w, "Date,Title,Category,Amount,Notes\n2024-01-02,Lunch,Food,12.5,\n")
				return err
			},
		}
		r := setupStatsRouter(NewStatsHandler(svc))

		rec := doRequest(r, "GET", "/export/csv?month=2024-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonth != "2024-01" {
			t.Errorf("expected month 2024-01, got %q", gotMonth)
		}
		if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=expenses_2024-01.csv" {
			t.Errorf("unexpected Content-Disposition: %q", got)
		}
		if got := rec.Header().Get("Content-Type"); got != "text/csv" {
			t.Errorf("unexpected Content-Type: %q", got)
		}
		if rec.Body.String() != "Date,Title,Category,Amount,Notes\n2024-01-02,Lunch,Food,12.5,\n" {
			t.Errorf("unexpected body: %q", rec.Body.String())
		}
	})

	t.Run("uses all without month", func(t *testing.T) {
		r := setupStatsRouter(NewStatsHandler(&mockStatsService{}))

		rec := doRequest(r, "GET", "/export/csv", "")

		if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=expenses_all.csv" {
			t.Errorf("unexpected Content-Disposition: %q", got)
		}
	})

	t.Run("returns 500 json when rendering fails", func(t *testing.T) {
		svc := &mockStatsService{
			exportCSVFn: func(context.Context, string, string, io.Writer) error { return errors.New("query failed") },
		}
		r := setupStatsRouter(NewStatsHandler(svc))

		rec := doRequest(r, "GET", "/export/csv", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if rec.Header().Get("Content-Disposition") != "" {
			t.Error("expected no attachment header on failure")
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}

func TestStatsHandler_ExportXLSX(t *testing.T) {
	r := setupStatsRouter(NewStatsHandler(&mockStatsService{}))

	rec := doRequest(r, "GET", "/export/xlsx?month=2024-02", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=expenses_2024-02.xlsx" {
		t.Errorf("unexpected Content-Disposition: %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != xlsxContentType {
		t.Errorf("unexpected Content-Type: %q", got)
	}
}
