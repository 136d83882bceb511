package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

type mockBudgetService struct {
	listBudgetsFn  func(ctx context.Context, userID, month string) ([]models.Budget, error)
	upsertBudgetFn func(ctx context.Context, userID, category string, amount float64, month string) (*models.Budget, error)
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func (m *mockBudgetService) ListBudgets(ctx context.Context, userID, month string) ([]models.Budget, error) {
	if m.listBudgetsFn != nil {
		return m.listBudgetsFn(ctx, userID, month)
	}
	return []models.Budget{}, nil
}

func (m *mockBudgetService) UpsertBudget(ctx context.Context, userID, category string, amount float64, month string) (*models.Budget, error) {
	if m.upsertBudgetFn != nil {
		return m.upsertBudgetFn(ctx, userID, category, amount, month)
	}
	return &models.Budget{BudgetID: "budget_000000000001", UserID: userID, Category: category, Amount: amount, Month: month}, nil
}

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/budgets", handler.ListBudgets)
	auth.POST("/budgets", handler.UpsertBudget)
	auth.GET("/budgets/progress", handler.GetBudgetProgress)
	return r
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	var gotMonth string
	svc := &mockBudgetService{
		listBudgetsFn: func(_ context.Context, _, month string) ([]models.Budget, error) {
			gotMonth = month
			return []models.Budget{{BudgetID: "budget_1", Category: "Food", Month: "2024-01", Amount: 300}}, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc, &mockStatsService{}, &mockAuditService{}))

	rec := doRequest(r, "GET", "/budgets?month=2024-01", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotMonth != "2024-01" {
		t.Errorf("expected month filter 2024-01, got %q", gotMonth)
	}
	items := parseJSONArray(t, rec)
	if len(items) != 1 || items[0]["amount"] != 300.0 {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestBudgetHandler_UpsertBudget(t *testing.T) {
	t.Run("returns 200 with budget", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatsService{}, audit))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Food","amount":300,"month":"2024-01"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["category"] != "Food" || result["amount"] != 300.0 || result["month"] != "2024-01" {
			t.Errorf("unexpected body: %v", result)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "UPSERT_BUDGET" {
			t.Errorf("expected UPSERT_BUDGET audit, got %+v", audit.entries)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing amount", body: `{"category":"Food","month":"2024-01"}`},
		{name: "missing category", body: `{"amount":10,"month":"2024-01"}`},
		{name: "bad month", body: `{"category":"Food","amount":10,"month":"2024-13"}`},
		{name: "full date as month", body: `{"category":"Food","amount":10,"month":"2024-01-01"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatsService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/budgets", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestBudgetHandler_GetBudgetProgress(t *testing.T) {
	t.Run("returns progress rows", func(t *testing.T) {
		stats := &mockStatsService{
			budgetProgressFn: func(_ context.Context, _, month string) ([]models.BudgetProgress, error) {
				return []models.BudgetProgress{{
					BudgetID: "budget_1", Category: "Food", Month: month,
					Budgeted: 100, Spent: 85, Remaining: 15, Percentage: 85, Status: models.BudgetStatusWarning,
				}}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, stats, &mockAuditService{}))

		rec := doRequest(r, "GET", "/budgets/progress?month=2024-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		items := parseJSONArray(t, rec)
		if len(items) != 1 || items[0]["status"] != "warning" || items[0]["remaining"] != 15.0 {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	for _, path := range []string{"/budgets/progress", "/budgets/progress?month=January"} {
		t.Run("returns 400 for "+path, func(t *testing.T) {
			r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}, &mockStatsService{}, &mockAuditService{}))

			rec := doRequest(r, "GET", path, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}
