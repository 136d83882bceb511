package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	statsService  services.StatsServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, statsService services.StatsServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, statsService: statsService, auditService: auditService}
}

// BudgetRequest represents the request payload for setting a budget.
type BudgetRequest struct {
	Category string   `json:"category" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	Month    string   `json:"month" binding:"required,month_key"`
}

// ListBudgets handles listing budgets for the authenticated user.
// @Summary     List budgets
// @Tags        budgets
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       month query string false "Only budgets for this month (YYYY-MM)"
// @Success     200 {array}  models.Budget "Budgets in creation order"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// UpsertBudget creates the budget for (category, month) or updates its amount.
// @Summary     Set a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       request body BudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Budget created or updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	budget, err := h.budgetService.UpsertBudget(c.Request.Context(), userID, req.Category, *req.Amount, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditUpsertBudget, "budget", budget.BudgetID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "amount": *req.Amount, "month": req.Month})

	c.JSON(http.StatusOK, budget)
}

// GetBudgetProgress compares the month's budgets with the month's spending.
// @Summary     Budget progress
// @Description Spent, remaining and status (ok, warning above 80%, over above 100%) per budget
// @Tags        budgets
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       month query string true "Month (YYYY-MM)"
// @Success     200 {array}  models.BudgetProgress "Progress per budget"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/progress [get]
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Query("month")
	if !validator.IsMonthKey(month) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be YYYY-MM"))
		return
	}

	progress, err := h.statsService.BudgetProgress(c.Request.Context(), userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}
