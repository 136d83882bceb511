package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest is the payload for creating or replacing an expense. Amount
// may be zero or negative; date is stored exactly as sent.
type ExpenseRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Notes    *string  `json:"notes"`
}

func (r ExpenseRequest) input() services.ExpenseInput {
	return services.ExpenseInput{
		Title:    r.Title,
		Amount:   *r.Amount,
		Category: r.Category,
		Date:     r.Date,
		Notes:    r.Notes,
	}
}

// ListExpenses handles listing expenses for the authenticated user.
// @Summary     List expenses
// @Description Expenses ordered by date descending, capped at 1000
// @Tags        expenses
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       month query string false "Date prefix, e.g. 2024-03"
// @Success     200 {array}  models.Expense "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), userID, c.Query("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense handles the creation of a new expense.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditCreateExpense, "expense", expense.ExpenseID, c.ClientIP(),
		map[string]interface{}{"amount": expense.Amount, "category": expense.Category, "date": expense.Date})

	c.JSON(http.StatusOK, expense)
}

// UpdateExpense handles replacing an expense.
// @Summary     Replace an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       id      path string         true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	expenseID := c.Param("id")
	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, expenseID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditUpdateExpense, "expense", expenseID, c.ClientIP(),
		map[string]interface{}{"amount": expense.Amount, "category": expense.Category, "date": expense.Date})

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID := c.Param("id")
	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditDeleteExpense, "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense deleted"})
}
