package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StatsHandler serves monthly statistics and exports.
type StatsHandler struct {
	statsService services.StatsServicer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService services.StatsServicer) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// MonthlyStats handles the monthly aggregate request.
// @Summary     Monthly statistics
// @Tags        stats
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       month query string true "Date prefix, e.g. 2024-01"
// @Success     200 {object} models.MonthlyStats "Totals"
// @Failure     400 {object} ErrorResponse "Missing month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stats/monthly [get]
func (h *StatsHandler) MonthlyStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Query("month")
	if month == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required"))
		return
	}

	stats, err := h.statsService.MonthlyStats(c.Request.Context(), userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportCSV streams the user's expenses as CSV.
// @Summary     Export expenses as CSV
// @Tags        export
// @Produce     text/csv
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       month query string false "Date prefix, e.g. 2024-01"
// @Success     200 {file}   file "expenses_<month|all>.csv"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/csv [get]
func (h *StatsHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv", "text/csv", h.statsService.ExportCSV)
}

// ExportXLSX streams the user's expenses as a spreadsheet.
// @Summary     Export expenses as XLSX
// @Tags        export
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    SessionCookie
// @Security    BearerAuth
// @Param       month query string false "Date prefix, e.g. 2024-01"
// @Success     200 {file}   file "expenses_<month|all>.xlsx"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/xlsx [get]
func (h *StatsHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx", xlsxContentType, h.statsService.ExportXLSX)
}

type exportFunc func(ctx context.Context, userID, month string, w io.Writer) error

// export renders into a buffer first so a failure still yields a JSON error.
func (h *StatsHandler) export(c *gin.Context, ext, contentType string, render exportFunc) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Query("month")
	var buf bytes.Buffer
	if err := render(c.Request.Context(), userID, month, &buf); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename(month, ext)))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func exportFilename(month, ext string) string {
	if month == "" {
		month = "all"
	}
	return fmt.Sprintf("expenses_%s.%s", month, ext)
}
