package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// AuthHandler handles session exchange, identity lookup and logout.
type AuthHandler struct {
	sessionService services.SessionServicer
	auditService   services.AuditServicer
	sessionTTL     time.Duration
}

// NewAuthHandler creates a new AuthHandler. sessionTTL is the cookie lifetime.
func NewAuthHandler(sessionService services.SessionServicer, auditService services.AuditServicer, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = services.DefaultSessionTTL
	}
	return &AuthHandler{sessionService: sessionService, auditService: auditService, sessionTTL: sessionTTL}
}

// CreateSessionRequest represents the request payload for a session exchange
type CreateSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// CreateSession exchanges a provider session id for a local session.
// @Summary     Exchange session
// @Description Resolve a provider session id, create or refresh the user and set the session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body CreateSessionRequest true "Provider session id"
// @Success     200 {object} models.User "Signed-in user"
// @Failure     400 {object} ErrorResponse "Missing session_id"
// @Failure     401 {object} ErrorResponse "Provider rejected the session"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/session [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "session_id required"))
		return
	}

	user, session, err := h.sessionService.ExchangeSession(c.Request.Context(), req.SessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), user.UserID, models.AuditLogin, "session", "", c.ClientIP(), nil)

	middleware.SetSessionCookie(c, session.SessionToken, h.sessionTTL)
	c.JSON(http.StatusOK, user)
}

// Me returns the authenticated user.
// @Summary     Current user
// @Tags        auth
// @Produce     json
// @Security    SessionCookie
// @Security    BearerAuth
// @Success     200 {object} models.User "Authenticated user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.sessionService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout deletes the caller's session, if any, and clears the cookie.
// @Summary     Log out
// @Tags        auth
// @Produce     json
// @Success     200 {object} MessageResponse "Logged out"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	token := middleware.TokenFromRequest(c.Request)

	if token != "" {
		userID, _ := h.sessionService.Authenticate(ctx, token)
		if err := h.sessionService.Logout(ctx, token); err != nil {
			logger.Get().Warnw("logout failed", "error", err, "user_id", userID)
		} else if userID != "" {
			h.auditService.Log(ctx, userID, models.AuditLogout, "session", "", c.ClientIP(), nil)
		}
	}

	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}
