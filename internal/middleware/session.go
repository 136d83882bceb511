package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "session_token"

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

// TokenFromRequest returns the session token carried by the request. The
// cookie wins over an Authorization bearer header.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SessionAuth resolves the caller from its session token and stores the user
// id in the context. Every failure is answered with the same 401 body.
func SessionAuth(sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.Authenticate(c.Request.Context(), TokenFromRequest(c.Request))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// SetSessionCookie issues the session cookie: HttpOnly, Secure, SameSite=None.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", true, true)
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}

func abortWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
		c.Abort()
		return
	}
	WriteError(c, appErr)
	c.Abort()
}
