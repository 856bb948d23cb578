package middleware

import (
	"net/http"
	"time"

	"servicehub/services/session"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionKey is the gin context key holding the *session.Session.
const SessionKey = "session"

// SessionMiddleware resolves the session cookie, starting a new session (and
// with it the one-time data fetch) when the cookie is missing or stale.
func SessionMiddleware(m *session.Manager, cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)
		s, started, err := m.GetOrStart(c.Request.Context(), id)
		if err != nil {
			utils.ContextLogger(c).Error("SessionMiddleware: failed to resolve session", zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "Session store unavailable", err.Error())
			return
		}
		if started {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, s.ID, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set(SessionKey, s)
		c.Next()
	}
}

// CurrentSession returns the session resolved by SessionMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
