package handlers

import (
	"net/http"
	"strings"

	"servicehub/middleware"
	"servicehub/services/session"
	"servicehub/services/views"
	"servicehub/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler renders the shell for the current session.
type DashboardHandler struct {
	Sessions *session.Manager
}

func NewDashboardHandler(sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{Sessions: sessions}
}

// PageHandler handles GET /.
func (h *DashboardHandler) PageHandler(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if s == nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	renderPage(c, s)
}

// ViewHandler handles GET /api/view. With ?wait=true it blocks until the
// session's initial fetch has settled.
func (h *DashboardHandler) ViewHandler(c *gin.Context) {
	s := middleware.CurrentSession(c)
	if s == nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if s.Loading && c.Query("wait") == "true" {
		if err := h.Sessions.AwaitLoad(c.Request.Context(), s.ID); err != nil {
			getLogger(c).Warn("ViewHandler: gave up waiting for initial fetch", zap.String("session_id", s.ID), zap.Error(err))
		} else if fresh, err := h.Sessions.Get(c.Request.Context(), s.ID); err == nil {
			s = fresh
		}
	}
	c.JSON(http.StatusOK, pageFor(s))
}

func pageFor(s *session.Session) views.Page {
	return views.Shell(s.RoleContext(), s.UI, s.Snapshot, s.Loading)
}

func renderPage(c *gin.Context, s *session.Session) {
	page := pageFor(s)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, page)
		return
	}
	c.HTML(http.StatusOK, web.PageTemplate, page)
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
