package handlers

import (
	"errors"
	"net/http"
	"time"

	"servicehub/middleware"
	"servicehub/models"
	"servicehub/services/session"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler applies UI interactions to the current session. None of
// these endpoints fetch data.
type SessionHandler struct {
	Sessions   *session.Manager
	CookieName string
	CookieTTL  time.Duration
}

func NewSessionHandler(sessions *session.Manager, cookieName string, ttl time.Duration) *SessionHandler {
	return &SessionHandler{Sessions: sessions, CookieName: cookieName, CookieTTL: ttl}
}

type roleRequest struct {
	Role string `form:"role" json:"role" binding:"required"`
}

type tabRequest struct {
	Tab string `form:"tab" json:"tab" binding:"required"`
}

type cabFormRequest struct {
	Pickup      string `form:"pickup" json:"pickup"`
	Destination string `form:"destination" json:"destination"`
	ServiceType string `form:"service_type" json:"service_type"`
}

type handymanRequest struct {
	Category string `form:"category" json:"category"`
}

// SwitchRoleHandler handles POST /session/role.
func (h *SessionHandler) SwitchRoleHandler(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid role request", err.Error())
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid role", err.Error())
		return
	}
	s, err := h.Sessions.SwitchRole(c.Request.Context(), middleware.CurrentSession(c).ID, role)
	h.respond(c, s, err)
}

// ToggleMenuHandler handles POST /session/menu.
func (h *SessionHandler) ToggleMenuHandler(c *gin.Context) {
	s, err := h.Sessions.ToggleMenu(c.Request.Context(), middleware.CurrentSession(c).ID)
	h.respond(c, s, err)
}

// SelectTabHandler handles POST /session/tab.
func (h *SessionHandler) SelectTabHandler(c *gin.Context) {
	var req tabRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid tab request", err.Error())
		return
	}
	tab, err := models.ParseServiceTab(req.Tab)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid tab", err.Error())
		return
	}
	s, err := h.Sessions.SelectTab(c.Request.Context(), middleware.CurrentSession(c).ID, tab)
	h.respond(c, s, err)
}

// UpdateCabFormHandler handles POST /session/cab. The form is stored, not submitted.
func (h *SessionHandler) UpdateCabFormHandler(c *gin.Context) {
	var req cabFormRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid cab form", err.Error())
		return
	}
	form := models.CabForm{Pickup: req.Pickup, Destination: req.Destination, ServiceType: req.ServiceType}
	s, err := h.Sessions.UpdateCabForm(c.Request.Context(), middleware.CurrentSession(c).ID, form)
	h.respond(c, s, err)
}

// SelectHandymanCategoryHandler handles POST /session/handyman.
func (h *SessionHandler) SelectHandymanCategoryHandler(c *gin.Context) {
	var req handymanRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}
	s, err := h.Sessions.SelectHandymanCategory(c.Request.Context(), middleware.CurrentSession(c).ID, req.Category)
	h.respond(c, s, err)
}

// ReloadHandler handles POST /session/reload: drop all state and fetch again.
func (h *SessionHandler) ReloadHandler(c *gin.Context) {
	s, err := h.Sessions.Reset(c.Request.Context(), middleware.CurrentSession(c).ID)
	if err == nil {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.CookieName, s.ID, int(h.CookieTTL.Seconds()), "/", "", false, true)
	}
	h.respond(c, s, err)
}

func (h *SessionHandler) respond(c *gin.Context, s *session.Session, err error) {
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			// Expired between middleware and update; the next GET starts a new one.
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		getLogger(c).Error("SessionHandler: failed to update session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update session", err.Error())
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, pageFor(s))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
