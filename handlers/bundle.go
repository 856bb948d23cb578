package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Dashboard endpoints
	PageHandler gin.HandlerFunc
	ViewHandler gin.HandlerFunc

	// Session interaction endpoints
	SwitchRoleHandler             gin.HandlerFunc
	ToggleMenuHandler             gin.HandlerFunc
	SelectTabHandler              gin.HandlerFunc
	UpdateCabFormHandler          gin.HandlerFunc
	SelectHandymanCategoryHandler gin.HandlerFunc
	ReloadHandler                 gin.HandlerFunc

	HealthHandler gin.HandlerFunc

	// Resolves the session for every dashboard and session route.
	SessionMiddleware gin.HandlerFunc
}

// NewHandlerBundle wires the dashboard and session handlers.
func NewHandlerBundle(dash *DashboardHandler, sess *SessionHandler, health gin.HandlerFunc, sessionMW gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		PageHandler:                   dash.PageHandler,
		ViewHandler:                   dash.ViewHandler,
		SwitchRoleHandler:             sess.SwitchRoleHandler,
		ToggleMenuHandler:             sess.ToggleMenuHandler,
		SelectTabHandler:              sess.SelectTabHandler,
		UpdateCabFormHandler:          sess.UpdateCabFormHandler,
		SelectHandymanCategoryHandler: sess.SelectHandymanCategoryHandler,
		ReloadHandler:                 sess.ReloadHandler,
		HealthHandler:                 health,
		SessionMiddleware:             sessionMW,
	}
}
