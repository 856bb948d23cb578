package handlers

import (
	"servicehub/middleware"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request logger, tagged with the session id once one is resolved.
func getLogger(c *gin.Context) *zap.Logger {
	logger := utils.ContextLogger(c)
	if s := middleware.CurrentSession(c); s != nil {
		logger = logger.With(zap.String("session_id", s.ID))
	}
	return logger
}
