package handlers

import (
	"context"
	"net/http"
	"time"

	"servicehub/services/session"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and whether the session store answers. The
// marketplace API state comes from the background monitor and does not affect
// the status code.
func HealthHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		storeOK := sessions.Ping(ctx) == nil
		code, status := http.StatusOK, "ok"
		if !storeOK {
			code, status = http.StatusServiceUnavailable, "degraded"
		}
		monitored := utils.GetHealthStatus()
		c.JSON(code, gin.H{
			"status":         status,
			"message":        "Hi, I'm ServiceHub",
			"sessionStore":   storeOK,
			"marketplaceApi": monitored.MarketplaceAPI,
			"apiCheckedAt":   monitored.CheckedAt,
			"checkedAt":      time.Now().UTC(),
		})
	}
}
