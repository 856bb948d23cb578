package routes

import (
	"net/http"
	"time"

	"servicehub/handlers"
	"servicehub/middleware"
	"servicehub/utils"
	"servicehub/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterDashboardRoutes registers the shell pages.
func RegisterDashboardRoutes(r gin.IRouter, hb *handlers.HandlerBundle) {
	r.GET("/", hb.SessionMiddleware, hb.PageHandler)
	r.GET("/api/view", hb.SessionMiddleware, hb.ViewHandler)
}

// RegisterSessionRoutes registers the UI interaction endpoints.
func RegisterSessionRoutes(r gin.IRouter, hb *handlers.HandlerBundle) {
	api := r.Group("/session")
	{
		api.Use(hb.SessionMiddleware)
		api.POST("/role", hb.SwitchRoleHandler)
		api.POST("/menu", hb.ToggleMenuHandler)
		api.POST("/tab", hb.SelectTabHandler)
		api.POST("/cab", hb.UpdateCabFormHandler)
		api.POST("/handyman", hb.SelectHandymanCategoryHandler)
		api.POST("/reload", hb.ReloadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r gin.IRouter, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The rate limit applies to the dashboard's own routes only; anything mounted
// on r afterwards (the fixture API) is not limited.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxRequestsPerMin int) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	app := r.Group("/", middleware.RateLimitMiddleware(maxRequestsPerMin))
	RegisterDashboardRoutes(app, hb)
	RegisterSessionRoutes(app, hb)
	RegisterHealthRoute(app, hb)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// NewRouter builds the gin engine with the global middleware chain, the
// embedded templates and every route registered.
func NewRouter(hb *handlers.HandlerBundle, logger *zap.Logger, maxRequestsPerMin int) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.SetHTMLTemplate(tmpl)

	RegisterRoutes(router, hb, maxRequestsPerMin)
	return router, nil
}
