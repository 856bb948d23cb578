// File: servicehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servicehub/config"
	"servicehub/fixtures"
	"servicehub/handlers"
	"servicehub/middleware"
	"servicehub/routes"
	"servicehub/services/gateway"
	"servicehub/services/session"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	store, err := newSessionStore(rootCtx, sessionTTL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize session store: %v", err)
	}

	// gateway.
	apiGateway := gateway.NewHTTPGateway(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.APITimeoutSeconds)*time.Second,
		gateway.TokenFromConfig(config.AppConfig.APIToken, config.AppConfig.JWTSecret, 15*time.Minute),
		logger,
	)

	// services.
	sessions := session.NewManager(store, apiGateway, logger)
	utils.StartHealthMonitor(rootCtx, time.Minute, sessions.Ping, apiGateway.Ping)

	dashboardHandler := handlers.NewDashboardHandler(sessions)
	sessionHandler := handlers.NewSessionHandler(sessions, config.AppConfig.SessionCookie, sessionTTL)
	handlerBundle := handlers.NewHandlerBundle(
		dashboardHandler,
		sessionHandler,
		handlers.HealthHandler(sessions),
		middleware.SessionMiddleware(sessions, config.AppConfig.SessionCookie, sessionTTL),
	)

	router, err := routes.NewRouter(handlerBundle, logger, config.AppConfig.MaxRequestsPerMin)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build router: %v", err)
	}
	// Mounted on the engine, outside the rate-limited dashboard group: every
	// session start spends five requests here.
	if config.AppConfig.ServeFixtures {
		fixtures.RegisterRoutes(router, fixtures.Seed())
		logger.Info("main: serving fixture marketplace API", zap.String("api_base_url", config.AppConfig.APIBaseURL))
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func newSessionStore(ctx context.Context, ttl time.Duration) (session.Store, error) {
	switch config.AppConfig.SessionStore {
	case "redis":
		if err := utils.InitSessionCache(); err != nil {
			return nil, err
		}
		return session.NewRedisStore(utils.SessionCacheClient, ttl), nil
	default:
		store := session.NewMemoryStore(ttl)
		store.StartSweeper(ctx, time.Minute)
		return store, nil
	}
}
