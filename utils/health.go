package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger reports whether a dependency answers.
type Pinger func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	SessionStore   bool      `json:"sessionStore"`
	MarketplaceAPI bool      `json:"marketplaceApi"`
	CheckedAt      time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings both dependencies once and stores the result.
func CheckHealth(ctx context.Context, store, api Pinger) HealthStatus {
	status := HealthStatus{
		SessionStore:   ping(ctx, store),
		MarketplaceAPI: ping(ctx, api),
		CheckedAt:      time.Now(),
	}
	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

func ping(ctx context.Context, p Pinger) bool {
	if p == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p(ctx) == nil
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, interval time.Duration, store, api Pinger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			status := CheckHealth(ctx, store, api)
			if !status.MarketplaceAPI {
				GetLogger().Warn("health: marketplace API unreachable", zap.Time("checked_at", status.CheckedAt))
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
