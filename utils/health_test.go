package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealthStoresStatus(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	status := CheckHealth(context.Background(), up, down)
	assert.True(t, status.SessionStore)
	assert.False(t, status.MarketplaceAPI)
	assert.Equal(t, status, GetHealthStatus())

	status = CheckHealth(context.Background(), nil, up)
	assert.False(t, status.SessionStore)
	assert.True(t, status.MarketplaceAPI)
}

func TestStartHealthMonitorChecksImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 1)
	api := func(context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil
	}
	StartHealthMonitor(ctx, time.Hour, nil, api)

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not run its first check")
	}
}
