package gateway

import (
	"context"

	"servicehub/models"
)

// API paths consumed from the marketplace backend.
const (
	StoresPath           = "/api/stores"
	ProductsPath         = "/api/products"
	CabServicesPath      = "/api/cab-services"
	HandymanServicesPath = "/api/handyman-services"
	DashboardPath        = "/api/analytics/dashboard"
	HealthPath           = "/api/health"
)

// Result is the outcome of one batch. When Err is set, Snapshot is the prior
// snapshot passed to FetchAll, untouched.
type Result struct {
	Snapshot models.Snapshot
	Err      error
}

// OK reports whether the batch was applied.
func (r Result) OK() bool {
	return r.Err == nil
}

// Gateway loads the read-only reference data the dashboards render.
type Gateway interface {
	FetchAll(ctx context.Context, prior models.Snapshot) Result
}
