package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PlaceholderToken is sent on the dashboard request when no credential is configured.
const PlaceholderToken = "dummy-token"

// TokenSource yields the bearer credential for the dashboard request.
type TokenSource func() (string, error)

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return func() (string, error) { return token, nil }
}

// HTTPGateway fetches the five collections from the marketplace API.
type HTTPGateway struct {
	BaseURL string
	Client  *http.Client
	Token   TokenSource
	Logger  *zap.Logger
	now     func() time.Time
}

// NewHTTPGateway creates a gateway. A zero timeout leaves requests unbounded.
func NewHTTPGateway(baseURL string, timeout time.Duration, token TokenSource, logger *zap.Logger) *HTTPGateway {
	if token == nil {
		token = StaticToken(PlaceholderToken)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPGateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
		Token:   token,
		Logger:  logger,
		now:     time.Now,
	}
}

// FetchAll issues the five GETs concurrently and joins them. The snapshot is
// assembled only after every request succeeded; the first failure abandons the
// batch and prior is returned as-is. Failures are left to the caller to log.
func (g *HTTPGateway) FetchAll(ctx context.Context, prior models.Snapshot) Result {
	var (
		stores    storesEnvelope
		products  productsEnvelope
		cabs      cabServicesEnvelope
		handymen  handymanServicesEnvelope
		dashboard wireDashboard
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error { return g.getJSON(egCtx, StoresPath, "", &stores) })
	eg.Go(func() error { return g.getJSON(egCtx, ProductsPath, "", &products) })
	eg.Go(func() error { return g.getJSON(egCtx, CabServicesPath, "", &cabs) })
	eg.Go(func() error { return g.getJSON(egCtx, HandymanServicesPath, "", &handymen) })
	eg.Go(func() error {
		token, err := g.Token()
		if err != nil {
			return fmt.Errorf("fetch %s: bearer token: %w", DashboardPath, err)
		}
		return g.getJSON(egCtx, DashboardPath, token, &dashboard)
	})

	if err := eg.Wait(); err != nil {
		return Result{Snapshot: prior, Err: err}
	}

	snap := models.Snapshot{
		Stores:           stores.normalize(),
		Products:         products.normalize(),
		CabServices:      cabs.normalize(),
		HandymanServices: handymen.normalize(),
		Dashboard:        dashboard.normalize(),
		FetchedAt:        g.now(),
	}
	g.Logger.Info("gateway: initial data fetched",
		zap.Int("stores", len(snap.Stores)),
		zap.Int("products", len(snap.Products)),
		zap.Int("cab_services", len(snap.CabServices)),
		zap.Int("handyman_services", len(snap.HandymanServices)),
	)
	return Result{Snapshot: snap}
}

// Ping checks that the marketplace API answers its health endpoint. It is not
// part of the data load and never touches a session.
func (g *HTTPGateway) Ping(ctx context.Context) error {
	var body map[string]interface{}
	return g.getJSON(ctx, HealthPath, "", &body)
}

func (g *HTTPGateway) getJSON(ctx context.Context, path, bearer string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("fetch %s: build request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Endpoint: path, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fetch %s: decode: %w", path, err)
	}
	return nil
}

// TokenFromConfig picks the dashboard credential: an explicit token wins, then a
// freshly minted service JWT when a signing secret is configured, then the placeholder.
func TokenFromConfig(apiToken, jwtSecret string, ttl time.Duration) TokenSource {
	switch {
	case apiToken != "":
		return StaticToken(apiToken)
	case jwtSecret != "":
		return func() (string, error) {
			return utils.GenerateServiceToken(jwtSecret, utils.ServiceSubject, ttl)
		}
	default:
		return StaticToken(PlaceholderToken)
	}
}
