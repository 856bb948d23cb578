package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"servicehub/models"
	"servicehub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type apiStub struct {
	mu         sync.Mutex
	bodies     map[string]string
	statuses   map[string]int
	authHeader string
}

func newAPIStub() *apiStub {
	return &apiStub{
		bodies: map[string]string{
			StoresPath:           `{"stores":[{"id":1,"name":"Fresh Mart","category":"grocery","rating":4.5,"location":{"city":"Kadapa","state":"Andhra Pradesh"},"delivery_time":"20-30 mins","is_active":true}]}`,
			ProductsPath:         `{"products":[{"id":1,"name":"Tomatoes","stock":3,"price":50,"images":["a.jpg"]}]}`,
			CabServicesPath:      `{"services":[{"id":"cab-1","service_type":"economy","base_fare":50,"price_per_km":12,"available_slots":15}]}`,
			HandymanServicesPath: `{"services":[{"id":"handy-1","name":"Plumbing","category":"plumbing","price_range":"₹300-₹800","availability":["morning","evening"]}]}`,
			DashboardPath:        `{"total_users":10,"total_orders":4,"total_stores":2,"revenue":125000,"growth_rate":15.5}`,
		},
		statuses: map[string]int{},
	}
}

func (a *apiStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if r.URL.Path == DashboardPath {
		a.authHeader = r.Header.Get("Authorization")
	}
	if status, ok := a.statuses[r.URL.Path]; ok {
		w.WriteHeader(status)
		return
	}
	body, ok := a.bodies[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (a *apiStub) auth() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authHeader
}

func newTestGateway(t *testing.T, stub *apiStub, token TokenSource) *HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return NewHTTPGateway(srv.URL+"/", 0, token, nil)
}

func TestFetchAllSuccess(t *testing.T) {
	stub := newAPIStub()
	gw := newTestGateway(t, stub, nil)

	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.NoError(t, res.Err)
	require.True(t, res.OK())

	snap := res.Snapshot
	require.Len(t, snap.Stores, 1)
	assert.Equal(t, "1", snap.Stores[0].ID)
	assert.Equal(t, "grocery", snap.Stores[0].Category)
	assert.Equal(t, "Kadapa", snap.Stores[0].Location.City)
	assert.InDelta(t, 4.5, snap.Stores[0].Rating, 1e-9)

	require.Len(t, snap.Products, 1)
	assert.Equal(t, 3, snap.Products[0].Stock)
	assert.InDelta(t, 50, snap.Products[0].Price, 1e-9)
	assert.Equal(t, []string{"a.jpg"}, snap.Products[0].Images)

	require.Len(t, snap.CabServices, 1)
	assert.Equal(t, 15, snap.CabServices[0].AvailableSlots)

	require.Len(t, snap.HandymanServices, 1)
	assert.Equal(t, []string{"morning", "evening"}, snap.HandymanServices[0].Availability)

	assert.Equal(t, int64(10), snap.Dashboard.TotalUsers)
	assert.InDelta(t, 125000, snap.Dashboard.Revenue, 1e-9)
	assert.False(t, snap.FetchedAt.IsZero())

	assert.Equal(t, "Bearer "+PlaceholderToken, stub.auth())
}

func TestFetchAllFailureKeepsPrior(t *testing.T) {
	prior := models.Snapshot{
		Stores:    []models.Store{{ID: "old", Category: "grocery"}},
		FetchedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, path := range []string{StoresPath, ProductsPath, CabServicesPath, HandymanServicesPath, DashboardPath} {
		t.Run(path, func(t *testing.T) {
			stub := newAPIStub()
			stub.statuses[path] = http.StatusInternalServerError
			gw := newTestGateway(t, stub, nil)

			res := gw.FetchAll(context.Background(), prior)
			require.Error(t, res.Err)
			assert.False(t, res.OK())
			assert.Equal(t, prior, res.Snapshot)

			var fetchErr *FetchError
			require.True(t, errors.As(res.Err, &fetchErr))
			assert.Equal(t, path, fetchErr.Endpoint)
			assert.Equal(t, http.StatusInternalServerError, fetchErr.Status)
		})
	}
}

func TestFetchAllMalformedBodyFails(t *testing.T) {
	stub := newAPIStub()
	stub.bodies[ProductsPath] = `{"products":`
	gw := newTestGateway(t, stub, nil)

	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), ProductsPath)
	assert.True(t, res.Snapshot.IsEmpty())
}

func TestFetchAllUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := NewHTTPGateway(url, 0, nil, nil)
	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.Error(t, res.Err)
	assert.True(t, res.Snapshot.IsEmpty())
}

func TestFetchAllMissingFieldsFallBack(t *testing.T) {
	stub := newAPIStub()
	stub.bodies[StoresPath] = `{}`
	stub.bodies[ProductsPath] = `{"products":[{"id":"p1","name":"Salt","price":"abc"}]}`
	stub.bodies[CabServicesPath] = `{"services":null}`
	stub.bodies[HandymanServicesPath] = `{"services":[{"id":"h1","category":"cleaning","price_range":{"min":200,"max":500},"rating":"4.2"}]}`
	stub.bodies[DashboardPath] = `{"total_users":3}`
	gw := newTestGateway(t, stub, nil)

	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.NoError(t, res.Err)
	snap := res.Snapshot

	assert.NotNil(t, snap.Stores)
	assert.Empty(t, snap.Stores)
	assert.NotNil(t, snap.CabServices)
	assert.Empty(t, snap.CabServices)

	require.Len(t, snap.Products, 1)
	p := snap.Products[0]
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Stock)
	assert.Equal(t, []string{models.PlaceholderImage}, p.Images)
	assert.True(t, p.IsAvailable)

	require.Len(t, snap.HandymanServices, 1)
	h := snap.HandymanServices[0]
	assert.Equal(t, "₹200-₹500", h.PriceRange)
	assert.InDelta(t, 4.2, h.Rating, 1e-9)
	assert.Empty(t, h.Availability)
	assert.Equal(t, models.Location{}, h.Location)

	assert.Equal(t, int64(3), snap.Dashboard.TotalUsers)
	assert.Zero(t, snap.Dashboard.Revenue)
	assert.Zero(t, snap.Dashboard.GrowthRate)
}

func TestTokenFromConfig(t *testing.T) {
	tok, err := TokenFromConfig("static", "secret", time.Minute)()
	require.NoError(t, err)
	assert.Equal(t, "static", tok)

	tok, err = TokenFromConfig("", "", time.Minute)()
	require.NoError(t, err)
	assert.Equal(t, PlaceholderToken, tok)

	tok, err = TokenFromConfig("", "secret", time.Minute)()
	require.NoError(t, err)
	sub, err := utils.ExtractSubject("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, utils.ServiceSubject, sub)
}

func TestFetchAllSendsMintedToken(t *testing.T) {
	stub := newAPIStub()
	gw := newTestGateway(t, stub, TokenFromConfig("", "secret", time.Minute))

	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.NoError(t, res.Err)
	header := stub.auth()
	require.Contains(t, header, "Bearer ")

	sub, err := utils.ExtractSubject("secret", header[len("Bearer "):])
	require.NoError(t, err)
	assert.Equal(t, utils.ServiceSubject, sub)
}

func TestFetchAllTokenErrorAbandonsBatch(t *testing.T) {
	stub := newAPIStub()
	gw := newTestGateway(t, stub, func() (string, error) { return "", errors.New("no key") })

	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "bearer token")
}

func TestPing(t *testing.T) {
	stub := newAPIStub()
	stub.bodies[HealthPath] = `{"status":"healthy"}`
	gw := newTestGateway(t, stub, nil)
	assert.NoError(t, gw.Ping(context.Background()))

	down := newAPIStub()
	down.statuses[HealthPath] = http.StatusServiceUnavailable
	assert.Error(t, newTestGateway(t, down, nil).Ping(context.Background()))
}

func TestFetchAllNonFiniteNumbersBecomeZero(t *testing.T) {
	stub := newAPIStub()
	stub.bodies[StoresPath] = `{"stores":[{"id":"s1","category":"grocery","rating":"Infinity"}]}`
	stub.bodies[ProductsPath] = `{"products":[{"id":"p1","price":"nan","stock":4}]}`
	stub.bodies[CabServicesPath] = `{"services":[{"id":"c1","base_fare":"-Inf","price_per_km":"NaN"}]}`
	stub.bodies[HandymanServicesPath] = `{"services":[{"id":"h1","rating":"NaN","price_range":{"min":"NaN","max":500}}]}`
	stub.bodies[DashboardPath] = `{"revenue":"NaN","growth_rate":"Infinity"}`
	gw := newTestGateway(t, stub, nil)

	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.NoError(t, res.Err)
	snap := res.Snapshot

	assert.Zero(t, snap.Stores[0].Rating)
	assert.Zero(t, snap.Products[0].Price)
	assert.Equal(t, 4, snap.Products[0].Stock)
	assert.Zero(t, snap.CabServices[0].BaseFare)
	assert.Zero(t, snap.CabServices[0].PricePerKm)
	assert.Zero(t, snap.HandymanServices[0].Rating)
	assert.Equal(t, "₹0-₹500", snap.HandymanServices[0].PriceRange)
	assert.Zero(t, snap.Dashboard.Revenue)
	assert.Zero(t, snap.Dashboard.GrowthRate)
}

func TestFetchAllActiveFlagDefaultsTrue(t *testing.T) {
	stub := newAPIStub()
	stub.bodies[CabServicesPath] = `{"services":[{"id":"c1"},{"id":"c2","is_active":false}]}`
	gw := newTestGateway(t, stub, nil)

	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.NoError(t, res.Err)
	require.Len(t, res.Snapshot.CabServices, 2)
	assert.True(t, res.Snapshot.CabServices[0].IsActive)
	assert.False(t, res.Snapshot.CabServices[1].IsActive)
	assert.True(t, res.Snapshot.HandymanServices[0].IsActive)
}

func TestFetchAllLeavesFailureLoggingToCaller(t *testing.T) {
	stub := newAPIStub()
	stub.statuses[ProductsPath] = http.StatusBadGateway
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	gw := NewHTTPGateway(srv.URL, 0, nil, zap.New(core))
	res := gw.FetchAll(context.Background(), models.Snapshot{})
	require.Error(t, res.Err)
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
