package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicehub/models"
	"servicehub/services/gateway"
	"servicehub/services/session"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticGateway struct{}

func (staticGateway) FetchAll(context.Context, models.Snapshot) gateway.Result {
	return gateway.Result{Snapshot: models.Snapshot{FetchedAt: time.Now()}}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireBearer(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireBearer(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("bearerToken"))
	})

	for _, header := range []string{"", "Basic abc", "Bearer ", "Bearer    "} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := serve(r, req)
		assert.Equal(t, http.StatusForbidden, w.Code, header)
		assert.JSONEq(t, `{"detail":"Not authenticated"}`, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer dummy-token")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dummy-token", w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusNoContent, serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)

	other := httptest.NewRequest(http.MethodGet, "/x", nil)
	other.RemoteAddr = "198.51.100.7:4000"
	assert.Equal(t, http.StatusNoContent, serve(r, other).Code)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) {
		_, ok := c.Get(utils.LoggerKey)
		assert.True(t, ok)
		assert.Equal(t, c.Writer.Header().Get(RequestIDHeader), c.GetString(utils.RequestIDKey))
		c.Status(http.StatusOK)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestSessionMiddlewareIssuesCookieOnce(t *testing.T) {
	m := session.NewManager(session.NewMemoryStore(time.Hour), staticGateway{}, zap.NewNop())
	r := gin.New()
	r.GET("/x", SessionMiddleware(m, "sid", time.Hour), func(c *gin.Context) {
		s := CurrentSession(c)
		require.NotNil(t, s)
		c.String(http.StatusOK, s.ID)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, w.Body.String(), cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(cookies[0])
	w = serve(r, req)
	assert.Equal(t, cookies[0].Value, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}
