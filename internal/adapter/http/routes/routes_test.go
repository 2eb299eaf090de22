package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apphttp "pollsapp/internal/adapter/http"
	"pollsapp/internal/adapter/http/middleware"
	"pollsapp/internal/adapter/http/routes"
	"pollsapp/internal/core/telemetry"
	"pollsapp/pkg/config"
	. "pollsapp/pkg/test"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newRouter(t *testing.T, limits map[string]config.RateLimitConfig) (*gin.Engine, *prometheus.Registry) {
	gin.SetMode(gin.TestMode)

	db := InitTestDB()
	t.Cleanup(func() { db.Close() })

	cfg := config.GetDefaultConfig()
	cfg.RateLimitConfigs = limits

	registry := prometheus.NewRegistry()
	container := apphttp.NewContainer(db, config.NewNopLogger(), nil)

	router := routes.SetupRouterWithConfig(container.Handlers(), telemetry.NewAppMetrics(registry), config.NewNopLogger(), cfg, nil)

	return router, registry
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestFullRouter_ServesAndCountsRequests(t *testing.T) {
	RegisterTestingT(t)

	router, registry := newRouter(t, config.DefaultRateLimits())

	rr := serve(router, http.MethodPost, "/todos", `{"text": "walk"}`)
	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Header().Get(middleware.RequestIDHeader)).NotTo(BeEmpty())
	Expect(rr.Header().Get("X-RateLimit-Limit")).To(Equal("30"))

	rr = serve(router, http.MethodGet, "/todos", "")
	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(MatchJSON(`{"todos": [{"id": 1, "text": "walk", "completed": false}]}`))

	count, err := testutil.GatherAndCount(registry, "http_requests_total")
	Expect(err).NotTo(HaveOccurred())
	Expect(count).To(Equal(2))
}

func TestFullRouter_RateLimited(t *testing.T) {
	RegisterTestingT(t)

	router, _ := newRouter(t, map[string]config.RateLimitConfig{
		"GET /questions": {Requests: 2, Window: time.Minute},
	})

	for i := 0; i < 2; i++ {
		Expect(serve(router, http.MethodGet, "/questions", "").Code).To(Equal(http.StatusOK))
	}

	rr := serve(router, http.MethodGet, "/questions", "")
	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	Expect(rr.Header().Get("Retry-After")).NotTo(BeEmpty())
	Expect(rr.Body.String()).To(ContainSubstring(`"code":"RATE_LIMITED"`))
}

func TestFullRouter_PreflightAndUnknownRoute(t *testing.T) {
	RegisterTestingT(t)

	router, _ := newRouter(t, config.DefaultRateLimits())

	req, _ := http.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusNoContent))
	Expect(rr.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))

	rr = serve(router, http.MethodGet, "/polls", "")
	Expect(rr.Code).To(Equal(http.StatusNotFound))
	Expect(rr.Body.String()).To(MatchJSON(`{"error": "Not found.", "code": "NOT_FOUND"}`))
}

func TestFullRouter_RecoversFromPanic(t *testing.T) {
	RegisterTestingT(t)

	router, _ := newRouter(t, config.DefaultRateLimits())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	rr := serve(router, http.MethodGet, "/boom", "")

	Expect(rr.Code).To(Equal(http.StatusInternalServerError))
	Expect(rr.Body.String()).To(ContainSubstring(`"code":"INTERNAL_ERROR"`))
}
