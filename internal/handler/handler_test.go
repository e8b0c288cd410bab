package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ericoliveiras/creative-store/internal/config"
	"github.com/ericoliveiras/creative-store/internal/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router  *gin.Engine
	storage *database.MemStorage
	feed    *OrderFeed
	cfg     *config.Config
}

// newTestApp builds the full router over a freshly seeded store. mutate may
// adjust the configuration first.
func newTestApp(t *testing.T, mutate func(*config.Config)) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Session.Secret = "test-secret-test-secret-test-sec"
	if mutate != nil {
		mutate(cfg)
	}

	storage := database.NewMemStorage()
	router, feed, err := NewRouter(cfg, storage)
	require.NoError(t, err)
	t.Cleanup(feed.Close)

	return &testApp{router: router, storage: storage, feed: feed, cfg: cfg}
}

// do sends a request with an optional JSON body. A non-empty session sets
// the X-Session-ID header.
func (a *testApp) do(t *testing.T, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodGet, "/health-check", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestParamIDRejectsGarbage(t *testing.T) {
	app := newTestApp(t, nil)

	for _, path := range []string{"/api/products/abc", "/api/products/-1", "/api/orders/1.5"} {
		rec := app.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "invalid id", errorOf(t, rec), path)
	}
}

func TestNewRouterRejectsBadShippingConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Store.ShippingFee = "ten"

	_, _, err := NewRouter(cfg, database.NewMemStorage(database.WithoutSeed()))
	assert.ErrorContains(t, err, "shipping fee")
}

func TestCORSPreflightAllowsSessionHeader(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) {
		c.Server.CORSOrigins = []string{"http://shop.test"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "http://shop.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", SessionHeader)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://shop.test", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers")), strings.ToLower(SessionHeader))
}
