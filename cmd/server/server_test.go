package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/justcopy/server/api/rest/generate"
	"codeberg.org/justcopy/server/api/rest/templates"
	"codeberg.org/justcopy/server/internal/config"
	"codeberg.org/justcopy/server/internal/copywriter"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            config.DefaultPort,
		Environment:     config.EnvProduction,
		GenerationDelay: 0,
		RateLimit:       config.DefaultRateLimit,
		RateLimitWindow: config.DefaultRateLimitWindow,
		MaxBodyBytes:    config.DefaultMaxBodyBytes,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := do(srv, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestSecurityHeaders(t *testing.T) {
	for _, env := range []string{config.EnvProduction, config.EnvDevelopment} {
		t.Run(env, func(t *testing.T) {
			cfg := testConfig()
			cfg.Environment = env
			srv := newTestServer(t, cfg)

			w := do(srv, http.MethodGet, "/health", "")

			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
			assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
			// plain HTTP never gets HSTS
			assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
		})
	}
}

func TestGenerate_BlogPrompt(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := do(srv, http.MethodPost, "/api/generate", `{"prompt":"Write a blog about cats"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp generate.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Content, "Write a blog about cats")
	assert.True(t, strings.HasPrefix(resp.Content, "Write a blog about cats\n\nIn today's rapidly evolving digital landscape"))
	assert.Equal(t, len(strings.Fields(resp.Content)), resp.Metadata.WordsGenerated)
}

func TestGenerate_MissingPrompt(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := do(srv, http.MethodPost, "/api/generate", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Prompt is required"}`, w.Body.String())
}

func TestGenerate_BodyTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 64
	srv := newTestServer(t, cfg)

	w := do(srv, http.MethodPost, "/api/generate", `{"prompt":"`+strings.Repeat("x", 256)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestGenerate_AppliesConfiguredDelay(t *testing.T) {
	cfg := testConfig()
	cfg.GenerationDelay = 50 * time.Millisecond
	srv := newTestServer(t, cfg)

	start := time.Now()
	w := do(srv, http.MethodPost, "/api/generate", `{"prompt":"hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, time.Since(start), cfg.GenerationDelay)
	assert.Equal(t, cfg.GenerationDelay, srv.copywriter.Delay())
}

func TestTemplates(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := do(srv, http.MethodGet, "/api/templates", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp templates.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, copywriter.Catalog(), resp.Templates)
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, testConfig())

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/api/unknown"},
		{http.MethodPost, "/health"},
		{http.MethodGet, "/api/generate"},
	} {
		w := do(srv, tc.method, tc.path, "")

		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())
	}
}

func TestRateLimit_101stRequestRejected(t *testing.T) {
	srv := newTestServer(t, testConfig())

	for i := 0; i < 100; i++ {
		w := do(srv, http.MethodGet, "/api/templates", "")
		require.Equal(t, http.StatusOK, w.Code, "request %d should have been allowed", i+1)
	}

	w := do(srv, http.MethodGet, "/api/templates", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests, please try again later."}`, w.Body.String())

	// health sits outside /api/ and stays reachable
	assert.Equal(t, http.StatusOK, do(srv, http.MethodGet, "/health", "").Code)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Origin", "https://shop.test")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.AllowedOrigins = []string{"https://app.justcopy.test"}
	srv := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Origin", "https://app.justcopy.test")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, "https://app.justcopy.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := do(srv, http.MethodGet, "/health", "")
	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	assert.NoError(t, err, "a request id should be generated")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "trace-abc")
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, "trace-abc", w.Header().Get(requestIDHeader))
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		want        string
	}{
		{"production", config.EnvProduction, `{"error":"Something went wrong!"}`},
		{"development", config.EnvDevelopment, `{"error":"Something went wrong!","message":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Environment = tt.environment
			srv := newTestServer(t, cfg)
			srv.router.GET("/panic", func(_ *gin.Context) { panic("boom") })

			w := do(srv, http.MethodGet, "/panic", "")

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())

	do(srv, http.MethodPost, "/api/generate", `{"prompt":"email blast"}`)
	w := do(srv, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `justcopy_generations_total{template="email"}`)
}
