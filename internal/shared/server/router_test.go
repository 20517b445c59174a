package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartresume/internal/generation"
	"smartresume/internal/resumes"
	"smartresume/internal/services/health"
	"smartresume/internal/shared/config"
	"smartresume/internal/shared/server/middleware"
	"smartresume/internal/shared/storage/object/memory"
	"smartresume/resume/model"
)

type echoLLM struct{}

func (echoLLM) Complete(context.Context, string) (string, error) {
	return "preview", nil
}

func newTestRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := generation.NewService(echoLLM{}, memory.New(), config.DefaultOutputKey, model.Options{})
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	return NewRouter(RouterDeps{
		Config:        cfg,
		ResumeHandler: resumes.NewHandler(svc, config.DefaultOutputKey),
		Health:        health.NewService("gemini", "gemini-2.0-flash", func() string { return string(svc.State()) }),
		Limiter:       middleware.NewRateLimiter(func() time.Time { return now }),
	})
}

const body = `{"input":{"name":"Jane Doe","experience":[{"job_title":"Engineer","company":"Acme","duration":"2020-2022"}]}}`

func TestHealth(t *testing.T) {
	r := newTestRouter(config.Config{})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["ok"])
	assert.Equal(t, "idle", payload["state"])
	assert.NotEmpty(t, resp.Header().Get("X-Request-Id"))
}

func TestGenerateRateLimited(t *testing.T) {
	r := newTestRouter(config.Config{GenerateRatePerMinute: 1, GenerateBurst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		codes = append(codes, resp.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestMetricsRoute(t *testing.T) {
	r := newTestRouter(config.Config{})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "generation_started_total")
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", Addr(""))
	assert.Equal(t, ":9000", Addr("9000"))
	assert.Equal(t, ":9000", Addr(":9000"))
}
