package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartresume/internal/llm/gemini"
	openai "smartresume/internal/llm/openai"
	"smartresume/internal/shared/config"
	localstore "smartresume/internal/shared/storage/object/local"
	memorystore "smartresume/internal/shared/storage/object/memory"
	"smartresume/resume/model"
)

func testConfig() config.Config {
	return config.Config{
		Env:             "dev",
		LLMProvider:     config.ProviderOpenAI,
		LLMModel:        "gpt-4o-mini",
		LLMTimeout:      5 * time.Second,
		OpenAIAPIKey:    "sk-test",
		ObjectStoreType: config.StoreMemory,
		OutputKey:       config.DefaultOutputKey,
		DefaultOptions:  model.Options{Theme: model.ThemeModern, FontSize: 12},
	}
}

func TestBuildWiresRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(context.Background(), testConfig())
	require.NoError(t, err)

	assert.IsType(t, &openai.Client{}, app.LLM)
	assert.IsType(t, &memorystore.Store{}, app.Store)
	assert.Equal(t, "gpt-4o-mini", app.Model)
	assert.Equal(t, model.ThemeModern, app.Service.Defaults().Theme)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"provider":"openai"`)

	dl := httptest.NewRecorder()
	app.Router.ServeHTTP(dl, httptest.NewRequest(http.MethodGet, "/api/v1/resumes/download", nil))
	assert.Equal(t, http.StatusNotFound, dl.Code)
}

func TestBuildStore(t *testing.T) {
	cfg := testConfig()

	cfg.ObjectStoreType = config.StoreLocal
	cfg.LocalStoreDir = t.TempDir()
	store, err := BuildStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &localstore.Store{}, store)

	cfg.ObjectStoreType = config.StoreMemory
	store, err = BuildStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &memorystore.Store{}, store)
}

func TestBuildLLM(t *testing.T) {
	cfg := testConfig()
	cfg.LLMProvider = config.ProviderGemini
	cfg.LLMModel = ""
	cfg.GoogleAPIKey = "test-key"

	client, name, err := BuildLLM(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, client)
	assert.Equal(t, gemini.DefaultModel, name)

	cfg.GoogleAPIKey = ""
	_, _, err = BuildLLM(context.Background(), cfg)
	require.Error(t, err)
}
