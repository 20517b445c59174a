package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartresume/resume/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "CORS_ALLOW_ORIGINS", "LLM_PROVIDER", "LLM_MODEL",
		"LLM_TIMEOUT_SECONDS", "GOOGLE_API_KEY", "OPENAI_API_KEY", "OBJECT_STORE",
		"LOCAL_STORE_DIR", "OUTPUT_KEY", "AWS_REGION", "S3_BUCKET", "S3_PREFIX",
		"SSE_KMS_KEY_ID", "DEFAULT_THEME", "DEFAULT_FONT_SIZE",
		"RATE_LIMIT_GENERATE_PER_MIN", "RATE_LIMIT_GENERATE_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, 120*time.Second, cfg.LLMTimeout)
	assert.Equal(t, StoreLocal, cfg.ObjectStoreType)
	assert.Equal(t, ".", cfg.LocalStoreDir)
	assert.Equal(t, DefaultOutputKey, cfg.OutputKey)
	assert.Equal(t, model.Options{Theme: model.ThemeClassic, FontSize: model.DefaultFontSize}, cfg.DefaultOptions)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, 6, cfg.GenerateRatePerMinute)
	assert.Equal(t, 3, cfg.GenerateBurst)
}

func TestLoadMissingCredential(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		model    string
		want     string
	}{
		{name: "gemini", provider: "gemini", want: "GOOGLE_API_KEY"},
		{name: "default provider", provider: "", want: "GOOGLE_API_KEY"},
		{name: "openai", provider: "openai", model: "gpt-4o-mini", want: "OPENAI_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("LLM_PROVIDER", tt.provider)
			t.Setenv("LLM_MODEL", tt.model)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingCredential))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT_SECONDS", "30")
	t.Setenv("OBJECT_STORE", "memory")
	t.Setenv("DEFAULT_THEME", "modern")
	t.Setenv("DEFAULT_FONT_SIZE", "14")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("ENV", "prod")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, StoreMemory, cfg.ObjectStoreType)
	assert.Equal(t, model.Options{Theme: model.ThemeModern, FontSize: 14}, cfg.DefaultOptions)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigin)
	assert.True(t, cfg.IsProduction())
}

func TestLoadInvalidDefaultsFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("DEFAULT_THEME", "Baroque")
	t.Setenv("DEFAULT_FONT_SIZE", "42")
	t.Setenv("LLM_TIMEOUT_SECONDS", "abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, model.ThemeClassic, cfg.DefaultOptions.Theme)
	assert.Equal(t, model.DefaultFontSize, cfg.DefaultOptions.FontSize)
	assert.Equal(t, 120*time.Second, cfg.LLMTimeout)
}

func TestLoadS3RequiresBucket(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("OBJECT_STORE", "s3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestLoadWithCommandLineProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadWith(Overrides{LLMProvider: " openai ", LLMModel: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)

	_, err = LoadWith(Overrides{LLMProvider: "openai"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_MODEL")

	_, err = LoadWith(Overrides{})
	assert.ErrorIs(t, err, ErrMissingCredential)
}
