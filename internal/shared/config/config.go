package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"smartresume/resume/model"
)

// DefaultOutputKey is the fixed name of the generated document.
const DefaultOutputKey = "Generated_Resume.docx"

// LLM providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Object store backends.
const (
	StoreLocal  = "local"
	StoreS3     = "s3"
	StoreMemory = "memory"
)

// ErrMissingCredential is returned when the selected provider has no API key.
var ErrMissingCredential = errors.New("missing llm credential")

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	LLMProvider  string
	LLMModel     string
	LLMTimeout   time.Duration
	GoogleAPIKey string
	OpenAIAPIKey string

	ObjectStoreType string
	LocalStoreDir   string
	OutputKey       string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string

	DefaultOptions model.Options

	// GenerateRatePerMinute throttles POST /resumes per client; 0 disables.
	GenerateRatePerMinute int
	GenerateBurst         int
}

// Overrides replaces environment values before validation. Empty fields keep
// the environment value.
type Overrides struct {
	LLMProvider string
	LLMModel    string
}

// Load reads configuration from environment variables with sensible defaults.
// A missing credential for the selected provider is an error.
func Load() (Config, error) {
	return LoadWith(Overrides{})
}

// LoadWith is Load with command-line values applied ahead of validation.
func LoadWith(o Overrides) (Config, error) {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(existing(".env", "cmd/.env")...)

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LLMProvider:     normalizeProvider(getEnv("LLM_PROVIDER", ProviderGemini)),
		LLMModel:        strings.TrimSpace(getEnv("LLM_MODEL", "")),
		LLMTimeout:      time.Duration(getInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		GoogleAPIKey:    strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", StoreLocal)),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "."),
		OutputKey:       getEnv("OUTPUT_KEY", DefaultOutputKey),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),

		GenerateRatePerMinute: getInt("RATE_LIMIT_GENERATE_PER_MIN", 6),
		GenerateBurst:         getInt("RATE_LIMIT_GENERATE_BURST", 3),
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = 120 * time.Second
	}

	theme, ok := model.ParseTheme(getEnv("DEFAULT_THEME", string(model.ThemeClassic)))
	if !ok {
		theme = model.ThemeClassic
	}
	fontSize := getInt("DEFAULT_FONT_SIZE", model.DefaultFontSize)
	if fontSize < model.MinFontSize || fontSize > model.MaxFontSize {
		fontSize = model.DefaultFontSize
	}
	cfg.DefaultOptions = model.Options{Theme: theme, FontSize: fontSize}

	if p := strings.TrimSpace(o.LLMProvider); p != "" {
		cfg.LLMProvider = normalizeProvider(p)
	}
	if m := strings.TrimSpace(o.LLMModel); m != "" {
		cfg.LLMModel = m
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY is required when LLM_PROVIDER=openai", ErrMissingCredential)
		}
		if c.LLMModel == "" {
			return errors.New("LLM_MODEL is required when LLM_PROVIDER=openai")
		}
	default:
		if c.GoogleAPIKey == "" {
			return fmt.Errorf("%w: GOOGLE_API_KEY is required when LLM_PROVIDER=gemini", ErrMissingCredential)
		}
	}
	if c.ObjectStoreType == StoreS3 && c.S3Bucket == "" {
		return errors.New("S3_BUCKET is required when OBJECT_STORE=s3")
	}
	if strings.TrimSpace(c.OutputKey) == "" {
		return errors.New("OUTPUT_KEY must not be empty")
	}
	return nil
}

// IsProduction reports whether the app runs in production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func existing(paths ...string) []string {
	var out []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ProviderOpenAI:
		return ProviderOpenAI
	default:
		return ProviderGemini
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StoreS3:
		return StoreS3
	case StoreMemory:
		return StoreMemory
	default:
		return StoreLocal
	}
}
