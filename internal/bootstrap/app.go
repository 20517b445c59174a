package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"smartresume/internal/generation"
	"smartresume/internal/llm"
	"smartresume/internal/llm/gemini"
	openai "smartresume/internal/llm/openai"
	"smartresume/internal/resumes"
	"smartresume/internal/services/health"
	"smartresume/internal/shared/config"
	"smartresume/internal/shared/server"
	"smartresume/internal/shared/server/middleware"
	"smartresume/internal/shared/storage/object"
	localstore "smartresume/internal/shared/storage/object/local"
	memorystore "smartresume/internal/shared/storage/object/memory"
	s3store "smartresume/internal/shared/storage/object/s3"
	"smartresume/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Store         object.Store
	LLM           llm.Client
	Model         string
	Service       *generation.Service
	ResumeHandler *resumes.Handler
}

// Build wires config into store, model client, service and router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := BuildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	client, model, err := BuildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return assemble(cfg, store, client, model), nil
}

func assemble(cfg config.Config, store object.Store, client llm.Client, model string) *App {
	svc := generation.NewService(client, store, cfg.OutputKey, cfg.DefaultOptions)
	handler := resumes.NewHandler(svc, cfg.OutputKey)

	app := &App{
		Config:        cfg,
		Store:         store,
		LLM:           client,
		Model:         model,
		Service:       svc,
		ResumeHandler: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: handler,
		Health: health.NewService(cfg.LLMProvider, model, func() string {
			return string(svc.State())
		}),
		Limiter: middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"provider":     cfg.LLMProvider,
		"model":        model,
		"object_store": cfg.ObjectStoreType,
		"output_key":   cfg.OutputKey,
	})
	return app
}

// BuildStore selects the document sink.
func BuildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case config.StoreS3:
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	case config.StoreMemory:
		return memorystore.New(), nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// BuildLLM creates the model client for the configured provider and returns
// the effective model name.
func BuildLLM(ctx context.Context, cfg config.Config) (llm.Client, string, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case config.ProviderOpenAI:
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, openai.WithTimeout(cfg.LLMTimeout))
		if err != nil {
			return nil, "", fmt.Errorf("openai client: %w", err)
		}
		return client, cfg.LLMModel, nil
	default:
		client, err := gemini.NewClient(ctx, cfg.GoogleAPIKey, cfg.LLMModel, cfg.LLMTimeout)
		if err != nil {
			return nil, "", fmt.Errorf("gemini client: %w", err)
		}
		return client, client.Model(), nil
	}
}
