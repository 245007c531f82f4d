// Package app is the composition root shared by the API server and the CLI.
package app

import (
	"context"
	"fmt"
	"strings"

	"shop-assistant/config"
	"shop-assistant/internal/conversation"
	"shop-assistant/internal/faq"
	"shop-assistant/internal/faq/repository"
	"shop-assistant/internal/faq/repository/memory"
	faqQdrant "shop-assistant/internal/faq/repository/qdrant"
	faqUC "shop-assistant/internal/faq/usecase"
	"shop-assistant/internal/middleware"
	"shop-assistant/internal/router"
	"shop-assistant/pkg/embedding"
	"shop-assistant/pkg/llmprovider"
	"shop-assistant/pkg/log"
	pkgQdrant "shop-assistant/pkg/qdrant"
)

// App holds the wired components of one process.
type App struct {
	Config       *config.Config
	Logger       log.Logger
	Embedder     embedding.Provider
	Repo         repository.VectorRepository
	Router       router.Router
	FAQ          faq.UseCase
	Conversation conversation.UseCase
	Middleware   middleware.Middleware
}

// New builds every component from cfg. Route examples are embedded here, so
// New calls the embedding provider once per route.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	embedder, err := embedding.InitializeProvider(&cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	l.Infof(ctx, "Embedding provider: %s (%s)", embedder.Name(), embedder.Model())

	repo := newRepository(ctx, cfg.Qdrant, l)
	llm := newGenerator(ctx, &cfg.LLM, l)

	routes, err := loadRoutes(cfg.Router)
	if err != nil {
		return nil, err
	}
	r, err := router.New(ctx, embedder, routes, l)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	faqUseCase := faqUC.New(l, repo, embedder, llm, faqUC.Options{
		Collection:  cfg.FAQ.Collection,
		Source:      cfg.FAQ.Source,
		Mode:        faq.IngestMode(cfg.FAQ.IngestMode),
		LockDir:     cfg.FAQ.LockDir,
		TopK:        cfg.FAQ.TopK,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})

	conv := conversation.New(l, r, faqUseCase, conversation.Options{
		Threshold:   cfg.Router.Threshold,
		MaxHistory:  cfg.Conversation.MaxHistory,
		SessionTTL:  cfg.Conversation.SessionTTL,
		MaxSessions: cfg.Conversation.MaxSessions,
	})

	return &App{
		Config:       cfg,
		Logger:       l,
		Embedder:     embedder,
		Repo:         repo,
		Router:       r,
		FAQ:          faqUseCase,
		Conversation: conv,
		Middleware:   middleware.New(l, cfg.RateLimit),
	}, nil
}

// Bootstrap ingests the configured FAQ source with the configured mode, so
// Retrieve has a collection to read from.
func (a *App) Bootstrap(ctx context.Context) (faq.IngestOutput, error) {
	out, err := a.FAQ.Ingest(ctx, faq.IngestInput{Mode: faq.IngestMode(a.Config.FAQ.IngestMode)})
	if err != nil {
		return out, fmt.Errorf("bootstrap ingest: %w", err)
	}
	return out, nil
}

func newRepository(ctx context.Context, cfg config.QdrantConfig, l log.Logger) repository.VectorRepository {
	if strings.TrimSpace(cfg.URL) == "" {
		l.Warn(ctx, "qdrant.url is empty, FAQ index is kept in memory")
		return memory.New()
	}
	client := pkgQdrant.NewClient(cfg.URL)
	if cfg.APIKey != "" {
		client.WithAPIKey(cfg.APIKey)
	}
	l.Infof(ctx, "Qdrant URL: %s", cfg.URL)
	return faqQdrant.New(client, l)
}

// newGenerator returns the LLM manager, or a generator that always fails when
// no provider could be initialised. Answers then degrade to the generation
// error message while routing and retrieval keep working.
func newGenerator(ctx context.Context, cfg *config.LLMConfig, l log.Logger) faqUC.Generator {
	providers, warnings, err := llmprovider.InitializeProviders(cfg)
	for _, w := range warnings {
		l.Warnf(ctx, "llm: %s", w)
	}
	if err != nil {
		l.Warnf(ctx, "llm: no provider available, answers will report generation errors: %v", err)
		return unavailableGenerator{err: err}
	}

	managerCfg, err := llmprovider.NewManagerConfig(cfg)
	if err != nil {
		l.Warnf(ctx, "llm: invalid manager config, using defaults: %v", err)
		managerCfg = nil
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	l.Infof(ctx, "LLM providers (by priority): %s", strings.Join(names, ", "))
	return llmprovider.NewManager(providers, managerCfg, l)
}

func loadRoutes(cfg config.RouterConfig) ([]router.Route, error) {
	if cfg.RoutesFile == "" {
		return router.DefaultRoutes(), nil
	}
	routes, err := router.LoadRoutes(cfg.RoutesFile)
	if err != nil {
		return nil, fmt.Errorf("router.routes_file: %w", err)
	}
	return routes, nil
}

type unavailableGenerator struct {
	err error
}

func (g unavailableGenerator) GenerateContent(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
	return nil, g.err
}
