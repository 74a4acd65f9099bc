package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nyayamitra/nyayamitra/internal/config"
	"github.com/nyayamitra/nyayamitra/internal/document"
	"github.com/nyayamitra/nyayamitra/internal/llm"
	"github.com/nyayamitra/nyayamitra/internal/rag"
	"github.com/nyayamitra/nyayamitra/internal/state"

	httphandler "github.com/nyayamitra/nyayamitra/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIEmbedModel)
	slog.Info("Initialized OpenAI client", "model", cfg.OpenAIModel)

	// Initialize Qdrant-backed precedent index
	index, err := rag.NewQdrantIndex(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantCollection)
	if err != nil {
		slog.Error("Failed to create Qdrant client", "error", err)
		os.Exit(1)
	}
	slog.Info("Initialized Qdrant client", "collection", cfg.QdrantCollection)

	// Assemble the answer pipeline
	gateway := rag.NewGateway(llmClient, index, cfg.SearchLimit)
	assembler := rag.NewAssembler(cfg.ContextBudget)
	orchestrator := rag.NewOrchestrator(cfg.MaxPromptSize)

	retryCfg := rag.DefaultRetryConfig()
	retryCfg.MaxAttempts = cfg.GenMaxAttempts
	retryCfg.AttemptTimeout = time.Duration(cfg.GenTimeoutSeconds) * time.Second

	executor := rag.NewExecutor(llmClient, retryCfg, rag.GenerationParams{
		Temperature:     cfg.GenTemperature,
		MaxOutputTokens: int64(cfg.GenMaxTokens),
		Language:        cfg.DefaultLanguage,
	})

	store := state.NewStore()
	pipeline := rag.NewPipeline(gateway, assembler, orchestrator, executor, store)
	slog.Info("Initialized answer pipeline",
		"search_limit", cfg.SearchLimit,
		"context_budget", cfg.ContextBudget,
		"max_attempts", cfg.GenMaxAttempts,
	)

	// Initialize document renderer
	renderer := document.NewRenderer()

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(pipeline, store, renderer)

	// Create router
	r := httphandler.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
