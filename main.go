package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/career-counselor/server/internal/agent/dialogue"
	"github.com/career-counselor/server/internal/agent/dialogue/conversations"
	"github.com/career-counselor/server/internal/agent/dialogue/prompts"
	"github.com/career-counselor/server/internal/agent/inference"
	"github.com/career-counselor/server/internal/agent/model"
	"github.com/career-counselor/server/internal/agent/recommender"
	"github.com/career-counselor/server/internal/agent/repo"
	"github.com/career-counselor/server/internal/api"
	"github.com/career-counselor/server/internal/console"
	"github.com/career-counselor/server/internal/core"
	logx "github.com/career-counselor/server/pkg/logger"
	pkgredis "github.com/career-counselor/server/pkg/redis"
)

// AppConfig defines all configurable parameters of the counselor,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	Mode     string `envconfig:"APP_MODE" default:"console"`
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM providers
	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	GeminiBaseURL string `envconfig:"GEMINI_BASE_URL"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`

	// Agent configs
	Inference    model.InferenceConfig
	Prompt       model.PromptConfig
	Conversation model.ConversationConfig
}

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{
		Environment: core.ParseEnvironment(envCfg.Env),
		Level:       envCfg.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("ttl", envCfg.Conversation.TTL).Msg("Invalid CONVERSATION_TTL")
	}

	var sessionRepo model.SessionRepository
	if envCfg.Redis.Enabled() {
		rdb, err := envCfg.Redis.New(ctx)
		if err != nil {
			logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
		}
		defer rdb.Close()
		sessionRepo = repo.NewRedisSessionRepository(rdb, ttl)
		logx.Info().Msg("Connected to Redis successfully")
	} else {
		sessionRepo = repo.NewMemorySessionRepository(ttl)
		logx.Info().Msg("REDIS_URL not set, keeping sessions in memory")
	}

	chatModel, err := inference.NewChatModel(ctx, inference.ChatModelConfig{
		Inference:     envCfg.Inference,
		GeminiAPIKey:  envCfg.GeminiAPIKey,
		GeminiBaseURL: envCfg.GeminiBaseURL,
		OpenAIAPIKey:  envCfg.OpenAIAPIKey,
		OpenAIBaseURL: envCfg.OpenAIBaseURL,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build chat model")
	}

	catalog := recommender.New(nil)
	counselor, err := dialogue.NewCounselor(dialogue.Config{
		ChatModel:    chatModel,
		Recommender:  catalog,
		ModelName:    envCfg.Inference.Model,
		ModelType:    envCfg.Inference.Provider,
		Prompt:       envCfg.Prompt,
		Conversation: envCfg.Conversation,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build counselor")
	}
	bounds := counselor.Conversation()
	logx.Info().
		Int("max_attempts", bounds.MaxAttempts).
		Int("explain_attempts", bounds.ExplainAttempts).
		Int("min_history", bounds.MinHistory).
		Msg("Counselor ready")

	manager := conversations.NewManager(sessionRepo, counselor)
	greeting := prompts.Greeting(envCfg.Prompt)

	switch core.ParseMode(envCfg.Mode) {
	case core.ModeHTTP:
		serveHTTP(ctx, envCfg, api.NewHandler(manager, catalog, greeting))
	default:
		conversationID := uuid.NewString()
		logx.Info().Str("conversation_id", conversationID).Msg("System ready. Type 'exit' to quit.")
		if err := console.Run(ctx, os.Stdin, os.Stdout, manager, conversationID, greeting); err != nil && !errors.Is(err, context.Canceled) {
			logx.Error().Err(err).Msg("Console stopped")
		}
	}
}

func serveHTTP(ctx context.Context, cfg AppConfig, h *api.Handler) {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(h, cfg.CORSAllowedOrigins),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("Server forced to shutdown")
		return
	}
	logx.Info().Msg("Server stopped successfully")
}
