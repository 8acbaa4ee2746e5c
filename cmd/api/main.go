package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/psychmaster/psychmaster/internal/config"
	"github.com/psychmaster/psychmaster/internal/handler"
	chatHandler "github.com/psychmaster/psychmaster/internal/handler/chat"
	"github.com/psychmaster/psychmaster/internal/logger"
	"github.com/psychmaster/psychmaster/internal/service/ai"
	"github.com/psychmaster/psychmaster/internal/service/assessment"
	"github.com/psychmaster/psychmaster/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Setup(os.Getenv("LOG_LEVEL"), logger.Console(os.Stderr))

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded, continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Setup(cfg.Server.LogLevel, logger.Console(os.Stderr))

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// run serves until ctx ends. Resources are released before it returns.
func run(ctx context.Context, cfg *config.Config) error {
	store := chat.NewStore(ctx, cfg.Store)
	chatService := chat.NewService(store)
	defer func() {
		if err := chatService.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close session store")
		}
	}()

	aiService, err := ai.NewService(ctx, cfg.AI)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize AI provider, continuing with fallback replies")
		aiService, _ = ai.New(ctx, nil)
	}

	assessmentCfg := assessment.Config{
		Enabled:      cfg.AI.AssessmentLLMEnabled,
		HistoryLimit: cfg.AI.AssessmentHistoryLimit,
	}
	assessmentService, err := assessment.NewService(ctx, aiService.ChatModel(), assessmentCfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize assessment classifier, using heuristics")
		assessmentService, _ = assessment.NewService(ctx, nil, assessment.Config{})
	}
	switch {
	case assessmentService.Enabled():
		log.Info().Msg("assessment classifier enabled")
	case assessmentCfg.Enabled:
		log.Info().Msg("assessment classifier requested but chat model unavailable, falling back to heuristics")
	default:
		log.Info().Msg("assessment classifier disabled by configuration")
	}

	router := handler.NewRouter(handler.Deps{
		Chat:        chatHandler.New(chatService, aiService, assessmentService),
		CORSOrigins: cfg.Server.CORSOrigins,
		AIEnabled:   aiService.Enabled(),
	})

	return startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) error {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("psychMASTER API listening")
	return runServer(ctx, srv)
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
