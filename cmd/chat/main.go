package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/psychmaster/psychmaster/internal/config"
	"github.com/psychmaster/psychmaster/internal/logger"
	"github.com/psychmaster/psychmaster/internal/panel"
	"github.com/psychmaster/psychmaster/internal/source"
	"github.com/psychmaster/psychmaster/internal/tui"
)

func main() {
	_ = godotenv.Load()

	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	root, closeLogs := newRootCmd()
	defer closeLogs()
	return root.Execute()
}

// newRootCmd builds the command tree. closeLogs releases the log file opened
// by the last run and must be called once the command has returned.
func newRootCmd() (root *cobra.Command, closeLogs func()) {
	var (
		cfg     *config.ClientConfig
		logFile io.Closer
	)
	closeLogs = func() {
		if logFile == nil {
			return
		}
		logger.Setup(cfg.LogLevel, io.Discard)
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
		}
		logFile = nil
	}

	root = &cobra.Command{
		Use:           "psychmaster",
		Short:         "Talk to psychMASTER from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadClientConfig(cmd)
			if err != nil {
				return err
			}
			cfg = loaded
			logFile, err = setupLogging(cfg)
			if err != nil {
				return err
			}
			log.Info().Str("source", cfg.Source).Str("backend", cfg.BackendURL).Msg("chat client configured")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd.Context(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.String("backend-url", "", "psychMASTER API root (BACKEND_URL)")
	flags.String("source", "", "response source: remote or local (CHAT_SOURCE)")
	flags.String("ordering", "", "reply ordering: arrival or send (CHAT_ORDERING)")
	flags.Duration("timeout", 0, "per-request timeout, 0 disables (CLIENT_TIMEOUT)")

	root.AddCommand(reportCmd(func() *config.ClientConfig { return cfg }))
	return root, closeLogs
}

// loadClientConfig reads the environment and lets explicitly set flags win.
func loadClientConfig(cmd *cobra.Command) (*config.ClientConfig, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend-url") {
		cfg.BackendURL, _ = flags.GetString("backend-url")
	}
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
	}
	if flags.Changed("ordering") {
		cfg.Ordering, _ = flags.GetString("ordering")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging keeps log output off the terminal the TUI draws on. The
// returned file is nil when logs are discarded.
func setupLogging(cfg *config.ClientConfig) (io.Closer, error) {
	if cfg.LogFile == "" {
		logger.Setup(cfg.LogLevel, io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.Setup(cfg.LogLevel, f)
	return f, nil
}

func runChat(ctx context.Context, cfg *config.ClientConfig) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := source.New(cfg, httpClient(cfg))
	if err != nil {
		return err
	}
	log.Info().Str("source", cfg.Source).Str("ordering", cfg.Ordering).Msg("starting chat client")

	model := tui.New(src, panel.WithOrdering(source.Ordering(cfg)), panel.WithContext(ctx))
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run chat: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Panel().SessionID() != "" && cfg.Source == config.SourceRemote {
		fmt.Printf("Session %s. Run `psychmaster report --session %s` for your summary.\n", m.Panel().SessionID(), m.Panel().SessionID())
	}
	return nil
}

func httpClient(cfg *config.ClientConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}
