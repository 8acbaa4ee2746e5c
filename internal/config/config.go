package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// AI providers understood by AIConfig.
const (
	ProviderArk    = "ark"
	ProviderOpenAI = "openai"
)

// ErrAIDisabled is returned when a chat model is requested without credentials.
var ErrAIDisabled = errors.New("ai provider credentials or model missing")

// Config aggregates the backend configuration.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Store  StoreConfig
}

// Load reads the backend configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	var store StoreConfig
	if err := env.Parse(&store); err != nil {
		return nil, fmt.Errorf("parse store config: %w", err)
	}

	return &Config{Server: server, AI: ai, Store: store}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`

	// Addr is derived from Port.
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse server config: %w", err)
	}

	addr, err := normalizeAddr(cfg.Port)
	if err != nil {
		return ServerConfig{}, err
	}
	cfg.Addr = addr

	origins := cfg.CORSOrigins[:0]
	for _, origin := range cfg.CORSOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.CORSOrigins = origins
	return cfg, nil
}

func normalizeAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// ":8080" and "127.0.0.1:8080" are passed through.
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}

// AIConfig describes the language model used for replies and assessments.
type AIConfig struct {
	Provider string `env:"AI_PROVIDER"`

	APIKey      string   `env:"ARK_API_KEY"`
	AccessKey   string   `env:"ARK_ACCESS_KEY"`
	SecretKey   string   `env:"ARK_SECRET_KEY"`
	Model       string   `env:"ARK_MODEL"`
	BaseURL     string   `env:"ARK_BASE_URL" envDefault:"https://ark.cn-beijing.volces.com/api/v3"`
	Region      string   `env:"ARK_REGION" envDefault:"cn-beijing"`
	Temperature *float64 `env:"ARK_TEMPERATURE"`
	TopP        *float64 `env:"ARK_TOP_P"`
	MaxTokens   *int     `env:"ARK_MAX_TOKENS"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"llama-3.3-70b-versatile"`

	AssessmentLLMEnabled   bool `env:"AI_ASSESSMENT_LLM_ENABLED" envDefault:"false"`
	AssessmentHistoryLimit int  `env:"AI_ASSESSMENT_HISTORY_LIMIT" envDefault:"20"`
}

func loadAIConfig() (AIConfig, error) {
	var cfg AIConfig
	if err := env.Parse(&cfg); err != nil {
		return AIConfig{}, fmt.Errorf("parse ai config: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch cfg.Provider {
	case "", ProviderArk, ProviderOpenAI:
	default:
		return AIConfig{}, fmt.Errorf("invalid AI_PROVIDER value %q", cfg.Provider)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.OpenAIKey = strings.TrimSpace(cfg.OpenAIKey)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.AssessmentHistoryLimit < 1 {
		cfg.AssessmentHistoryLimit = 1
	}
	return cfg, nil
}

// ArkEnabled reports whether the Ark credentials and model are present.
func (c AIConfig) ArkEnabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// OpenAIEnabled reports whether an OpenAI-compatible key is present.
func (c AIConfig) OpenAIEnabled() bool {
	return c.OpenAIKey != "" && c.OpenAIModel != ""
}

// ResolvedProvider returns the provider to use, honoring AI_PROVIDER first.
// An empty result means no provider is usable.
func (c AIConfig) ResolvedProvider() string {
	switch c.Provider {
	case ProviderArk:
		if c.ArkEnabled() {
			return ProviderArk
		}
		return ""
	case ProviderOpenAI:
		if c.OpenAIEnabled() {
			return ProviderOpenAI
		}
		return ""
	}

	if c.ArkEnabled() {
		return ProviderArk
	}
	if c.OpenAIEnabled() {
		return ProviderOpenAI
	}
	return ""
}

// Enabled reports whether any provider is usable.
func (c AIConfig) Enabled() bool {
	return c.ResolvedProvider() != ""
}

// NewChatModel builds an Ark chat model from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.ArkEnabled() {
		return nil, fmt.Errorf("ark: %w (need ARK_MODEL with ARK_API_KEY or ARK_ACCESS_KEY/ARK_SECRET_KEY)", ErrAIDisabled)
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

// StoreConfig selects the session store.
type StoreConfig struct {
	RedisURL      string        `env:"REDIS_URL"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// RedisEnabled reports whether a Redis address was supplied.
func (c StoreConfig) RedisEnabled() bool {
	return strings.TrimSpace(c.RedisURL) != ""
}
