// Package ai generates companion replies through an eino chain backed by Ark
// or an OpenAI-compatible provider.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"github.com/psychmaster/psychmaster/internal/config"
	"github.com/psychmaster/psychmaster/internal/keyword"
	"github.com/psychmaster/psychmaster/internal/model/chat"
)

var errEmptyReply = errors.New("model returned an empty reply")

// Service encapsulates AI-powered chat functionality.
type Service struct {
	chatModel model.BaseChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
	fallback  *keyword.Matcher
}

// NewService builds the service for the configured provider. Without a usable
// provider the service still answers, using canned fallback replies.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	if !cfg.Enabled() {
		log.Warn().Msg("ai provider not configured, replies use fallback texts")
		return New(ctx, nil)
	}

	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("provider", cfg.ResolvedProvider()).Msg("ai provider configured")
	return New(ctx, chatModel)
}

// New wraps chatModel, which may be nil.
func New(ctx context.Context, chatModel model.BaseChatModel) (*Service, error) {
	svc := &Service{
		chatModel: chatModel,
		fallback:  keyword.New(nil, FallbackResponses),
	}
	if chatModel == nil {
		return svc, nil
	}

	runnable, err := compileReplyChain(ctx, chatModel)
	if err != nil {
		return nil, err
	}
	svc.chain = runnable
	return svc, nil
}

// Enabled reports whether replies come from a model.
func (s *Service) Enabled() bool {
	return s != nil && s.chain != nil
}

// ChatModel returns the underlying model, nil when disabled.
func (s *Service) ChatModel() model.BaseChatModel {
	return s.chatModel
}

// Reply answers userMessage given the earlier turns. It always returns text
// to show: a fallback when disabled, ErrorResponse alongside a non-nil error
// when the model fails.
func (s *Service) Reply(ctx context.Context, sessionID string, history []chat.Message, userMessage string) (string, error) {
	if !s.Enabled() {
		return s.fallback.Respond(userMessage), nil
	}

	response, err := s.chain.Invoke(ctx, buildChainInput(history, userMessage))
	if err != nil {
		return ErrorResponse, fmt.Errorf("failed to run AI chain: %w", err)
	}

	content := ""
	if response != nil {
		content = strings.TrimSpace(response.Content)
	}
	if content == "" {
		return ErrorResponse, errEmptyReply
	}

	log.Debug().Str("session", sessionID).Int("length", len(content)).Msg("generated reply")
	return content, nil
}
