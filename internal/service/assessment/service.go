// Package assessment grades a finished conversation, asking the chat model
// when one is configured and falling back to keyword heuristics otherwise.
package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"github.com/psychmaster/psychmaster/internal/analysis/psych"
	"github.com/psychmaster/psychmaster/internal/model/assessment"
	"github.com/psychmaster/psychmaster/internal/model/chat"
)

var errMissingJSON = errors.New("missing json object")

// Config controls the classifier.
type Config struct {
	Enabled      bool
	HistoryLimit int
}

// Service produces an Analysis for a transcript.
type Service struct {
	enabled      bool
	classifier   compose.Runnable[map[string]any, *schema.Message]
	historyLimit int
}

// NewService builds the service. A nil chatModel or a disabled config leaves
// only the heuristic path.
func NewService(ctx context.Context, chatModel model.BaseChatModel, cfg Config) (*Service, error) {
	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = 20
	}

	svc := &Service{
		enabled:      cfg.Enabled && chatModel != nil,
		historyLimit: historyLimit,
	}
	if !svc.enabled {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(classifierSystemPrompt),
		schema.UserMessage(classifierUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile assessment classifier chain: %w", err)
	}

	svc.classifier = runnable
	return svc, nil
}

// Enabled reports whether the model classifier is in use.
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.classifier != nil
}

// Assess analyzes the transcript. The heuristic result always supplies the
// insights; a usable classifier answer overrides the state and confidence.
func (s *Service) Assess(ctx context.Context, messages []chat.Message) assessment.Analysis {
	base := psych.Analyze(messages)
	if !s.Enabled() || base.Fallback {
		return base
	}

	input := map[string]any{
		"transcript": formatTranscript(messages, s.historyLimit),
	}

	msg, err := s.classifier.Invoke(ctx, input)
	if err != nil {
		log.Warn().Err(err).Msg("assessment classifier invoke failed, using heuristics")
		return base
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return base
	}

	result, err := parseClassifierOutput(msg.Content)
	if err != nil {
		log.Warn().Err(err).Msg("assessment classifier output unreadable, using heuristics")
		return base
	}

	state, ok := assessment.ParseState(result.State)
	if !ok {
		log.Warn().Str("state", result.State).Msg("assessment classifier returned unknown state")
		return base
	}

	confidence := clampConfidence(result.Confidence)
	base.PredictedState = state
	base.Confidence = confidence
	base.StateProbabilities = reweigh(base.StateProbabilities, state, confidence)
	base.RiskLevel = psych.AssessRisk(state, confidence, base.Insights)
	base.Reason = strings.TrimSpace(result.Reason)
	return base
}

// reweigh gives state the confidence and shares the rest among the other
// states in proportion to their heuristic weight.
func reweigh(probabilities map[assessment.State]float64, state assessment.State, confidence float64) map[assessment.State]float64 {
	rest := 0.0
	for _, s := range assessment.States {
		if s != state {
			rest += probabilities[s]
		}
	}

	out := make(map[assessment.State]float64, len(assessment.States))
	others := float64(len(assessment.States) - 1)
	for _, s := range assessment.States {
		switch {
		case s == state:
			out[s] = confidence
		case rest > 0:
			out[s] = (1 - confidence) * probabilities[s] / rest
		default:
			out[s] = (1 - confidence) / others
		}
	}
	return out
}

func clampConfidence(val float64) float64 {
	if val <= 0 {
		return 0.6
	}
	if val > 1 {
		return 1
	}
	return val
}

func parseClassifierOutput(content string) (*classifierPayload, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, errMissingJSON
	}

	payload := &classifierPayload{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func formatTranscript(messages []chat.Message, limit int) string {
	if limit < 1 {
		limit = 1
	}
	start := len(messages) - limit
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, len(messages)-start)
	for _, msg := range messages[start:] {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		role := "User"
		if msg.Sender == chat.SenderAssistant {
			role = "Assistant"
		}
		lines = append(lines, role+": "+content)
	}
	if len(lines) == 0 {
		return "No conversation."
	}
	return strings.Join(lines, "\n")
}

type classifierPayload struct {
	State      string  `json:"state"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

const classifierSystemPrompt = "You are a careful mental health screening assistant. Read the conversation between a user and a supportive companion and estimate the user's most likely psychological state.\n" +
	"Answer with a single JSON object and nothing else. Fields: state (exactly one of Normal, Depression, Anxiety, Bipolar, Suicidal), confidence (a number between 0 and 1), reason (one short sentence)."

const classifierUserPrompt = "Conversation:\n{transcript}\n\nReturn the JSON object."
