// Package assessment holds the end-of-session analysis and recommendation types.
package assessment

import (
	"strings"
	"time"
)

// State is a predicted psychological state.
type State string

const (
	Normal     State = "Normal"
	Depression State = "Depression"
	Anxiety    State = "Anxiety"
	Bipolar    State = "Bipolar"
	Suicidal   State = "Suicidal"
)

// States lists every state in tie-break order.
var States = []State{Normal, Depression, Anxiety, Bipolar, Suicidal}

// ParseState matches raw case-insensitively against the known states.
func ParseState(raw string) (State, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range States {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// RiskLevel grades how urgently the user needs support.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Insights are surface statistics over the user's messages.
type Insights struct {
	CrisisIndicators     int     `json:"crisis_indicators"`
	DepressionIndicators int     `json:"depression_indicators"`
	AnxietyIndicators    int     `json:"anxiety_indicators"`
	AvgMessageLength     float64 `json:"avg_message_length"`
	TotalWords           int     `json:"total_words"`
	UniqueConcerns       float64 `json:"unique_concerns"`
}

// Analysis is the outcome of assessing a finished conversation.
type Analysis struct {
	PredictedState     State             `json:"predicted_state"`
	Confidence         float64           `json:"confidence"`
	StateProbabilities map[State]float64 `json:"state_probabilities"`
	RiskLevel          RiskLevel         `json:"risk_level"`
	Insights           Insights          `json:"conversation_insights"`
	AnalyzedAt         time.Time         `json:"analysis_timestamp"`
	TotalMessages      int               `json:"total_messages"`
	ConversationLength int               `json:"conversation_length"`
	Reason             string            `json:"reason,omitempty"`
	Fallback           bool              `json:"fallback,omitempty"`
}

// Resource is a link offered to the user.
type Resource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Recommendations are the resources and next steps derived from an Analysis.
type Recommendations struct {
	PrimaryConcern        string     `json:"primary_concern"`
	RiskLevel             RiskLevel  `json:"risk_level"`
	ConfidenceLevel       string     `json:"confidence_level"`
	Videos                []Resource `json:"youtube_videos"`
	Articles              []Resource `json:"articles"`
	ProfessionalResources []Resource `json:"professional_resources"`
	ImmediateActions      []string   `json:"immediate_actions"`
	PersonalizedMessage   string     `json:"personalized_message"`
	FollowUpSuggestions   []string   `json:"follow_up_suggestions"`
}
