// Package psych estimates a psychological state from a conversation transcript.
package psych

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/psychmaster/psychmaster/internal/model/assessment"
	"github.com/psychmaster/psychmaster/internal/model/chat"
)

// keywordBuckets are matched on whole words of the preprocessed text, which
// has apostrophes stripped ("can't" becomes "cant").
var keywordBuckets = map[assessment.State][]string{
	assessment.Depression: {
		"sad", "hopeless", "empty", "worthless", "depressed", "depression", "down", "low",
		"lonely", "isolated", "tired", "exhausted", "numb", "cry", "crying", "unhappy",
		"miserable", "no energy", "nothing matters", "hate myself",
	},
	assessment.Anxiety: {
		"anxious", "anxiety", "worried", "worry", "nervous", "panic", "panicking", "scared",
		"afraid", "restless", "overwhelmed", "stress", "stressed", "tension", "on edge",
		"cant breathe", "racing heart", "dread",
	},
	assessment.Bipolar: {
		"manic", "mania", "mood swings", "racing thoughts", "euphoric", "impulsive",
		"highs and lows", "bipolar", "cant stop talking", "no sleep for days",
		"up and down", "invincible",
	},
	assessment.Suicidal: {
		"suicide", "suicidal", "kill myself", "end my life", "hurt myself", "want to die",
		"better off dead", "self harm", "no point living", "dont want to live",
		"no reason to live",
	},
}

var bucketWeight = map[assessment.State]float64{
	assessment.Depression: 3,
	assessment.Anxiety:    3,
	assessment.Bipolar:    3,
	assessment.Suicidal:   6,
}

// priors favor Normal so that a transcript without signals stays Normal.
var priors = map[assessment.State]float64{
	assessment.Normal:     4,
	assessment.Depression: 1,
	assessment.Anxiety:    1,
	assessment.Bipolar:    1,
	assessment.Suicidal:   1,
}

// Insight lists are matched as plain substrings of the lowercased text.
var (
	crisisIndicators = []string{
		"suicide", "kill myself", "end my life", "hurt myself",
		"want to die", "better off dead", "self harm", "no point living",
	}
	depressionIndicators = []string{
		"sad", "hopeless", "empty", "worthless", "tired", "exhausted",
		"lonely", "isolated", "depressed", "down", "low",
	}
	anxietyIndicators = []string{
		"anxious", "worried", "nervous", "panic", "scared", "afraid",
		"restless", "overwhelmed", "stress", "tension",
	}
)

// Analyze assesses the user turns of a transcript. Transcripts without usable
// user text get the Fallback analysis.
func Analyze(messages []chat.Message) assessment.Analysis {
	userMessages := UserTurns(messages)
	if len(userMessages) == 0 {
		return Fallback()
	}

	full := strings.Join(userMessages, " ")
	processed := Preprocess(full)
	if processed == "" {
		return Fallback()
	}

	probabilities := Score(processed)
	state, confidence := mostLikely(probabilities)
	insights := Inspect(userMessages)

	return assessment.Analysis{
		PredictedState:     state,
		Confidence:         confidence,
		StateProbabilities: probabilities,
		RiskLevel:          AssessRisk(state, confidence, insights),
		Insights:           insights,
		AnalyzedAt:         time.Now().UTC(),
		TotalMessages:      len(userMessages),
		ConversationLength: utf8.RuneCountInString(full),
	}
}

// UserTurns returns the non-empty user messages in order.
func UserTurns(messages []chat.Message) []string {
	turns := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.Sender != chat.SenderUser || strings.TrimSpace(m.Content) == "" {
			continue
		}
		turns = append(turns, m.Content)
	}
	return turns
}

// Preprocess lowercases text and keeps only letters, whitespace and . ! ? ,
// collapsing runs of whitespace.
func Preprocess(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r == '.', r == '!', r == '?', r == ',':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Score turns keyword hits into a probability per state.
func Score(processed string) map[assessment.State]float64 {
	words := strings.Fields(strings.Map(func(r rune) rune {
		if r == '.' || r == '!' || r == '?' || r == ',' {
			return ' '
		}
		return r
	}, processed))
	padded := " " + strings.Join(words, " ") + " "

	scores := make(map[assessment.State]float64, len(assessment.States))
	total := 0.0
	for _, state := range assessment.States {
		score := priors[state]
		for _, kw := range keywordBuckets[state] {
			if strings.Contains(padded, " "+kw+" ") {
				score += bucketWeight[state]
			}
		}
		scores[state] = score
		total += score
	}

	for state := range scores {
		scores[state] /= total
	}
	return scores
}

func mostLikely(probabilities map[assessment.State]float64) (assessment.State, float64) {
	best := assessment.Normal
	bestScore := -1.0
	for _, state := range assessment.States {
		if p := probabilities[state]; p > bestScore {
			best, bestScore = state, p
		}
	}
	return best, bestScore
}

// Inspect computes surface statistics over the user messages.
func Inspect(messages []string) assessment.Insights {
	if len(messages) == 0 {
		return assessment.Insights{}
	}

	full := strings.ToLower(strings.Join(messages, " "))

	totalLen := 0
	unique := make(map[string]struct{}, len(messages))
	for _, m := range messages {
		totalLen += utf8.RuneCountInString(m)
		unique[m] = struct{}{}
	}

	return assessment.Insights{
		CrisisIndicators:     countPresent(full, crisisIndicators),
		DepressionIndicators: countPresent(full, depressionIndicators),
		AnxietyIndicators:    countPresent(full, anxietyIndicators),
		AvgMessageLength:     float64(totalLen) / float64(len(messages)),
		TotalWords:           len(strings.Fields(full)),
		UniqueConcerns:       float64(len(unique)) / float64(len(messages)),
	}
}

func countPresent(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// AssessRisk grades the analysis. Any crisis indicator is high risk
// regardless of the predicted state.
func AssessRisk(state assessment.State, confidence float64, insights assessment.Insights) assessment.RiskLevel {
	switch {
	case state == assessment.Suicidal, insights.CrisisIndicators > 0:
		return assessment.RiskHigh
	case (state == assessment.Depression || state == assessment.Bipolar) && confidence > 0.7:
		return assessment.RiskMedium
	case state == assessment.Anxiety && confidence > 0.8:
		return assessment.RiskMedium
	case state == assessment.Normal:
		return assessment.RiskLow
	default:
		return assessment.RiskMedium
	}
}

// Fallback is the neutral analysis used when nothing can be assessed.
func Fallback() assessment.Analysis {
	return assessment.Analysis{
		PredictedState: assessment.Normal,
		Confidence:     0.5,
		StateProbabilities: map[assessment.State]float64{
			assessment.Normal:     0.5,
			assessment.Depression: 0.2,
			assessment.Anxiety:    0.2,
			assessment.Bipolar:    0.05,
			assessment.Suicidal:   0.05,
		},
		RiskLevel:  assessment.RiskLow,
		AnalyzedAt: time.Now().UTC(),
		Fallback:   true,
	}
}
