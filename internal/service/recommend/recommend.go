// Package recommend turns an assessment into resources and next steps.
package recommend

import "github.com/psychmaster/psychmaster/internal/model/assessment"

const (
	maxVideos       = 3
	maxArticles     = 3
	maxProfessional = 2
)

// For builds the recommendations for an analysis. Unknown states use the
// Normal catalog entry.
func For(analysis assessment.Analysis) assessment.Recommendations {
	state := analysis.PredictedState
	if _, ok := catalog[state]; !ok {
		state = assessment.Normal
	}
	entry := catalog[state]

	risk := analysis.RiskLevel
	if risk == "" {
		risk = assessment.RiskLow
	}

	recs := assessment.Recommendations{
		PrimaryConcern:        string(state),
		RiskLevel:             risk,
		ConfidenceLevel:       DescribeConfidence(analysis.Confidence),
		Videos:                head(entry.videos, maxVideos),
		Articles:              head(entry.articles, maxArticles),
		ProfessionalResources: []assessment.Resource{},
		PersonalizedMessage:   personalize(state, risk),
		FollowUpSuggestions:   append([]string(nil), followUps[state]...),
	}

	crisis := risk == assessment.RiskHigh || state == assessment.Suicidal
	if crisis {
		recs.ProfessionalResources = append(recs.ProfessionalResources, crisisResources...)
		recs.ImmediateActions = append([]string(nil), crisisActions...)
	}

	if risk != assessment.RiskHigh {
		recs.ProfessionalResources = append(recs.ProfessionalResources, head(entry.professional, maxProfessional)...)
	}

	if len(recs.ImmediateActions) == 0 {
		actions, ok := immediateActions[state]
		if !ok {
			actions = immediateActions[assessment.Normal]
		}
		recs.ImmediateActions = append([]string(nil), actions...)
	}

	return recs
}

// DescribeConfidence renders a confidence score for people.
func DescribeConfidence(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return "High confidence"
	case confidence >= 0.6:
		return "Moderate confidence"
	default:
		return "Low confidence"
	}
}

func personalize(state assessment.State, risk assessment.RiskLevel) string {
	msg, ok := personalizedMessages[state]
	if !ok {
		msg = personalizedMessages[assessment.Normal]
	}
	if risk == assessment.RiskHigh {
		msg += highRiskSuffix
	}
	return msg
}

func head(items []assessment.Resource, n int) []assessment.Resource {
	if len(items) < n {
		n = len(items)
	}
	return append([]assessment.Resource(nil), items[:n]...)
}
