package recommend

import (
	"strings"
	"testing"

	"github.com/psychmaster/psychmaster/internal/model/assessment"
)

func TestForDepressionMediumRisk(t *testing.T) {
	recs := For(assessment.Analysis{
		PredictedState: assessment.Depression,
		Confidence:     0.65,
		RiskLevel:      assessment.RiskMedium,
	})

	if recs.PrimaryConcern != "Depression" {
		t.Fatalf("unexpected concern %q", recs.PrimaryConcern)
	}
	if recs.ConfidenceLevel != "Moderate confidence" {
		t.Fatalf("unexpected confidence level %q", recs.ConfidenceLevel)
	}
	if len(recs.Videos) != 3 || len(recs.Articles) != 3 {
		t.Fatalf("expected 3 videos and 3 articles, got %d and %d", len(recs.Videos), len(recs.Articles))
	}
	if len(recs.ProfessionalResources) != 2 {
		t.Fatalf("expected 2 professional resources, got %d", len(recs.ProfessionalResources))
	}
	if recs.ImmediateActions[0] != "Establish a daily routine with small, achievable goals" {
		t.Fatalf("unexpected first action %q", recs.ImmediateActions[0])
	}
	if strings.HasSuffix(recs.PersonalizedMessage, highRiskSuffix) {
		t.Fatal("medium risk should not carry the high risk suffix")
	}
}

func TestForHighRiskAddsCrisisResources(t *testing.T) {
	recs := For(assessment.Analysis{
		PredictedState: assessment.Anxiety,
		Confidence:     0.9,
		RiskLevel:      assessment.RiskHigh,
	})

	if len(recs.ProfessionalResources) != len(crisisResources) {
		t.Fatalf("expected only crisis resources, got %d", len(recs.ProfessionalResources))
	}
	if recs.ProfessionalResources[0].URL != "tel:988" {
		t.Fatalf("expected 988 first, got %q", recs.ProfessionalResources[0].URL)
	}
	if recs.ImmediateActions[0] != "If you are in immediate danger, call 911" {
		t.Fatalf("unexpected first action %q", recs.ImmediateActions[0])
	}
	if !strings.HasSuffix(recs.PersonalizedMessage, highRiskSuffix) {
		t.Fatalf("expected high risk suffix in %q", recs.PersonalizedMessage)
	}
	if recs.ConfidenceLevel != "High confidence" {
		t.Fatalf("unexpected confidence level %q", recs.ConfidenceLevel)
	}
}

func TestForSuicidalAlwaysIncludesCrisis(t *testing.T) {
	recs := For(assessment.Analysis{
		PredictedState: assessment.Suicidal,
		Confidence:     0.4,
		RiskLevel:      assessment.RiskMedium,
	})

	// Crisis resources followed by two state resources.
	if len(recs.ProfessionalResources) != len(crisisResources)+2 {
		t.Fatalf("unexpected professional resources: %d", len(recs.ProfessionalResources))
	}
	if len(recs.ImmediateActions) != len(crisisActions) {
		t.Fatalf("expected crisis actions, got %v", recs.ImmediateActions)
	}
	if len(recs.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(recs.Articles))
	}
	if recs.ConfidenceLevel != "Low confidence" {
		t.Fatalf("unexpected confidence level %q", recs.ConfidenceLevel)
	}
}

func TestForUnknownStateUsesNormal(t *testing.T) {
	recs := For(assessment.Analysis{PredictedState: "Confused", Confidence: 0.5})

	if recs.PrimaryConcern != "Normal" {
		t.Fatalf("unexpected concern %q", recs.PrimaryConcern)
	}
	if recs.RiskLevel != assessment.RiskLow {
		t.Fatalf("unexpected risk %q", recs.RiskLevel)
	}
	if len(recs.ProfessionalResources) != 1 {
		t.Fatalf("expected 1 professional resource, got %d", len(recs.ProfessionalResources))
	}
}

func TestForDoesNotShareCatalogSlices(t *testing.T) {
	recs := For(assessment.Analysis{PredictedState: assessment.Normal, RiskLevel: assessment.RiskLow})
	recs.Videos[0].Title = "changed"
	recs.FollowUpSuggestions[0] = "changed"

	again := For(assessment.Analysis{PredictedState: assessment.Normal, RiskLevel: assessment.RiskLow})
	if again.Videos[0].Title == "changed" || again.FollowUpSuggestions[0] == "changed" {
		t.Fatal("recommendations alias the catalog")
	}
}
