package route

import (
	"testing"

	"github.com/openfnol/fnoltriage/internal/model"
)

func claimRecord(claimType string, amount float64) model.ClaimRecord {
	fields := map[string]model.ExtractedValue{}
	if claimType != "" {
		fields[model.FieldClaimType] = model.ExtractedValue{Raw: claimType, Normalized: claimType}
	}
	if amount > 0 {
		fields[model.FieldEstimatedDamage] = model.ExtractedValue{Raw: "x", Normalized: amount}
	}
	return model.ClaimRecord{Fields: fields}
}

func valid() model.ValidationReport {
	return model.ValidationReport{IsValid: true}
}

func lowRisk() model.FraudAssessment {
	return model.FraudAssessment{RiskTier: model.RiskTierLow}
}

func TestRoute_DefaultRules(t *testing.T) {
	engine := NewEngine(model.DefaultRuleSet())

	tests := []struct {
		name       string
		record     model.ClaimRecord
		validation model.ValidationReport
		fraud      model.FraudAssessment
		wantQueue  string
		wantRule   string
		wantPrio   model.Priority
	}{
		{
			name:       "missing required goes to manual review",
			record:     claimRecord("", 0),
			validation: model.ValidationReport{MissingRequired: []string{"policy_number"}},
			fraud:      lowRisk(),
			wantQueue:  "manual_review",
			wantRule:   "incomplete-submission",
			wantPrio:   model.PriorityNormal,
		},
		{
			name:       "high fraud risk beats fast-track",
			record:     claimRecord("vehicle_damage", 5000),
			validation: valid(),
			fraud:      model.FraudAssessment{Score: 60, RiskTier: model.RiskTierHigh},
			wantQueue:  "investigation",
			wantRule:   "fraud-flag",
			wantPrio:   model.PriorityUrgent,
		},
		{
			name:       "medium risk is reviewed in standard",
			record:     claimRecord("vehicle_damage", 5000),
			validation: valid(),
			fraud:      model.FraudAssessment{Score: 30, RiskTier: model.RiskTierMedium},
			wantQueue:  "standard",
			wantRule:   "elevated-risk",
			wantPrio:   model.PriorityHigh,
		},
		{
			name:       "injury beats fast-track regardless of amount",
			record:     claimRecord("injury", 5000),
			validation: valid(),
			fraud:      lowRisk(),
			wantQueue:  "specialist",
			wantRule:   "injury-claim",
			wantPrio:   model.PriorityHigh,
		},
		{
			name:       "small complete claim is fast-tracked",
			record:     claimRecord("vehicle_damage", 5000),
			validation: valid(),
			fraud:      lowRisk(),
			wantQueue:  "fast_track",
			wantRule:   "fast-track",
			wantPrio:   model.PriorityNormal,
		},
		{
			name:       "large claim falls through to standard",
			record:     claimRecord("vehicle_damage", 60000),
			validation: valid(),
			fraud:      lowRisk(),
			wantQueue:  "standard",
			wantRule:   "standard-processing",
			wantPrio:   model.PriorityNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := engine.Route(tt.record, tt.validation, tt.fraud)
			if decision.DestinationQueue != tt.wantQueue {
				t.Errorf("queue = %s, want %s", decision.DestinationQueue, tt.wantQueue)
			}
			if decision.MatchedRuleID != tt.wantRule {
				t.Errorf("rule = %s, want %s", decision.MatchedRuleID, tt.wantRule)
			}
			if decision.Priority != tt.wantPrio {
				t.Errorf("priority = %s, want %s", decision.Priority, tt.wantPrio)
			}
		})
	}
}

// The fast-track cap is exclusive: a claim at exactly the cap is not
// fast-tracked.
func TestRoute_FastTrackBoundary(t *testing.T) {
	engine := NewEngine(model.DefaultRuleSet())

	decision := engine.Route(claimRecord("vehicle_damage", 25000), valid(), lowRisk())
	if decision.MatchedRuleID != "standard-processing" {
		t.Errorf("rule = %s, want standard-processing at the cap", decision.MatchedRuleID)
	}

	decision = engine.Route(claimRecord("vehicle_damage", 24999.99), valid(), lowRisk())
	if decision.MatchedRuleID != "fast-track" {
		t.Errorf("rule = %s, want fast-track below the cap", decision.MatchedRuleID)
	}
}

// Every rule is evaluated and recorded, including those after the
// winner; the trace is the audit record of the whole evaluation.
func TestRoute_FullTrace(t *testing.T) {
	ruleSet := model.DefaultRuleSet()
	engine := NewEngine(ruleSet)

	decision := engine.Route(claimRecord("vehicle_damage", 5000), valid(), lowRisk())

	if len(decision.RuleTrace) != len(ruleSet.Rules) {
		t.Fatalf("trace = %d entries, want %d", len(decision.RuleTrace), len(ruleSet.Rules))
	}
	for i, outcome := range decision.RuleTrace {
		if outcome.RuleID != ruleSet.Rules[i].ID {
			t.Errorf("trace[%d] = %s, want %s", i, outcome.RuleID, ruleSet.Rules[i].ID)
		}
	}

	// The claim matches both fast-track and standard-processing; the
	// trace shows both, the decision takes the first.
	byID := map[string]bool{}
	for _, outcome := range decision.RuleTrace {
		byID[outcome.RuleID] = outcome.Matched
	}
	if !byID["fast-track"] || !byID["standard-processing"] {
		t.Errorf("trace = %v, want fast-track and standard-processing both matched", byID)
	}
	if decision.MatchedRuleID != "fast-track" {
		t.Errorf("winner = %s, want the first matching rule", decision.MatchedRuleID)
	}
}

func TestRoute_NoRuleMatchesFloor(t *testing.T) {
	engine := NewEngine(model.RuleSet{Rules: []model.RoutingRule{
		{
			ID:    "never",
			When:  model.RuleConditions{ClaimTypes: []string{"nonexistent"}},
			Queue: "nowhere",
		},
	}})

	decision := engine.Route(claimRecord("vehicle_damage", 100), valid(), lowRisk())

	if decision.DestinationQueue != "manual_review" {
		t.Errorf("queue = %s, want the manual_review floor", decision.DestinationQueue)
	}
	if decision.MatchedRuleID != model.DefaultRuleID {
		t.Errorf("rule = %s, want %s", decision.MatchedRuleID, model.DefaultRuleID)
	}
	if !decision.RequiredActions.Contains(model.ActionManualReview) {
		t.Error("floor decision must require manual review")
	}
	if len(decision.RuleTrace) != 1 || decision.RuleTrace[0].Matched {
		t.Errorf("trace = %+v, want the one unmatched rule recorded", decision.RuleTrace)
	}
}
