// Package route selects a downstream workflow queue for a claim by
// evaluating an ordered rule set. The first rule whose predicate
// holds wins, so rule order is a semantic part of the configuration:
// a fraud catch-all placed after a default-approve rule never fires.
package route

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/openfnol/fnoltriage/internal/model"
)

// Engine evaluates the configured rule set
type Engine struct {
	rules model.RuleSet
}

// NewEngine creates an engine over an immutable rule set
func NewEngine(rules model.RuleSet) *Engine {
	return &Engine{rules: rules}
}

// Route evaluates every configured rule in order and returns the
// decision of the first match. Every rule's outcome lands in the
// trace for audit replay, including rules after the winner. When no
// rule matches, the built-in manual-review floor applies; the engine
// never returns an undecided state.
func (e *Engine) Route(record model.ClaimRecord, validation model.ValidationReport, fraud model.FraudAssessment) model.RoutingDecision {
	trace := make([]model.RuleOutcome, 0, len(e.rules.Rules))

	var winner *model.RoutingRule
	for i, rule := range e.rules.Rules {
		matched := matches(rule.When, record, validation, fraud)
		trace = append(trace, model.RuleOutcome{RuleID: rule.ID, Matched: matched})
		if matched && winner == nil {
			winner = &e.rules.Rules[i]
		}
	}

	if winner == nil {
		return model.DefaultDecision(trace)
	}

	return model.RoutingDecision{
		DestinationQueue: winner.Queue,
		Priority:         winner.Priority,
		RequiredActions:  mapset.NewSet(winner.Actions...),
		MatchedRuleID:    winner.ID,
		RuleTrace:        trace,
	}
}

// matches evaluates a rule predicate: the conjunction of every set
// condition. An empty predicate always matches.
func matches(when model.RuleConditions, record model.ClaimRecord, validation model.ValidationReport, fraud model.FraudAssessment) bool {
	if when.MissingRequired != nil && (len(validation.MissingRequired) > 0) != *when.MissingRequired {
		return false
	}
	if when.Valid != nil && validation.IsValid != *when.Valid {
		return false
	}
	if when.MinFraudScore != nil && fraud.Score < *when.MinFraudScore {
		return false
	}
	if len(when.FraudTiers) > 0 && !containsTier(when.FraudTiers, fraud.RiskTier) {
		return false
	}
	if len(when.ClaimTypes) > 0 && !containsString(when.ClaimTypes, record.Text(model.FieldClaimType)) {
		return false
	}

	amount := record.Amount(model.FieldEstimatedDamage)
	if when.HasAmount != nil && (amount > 0) != *when.HasAmount {
		return false
	}
	if when.MinAmount != nil && amount < *when.MinAmount {
		return false
	}
	if when.MaxAmount != nil && amount >= *when.MaxAmount {
		return false
	}

	if len(when.DescriptionContains) > 0 {
		description := strings.ToLower(record.Text(model.FieldDescription))
		found := false
		for _, keyword := range when.DescriptionContains {
			if strings.Contains(description, strings.ToLower(keyword)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func containsTier(tiers []model.RiskTier, tier model.RiskTier) bool {
	for _, t := range tiers {
		if t == tier {
			return true
		}
	}
	return false
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
