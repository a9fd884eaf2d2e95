package model

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Priority is the handling priority attached to a routing decision
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Action tags a routing decision can require downstream
const (
	ActionManualReview       = "MANUAL_REVIEW"
	ActionFraudInvestigation = "FRAUD_INVESTIGATION"
	ActionAutoApprove        = "AUTO_APPROVE"
)

// RuleOutcome records one rule's evaluation for the audit trace
type RuleOutcome struct {
	RuleID  string `json:"rule_id"`
	Matched bool   `json:"matched"`
}

// RoutingDecision selects the downstream queue for a claim. RuleTrace
// holds every configured rule's outcome in evaluation order; the
// first matched rule controls the decision.
type RoutingDecision struct {
	DestinationQueue string             `json:"destination_queue"`
	Priority         Priority           `json:"priority"`
	RequiredActions  mapset.Set[string] `json:"required_actions"`
	MatchedRuleID    string             `json:"matched_rule_id"`
	RuleTrace        []RuleOutcome      `json:"rule_trace"`
}

// DefaultRuleID identifies the built-in floor that applies when no
// configured rule matches
const DefaultRuleID = "default"

// DefaultDecision returns the mandatory routing floor: the engine
// never leaves a claim undecided
func DefaultDecision(trace []RuleOutcome) RoutingDecision {
	return RoutingDecision{
		DestinationQueue: "manual_review",
		Priority:         PriorityNormal,
		RequiredActions:  mapset.NewSet(ActionManualReview),
		MatchedRuleID:    DefaultRuleID,
		RuleTrace:        trace,
	}
}
