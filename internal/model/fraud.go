package model

// RiskTier is the coarse fraud-risk bucket derived from the score
type RiskTier string

const (
	RiskTierLow    RiskTier = "LOW"
	RiskTierMedium RiskTier = "MEDIUM"
	RiskTierHigh   RiskTier = "HIGH"
)

// TriggeredIndicator records one fraud indicator that fired, with the
// text span that triggered it for audit replay
type TriggeredIndicator struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Evidence string  `json:"evidence,omitempty"`
}

// FraudAssessment is the additive fraud score for one claim.
// Score is unbounded above; every indicator is evaluated and the
// weights of the triggered ones are summed.
type FraudAssessment struct {
	Score     float64              `json:"score"`
	Triggered []TriggeredIndicator `json:"triggered_indicators"`
	RiskTier  RiskTier             `json:"risk_tier"`
}
