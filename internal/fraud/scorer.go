// Package fraud scores claim records for suspicion markers. Unlike
// routing, every configured indicator is evaluated and the weights
// of the triggered ones are summed; nothing short-circuits.
package fraud

import (
	"fmt"
	"strings"
	"time"

	"github.com/openfnol/fnoltriage/internal/extract"
	"github.com/openfnol/fnoltriage/internal/model"
)

// Scorer evaluates the configured indicator list against a claim.
// It is side-effect-free and deterministic for a given config.
type Scorer struct {
	cfg model.FraudConfig
	now func() time.Time
}

// NewScorer creates a scorer over an immutable fraud config
func NewScorer(cfg model.FraudConfig) *Scorer {
	return &Scorer{cfg: cfg, now: time.Now}
}

// Assess runs all indicators over the record and raw text and sums
// the triggered weights into an additive score
func (s *Scorer) Assess(record model.ClaimRecord, rawText string) model.FraudAssessment {
	assessment := model.FraudAssessment{
		Triggered: []model.TriggeredIndicator{},
	}

	lowerText := strings.ToLower(rawText)

	for _, indicator := range s.cfg.Indicators {
		evidence, triggered := s.evaluate(indicator, record, lowerText)
		if !triggered {
			continue
		}
		assessment.Score += indicator.Weight
		assessment.Triggered = append(assessment.Triggered, model.TriggeredIndicator{
			Name:     indicator.Name,
			Weight:   indicator.Weight,
			Evidence: evidence,
		})
	}

	assessment.RiskTier = s.cfg.TierFor(assessment.Score)
	return assessment
}

func (s *Scorer) evaluate(indicator model.FraudIndicator, record model.ClaimRecord, lowerText string) (string, bool) {
	switch indicator.Kind {
	case model.IndicatorKeyword:
		return keywordEvidence(indicator.Keywords, lowerText)
	case model.IndicatorAmountRange:
		return amountEvidence(indicator, record)
	case model.IndicatorTiming:
		return timingEvidence(indicator, record)
	case model.IndicatorContactMismatch:
		return mismatchEvidence(record)
	case model.IndicatorFutureDate:
		return s.futureDateEvidence(indicator, record)
	case model.IndicatorShortDescription:
		return shortDescriptionEvidence(indicator, record)
	case model.IndicatorTypeMismatch:
		return typeMismatchEvidence(record)
	default:
		return "", false
	}
}

// keywordEvidence triggers on the first keyword present in the text
// and captures a window around it for audit
func keywordEvidence(keywords []string, lowerText string) (string, bool) {
	for _, keyword := range keywords {
		idx := strings.Index(lowerText, strings.ToLower(keyword))
		if idx < 0 {
			continue
		}
		return snippet(lowerText, idx, len(keyword)), true
	}
	return "", false
}

// amountEvidence triggers when the field's amount lies in the
// configured range. MaxAmount of zero means unbounded above.
func amountEvidence(indicator model.FraudIndicator, record model.ClaimRecord) (string, bool) {
	field := indicator.Field
	if field == "" {
		field = model.FieldEstimatedDamage
	}
	amount := record.Amount(field)
	if amount <= 0 || amount < indicator.MinAmount {
		return "", false
	}
	if indicator.MaxAmount > 0 && amount >= indicator.MaxAmount {
		return "", false
	}
	return fmt.Sprintf("%s=%.2f", field, amount), true
}

// timingEvidence triggers when the loss date falls within the
// configured window after the policy effective date
func timingEvidence(indicator model.FraudIndicator, record model.ClaimRecord) (string, bool) {
	lossDate, ok1 := isoDate(record, model.FieldDateOfLoss)
	effectiveDate, ok2 := isoDate(record, model.FieldEffectiveDate)
	if !ok1 || !ok2 {
		return "", false
	}

	days := int(lossDate.Sub(effectiveDate).Hours() / 24)
	if days < 0 || days > indicator.WithinDays {
		return "", false
	}
	return fmt.Sprintf("loss %s is %d days after policy effective %s",
		lossDate.Format("2006-01-02"), days, effectiveDate.Format("2006-01-02")), true
}

// mismatchEvidence triggers when the contact email shares no name
// token with the policyholder
func mismatchEvidence(record model.ClaimRecord) (string, bool) {
	email := record.Text(model.FieldContactEmail)
	name := record.Text(model.FieldPolicyholderName)
	if email == "" || name == "" {
		return "", false
	}

	local := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	for _, token := range strings.Fields(strings.ToLower(name)) {
		if len(token) >= 3 && strings.Contains(local, token) {
			return "", false
		}
	}
	return fmt.Sprintf("email %s does not match policyholder %s", email, name), true
}

// futureDateEvidence triggers when the field's date lies after today.
// A reported loss that has not happened yet is a data-quality red flag.
func (s *Scorer) futureDateEvidence(indicator model.FraudIndicator, record model.ClaimRecord) (string, bool) {
	field := indicator.Field
	if field == "" {
		field = model.FieldDateOfLoss
	}
	date, ok := isoDate(record, field)
	if !ok {
		return "", false
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	if !date.After(today) {
		return "", false
	}
	return fmt.Sprintf("%s %s is in the future", field, date.Format("2006-01-02")), true
}

// shortDescriptionEvidence triggers when the loss description is too
// thin to corroborate the claim
func shortDescriptionEvidence(indicator model.FraudIndicator, record model.ClaimRecord) (string, bool) {
	description := strings.TrimSpace(record.Text(model.FieldDescription))
	if description == "" {
		// An absent description is a validation problem, not fraud
		return "", false
	}

	minLength := indicator.MinLength
	if minLength <= 0 {
		minLength = 20
	}
	if len(description) >= minLength {
		return "", false
	}
	return fmt.Sprintf("description is only %d characters", len(description)), true
}

// typeMismatchEvidence triggers when the stated claim type contradicts
// the type the description keywords point to. Inferred types can never
// contradict themselves.
func typeMismatchEvidence(record model.ClaimRecord) (string, bool) {
	raw := record.Text(model.FieldClaimType)
	if raw == "" || strings.HasPrefix(record.Field(model.FieldClaimType).Pattern, "inferred:") {
		return "", false
	}
	stated := extract.CanonicalClaimType(raw)

	inferred := extract.InferClaimType(record.Text(model.FieldDescription))
	if inferred == "" || inferred == stated {
		return "", false
	}
	// property_damage is the catch-all bucket, not a real contradiction
	if inferred == "property_damage" {
		return "", false
	}
	return fmt.Sprintf("claim type %q but description reads as %q", stated, inferred), true
}

// isoDate reads a normalized YYYY-MM-DD field value
func isoDate(record model.ClaimRecord, field string) (time.Time, bool) {
	value, ok := record.Field(field).Normalized.(string)
	if !ok || value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// snippet extracts an evidence window around a keyword hit
func snippet(text string, idx, length int) string {
	start := idx - 40
	if start < 0 {
		start = 0
	}
	end := idx + length + 40
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}
