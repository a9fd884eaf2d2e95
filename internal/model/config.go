package model

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FieldType selects the normalizer applied to a field's raw match
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeDate       FieldType = "date"
	FieldTypeTime       FieldType = "time"
	FieldTypeCurrency   FieldType = "currency"
	FieldTypeIdentifier FieldType = "identifier"
	FieldTypeName       FieldType = "name"
	FieldTypePhone      FieldType = "phone"
	FieldTypeEmail      FieldType = "email"
)

// OccurrencePolicy selects which occurrence wins when a pattern
// matches the text more than once
type OccurrencePolicy string

const (
	OccurrenceFirst   OccurrencePolicy = "first"
	OccurrenceLast    OccurrencePolicy = "last"
	OccurrenceLongest OccurrencePolicy = "longest"
)

// FieldPattern is one candidate expression for a field. Patterns are
// tried in configured order and the first match wins, so ordering is
// part of the extraction contract: anchored patterns must precede
// loose fallbacks.
type FieldPattern struct {
	ID         string  `yaml:"id" json:"id"`
	Expr       string  `yaml:"expr" json:"expr"`
	Confidence float64 `yaml:"confidence" json:"confidence"`
}

// FieldSpec configures extraction for one schema field
type FieldSpec struct {
	Name       string           `yaml:"name" json:"name"`
	Type       FieldType        `yaml:"type" json:"type"`
	Required   bool             `yaml:"required" json:"required"`
	Occurrence OccurrencePolicy `yaml:"occurrence,omitempty" json:"occurrence,omitempty"`
	Patterns   []FieldPattern   `yaml:"patterns" json:"patterns"`
}

// FieldSchema is the ordered extraction schema. Field order controls
// warning and validation ordering; it is a sequence, never a map.
type FieldSchema struct {
	Fields []FieldSpec `yaml:"fields" json:"fields"`
}

// RequiredFields returns required field names in schema order
func (s *FieldSchema) RequiredFields() []string {
	var required []string
	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

// Spec looks up a field spec by name
func (s *FieldSchema) Spec(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FormSection names a fixed ACORD section, the header markers that
// locate it, and the schema fields extracted inside its span
type FormSection struct {
	Name    string   `yaml:"name" json:"name"`
	Markers []string `yaml:"markers" json:"markers"`
	Fields  []string `yaml:"fields" json:"fields"`
}

// FormLayout describes the fixed-section structure of an ACORD form
type FormLayout struct {
	FormMarkers []string      `yaml:"form_markers" json:"form_markers"`
	Sections    []FormSection `yaml:"sections" json:"sections"`
}

// IndicatorKind selects the predicate a fraud indicator evaluates
type IndicatorKind string

const (
	IndicatorKeyword          IndicatorKind = "keyword"
	IndicatorAmountRange      IndicatorKind = "amount_range"
	IndicatorTiming           IndicatorKind = "timing"
	IndicatorContactMismatch  IndicatorKind = "contact_mismatch"
	IndicatorFutureDate       IndicatorKind = "future_date"
	IndicatorShortDescription IndicatorKind = "short_description"
	IndicatorTypeMismatch     IndicatorKind = "type_mismatch"
)

// FraudIndicator is one independent suspicion predicate with a
// non-negative additive weight
type FraudIndicator struct {
	Name     string        `yaml:"name" json:"name"`
	Kind     IndicatorKind `yaml:"kind" json:"kind"`
	Weight   float64       `yaml:"weight" json:"weight"`
	Keywords []string      `yaml:"keywords,omitempty" json:"keywords,omitempty"`

	// amount_range: triggers when Field's amount is >= MinAmount and,
	// when MaxAmount > 0, < MaxAmount
	Field     string  `yaml:"field,omitempty" json:"field,omitempty"`
	MinAmount float64 `yaml:"min_amount,omitempty" json:"min_amount,omitempty"`
	MaxAmount float64 `yaml:"max_amount,omitempty" json:"max_amount,omitempty"`

	// timing: triggers when the loss date falls within WithinDays days
	// after the policy effective date
	WithinDays int `yaml:"within_days,omitempty" json:"within_days,omitempty"`

	// short_description: triggers when the description has fewer than
	// MinLength characters
	MinLength int `yaml:"min_length,omitempty" json:"min_length,omitempty"`
}

// FraudConfig is the ordered indicator list plus the two tier
// thresholds. All indicators are always evaluated; this is not a
// first-match list.
type FraudConfig struct {
	Indicators      []FraudIndicator `yaml:"indicators" json:"indicators"`
	MediumThreshold float64          `yaml:"medium_threshold" json:"medium_threshold"`
	HighThreshold   float64          `yaml:"high_threshold" json:"high_threshold"`
}

// TierFor buckets a score: LOW below MediumThreshold, HIGH at or
// above HighThreshold, MEDIUM between
func (c *FraudConfig) TierFor(score float64) RiskTier {
	switch {
	case score >= c.HighThreshold:
		return RiskTierHigh
	case score >= c.MediumThreshold:
		return RiskTierMedium
	default:
		return RiskTierLow
	}
}

// RuleConditions is the predicate of a routing rule: the conjunction
// of every condition that is set. An empty conditions block always
// matches, which makes a rule a catch-all.
type RuleConditions struct {
	MissingRequired     *bool      `yaml:"missing_required,omitempty" json:"missing_required,omitempty"`
	Valid               *bool      `yaml:"valid,omitempty" json:"valid,omitempty"`
	MinFraudScore       *float64   `yaml:"min_fraud_score,omitempty" json:"min_fraud_score,omitempty"`
	FraudTiers          []RiskTier `yaml:"fraud_tiers,omitempty" json:"fraud_tiers,omitempty"`
	ClaimTypes          []string   `yaml:"claim_types,omitempty" json:"claim_types,omitempty"`
	HasAmount           *bool      `yaml:"has_amount,omitempty" json:"has_amount,omitempty"`
	MinAmount           *float64   `yaml:"min_amount,omitempty" json:"min_amount,omitempty"`
	MaxAmount           *float64   `yaml:"max_amount,omitempty" json:"max_amount,omitempty"`
	DescriptionContains []string   `yaml:"description_contains,omitempty" json:"description_contains,omitempty"`
}

// RoutingRule maps a predicate to a destination. Rule order in the
// set is first-match-wins and therefore a semantic part of the
// configuration: a fraud catch-all must precede a default-approve.
type RoutingRule struct {
	ID          string         `yaml:"id" json:"id"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	When        RuleConditions `yaml:"when" json:"when"`
	Queue       string         `yaml:"queue" json:"queue"`
	Priority    Priority       `yaml:"priority" json:"priority"`
	Actions     []string       `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// RuleSet is the ordered routing rule sequence
type RuleSet struct {
	Rules []RoutingRule `yaml:"rules" json:"rules"`
}

// DetectionConfig bounds the document-type sniff
type DetectionConfig struct {
	SniffLines int `yaml:"sniff_lines"`
}

// ConcurrencyConfig controls the batch orchestrator
type ConcurrencyConfig struct {
	Workers         int           `yaml:"workers"`
	DocumentTimeout time.Duration `yaml:"document_timeout"`
}

// RateLimitConfig paces batch throughput; zero disables pacing
type RateLimitConfig struct {
	DocumentsPerSecond float64 `yaml:"documents_per_second"`
	Burst              int     `yaml:"burst"`
}

// CacheConfig controls the content-hash result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig configures the optional adjuster-notes summarizer.
// Empty Provider disables it.
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"`
	MaxTokens int    `yaml:"max_tokens"`
}

// Config is the full processing configuration. It is loaded once per
// process, normalized, and shared read-only across workers.
type Config struct {
	Schema       FieldSchema       `yaml:"schema"`
	Form         FormLayout        `yaml:"form"`
	Fraud        FraudConfig       `yaml:"fraud"`
	Rules        RuleSet           `yaml:"rules"`
	Detection    DetectionConfig   `yaml:"detection"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting"`
	Cache        CacheConfig       `yaml:"cache"`
	Output       OutputConfig      `yaml:"output"`
	LLM          LLMConfig         `yaml:"llm"`
}

// LoadConfig reads a YAML config file over the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps out-of-range values after loading. Fraud weights
// are additive and non-negative; negative weights are clamped to 0.
func (c *Config) Normalize() {
	for i := range c.Fraud.Indicators {
		if c.Fraud.Indicators[i].Weight < 0 {
			c.Fraud.Indicators[i].Weight = 0
		}
	}
	if c.Fraud.HighThreshold < c.Fraud.MediumThreshold {
		c.Fraud.HighThreshold = c.Fraud.MediumThreshold
	}
	if c.Detection.SniffLines <= 0 {
		c.Detection.SniffLines = 20
	}
	if c.Concurrency.Workers <= 0 {
		c.Concurrency.Workers = 4
	}
	for i := range c.Schema.Fields {
		if c.Schema.Fields[i].Occurrence == "" {
			c.Schema.Fields[i].Occurrence = OccurrenceFirst
		}
	}
}

// DefaultConfig returns the built-in configuration: the full FNOL
// field schema, the ACORD form layout, the fraud indicator set, and
// the standard routing rules.
func DefaultConfig() *Config {
	cfg := &Config{
		Schema: DefaultFieldSchema(),
		Form:   DefaultFormLayout(),
		Fraud:  DefaultFraudConfig(),
		Rules:  DefaultRuleSet(),
		Detection: DetectionConfig{
			SniffLines: 20,
		},
		Concurrency: ConcurrencyConfig{
			Workers:         4,
			DocumentTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 800,
		},
	}
	cfg.Normalize()
	return cfg
}

// DefaultFieldSchema is the built-in FNOL field schema. Pattern order
// per field runs from anchored labels down to loose fallbacks.
func DefaultFieldSchema() FieldSchema {
	return FieldSchema{Fields: []FieldSpec{
		{
			Name: FieldPolicyNumber, Type: FieldTypeIdentifier, Required: true,
			Patterns: []FieldPattern{
				{ID: "policy-number-label", Expr: `(?i)policy\s*(?:number|no\.?|#)[:#\s]+([A-Z0-9][A-Z0-9_-]*[A-Z0-9])`, Confidence: 1.0},
				{ID: "policy-label", Expr: `(?i)\bpolicy[:\s]+([A-Z][A-Z0-9_-]*[0-9][A-Z0-9_-]*)`, Confidence: 0.7},
			},
		},
		{
			Name: FieldPolicyholderName, Type: FieldTypeName, Required: true,
			Patterns: []FieldPattern{
				{ID: "policyholder-name-label", Expr: `(?i)policyholder\s*name[:\s]+([A-Z][A-Za-z .'-]+)`, Confidence: 1.0},
				{ID: "insured-name-label", Expr: `(?i)(?:name\s*of\s*insured|named\s*insured|insured\s*name)(?:\s*\(first,\s*middle,\s*last\))?[:\s]+([A-Z][A-Za-z .'-]+)`, Confidence: 0.9},
				{ID: "name-label", Expr: `(?im)^name[:\s]+([A-Z][A-Za-z .'-]+)$`, Confidence: 0.5},
			},
		},
		{
			Name: FieldEffectiveDate, Type: FieldTypeDate,
			Patterns: []FieldPattern{
				{ID: "effective-date-label", Expr: `(?i)effective\s*date[:\s]+([A-Z][a-z]+\s+[0-9]{1,2},\s+[0-9]{4}|[0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`, Confidence: 1.0},
				{ID: "policy-period-label", Expr: `(?i)(?:policy\s*period|coverage\s*dates?)[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`, Confidence: 0.8},
			},
		},
		{
			Name: FieldDateOfLoss, Type: FieldTypeDate, Required: true,
			Patterns: []FieldPattern{
				{ID: "date-of-loss-label", Expr: `(?i)date\s*of\s*loss(?:\s*and\s*time)?[:\s]+([A-Z][a-z]+\s+[0-9]{1,2},\s+[0-9]{4}|[0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`, Confidence: 1.0},
				{ID: "loss-date-label", Expr: `(?i)(?:loss|incident)\s*date[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`, Confidence: 0.9},
				{ID: "date-label", Expr: `(?im)^date[:\s]+([A-Z][a-z]+\s+[0-9]{1,2},\s+[0-9]{4}|[0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`, Confidence: 0.5},
			},
		},
		{
			Name: FieldTimeOfLoss, Type: FieldTypeTime,
			Patterns: []FieldPattern{
				{ID: "time-of-loss-label", Expr: `(?i)time(?:\s*of\s*loss)?[:\s]+([0-9]{1,2}:[0-9]{2}\s*[AP]M)`, Confidence: 1.0},
				{ID: "bare-time", Expr: `(?i)([0-9]{1,2}:[0-9]{2}\s*[AP]M)`, Confidence: 0.4},
			},
		},
		{
			Name: FieldLocation, Type: FieldTypeText, Required: true,
			Patterns: []FieldPattern{
				{ID: "location-of-loss-label", Expr: `(?i)location\s*of\s*loss[:\s]+([^\n]+)`, Confidence: 1.0},
				{ID: "location-label", Expr: `(?i)location[:\s]+([^\n]+)`, Confidence: 0.9},
				{ID: "address-label", Expr: `(?i)(?:address|street)[:\s]+([^\n]+)`, Confidence: 0.6},
			},
		},
		{
			Name: FieldDescription, Type: FieldTypeText, Required: true, Occurrence: OccurrenceLongest,
			Patterns: []FieldPattern{
				{ID: "description-of-accident-label", Expr: `(?is)description\s*of\s*(?:accident|loss|incident)[:\s]+(.*?)(?:\n\s*\n|\n[A-Z][A-Z ]{2,}:|\z)`, Confidence: 1.0},
				{ID: "description-label", Expr: `(?is)description[:\s]+(.*?)(?:\n\s*\n|\n[A-Z][A-Z ]{2,}:|\z)`, Confidence: 0.9},
				{ID: "remarks-label", Expr: `(?is)(?:loss\s*description|remarks)[:\s]+(.*?)(?:\n\s*\n|\z)`, Confidence: 0.6},
			},
		},
		{
			Name: FieldClaimType, Type: FieldTypeText, Required: true,
			Patterns: []FieldPattern{
				{ID: "claim-type-label", Expr: `(?i)claim\s*type[:\s]+([A-Za-z_ ]+)`, Confidence: 1.0},
			},
		},
		{
			Name: FieldEstimatedDamage, Type: FieldTypeCurrency, Required: true,
			Patterns: []FieldPattern{
				{ID: "damage-estimate-label", Expr: `(?i)(?:damage\s*estimate|estimated\s*damage|estimate\s*amount)[:\s]+\$?\s*([0-9][0-9,]*\.?[0-9]*)`, Confidence: 1.0},
				{ID: "amount-label", Expr: `(?i)amount[:\s]+\$?\s*([0-9][0-9,]*\.?[0-9]*)`, Confidence: 0.6},
				{ID: "any-dollar-amount", Expr: `\$([0-9][0-9,]*\.?[0-9]*)`, Confidence: 0.3},
			},
		},
		{
			Name: FieldAssetType, Type: FieldTypeText,
			Patterns: []FieldPattern{
				{ID: "asset-type-label", Expr: `(?i)(?:vehicle|asset)\s*type[:\s]+([A-Za-z][A-Za-z ]*)`, Confidence: 1.0},
				{ID: "type-of-vehicle-label", Expr: `(?i)type\s*of\s*vehicle[:\s]+([A-Za-z][A-Za-z ]*)`, Confidence: 0.8},
			},
		},
		{
			Name: FieldAssetID, Type: FieldTypeIdentifier,
			Patterns: []FieldPattern{
				{ID: "vin-label", Expr: `(?i)V\.?I\.?N\.?[:\s]+([A-HJ-NPR-Z0-9]{17})`, Confidence: 1.0},
				{ID: "vehicle-id-label", Expr: `(?i)vehicle\s*id[:\s]+([A-Z0-9]+)`, Confidence: 0.7},
			},
		},
		{
			Name: FieldVehicleYear, Type: FieldTypeIdentifier,
			Patterns: []FieldPattern{
				{ID: "year-label", Expr: `(?i)\byear[:\s]+([12][0-9]{3})`, Confidence: 1.0},
			},
		},
		{
			Name: FieldVehicleMake, Type: FieldTypeText,
			Patterns: []FieldPattern{
				{ID: "make-label", Expr: `(?im)\bmake[:\s]+([A-Za-z][A-Za-z ]*?)\s*$`, Confidence: 1.0},
			},
		},
		{
			Name: FieldVehicleModel, Type: FieldTypeText,
			Patterns: []FieldPattern{
				{ID: "model-label", Expr: `(?im)\bmodel[:\s]+([A-Za-z0-9][A-Za-z0-9 -]*?)\s*$`, Confidence: 1.0},
			},
		},
		{
			Name: FieldPlateNumber, Type: FieldTypeIdentifier,
			Patterns: []FieldPattern{
				{ID: "plate-label", Expr: `(?i)plate\s*(?:number|no\.?|#)[:\s]+([A-Z0-9-]+)`, Confidence: 1.0},
			},
		},
		{
			Name: FieldClaimant, Type: FieldTypeName,
			Patterns: []FieldPattern{
				{ID: "claimant-label", Expr: `(?i)(?:claimant|driver\s*name|name\s*of\s*contact)[:\s]+([A-Z][A-Za-z .'-]+)`, Confidence: 1.0},
			},
		},
		{
			Name: FieldContactPhone, Type: FieldTypePhone,
			Patterns: []FieldPattern{
				{ID: "phone-label", Expr: `(?i)(?:phone|telephone|tel|contact)[:\s]+(\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4})`, Confidence: 1.0},
				{ID: "bare-phone", Expr: `([0-9]{3}[-.][0-9]{3}[-.][0-9]{4})`, Confidence: 0.4},
			},
		},
		{
			Name: FieldContactEmail, Type: FieldTypeEmail,
			Patterns: []FieldPattern{
				{ID: "email-label", Expr: `(?i)e-?mail[:\s]+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`, Confidence: 1.0},
				{ID: "bare-email", Expr: `([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`, Confidence: 0.5},
			},
		},
		{
			Name: FieldAttachments, Type: FieldTypeText,
			Patterns: []FieldPattern{
				{ID: "attachments-label", Expr: `(?i)(?:attachments|documents\s*attached|photos)[:\s]+([^\n]+)`, Confidence: 1.0},
			},
		},
	}}
}

// DefaultFormLayout describes the standard ACORD automobile loss
// notice sections
func DefaultFormLayout() FormLayout {
	return FormLayout{
		FormMarkers: []string{"ACORD"},
		Sections: []FormSection{
			{
				Name:    "policy",
				Markers: []string{"SECTION 1: POLICY INFORMATION", "POLICY INFORMATION"},
				Fields:  []string{FieldPolicyNumber, FieldEffectiveDate, FieldPolicyholderName},
			},
			{
				Name:    "contact",
				Markers: []string{"SECTION 2: CONTACT INFORMATION", "CONTACT INFORMATION"},
				Fields:  []string{FieldClaimant, FieldContactPhone, FieldContactEmail},
			},
			{
				Name:    "loss",
				Markers: []string{"SECTION 3: LOSS DETAILS", "LOSS DETAILS", "LOSS INFORMATION", "DESCRIPTION OF ACCIDENT"},
				Fields: []string{FieldDateOfLoss, FieldTimeOfLoss, FieldLocation, FieldDescription,
					FieldClaimType, FieldEstimatedDamage, FieldAttachments},
			},
			{
				Name:    "vehicle",
				Markers: []string{"SECTION 4: VEHICLE INFORMATION", "VEHICLE INFORMATION"},
				Fields: []string{FieldAssetType, FieldAssetID, FieldVehicleYear, FieldVehicleMake,
					FieldVehicleModel, FieldPlateNumber},
			},
		},
	}
}

// DefaultFraudConfig is the built-in indicator set
func DefaultFraudConfig() FraudConfig {
	return FraudConfig{
		MediumThreshold: 20,
		HighThreshold:   50,
		Indicators: []FraudIndicator{
			{
				Name: "fraud-language", Kind: IndicatorKeyword, Weight: 30,
				Keywords: []string{
					"fraud", "fraudulent", "false", "fake", "staged", "setup",
					"inconsistent", "contradict", "misrepresent", "exaggerat",
					"inflated", "suspicious", "fabricated", "concocted",
					"scam", "scheme",
				},
			},
			{
				Name: "prior-claims-language", Kind: IndicatorKeyword, Weight: 10,
				Keywords: []string{"previous claim", "prior claim", "last claim", "claimed before"},
			},
			{
				Name: "high-damage-amount", Kind: IndicatorAmountRange, Weight: 15,
				Field: FieldEstimatedDamage, MinAmount: 100000,
			},
			{
				Name: "recent-policy-inception", Kind: IndicatorTiming, Weight: 20,
				WithinDays: 30,
			},
			{
				Name: "contact-identity-mismatch", Kind: IndicatorContactMismatch, Weight: 10,
			},
			{
				Name: "future-loss-date", Kind: IndicatorFutureDate, Weight: 25,
				Field: FieldDateOfLoss,
			},
			{
				Name: "sparse-description", Kind: IndicatorShortDescription, Weight: 5,
				MinLength: 20,
			},
			{
				Name: "claim-type-description-mismatch", Kind: IndicatorTypeMismatch, Weight: 10,
			},
		},
	}
}

// DefaultRuleSet encodes the standard triage policy. Order matters:
// incomplete submissions and fraud flags must win before the
// amount-based fast-track rules get a chance.
func DefaultRuleSet() RuleSet {
	boolPtr := func(b bool) *bool { return &b }
	floatPtr := func(f float64) *float64 { return &f }

	return RuleSet{Rules: []RoutingRule{
		{
			ID:          "incomplete-submission",
			Description: "Required fields missing, needs a human",
			When:        RuleConditions{MissingRequired: boolPtr(true)},
			Queue:       "manual_review",
			Priority:    PriorityNormal,
			Actions:     []string{ActionManualReview},
		},
		{
			ID:          "fraud-flag",
			Description: "High fraud risk goes straight to SIU",
			When:        RuleConditions{FraudTiers: []RiskTier{RiskTierHigh}},
			Queue:       "investigation",
			Priority:    PriorityUrgent,
			Actions:     []string{ActionFraudInvestigation, ActionManualReview},
		},
		{
			ID:          "elevated-risk",
			Description: "Medium fraud risk is reviewed before payment",
			When:        RuleConditions{FraudTiers: []RiskTier{RiskTierMedium}},
			Queue:       "standard",
			Priority:    PriorityHigh,
			Actions:     []string{ActionManualReview},
		},
		{
			ID:          "injury-claim",
			Description: "Injury claims need a specialist adjuster",
			When:        RuleConditions{ClaimTypes: []string{"injury"}},
			Queue:       "specialist",
			Priority:    PriorityHigh,
			Actions:     []string{ActionManualReview},
		},
		{
			ID:          "fast-track",
			Description: "Small complete claims are approved automatically",
			When:        RuleConditions{HasAmount: boolPtr(true), MaxAmount: floatPtr(25000)},
			Queue:       "fast_track",
			Priority:    PriorityNormal,
			Actions:     []string{ActionAutoApprove},
		},
		{
			ID:          "standard-processing",
			Description: "Everything else with a known amount",
			When:        RuleConditions{HasAmount: boolPtr(true)},
			Queue:       "standard",
			Priority:    PriorityNormal,
		},
	}}
}
