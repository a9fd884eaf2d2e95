package model

// DocumentType classifies the layout of an incoming FNOL document
type DocumentType string

const (
	DocumentTypeGeneric DocumentType = "GENERIC"    // Free-form notice, pattern extraction
	DocumentTypeACORD   DocumentType = "ACORD_FORM" // Fixed-section ACORD loss notice
	DocumentTypeUnknown DocumentType = "UNKNOWN"    // Not yet detected
)

// Document is the unit of input handed to the pipeline by the loader
type Document struct {
	ID       string       `json:"id"`
	Text     string       `json:"-"`
	TypeHint DocumentType `json:"type_hint,omitempty"`
}

// ExtractedValue holds one field's extraction outcome.
// A zero value (empty Raw) means no pattern matched the field.
type ExtractedValue struct {
	Raw        string      `json:"raw,omitempty"`        // Verbatim matched text
	Normalized interface{} `json:"normalized,omitempty"` // Typed value: string date, float64 amount, ...
	Confidence float64     `json:"confidence"`           // Pattern-tier confidence, 0..1
	Pattern    string      `json:"pattern,omitempty"`    // Identifier of the winning pattern
}

// IsEmpty reports whether nothing was extracted for the field
func (v ExtractedValue) IsEmpty() bool {
	return v.Raw == ""
}

// ExtractionWarning records a field that degraded during extraction
type ExtractionWarning struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ClaimRecord is the canonical structured representation of one document.
// Every field named by the active schema is present in Fields, possibly
// empty, so consumers never need existence checks.
type ClaimRecord struct {
	Fields       map[string]ExtractedValue `json:"fields"`
	DocumentType DocumentType              `json:"document_type"`
	Warnings     []ExtractionWarning       `json:"extraction_warnings"`
}

// Field returns the extracted value for a field name
func (r *ClaimRecord) Field(name string) ExtractedValue {
	return r.Fields[name]
}

// Text returns the best string form of a field: the normalized value
// when it is a string, the raw match otherwise
func (r *ClaimRecord) Text(name string) string {
	v := r.Fields[name]
	if s, ok := v.Normalized.(string); ok && s != "" {
		return s
	}
	return v.Raw
}

// Amount returns a field's normalized currency value, 0 when absent
func (r *ClaimRecord) Amount(name string) float64 {
	if f, ok := r.Fields[name].Normalized.(float64); ok {
		return f
	}
	return 0
}

// Well-known field names shared between the schema, the fraud
// indicators, and the routing conditions.
const (
	FieldPolicyNumber     = "policy_number"
	FieldPolicyholderName = "policyholder_name"
	FieldEffectiveDate    = "effective_date"
	FieldDateOfLoss       = "date_of_loss"
	FieldTimeOfLoss       = "time_of_loss"
	FieldLocation         = "location"
	FieldDescription      = "description"
	FieldClaimType        = "claim_type"
	FieldEstimatedDamage  = "estimated_damage"
	FieldAssetType        = "asset_type"
	FieldAssetID          = "asset_id"
	FieldVehicleYear      = "vehicle_year"
	FieldVehicleMake      = "vehicle_make"
	FieldVehicleModel     = "vehicle_model"
	FieldPlateNumber      = "plate_number"
	FieldClaimant         = "claimant"
	FieldContactPhone     = "contact_phone"
	FieldContactEmail     = "contact_email"
	FieldAttachments      = "attachments"
)
