package model

// FieldIssue names a field whose matched value failed normalization
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationReport summarizes completeness and well-formedness of a
// claim record. IsValid holds iff both collections are empty.
type ValidationReport struct {
	MissingRequired []string     `json:"missing_required"`
	Malformed       []FieldIssue `json:"malformed"`
	IsValid         bool         `json:"is_valid"`
}
