// Package validate checks extracted claim records against the field
// schema's completeness and format constraints.
package validate

import (
	"strings"

	"github.com/openfnol/fnoltriage/internal/model"
)

// Validate produces a completeness and well-formedness report for a
// claim record. Pure function: no I/O, no mutation of the record.
func Validate(record model.ClaimRecord, schema model.FieldSchema) model.ValidationReport {
	report := model.ValidationReport{}

	for _, name := range schema.RequiredFields() {
		if record.Field(name).IsEmpty() {
			report.MissingRequired = append(report.MissingRequired, name)
		}
	}

	// A field that matched but failed its normalizer carries a
	// normalization warning and no normalized value.
	for _, warning := range record.Warnings {
		if strings.HasPrefix(warning.Reason, "normalization failed") {
			report.Malformed = append(report.Malformed, model.FieldIssue{
				Field:  warning.Field,
				Reason: warning.Reason,
			})
		}
	}

	report.IsValid = len(report.MissingRequired) == 0 && len(report.Malformed) == 0
	return report
}
