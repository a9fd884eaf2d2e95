package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/openfnol/fnoltriage/internal/model"
)

// Extractor applies the ordered field schema to raw document text.
// For each field the configured patterns are tried in order and the
// first pattern that matches wins; pattern ordering is a semantic
// part of the schema, not an implementation detail.
type Extractor struct {
	schema   model.FieldSchema
	compiled [][]*regexp.Regexp // parallel to schema.Fields[i].Patterns
}

// NewExtractor compiles the schema's patterns. A pattern that fails
// to compile is a configuration error and rejects the whole schema.
func NewExtractor(schema model.FieldSchema) (*Extractor, error) {
	compiled := make([][]*regexp.Regexp, len(schema.Fields))
	for i, field := range schema.Fields {
		compiled[i] = make([]*regexp.Regexp, len(field.Patterns))
		for j, pat := range field.Patterns {
			re, err := regexp.Compile(pat.Expr)
			if err != nil {
				return nil, fmt.Errorf("field %s pattern %s: %w", field.Name, pat.ID, err)
			}
			compiled[i][j] = re
		}
	}
	return &Extractor{schema: schema, compiled: compiled}, nil
}

// Schema returns the active field schema
func (e *Extractor) Schema() model.FieldSchema {
	return e.schema
}

// Extract produces a claim record from raw text. Every schema field
// is present in the result, empty when nothing matched, and each
// degraded field contributes one warning in schema order.
func (e *Extractor) Extract(text string) (model.ClaimRecord, error) {
	text = NormalizeText(text)

	record := model.ClaimRecord{
		Fields:       make(map[string]model.ExtractedValue, len(e.schema.Fields)),
		DocumentType: model.DocumentTypeGeneric,
	}

	for i, field := range e.schema.Fields {
		e.extractInto(&record, text, field, e.compiled[i])
	}
	e.inferClaimTypeInto(&record)

	return record, nil
}

// extractInto extracts one field from the given text span into the
// record, appending warnings as extraction degrades
func (e *Extractor) extractInto(record *model.ClaimRecord, text string, field model.FieldSpec, patterns []*regexp.Regexp) {
	for j, re := range patterns {
		raw, ok := matchField(re, text, field.Occurrence)
		if !ok {
			continue
		}

		value := model.ExtractedValue{
			Raw:        raw,
			Confidence: field.Patterns[j].Confidence,
			Pattern:    field.Patterns[j].ID,
		}

		normalized, err := Normalize(raw, field.Type)
		if err != nil {
			// Keep the raw match; the failure surfaces through the
			// validation report as a malformed field.
			record.Warnings = append(record.Warnings, model.ExtractionWarning{
				Field:  field.Name,
				Reason: fmt.Sprintf("normalization failed: %v", err),
			})
		} else {
			// Stated claim types arrive in document casing; downstream
			// comparisons all use the inference vocabulary.
			if field.Name == model.FieldClaimType {
				if s, ok := normalized.(string); ok {
					normalized = CanonicalClaimType(s)
				}
			}
			value.Normalized = normalized
		}

		record.Fields[field.Name] = value
		return
	}

	record.Fields[field.Name] = model.ExtractedValue{}
	record.Warnings = append(record.Warnings, model.ExtractionWarning{
		Field:  field.Name,
		Reason: "no pattern matched",
	})
}

// inferClaimTypeInto fills an empty claim_type from the description
// keywords. Runs after every field has been extracted, so it holds
// for any schema ordering of the two fields.
func (e *Extractor) inferClaimTypeInto(record *model.ClaimRecord) {
	if _, ok := e.schema.Spec(model.FieldClaimType); !ok {
		return
	}
	if !record.Field(model.FieldClaimType).IsEmpty() {
		return
	}
	desc := record.Text(model.FieldDescription)
	if desc == "" {
		return
	}

	inferred := InferClaimType(desc)
	record.Fields[model.FieldClaimType] = model.ExtractedValue{
		Raw:        inferred,
		Normalized: inferred,
		Confidence: 0.5,
		Pattern:    "inferred:description-keywords",
	}

	// The no-match warning no longer applies once the type is inferred.
	kept := record.Warnings[:0]
	for _, w := range record.Warnings {
		if w.Field != model.FieldClaimType || !strings.HasPrefix(w.Reason, "no pattern matched") {
			kept = append(kept, w)
		}
	}
	record.Warnings = kept
}

// matchField runs one pattern against the text and returns the
// cleaned capture according to the field's occurrence policy
func matchField(re *regexp.Regexp, text string, occurrence model.OccurrencePolicy) (string, bool) {
	switch occurrence {
	case model.OccurrenceLast, model.OccurrenceLongest:
		matches := re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			return "", false
		}
		var best string
		for _, m := range matches {
			raw := firstGroup(m)
			if raw == "" {
				continue
			}
			if occurrence == model.OccurrenceLast {
				best = raw
			} else if len(raw) > len(best) {
				best = raw
			}
		}
		return best, best != ""
	default:
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		raw := firstGroup(m)
		return raw, raw != ""
	}
}

// firstGroup returns the first non-empty capture group, cleaned
func firstGroup(match []string) string {
	for _, group := range match[1:] {
		if cleaned := CleanValue(group); cleaned != "" {
			return cleaned
		}
	}
	return ""
}
