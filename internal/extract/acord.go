package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/openfnol/fnoltriage/internal/model"
)

// formCharFixes repairs OCR artifacts common in scanned ACORD forms:
// full-width glyphs and broken vertical bars
var formCharFixes = strings.NewReplacer(
	"|", "I",
	"１", "1", "２", "2", "３", "3", "４", "4", "５", "5",
	"６", "6", "７", "7", "８", "8", "９", "9", "０", "0",
	"．", ".", "，", ",", "；", ";", "：", ":",
	"（", "(", "）", ")", "＄", "$",
)

// formLabelFixes rewrites label variants onto the canonical ACORD
// spelling before section segmentation and field matching. Word
// boundaries keep "POLICY NO" from rewriting inside "POLICY NUMBER".
// Order matters: longer variants first.
var formLabelFixes = []struct {
	variant   *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`\bVEHICLE ID(?:ENTIFICATION)? NUMBER\b`), "V.I.N."},
	{regexp.MustCompile(`\bVEHICLE ID\b`), "V.I.N."},
	{regexp.MustCompile(`\bESTIMATED DAMAGES\b`), "ESTIMATE AMOUNT"},
	{regexp.MustCompile(`\bINSUREDS NAME\b`), "NAME OF INSURED"},
	{regexp.MustCompile(`\bPOLICY NO\b\.?`), "POLICY NUMBER"},
	{regexp.MustCompile(`\bPOLICY\s*#`), "POLICY NUMBER"},
	{regexp.MustCompile(`\bPOL NO\b\.?`), "POLICY NUMBER"},
	{regexp.MustCompile(`\bLOSS DATE\b`), "DATE OF LOSS"},
	{regexp.MustCompile(`\bNAIC NO\b\.?`), "NAIC CODE"},
}

// FormParser extracts claim records from fixed-section ACORD loss
// notices. Field patterns are the same as the generic extractor's
// but scoped to each section's text span, which keeps a policy
// number in the vehicle table from shadowing the real one.
type FormParser struct {
	layout    model.FormLayout
	extractor *Extractor
}

// NewFormParser builds a parser over the given layout, reusing the
// generic extractor's compiled schema
func NewFormParser(layout model.FormLayout, extractor *Extractor) *FormParser {
	return &FormParser{layout: layout, extractor: extractor}
}

// Parse segments the form into sections and extracts section-scoped
// fields. A form without recognizable section headers degrades to
// full-document generic extraction with a layout warning; it never
// fails outright.
func (p *FormParser) Parse(text string) (model.ClaimRecord, error) {
	cleaned := CleanFormText(text)
	spans := p.locateSections(cleaned)

	if len(spans) == 0 {
		record, err := p.extractor.Extract(cleaned)
		if err != nil {
			return record, err
		}
		record.DocumentType = model.DocumentTypeACORD
		record.Warnings = append(record.Warnings, model.ExtractionWarning{
			Field:  "form_layout",
			Reason: "no recognizable section headers; generic extraction applied",
		})
		return record, nil
	}

	record := model.ClaimRecord{
		Fields:       make(map[string]model.ExtractedValue, len(p.extractor.schema.Fields)),
		DocumentType: model.DocumentTypeACORD,
	}

	for _, section := range p.layout.Sections {
		if _, found := spans[section.Name]; !found {
			record.Warnings = append(record.Warnings, model.ExtractionWarning{
				Field:  "form_layout",
				Reason: "section " + section.Name + " not found; its fields use full-document patterns",
			})
		}
	}

	for i, field := range p.extractor.schema.Fields {
		span := cleaned
		if sectionName, scoped := p.sectionFor(field.Name); scoped {
			if s, found := spans[sectionName]; found {
				span = s
			}
		}
		p.extractor.extractInto(&record, span, field, p.extractor.compiled[i])
	}
	p.extractor.inferClaimTypeInto(&record)

	return record, nil
}

// sectionFor returns the section a field is scoped to, if any
func (p *FormParser) sectionFor(fieldName string) (string, bool) {
	for _, section := range p.layout.Sections {
		for _, name := range section.Fields {
			if name == fieldName {
				return section.Name, true
			}
		}
	}
	return "", false
}

// locateSections finds each configured section's text span. Header
// matching is fuzzy: case-insensitive, whitespace-collapsed, and
// tolerant of short line decorations around the marker.
func (p *FormParser) locateSections(text string) map[string]string {
	type header struct {
		name  string
		start int // offset of the line after the header
	}

	var headers []header
	seen := make(map[string]bool)

	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		norm := strings.ToUpper(strings.Join(strings.Fields(line), " "))
		for _, section := range p.layout.Sections {
			if seen[section.Name] {
				continue
			}
			for _, marker := range section.Markers {
				m := strings.ToUpper(marker)
				if strings.Contains(norm, m) && len(norm) <= len(m)+30 {
					headers = append(headers, header{name: section.Name, start: offset + len(line)})
					seen[section.Name] = true
					break
				}
			}
		}
		offset += len(line)
	}

	if len(headers) == 0 {
		return nil
	}

	sort.Slice(headers, func(i, j int) bool { return headers[i].start < headers[j].start })

	spans := make(map[string]string, len(headers))
	for i, h := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1].start
		}
		if h.start < end {
			spans[h.name] = text[h.start:end]
		}
	}
	return spans
}

// CleanFormText prepares scanned form text for section matching:
// normalized line endings, OCR character fixes, canonical labels.
// Double spaces are kept, ACORD forms use them as field separators.
func CleanFormText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = formCharFixes.Replace(text)
	for _, fix := range formLabelFixes {
		text = fix.variant.ReplaceAllString(text, fix.canonical)
	}
	return strings.TrimSpace(text)
}
