package extract

import (
	"regexp"
	"strings"

	"github.com/openfnol/fnoltriage/internal/model"
)

// sectionHeaderLine matches lines that look like fixed-form section
// headers, the layout signal used when no explicit marker is present
var sectionHeaderLine = regexp.MustCompile(`^\s*(?:SECTION [0-9]+:|[A-Z][A-Z /&]+ INFORMATION\b|LOSS DETAILS\b)`)

// DetectDocumentType sniffs the first sniffLines lines of a document
// and classifies its layout. Priority is deterministic: an explicit
// caller hint, then an explicit form marker, then a layout heuristic,
// then GENERIC.
func DetectDocumentType(text string, hint model.DocumentType, form model.FormLayout, sniffLines int) model.DocumentType {
	if hint == model.DocumentTypeACORD || hint == model.DocumentTypeGeneric {
		return hint
	}
	if sniffLines <= 0 {
		sniffLines = 20
	}

	lines := strings.SplitN(text, "\n", sniffLines+1)
	if len(lines) > sniffLines {
		lines = lines[:sniffLines]
	}

	// Explicit form-ID marker beats everything else.
	head := strings.ToUpper(strings.Join(lines, "\n"))
	for _, marker := range form.FormMarkers {
		if strings.Contains(head, strings.ToUpper(marker)) {
			return model.DocumentTypeACORD
		}
	}

	// Layout heuristic: two or more section-header lines near the top.
	headers := 0
	for _, line := range lines {
		if sectionHeaderLine.MatchString(strings.ToUpper(line)) {
			headers++
			if headers >= 2 {
				return model.DocumentTypeACORD
			}
		}
	}

	return model.DocumentTypeGeneric
}
