package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/openfnol/fnoltriage/internal/model"
)

var (
	multiSpace   = regexp.MustCompile(` {2,}`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
	nameSuffix   = regexp.MustCompile(`(?i)\s+(?:JR\.?|SR\.?|II|III|IV|V)$`)
	nameInitial  = regexp.MustCompile(`\s+[A-Z]\.?$`)
	nonDigit     = regexp.MustCompile(`[^0-9]`)
	nonAmount    = regexp.MustCompile(`[^0-9.]`)
)

// dateLayouts are tried in order against raw date matches
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"1/2/2006",
	"1/2/06",
	"2006-01-02",
	"2-1-2006",
}

// NormalizeText prepares raw document text for pattern matching:
// consistent line endings, collapsed space runs, squeezed blank lines
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = multiSpace.ReplaceAllString(text, " ")
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// CleanValue collapses internal whitespace in a raw capture
func CleanValue(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Normalize converts a raw match to its typed form. The returned
// value is a string for most types and a float64 for currency.
func Normalize(raw string, fieldType model.FieldType) (interface{}, error) {
	switch fieldType {
	case model.FieldTypeDate:
		return normalizeDate(raw)
	case model.FieldTypeTime:
		return normalizeClock(raw)
	case model.FieldTypeCurrency:
		return NormalizeAmount(raw)
	case model.FieldTypeIdentifier:
		return strings.ToUpper(raw), nil
	case model.FieldTypeName:
		return normalizeName(raw), nil
	case model.FieldTypePhone:
		return normalizePhone(raw)
	case model.FieldTypeEmail:
		return strings.ToLower(raw), nil
	default:
		return normalizeFreeText(raw), nil
	}
}

// normalizeDate parses common US date formats into ISO YYYY-MM-DD
func normalizeDate(raw string) (interface{}, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return nil, fmt.Errorf("unparsable date %q", raw)
}

// normalizeClock canonicalizes a 12-hour clock value
func normalizeClock(raw string) (interface{}, error) {
	upper := strings.ToUpper(CleanValue(raw))
	for _, layout := range []string{"3:04 PM", "3:04PM"} {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format("3:04 PM"), nil
		}
	}
	return nil, fmt.Errorf("unparsable time %q", raw)
}

// NormalizeAmount parses a currency string like "$12,500.00" into a
// float64
func NormalizeAmount(raw string) (float64, error) {
	clean := nonAmount.ReplaceAllString(raw, "")
	if clean == "" {
		return 0, fmt.Errorf("no digits in amount %q", raw)
	}
	amount, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable amount %q", raw)
	}
	return amount, nil
}

// normalizeName strips trailing single initials and generational
// suffixes from a person name
func normalizeName(raw string) string {
	name := nameSuffix.ReplaceAllString(raw, "")
	name = nameInitial.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// normalizePhone reduces a phone match to bare digits
func normalizePhone(raw string) (interface{}, error) {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) < 10 {
		return nil, fmt.Errorf("phone %q has fewer than 10 digits", raw)
	}
	return digits, nil
}

// normalizeFreeText trims stray punctuation and caps very long spans
// at a sentence boundary
func normalizeFreeText(raw string) string {
	text := strings.Trim(raw, ":.- \t")
	if len(text) <= 2000 {
		return text
	}

	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var trimmed strings.Builder
	for _, sentence := range sentences {
		if trimmed.Len()+len(sentence) >= 1500 {
			break
		}
		trimmed.WriteString(strings.TrimSpace(sentence))
		trimmed.WriteString(". ")
	}
	if trimmed.Len() == 0 {
		return text[:1500] + "..."
	}
	return strings.TrimSpace(trimmed.String())
}
