package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minContentLength is the shortest chunk that can still describe a product.
const minContentLength = 100

// Validator gates chunks before product extraction: front matter,
// sustainability boilerplate and certification pages are filtered out,
// everything else is scored on product indicators.
type Validator struct {
	tables Tables
}

func NewValidator(tables Tables) *Validator {
	return &Validator{tables: tables}
}

// IsValidProductChunk applies the default tables.
func IsValidProductChunk(content string) bool {
	return defaultValidator.IsValid(content)
}

var defaultValidator = NewValidator(DefaultTables())

// IsValid reports whether content looks like a real product chunk.
// Exclusion rules run in order, first match wins; surviving chunks must
// show at least 2 of 3 product indicators.
func (v *Validator) IsValid(content string) bool {
	if utf8.RuneCountInString(content) < minContentLength {
		return false
	}
	lower := strings.ToLower(content)

	if containsAny(lower, v.tables.IndexKeywords) {
		return false
	}
	// Sustainability or certification boilerplate alone is rejected; mixed
	// with real product signals it is kept.
	if containsAny(lower, v.tables.SustainabilityKeywords) &&
		!containsAny(lower, v.tables.ProductSignalKeywords) {
		return false
	}
	if containsAny(lower, v.tables.CertificationKeywords) &&
		!containsAny(lower, v.tables.ProductSignalKeywords) {
		return false
	}

	hasUppercaseName := false
	for _, word := range strings.Fields(content) {
		if isUpperToken(word) && utf8.RuneCountInString(word) > 2 {
			hasUppercaseName = true
			break
		}
	}
	hasDimensions := containsAny(content, v.tables.DimensionMarkers)
	hasProductContext := containsAny(lower, v.tables.ProductContextKeywords)

	score := 0
	for _, ok := range []bool{hasUppercaseName, hasDimensions, hasProductContext} {
		if ok {
			score++
		}
	}
	// Empirically tuned threshold; do not "fix" without new data.
	return score >= 2
}

// isUpperToken mirrors str.isupper: at least one cased rune, none lowercase.
func isUpperToken(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
