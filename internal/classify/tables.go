// Package classify decides whether a chunk of catalog text describes a real
// product and, more finely, what kind of content it carries.
package classify

import "strings"

// Tables holds the keyword lists the classifier matches against. They are
// plain ordered string lists so catalogs in other languages can extend them
// through configuration without touching the control flow.
type Tables struct {
	IndexKeywords          []string `yaml:"index_keywords"`
	SustainabilityKeywords []string `yaml:"sustainability_keywords"`
	CertificationKeywords  []string `yaml:"certification_keywords"`
	ProductSignalKeywords  []string `yaml:"product_signal_keywords"`
	DimensionMarkers       []string `yaml:"dimension_markers"`
	ProductContextKeywords []string `yaml:"product_context_keywords"`
}

// DefaultTables returns the keyword sets tuned on the HARMONY catalogs.
func DefaultTables() Tables {
	return Tables{
		IndexKeywords: []string{
			"table of contents", "index", "contents", "signature book",
		},
		SustainabilityKeywords: []string{
			"sustainability", "environmental", "sostenibilidad", "medioambiental",
		},
		CertificationKeywords: []string{
			"quality certifications", "sustainability certifications",
			"certificados", "iso 9001", "iso 14001",
		},
		ProductSignalKeywords: []string{
			"dimensions", "designer", "collection", "×", "cm", "mm",
		},
		// Matched against the original casing, not the lowercased text.
		DimensionMarkers: []string{"×", "x ", "cm", "mm"},
		ProductContextKeywords: []string{
			"designer", "collection", "material", "ceramic", "porcelain", "tile",
			"estudi{h}ac", "dsignio", "alt design", "mut", "yonoh", "stacy garcia",
		},
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
