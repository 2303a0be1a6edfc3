package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/materialshub/catalog-extract/pkg/types"
)

var (
	// Decimal commas are preserved as captured; a trailing unit is dropped.
	reDimensions = regexp.MustCompile(`(\d+(?:,\d+)?)\s*[×x]\s*(\d+(?:,\d+)?)\s*(?:cm|mm)?`)
	// "by"/"BY" followed by a capitalized phrase. The phrase class has no
	// newline, so attribution never bleeds into the next line.
	reDesignerBy = regexp.MustCompile(`(?:by|BY)\s+([A-Z][A-Za-z {}\-]+)`)
)

// ProductMetadata applies the default tables.
func ProductMetadata(content string) types.ProductMetadata {
	return defaultExtractor.ProductMetadata(content)
}

// ProductMetadata extracts dimensions, designer attribution and color names
// from a chunk. Fields are simply absent when nothing matches.
func (e *Extractor) ProductMetadata(content string) types.ProductMetadata {
	var md types.ProductMetadata

	// Only the first dimension match is used. Chunks listing several SKU
	// variants report a single value; known simplification, kept as-is.
	if m := reDimensions.FindStringSubmatch(content); m != nil {
		md.Dimensions = m[1] + "×" + m[2]
	}

	// Pattern families in order: "by <Name>" first, then the fixed studio
	// allowlist. The first non-trivial match wins.
	if m := reDesignerBy.FindStringSubmatch(content); m != nil {
		if d := strings.TrimSpace(m[1]); utf8.RuneCountInString(d) > 2 {
			md.Designer = d
		}
	}
	if md.Designer == "" && e.reDesigner != nil {
		if m := e.reDesigner.FindString(content); m != "" {
			if d := strings.TrimSpace(m); utf8.RuneCountInString(d) > 2 {
				md.Designer = d
			}
		}
	}

	if e.reColors != nil {
		seen := make(map[string]struct{})
		for _, c := range e.reColors.FindAllString(content, -1) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			md.Colors = append(md.Colors, c)
		}
	}
	return md
}

// compileAlternation builds a case-sensitive alternation from an allowlist.
// List order is kept: the first entry that matches wins, which is part of
// the extraction contract. wordBound wraps the pattern in \b anchors for
// single-token lists like colors.
func compileAlternation(entries []string, wordBound bool) *regexp.Regexp {
	if len(entries) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != "" {
			quoted = append(quoted, regexp.QuoteMeta(e))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	pattern := "(?:" + strings.Join(quoted, "|") + ")"
	if wordBound {
		pattern = `\b` + pattern + `\b`
	}
	return regexp.MustCompile(pattern)
}
