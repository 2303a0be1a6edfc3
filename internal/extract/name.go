package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nameScanLines bounds the scan to the leading lines, where catalog layouts
// put the product name.
const nameScanLines = 10

// maxStandaloneNameLength rejects headline-length uppercase lines.
const maxStandaloneNameLength = 20

var (
	// A full line of uppercase tokens separated by single spaces.
	reStandaloneName = regexp.MustCompile(`^\p{Lu}{2,}( \p{Lu}{2,})*$`)
	// An uppercase token embedded in a longer line (SKU rows etc.).
	reEmbeddedName = regexp.MustCompile(`\p{Lu}{3,}`)
)

// Extractor runs the name and metadata heuristics with a given table set.
type Extractor struct {
	tables     Tables
	reDesigner *regexp.Regexp
	reColors   *regexp.Regexp
}

func New(tables Tables) *Extractor {
	return &Extractor{
		tables:     tables,
		reDesigner: compileAlternation(tables.DesignerAllowlist, false),
		reColors:   compileAlternation(tables.ColorAllowlist, true),
	}
}

var defaultExtractor = New(DefaultTables())

// ProductName applies the default tables.
func ProductName(content string) (string, bool) {
	return defaultExtractor.ProductName(content)
}

// ProductName returns the best-guess product name from the chunk's leading
// lines, scanning first to last; the first line satisfying a rule wins.
// A missing name is a normal outcome, not an error.
func (e *Extractor) ProductName(content string) (string, bool) {
	lines := strings.Split(content, "\n")

	limit := len(lines)
	if limit > nameScanLines {
		limit = nameScanLines
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])

		// Standalone uppercase line: the name is the whole line.
		if reStandaloneName.MatchString(line) && utf8.RuneCountInString(line) <= maxStandaloneNameLength {
			return line, true
		}

		// Embedded uppercase token, accepted only when the 3-line window
		// starting here shows dimension or designer context.
		candidate, ok := firstUppercaseToken(line)
		if !ok {
			continue
		}
		window := strings.ToLower(strings.Join(lines[i:min(i+3, len(lines))], "\n"))
		for _, marker := range e.tables.NameContextMarkers {
			if marker != "" && strings.Contains(window, marker) {
				return candidate, true
			}
		}
	}
	return "", false
}

// firstUppercaseToken finds the leftmost run of >=3 uppercase letters that
// is not glued to surrounding letters or digits.
func firstUppercaseToken(line string) (string, bool) {
	for _, loc := range reEmbeddedName.FindAllStringIndex(line, -1) {
		if before, ok := lastRuneBefore(line, loc[0]); ok && isWordRune(before) {
			continue
		}
		if after, ok := firstRuneAt(line, loc[1]); ok && isWordRune(after) {
			continue
		}
		return line[loc[0]:loc[1]], true
	}
	return "", false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lastRuneBefore(s string, i int) (rune, bool) {
	if i <= 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r, true
}

func firstRuneAt(s string, i int) (rune, bool) {
	if i >= len(s) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r, true
}
