package ingest

import (
	"bytes"
	"os"
	"regexp"
	"strings"
)

var (
	reTextObject = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)\s*T[jJ]`)
	rePageSplit  = regexp.MustCompile(`(?i)\n\s*endstream`)
)

// ParsePDF pulls text from uncompressed text objects ("(...) Tj"). It is a
// best-effort extractor: compressed streams yield little or no text, which
// is reported as a note rather than an error.
func ParsePDF(path string) (ParsedDoc, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ParsedDoc{Name: path, Source: "pdf"}, err
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		return ParsedDoc{Name: path, Source: "pdf", Notes: []string{"missing %PDF header, not parsed"}}, nil
	}

	pages := rePageSplit.Split(string(b), -1)
	var sb strings.Builder
	for _, page := range pages {
		for _, m := range reTextObject.FindAllStringSubmatch(page, -1) {
			line := unescapePDFText(m[1])
			if line == "" {
				continue
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	text := strings.TrimSpace(sb.String())

	doc := ParsedDoc{Name: path, Source: "pdf", Text: text, Pages: len(pages)}
	if text == "" {
		doc.Notes = append(doc.Notes, "pdf: no extractable text (streams likely compressed)")
	} else if float64(len(text))/float64(len(b)) < 0.01 {
		doc.Notes = append(doc.Notes, "pdf: text ratio is very low")
	}
	return doc, nil
}

func unescapePDFText(s string) string {
	repl := strings.NewReplacer(`\(`, "(", `\)`, ")", `\\`, `\`, `\n`, "\n", `\r`, "", `\t`, " ")
	return strings.TrimSpace(repl.Replace(s))
}
