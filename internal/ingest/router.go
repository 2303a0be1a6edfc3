package ingest

import (
	"path/filepath"
	"strings"
)

// ParsedDoc is the raw text pulled out of one uploaded file, before
// chunking. Notes carry soft-fail diagnostics instead of errors.
type ParsedDoc struct {
	Name   string
	Source string // pdf|text|raster
	Text   string
	Pages  int
	Notes  []string
}

func DetectType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		return "pdf"
	case ".txt", ".md":
		return "text"
	case ".png", ".jpg", ".jpeg":
		return "raster"
	default:
		return "unknown"
	}
}

// ParseFile routes a file to its parser. Unknown types come back as a
// note-only doc so the caller can report what was skipped.
func ParseFile(path string) (ParsedDoc, error) {
	switch DetectType(path) {
	case "pdf":
		return ParsePDF(path)
	case "text":
		return ParseText(path)
	case "raster":
		return ParseRaster(path)
	default:
		return ParsedDoc{Name: path, Notes: []string{"unsupported file type, skipped"}}, nil
	}
}
