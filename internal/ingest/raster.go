package ingest

import (
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ParseRaster runs OCR over a scanned catalog page. OCR failures are soft:
// the doc comes back with a note so the rest of the upload still processes.
func ParseRaster(path string) (ParsedDoc, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return ParsedDoc{Name: path, Source: "raster", Notes: []string{"ocr: " + err.Error()}}, nil
	}
	text, err := client.Text()
	if err != nil {
		return ParsedDoc{Name: path, Source: "raster", Notes: []string{"ocr: " + err.Error()}}, nil
	}

	doc := ParsedDoc{Name: path, Source: "raster", Text: strings.TrimSpace(text), Pages: 1}
	if doc.Text == "" {
		doc.Notes = append(doc.Notes, "ocr: no text recognized")
	}
	return doc, nil
}
