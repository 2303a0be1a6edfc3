package ingest

import "os"

func ParseText(path string) (ParsedDoc, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ParsedDoc{Name: path, Source: "text"}, err
	}
	return ParsedDoc{Name: path, Source: "text", Text: string(b), Pages: 1}, nil
}
