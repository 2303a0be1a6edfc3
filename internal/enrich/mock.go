package enrich

import (
	"context"
	"errors"
	"strings"

	"github.com/materialshub/catalog-extract/internal/extract"
	"github.com/materialshub/catalog-extract/pkg/types"
)

// Mock builds product records from the heuristic extractors alone. It is
// deterministic and needs no network, so it doubles as the offline engine.
type Mock struct {
	ex *extract.Extractor
}

func NewMock(ex *extract.Extractor) *Mock { return &Mock{ex: ex} }

var errNoName = errors.New("no product name found in chunk")

func (m *Mock) Enrich(_ context.Context, chunk types.Chunk) (map[string]any, error) {
	name, ok := m.ex.ProductName(chunk.Content)
	if !ok {
		return nil, errNoName
	}
	md := m.ex.ProductMetadata(chunk.Content)

	meta := map[string]any{}
	if md.Dimensions != "" {
		meta["dimensions"] = md.Dimensions
	}
	if md.Designer != "" {
		meta["designer"] = md.Designer
	}
	if len(md.Colors) > 0 {
		colors := make([]any, len(md.Colors))
		for i, c := range md.Colors {
			colors[i] = c
		}
		meta["colors"] = colors
	}

	return map[string]any{
		"name":           name,
		"description":    summarize(chunk.Content),
		"chunk_index":    chunk.ChunkIndex,
		"confidence":     mockConfidence(md),
		"extracted_from": "heuristic_extraction",
		"metadata":       meta,
	}, nil
}

// mockConfidence grows with the amount of metadata recovered.
func mockConfidence(md types.ProductMetadata) float64 {
	conf := 0.4
	if md.Dimensions != "" {
		conf += 0.2
	}
	if md.Designer != "" {
		conf += 0.2
	}
	if len(md.Colors) > 0 {
		conf += 0.1
	}
	return conf
}

// summarize collapses the chunk into a short single-line description.
func summarize(content string) string {
	fields := strings.Fields(content)
	var sb strings.Builder
	for _, f := range fields {
		if sb.Len()+len(f)+1 > 200 {
			break
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f)
	}
	return sb.String()
}
