package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Valid(t *testing.T) {
	rec := map[string]any{
		"name":        "VALENOVA",
		"description": "ceramic tile collection",
		"chunk_index": 4,
		"confidence":  0.9,
		"metadata": map[string]any{
			"dimensions": "11,8×11,8",
			"designer":   "Stacy Garcia NY",
			"colors":     []any{"TAUPE", "SAND"},
		},
	}
	assert.NoError(t, Record(rec))
}

func TestRecord_MinimalValid(t *testing.T) {
	assert.NoError(t, Record(map[string]any{"name": "ONA"}))
}

func TestRecord_MissingName(t *testing.T) {
	assert.Error(t, Record(map[string]any{"description": "no name"}))
}

func TestRecord_EmptyName(t *testing.T) {
	assert.Error(t, Record(map[string]any{"name": ""}))
}

func TestRecord_BadTypes(t *testing.T) {
	assert.Error(t, Record(map[string]any{"name": "BOW", "confidence": "high"}))
	assert.Error(t, Record(map[string]any{"name": "BOW", "metadata": map[string]any{"colors": "MINT"}}))
	assert.Error(t, Record(map[string]any{"name": "BOW", "chunk_index": 1.5}))
}

func TestRecord_ConfidenceRange(t *testing.T) {
	assert.Error(t, Record(map[string]any{"name": "BOW", "confidence": 1.7}))
}
