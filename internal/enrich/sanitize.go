package enrich

import (
	"encoding/json"
	"strings"
)

// Sanitize normalizes a record map before schema validation: LLM output is
// sloppy about nesting, empty strings and scalar-vs-array fields.
func Sanitize(rec map[string]any) map[string]any {
	if rec == nil {
		rec = map[string]any{}
	}
	if n := strOrEmpty(rec["name"]); n != "" {
		rec["name"] = strings.TrimSpace(n)
	}

	ensureObj(rec, "metadata")
	meta, _ := rec["metadata"].(map[string]any)

	// Models sometimes put metadata fields at the top level.
	for _, k := range []string{"dimensions", "designer", "colors"} {
		if v, ok := rec[k]; ok {
			if _, exists := meta[k]; !exists {
				meta[k] = v
			}
			delete(rec, k)
		}
	}

	for _, k := range []string{"dimensions", "designer"} {
		if v, ok := meta[k]; ok {
			if s := strings.TrimSpace(strOrEmpty(v)); s != "" {
				meta[k] = s
			} else {
				delete(meta, k)
			}
		}
	}

	// colors: accept a bare string or a mixed array, keep non-empty strings.
	switch c := meta["colors"].(type) {
	case string:
		if s := strings.TrimSpace(c); s != "" {
			meta["colors"] = []any{s}
		} else {
			delete(meta, "colors")
		}
	case []any:
		kept := make([]any, 0, len(c))
		for _, v := range c {
			if s := strings.TrimSpace(strOrEmpty(v)); s != "" {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			meta["colors"] = kept
		} else {
			delete(meta, "colors")
		}
	}

	if v, ok := rec["confidence"]; ok {
		if f, ok := toFloat(v); ok {
			rec["confidence"] = clamp01(f)
		} else {
			delete(rec, "confidence")
		}
	}
	return rec
}

func ensureObj(m map[string]any, k string) {
	if _, ok := m[k].(map[string]any); !ok {
		m[k] = map[string]any{}
	}
}

func strOrEmpty(v any) string { s, _ := v.(string); return s }

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
