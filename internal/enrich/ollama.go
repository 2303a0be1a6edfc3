package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/materialshub/catalog-extract/pkg/types"
)

// Ollama enriches candidate chunks through an Ollama-compatible generate
// API, asking for JSON-only output.
type Ollama struct {
	URL    string
	Model  string
	Client *http.Client
}

func NewOllama(url, model string) *Ollama {
	if url == "" {
		url = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3:instruct"
	}
	return &Ollama{
		URL:    url,
		Model:  model,
		Client: &http.Client{Timeout: 90 * time.Second},
	}
}

const enrichSystem = `You are a product catalog extraction engine.
Return ONLY valid JSON with these keys:
{ "name": string, "description": string, "confidence": number,
  "metadata": { "dimensions": string, "designer": string, "colors": [string] } }
Rules:
- Do NOT invent facts. Omit any field you cannot read from the chunk.
- "dimensions" is "W×H" with the unit dropped, decimal commas kept.
- "designer" is the credited person or studio, verbatim.
- "confidence" is your certainty this chunk is a real product, 0 to 1.`

func (o *Ollama) Enrich(ctx context.Context, chunk types.Chunk) (map[string]any, error) {
	features := map[string]any{
		"chunk_index": chunk.ChunkIndex,
		"content":     chunk.Content,
	}
	return o.generate(ctx, enrichSystem, features)
}

const repairSystem = `You returned JSON that failed schema validation.
Repair it so it satisfies the product record schema:
{ "name": string, "description": string, "confidence": number,
  "metadata": { "dimensions": string, "designer": string, "colors": [string] } }
- Keep all facts you already produced.
- Fix only structure/types to satisfy the schema.
- Return ONLY valid JSON.`

func (o *Ollama) Repair(ctx context.Context, bad map[string]any, validationErr string) (map[string]any, error) {
	return o.generate(ctx, repairSystem, map[string]any{
		"record": bad,
		"errors": validationErr,
	})
}

func (o *Ollama) generate(ctx context.Context, system string, prompt any) (map[string]any, error) {
	reqBody := map[string]any{
		"model":  o.Model,
		"system": system,
		"prompt": mustJSON(prompt),
		"format": "json",
		"options": map[string]any{
			"temperature": 0.2,
			"num_ctx":     2048,
		},
	}
	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", o.URL+"/api/generate", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var raw struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(raw.Response), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func mustJSON(v any) string { b, _ := json.Marshal(v); return string(b) }
