// Package enrich runs the two-stage product pipeline: a fast heuristic
// filter over all chunks, then per-candidate enrichment into product
// records, either locally or through an LLM.
package enrich

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/materialshub/catalog-extract/internal/classify"
	"github.com/materialshub/catalog-extract/pkg/types"
)

// DefaultMinChunkLength matches the validator's shortest meaningful chunk.
const DefaultMinChunkLength = 100

// Enricher turns a candidate chunk into a generic product record map.
// Returning an error skips the chunk and counts it as failed.
type Enricher interface {
	Enrich(ctx context.Context, chunk types.Chunk) (map[string]any, error)
}

// Repairer is an optional second chance after schema validation fails.
type Repairer interface {
	Repair(ctx context.Context, bad map[string]any, validationErr string) (map[string]any, error)
}

// Stats reports pipeline counters and stage timings.
type Stats struct {
	TotalChunks      int     `json:"total_chunks"`
	EligibleChunks   int     `json:"eligible_chunks"`
	Stage1Candidates int     `json:"stage1_candidates"`
	ProductsCreated  int     `json:"products_created"`
	ProductsFailed   int     `json:"products_failed"`
	Stage1Seconds    float64 `json:"stage1_time"`
	Stage2Seconds    float64 `json:"stage2_time"`
	TotalSeconds     float64 `json:"total_time"`
}

// Pipeline wires the validator, an enricher and optional record validation.
type Pipeline struct {
	validator   *classify.Validator
	enricher    Enricher
	minChunkLen int
	validate    func(map[string]any) error
}

type PipelineOption func(*Pipeline)

func WithMinChunkLength(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.minChunkLen = n
		}
	}
}

// WithValidate sets the record validation hook (schema validation at the
// service edge; tests run without it).
func WithValidate(fn func(map[string]any) error) PipelineOption {
	return func(p *Pipeline) { p.validate = fn }
}

func NewPipeline(validator *classify.Validator, enricher Enricher, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		validator:   validator,
		enricher:    enricher,
		minChunkLen: DefaultMinChunkLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes both stages over the chunks and returns the created records.
func (p *Pipeline) Run(ctx context.Context, chunks []types.Chunk) ([]types.ProductRecord, Stats, error) {
	start := time.Now()
	stats := Stats{TotalChunks: len(chunks)}

	s1 := time.Now()
	var candidates []types.Chunk
	for _, c := range chunks {
		if utf8.RuneCountInString(c.Content) < p.minChunkLen {
			continue
		}
		stats.EligibleChunks++
		if p.validator.IsValid(c.Content) {
			candidates = append(candidates, c)
		}
	}
	stats.Stage1Candidates = len(candidates)
	stats.Stage1Seconds = time.Since(s1).Seconds()

	s2 := time.Now()
	records := make([]types.ProductRecord, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return records, stats, err
		}
		rec, err := p.enricher.Enrich(ctx, c)
		if err != nil {
			stats.ProductsFailed++
			continue
		}
		rec = Sanitize(rec)
		if p.validate != nil {
			if verr := p.validate(rec); verr != nil {
				rec, verr = p.repair(ctx, rec, verr)
				if verr != nil {
					stats.ProductsFailed++
					continue
				}
			}
		}
		pr, err := recordFromMap(rec, c)
		if err != nil {
			stats.ProductsFailed++
			continue
		}
		records = append(records, pr)
	}
	stats.ProductsCreated = len(records)
	stats.Stage2Seconds = time.Since(s2).Seconds()
	stats.TotalSeconds = time.Since(start).Seconds()
	return records, stats, nil
}

func (p *Pipeline) repair(ctx context.Context, bad map[string]any, verr error) (map[string]any, error) {
	r, ok := p.enricher.(Repairer)
	if !ok {
		return bad, verr
	}
	fixed, err := r.Repair(ctx, bad, verr.Error())
	if err != nil {
		return bad, verr
	}
	fixed = Sanitize(fixed)
	return fixed, p.validate(fixed)
}

func recordFromMap(rec map[string]any, chunk types.Chunk) (types.ProductRecord, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return types.ProductRecord{}, err
	}
	var pr types.ProductRecord
	if err := json.Unmarshal(b, &pr); err != nil {
		return types.ProductRecord{}, err
	}
	pr.ID = uuid.NewString()
	pr.SourceChunkID = chunk.ID
	pr.ChunkIndex = chunk.ChunkIndex
	return pr, nil
}
