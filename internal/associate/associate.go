// Package associate links extracted catalog images to product records by
// combining spatial proximity, caption overlap and visual embedding
// similarity. Pure scoring, no I/O; embeddings come precomputed.
package associate

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/materialshub/catalog-extract/pkg/types"
)

// Weights control the blend of the three signals. They are renormalized at
// scoring time, so partial overrides stay well-formed.
type Weights struct {
	Spatial float64 `yaml:"spatial" json:"spatial"`
	Caption float64 `yaml:"caption" json:"caption"`
	Visual  float64 `yaml:"visual" json:"visual"`
}

func DefaultWeights() Weights {
	return Weights{Spatial: 0.4, Caption: 0.3, Visual: 0.3}
}

// DefaultThreshold is the minimum blended score to accept an association.
const DefaultThreshold = 0.35

type Options struct {
	Weights   Weights `yaml:"weights" json:"weights"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
}

func DefaultOptions() Options {
	return Options{Weights: DefaultWeights(), Threshold: DefaultThreshold}
}

// Association is one accepted image-product link with its score breakdown.
type Association struct {
	ImageID   string  `json:"image_id"`
	ProductID string  `json:"product_id"`
	Score     float64 `json:"score"`
	Spatial   float64 `json:"spatial_score"`
	Caption   float64 `json:"caption_score"`
	Visual    float64 `json:"visual_score"`
}

// Score blends the three signals for one image-product pair. When either
// embedding is missing the visual weight is folded into the other two.
func Score(img types.ImageRef, prod types.ProductRecord, w Weights) Association {
	a := Association{ImageID: img.ID, ProductID: prod.ID}
	a.Spatial = spatialScore(img.PageNumber, prod.PageNumber)
	a.Caption = captionScore(img, prod)

	hasVisual := len(img.Embedding) > 0 && len(prod.Embedding) > 0
	if hasVisual {
		a.Visual = cosineSimilarity(img.Embedding, prod.Embedding)
	}
	ws, wc, wv := normalizeWeights(w, hasVisual)
	a.Score = ws*a.Spatial + wc*a.Caption + wv*a.Visual
	return a
}

func normalizeWeights(w Weights, hasVisual bool) (spatial, caption, visual float64) {
	s, c, v := math.Max(w.Spatial, 0), math.Max(w.Caption, 0), math.Max(w.Visual, 0)
	if s+c+v == 0 {
		d := DefaultWeights()
		s, c, v = d.Spatial, d.Caption, d.Visual
	}
	if !hasVisual {
		v = 0
	}
	sum := s + c + v
	if sum == 0 {
		return 0, 0, 0
	}
	return s / sum, c / sum, v / sum
}

func spatialScore(imgPage, prodPage int) float64 {
	d := imgPage - prodPage
	if d < 0 {
		d = -d
	}
	return 1 / float64(1+d)
}

func captionScore(img types.ImageRef, prod types.ProductRecord) float64 {
	imgTokens := tokenize(img.Caption + " " + img.AltText)
	prodTokens := tokenize(prod.Name + " " + prod.Description)
	return jaccard(imgTokens, prodTokens)
}

func tokenize(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, f := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(f) > 1 {
			out[f] = struct{}{}
		}
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// cosineSimilarity maps cosine from [-1,1] to [0,1]; mismatched lengths or
// zero vectors score 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	cos := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return (cos + 1) / 2
}

// Associate picks, per image, the best-scoring product above the threshold.
// Results are ordered by image then descending score for determinism.
func Associate(images []types.ImageRef, products []types.ProductRecord, opts Options) []Association {
	var out []Association
	for _, img := range images {
		best := Association{}
		found := false
		for _, prod := range products {
			a := Score(img, prod, opts.Weights)
			if a.Score >= opts.Threshold && (!found || a.Score > best.Score) {
				best = a
				found = true
			}
		}
		if found {
			out = append(out, best)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
