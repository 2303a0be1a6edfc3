package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ChunkType labels what kind of catalog content a chunk carries.
type ChunkType string

const (
	TypeProductDescription ChunkType = "product_description"
	TypeTechnicalSpecs     ChunkType = "technical_specs"
	TypeVisualShowcase     ChunkType = "visual_showcase"
	TypeDesignerStory      ChunkType = "designer_story"
	TypeCollectionOverview ChunkType = "collection_overview"
	TypeSupportingContent  ChunkType = "supporting_content"
	TypeIndexContent       ChunkType = "index_content"
	TypeSustainabilityInfo ChunkType = "sustainability_info"
	TypeCertificationInfo  ChunkType = "certification_info"
	TypeUnclassified       ChunkType = "unclassified"
)

// Classification is the typed result for one chunk.
type Classification struct {
	Type       ChunkType `json:"chunk_type"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
}

var (
	reDottedLeader = regexp.MustCompile(`\.{3,}\s*\d+`)
	reDimensionish = regexp.MustCompile(`\d+\s*[×x]\s*\d+`)
)

// ClassifyChunk assigns a chunk type with a rule chain. Rules are ordered
// from most to least specific; the first one that fires wins, so a designer
// story that mentions sustainable living still reads as a designer story.
func ClassifyChunk(content string) Classification {
	if utf8.RuneCountInString(content) < 50 {
		return Classification{TypeUnclassified, 0.3, "content too short to classify"}
	}
	lower := strings.ToLower(content)

	switch {
	case containsAny(lower, []string{"table of contents", "signature book"}) ||
		reDottedLeader.MatchString(content):
		return Classification{TypeIndexContent, 0.9, "table of contents markers"}

	case strings.Contains(lower, "technical specification") ||
		(strings.Count(content, "•") >= 2 && containsAny(lower, []string{"cm", "mm", "kg", "rated"})):
		return Classification{TypeTechnicalSpecs, 0.85, "specification list with measurements"}

	case containsAny(lower, []string{"designer", "design studio", "studio"}) &&
		containsAny(lower, []string{"philosophy", "inspired", "inspiration", "creative process"}):
		return Classification{TypeDesignerStory, 0.85, "designer attribution with narrative"}

	case containsAny(lower, []string{"sustainability", "sostenibilidad", "recycled", "carbon-neutral", "eco-friendly", "environmental"}):
		return Classification{TypeSustainabilityInfo, 0.8, "sustainability keywords"}

	case containsAny(lower, []string{"iso 9001", "iso 14001", "ce marked", "certifications", "quality assurance", "compliance"}):
		return Classification{TypeCertificationInfo, 0.8, "certification keywords"}

	case containsAny(lower, []string{"visual showcase", "moodboard", "image gallery", "photography"}):
		return Classification{TypeVisualShowcase, 0.75, "image and gallery references"}

	case strings.Contains(lower, "collection") &&
		containsAny(lower, []string{"presents", "comprehensive", "includes", "line"}):
		return Classification{TypeCollectionOverview, 0.75, "collection-level overview"}

	case hasUppercaseToken(content) &&
		(reDimensionish.MatchString(content) ||
			containsAny(lower, []string{"material", "upholstery", "finishes", "available in", "dimensions"})):
		return Classification{TypeProductDescription, 0.8, "named product with physical attributes"}

	default:
		return Classification{TypeSupportingContent, 0.5, "no specific content markers"}
	}
}

// ClassifyChunks classifies a batch, preserving input order.
func ClassifyChunks(contents []string) []Classification {
	out := make([]Classification, len(contents))
	for i, c := range contents {
		out[i] = ClassifyChunk(c)
	}
	return out
}

func hasUppercaseToken(content string) bool {
	for _, word := range strings.Fields(content) {
		if utf8.RuneCountInString(word) < 3 {
			continue
		}
		upper := 0
		ok := true
		for _, r := range word {
			if unicode.IsLower(r) {
				ok = false
				break
			}
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if ok && upper >= 3 {
			return true
		}
	}
	return false
}
