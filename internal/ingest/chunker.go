package ingest

import (
	"github.com/google/uuid"

	"github.com/materialshub/catalog-extract/pkg/types"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Chunker splits parsed document text into fixed-size chunks with overlap.
type Chunker struct {
	chunkSize int
	overlap   int
}

type ChunkerOption func(*Chunker)

func WithChunkSize(size int) ChunkerOption {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

func WithOverlap(overlap int) ChunkerOption {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

func NewChunker(opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	// Overlap must leave room for the window to advance.
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}
	return c
}

// Chunk splits doc text into chunks. Chunk indexes restart at zero for each
// document, matching the chunk_index positions downstream expects.
func (c *Chunker) Chunk(doc ParsedDoc) []types.Chunk {
	if doc.Text == "" {
		return nil
	}

	content := []rune(doc.Text)
	total := len(content)
	chunks := make([]types.Chunk, 0, total/(c.chunkSize-c.overlap)+1)

	index := 0
	start := 0
	for start < total {
		end := start + c.chunkSize
		if end > total {
			end = total
		}
		chunks = append(chunks, types.Chunk{
			ID:         uuid.NewString(),
			DocumentID: doc.Name,
			Content:    string(content[start:end]),
			ChunkIndex: index,
			Source:     doc.Source,
		})
		index++
		start += c.chunkSize - c.overlap
	}
	return chunks
}
