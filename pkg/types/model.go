package types

// Chunk is one contiguous span of extracted document text, treated as a
// single classification unit by the product pipeline.
type Chunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Content    string `json:"content"`
	ChunkIndex int    `json:"chunk_index"`
	Source     string `json:"source,omitempty"` // pdf|text|raster
}

// ProductMetadata is the heuristic extraction result for one chunk. Every
// field is optional; absence means "not found", never an error.
type ProductMetadata struct {
	Dimensions string   `json:"dimensions,omitempty"` // normalized "W×H"
	Designer   string   `json:"designer,omitempty"`
	Colors     []string `json:"colors,omitempty"`
}

// ProductRecord is a product assembled from an accepted chunk, ready for a
// downstream catalog writer.
type ProductRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SourceChunkID string          `json:"source_chunk_id,omitempty"`
	ChunkIndex    int             `json:"chunk_index"`
	PageNumber    int             `json:"page_number,omitempty"`
	Metadata      ProductMetadata `json:"metadata"`
	Confidence    float64         `json:"confidence,omitempty"`
	ExtractedFrom string          `json:"extracted_from,omitempty"`
	Embedding     []float64       `json:"embedding,omitempty"`
}

// ImageRef describes an extracted catalog image. Embeddings are supplied by
// an upstream vision service; this service only scores them.
type ImageRef struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	PageNumber int       `json:"page_number"`
	Caption    string    `json:"caption,omitempty"`
	AltText    string    `json:"alt_text,omitempty"`
	ImageType  string    `json:"image_type,omitempty"` // product|detail|lifestyle|ambient
	Embedding  []float64 `json:"embedding,omitempty"`
}
