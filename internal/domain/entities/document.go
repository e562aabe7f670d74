package entities

// DocumentType selects the chunking strategy for an ingested document.
type DocumentType string

const (
	DocumentTypeText     DocumentType = "text"
	DocumentTypeMarkdown DocumentType = "markdown"
	DocumentTypeHTML     DocumentType = "html"
	DocumentTypeJSON     DocumentType = "json"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeText, DocumentTypeMarkdown, DocumentTypeHTML, DocumentTypeJSON:
		return true
	}
	return false
}

// DocumentChunk is one embedded slice of a document stored in a vector index.
type DocumentChunk struct {
	ID        string         `json:"id"`
	IndexName string         `json:"index_name"`
	Text      string         `json:"text"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Embedding []float32      `json:"-"`
}

// ChunkMatch is a similarity search hit.
type ChunkMatch struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
