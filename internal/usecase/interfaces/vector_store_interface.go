package interfaces

import (
	"context"
	"estimate_agent/internal/domain/entities"
)

//go:generate mockgen -source=vector_store_interface.go -destination=mocks/vector_store_interface_mock.go -package=mock_interfaces

// IVectorStore stores embedded chunks grouped by index name and answers
// similarity queries. filter restricts matches to chunks whose metadata
// contains every given key/value pair.
type IVectorStore interface {
	EnsureIndex(ctx context.Context, indexName string, dimension int) error
	Upsert(ctx context.Context, chunks []entities.DocumentChunk) error
	Query(ctx context.Context, indexName string, vector []float32, topK int, filter map[string]any) ([]entities.ChunkMatch, error)
}
