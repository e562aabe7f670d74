// Package vectorstore keeps embedded document chunks in Postgres through the
// pgvector extension.
package vectorstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const tableName = "document_chunks"

var ErrInvalidDimension = errors.New("vector dimension must be positive")

type chunkRecord struct {
	ID        string `gorm:"primaryKey"`
	IndexName string
	Content   string
	Metadata  datatypes.JSONMap
	Embedding pgvector.Vector
}

func (chunkRecord) TableName() string { return tableName }

type matchRow struct {
	ID       string
	Content  string
	Metadata datatypes.JSONMap
	Score    float64
}

// PgVectorStore stores every index in one table, partitioned by index_name.
// Similarity is cosine (1 - cosine distance).
type PgVectorStore struct {
	db *gorm.DB
}

var _ interfaces.IVectorStore = (*PgVectorStore)(nil)

func NewPgVectorStore(db *gorm.DB) *PgVectorStore {
	return &PgVectorStore{db: db}
}

func (s *PgVectorStore) EnsureIndex(ctx context.Context, indexName string, dimension int) error {
	if dimension <= 0 {
		return ErrInvalidDimension
	}
	stmts := []string{
		"CREATE EXTENSION IF NOT EXISTS vector",
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id text PRIMARY KEY,
			index_name text NOT NULL,
			content text NOT NULL,
			metadata jsonb NOT NULL DEFAULT '{}'::jsonb,
			embedding vector(%d) NOT NULL
		)`, tableName, dimension),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_index_name_idx ON %s (index_name)", tableName, tableName),
	}
	db := s.db.WithContext(ctx)
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("ensure index %s: %w", indexName, err)
		}
	}
	return nil
}

func (s *PgVectorStore) Upsert(ctx context.Context, chunks []entities.DocumentChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	recs := make([]chunkRecord, 0, len(chunks))
	for _, c := range chunks {
		recs = append(recs, chunkRecord{
			ID:        c.ID,
			IndexName: c.IndexName,
			Content:   c.Text,
			Metadata:  datatypes.JSONMap(nonNilMetadata(c.Metadata)),
			Embedding: pgvector.NewVector(c.Embedding),
		})
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"index_name", "content", "metadata", "embedding"}),
		}).
		Create(&recs).Error
}

func (s *PgVectorStore) Query(ctx context.Context, indexName string, vector []float32, topK int, filter map[string]any) ([]entities.ChunkMatch, error) {
	if topK <= 0 {
		return []entities.ChunkMatch{}, nil
	}
	vec := pgvector.NewVector(vector)

	q := s.db.WithContext(ctx).
		Table(tableName).
		Select("id, content, metadata, 1 - (embedding <=> ?) AS score", vec).
		Where("index_name = ?", indexName)

	containment, err := containmentFilter(filter)
	if err != nil {
		return nil, err
	}
	if containment != "" {
		q = q.Where("metadata @> ?::jsonb", containment)
	}

	var rows []matchRow
	err = q.Order(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []any{vec}}}).
		Limit(topK).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.ChunkMatch, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.ChunkMatch{
			ID:       r.ID,
			Text:     r.Content,
			Score:    r.Score,
			Metadata: map[string]any(r.Metadata),
		})
	}
	return out, nil
}

// containmentFilter renders filter as the JSON document for a jsonb @> test.
// An empty filter yields "".
func containmentFilter(filter map[string]any) (string, error) {
	if len(filter) == 0 {
		return "", nil
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("invalid metadata filter: %w", err)
	}
	return string(b), nil
}

func nonNilMetadata(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
