package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContentRequired      = errors.New("document content is required")
	ErrQueryRequired        = errors.New("query is required")
	ErrInvalidDocumentType  = errors.New("invalid document type")
	ErrRetrievalUnavailable = errors.New("retrieval is not available")
)

const (
	DefaultIndexName = "requirements_embeddings"
	DefaultTopK      = 5

	noRelevantContext = "No relevant information found."

	ragInstructions = `You are an assistant that answers questions about software projects and their cost estimates.
Answer using only the context provided below.
Be concise and accurate. If the context does not contain the answer, say so honestly.`
)

type IngestInput struct {
	Content   string
	Type      entities.DocumentType
	Metadata  map[string]any
	IndexName string
}

type QueryInput struct {
	Query     string
	Filter    map[string]any
	IndexName string
}

//go:generate mockgen -source=rag_usecase.go -destination=../adapter/http/handlers/mocks/rag_usecase_mock.go -package=mocks

// IRAGUseCase ingests reference documents and answers questions over them.
type IRAGUseCase interface {
	Ingest(ctx context.Context, in IngestInput) (int, error)
	Query(ctx context.Context, in QueryInput) (string, error)
}

type RAGUseCase struct {
	llm       interfaces.ILLMClient
	vectors   interfaces.IVectorStore
	chunker   interfaces.IDocumentChunker
	dimension int
}

var _ IRAGUseCase = (*RAGUseCase)(nil)

// NewRAGUseCase builds the retrieval use case. A nil llm or vector store turns
// every call into ErrRetrievalUnavailable.
func NewRAGUseCase(llm interfaces.ILLMClient, vectors interfaces.IVectorStore, chunker interfaces.IDocumentChunker, dimension int) *RAGUseCase {
	return &RAGUseCase{llm: llm, vectors: vectors, chunker: chunker, dimension: dimension}
}

func (u *RAGUseCase) available() bool {
	return u.llm != nil && u.vectors != nil
}

func (u *RAGUseCase) Ingest(ctx context.Context, in IngestInput) (int, error) {
	if strings.TrimSpace(in.Content) == "" {
		return 0, ErrContentRequired
	}
	docType := in.Type
	if docType == "" {
		docType = entities.DocumentTypeText
	}
	if !docType.Valid() {
		return 0, ErrInvalidDocumentType
	}
	if !u.available() {
		return 0, ErrRetrievalUnavailable
	}
	index := indexOrDefault(in.IndexName)

	if err := u.vectors.EnsureIndex(ctx, index, u.dimension); err != nil {
		return 0, fmt.Errorf("ensure index %s: %w", index, err)
	}

	texts, err := u.chunker.Chunk(in.Content, docType)
	if err != nil {
		return 0, fmt.Errorf("chunk document: %w", err)
	}
	if len(texts) == 0 {
		return 0, nil
	}

	embeddings, err := u.llm.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}
	if len(embeddings) != len(texts) {
		return 0, fmt.Errorf("embed chunks: got %d embeddings for %d chunks", len(embeddings), len(texts))
	}

	chunks := make([]entities.DocumentChunk, 0, len(texts))
	for i, text := range texts {
		metadata := make(map[string]any, len(in.Metadata)+1)
		for k, v := range in.Metadata {
			metadata[k] = v
		}
		metadata["text"] = text
		chunks = append(chunks, entities.DocumentChunk{
			ID:        uuid.NewString(),
			IndexName: index,
			Text:      text,
			Metadata:  metadata,
			Embedding: embeddings[i],
		})
	}

	if err := u.vectors.Upsert(ctx, chunks); err != nil {
		return 0, fmt.Errorf("store chunks: %w", err)
	}
	return len(chunks), nil
}

func (u *RAGUseCase) Query(ctx context.Context, in QueryInput) (string, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return "", ErrQueryRequired
	}
	if !u.available() {
		return "", ErrRetrievalUnavailable
	}

	contextText, err := u.relevantContext(ctx, query, in.Filter, indexOrDefault(in.IndexName))
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextText, query)
	answer, err := u.llm.Complete(ctx, ragInstructions, prompt)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return answer, nil
}

func (u *RAGUseCase) relevantContext(ctx context.Context, query string, filter map[string]any, index string) (string, error) {
	embeddings, err := u.llm.Embed(ctx, []string{query})
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return "", errors.New("embed query: empty result")
	}

	matches, err := u.vectors.Query(ctx, index, embeddings[0], DefaultTopK, filter)
	if err != nil {
		return "", fmt.Errorf("search %s: %w", index, err)
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		text := m.Text
		if text == "" {
			text, _ = m.Metadata["text"].(string)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return noRelevantContext, nil
	}
	return strings.Join(parts, "\n\n"), nil
}

func indexOrDefault(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return DefaultIndexName
}
