package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"estimate_agent/internal/domain/entities"
	mock_interfaces "estimate_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRAGUseCase_Ingest(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewRAGUseCase(nil, nil, nil, 768)
		if _, err := uc.Ingest(context.Background(), IngestInput{}); !errors.Is(err, ErrContentRequired) {
			t.Fatalf("expected ErrContentRequired, got %v", err)
		}
		if _, err := uc.Ingest(context.Background(), IngestInput{Content: "x", Type: "pdf"}); !errors.Is(err, ErrInvalidDocumentType) {
			t.Fatalf("expected ErrInvalidDocumentType, got %v", err)
		}
		if _, err := uc.Ingest(context.Background(), IngestInput{Content: "x"}); !errors.Is(err, ErrRetrievalUnavailable) {
			t.Fatalf("expected ErrRetrievalUnavailable, got %v", err)
		}
	})

	t.Run("chunks embeds and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		vectors := mock_interfaces.NewMockIVectorStore(ctrl)
		chunker := mock_interfaces.NewMockIDocumentChunker(ctrl)
		uc := NewRAGUseCase(llm, vectors, chunker, 768)

		vectors.EXPECT().EnsureIndex(gomock.Any(), DefaultIndexName, 768).Return(nil)
		chunker.EXPECT().Chunk("# Title\nbody", entities.DocumentTypeMarkdown).Return([]string{"# Title", "body"}, nil)
		llm.EXPECT().Embed(gomock.Any(), []string{"# Title", "body"}).Return([][]float32{{1}, {2}}, nil)
		vectors.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, chunks []entities.DocumentChunk) error {
				if len(chunks) != 2 {
					t.Fatalf("expected 2 chunks, got %d", len(chunks))
				}
				if chunks[1].Metadata["text"] != "body" || chunks[1].Metadata["source"] != "wiki" || chunks[1].IndexName != DefaultIndexName {
					t.Fatalf("unexpected chunk: %+v", chunks[1])
				}
				return nil
			},
		)

		n, err := uc.Ingest(context.Background(), IngestInput{
			Content:  "# Title\nbody",
			Type:     entities.DocumentTypeMarkdown,
			Metadata: map[string]any{"source": "wiki"},
		})
		if err != nil || n != 2 {
			t.Fatalf("unexpected result: %d, %v", n, err)
		}
	})

	t.Run("embedding count mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		vectors := mock_interfaces.NewMockIVectorStore(ctrl)
		chunker := mock_interfaces.NewMockIDocumentChunker(ctrl)
		uc := NewRAGUseCase(llm, vectors, chunker, 768)

		vectors.EXPECT().EnsureIndex(gomock.Any(), "docs", 768).Return(nil)
		chunker.EXPECT().Chunk("a b", entities.DocumentTypeText).Return([]string{"a", "b"}, nil)
		llm.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{1}}, nil)

		if _, err := uc.Ingest(context.Background(), IngestInput{Content: "a b", IndexName: "docs"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRAGUseCase_Query(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewRAGUseCase(nil, nil, nil, 768)
		if _, err := uc.Query(context.Background(), QueryInput{Query: " "}); !errors.Is(err, ErrQueryRequired) {
			t.Fatalf("expected ErrQueryRequired, got %v", err)
		}
		if _, err := uc.Query(context.Background(), QueryInput{Query: "q"}); !errors.Is(err, ErrRetrievalUnavailable) {
			t.Fatalf("expected ErrRetrievalUnavailable, got %v", err)
		}
	})

	t.Run("answers with retrieved context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		vectors := mock_interfaces.NewMockIVectorStore(ctrl)
		uc := NewRAGUseCase(llm, vectors, nil, 768)
		filter := map[string]any{"source": "wiki"}

		llm.EXPECT().Embed(gomock.Any(), []string{"cost of login?"}).Return([][]float32{{0.5}}, nil)
		vectors.EXPECT().Query(gomock.Any(), DefaultIndexName, []float32{0.5}, DefaultTopK, filter).Return([]entities.ChunkMatch{
			{Text: "Login costs 100."},
			{Metadata: map[string]any{"text": "SSO costs 300."}},
		}, nil)
		llm.EXPECT().Complete(gomock.Any(), ragInstructions, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, prompt string) (string, error) {
				if !strings.Contains(prompt, "Login costs 100.\n\nSSO costs 300.") || !strings.Contains(prompt, "cost of login?") {
					t.Fatalf("unexpected prompt: %s", prompt)
				}
				return "About 100.", nil
			},
		)

		answer, err := uc.Query(context.Background(), QueryInput{Query: "cost of login?", Filter: filter})
		if err != nil || answer != "About 100." {
			t.Fatalf("unexpected result: %q, %v", answer, err)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		vectors := mock_interfaces.NewMockIVectorStore(ctrl)
		uc := NewRAGUseCase(llm, vectors, nil, 768)

		llm.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{0.5}}, nil)
		vectors.EXPECT().Query(gomock.Any(), "other", gomock.Any(), DefaultTopK, gomock.Nil()).Return(nil, nil)
		llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, prompt string) (string, error) {
				if !strings.Contains(prompt, noRelevantContext) {
					t.Fatalf("expected fallback context, got %s", prompt)
				}
				return "I don't know.", nil
			},
		)

		if _, err := uc.Query(context.Background(), QueryInput{Query: "q", IndexName: "other"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
