package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"estimate_agent/internal/domain/entities"
	mock_interfaces "estimate_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_Setup(t *testing.T) {
	seed := CatalogSeed{
		Categories: []entities.SystemCategory{{Name: "CRM"}, {ID: "cat-inv", Name: "Inventory"}},
		Templates:  []entities.QuestionTemplate{{Category: "common", Question: "Users?"}},
	}

	t.Run("seeds empty tables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, nil, seed, 768)

		repo.EXPECT().CountCategories(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().CreateCategories(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cs []entities.SystemCategory) error {
				if cs[0].ID == "" || cs[1].ID != "cat-inv" || cs[0].CreatedAt.IsZero() {
					t.Fatalf("unexpected categories: %+v", cs)
				}
				return nil
			},
		)
		repo.EXPECT().CountTemplates(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().CreateTemplates(gomock.Any(), gomock.Len(1)).Return(nil)

		report, err := uc.Setup(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.CategoriesCreated != 2 || report.TemplatesCreated != 1 || report.CategoriesSkipped || report.TemplatesSkipped {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("skips populated tables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, nil, seed, 768)

		repo.EXPECT().CountCategories(gomock.Any()).Return(int64(5), nil)
		repo.EXPECT().CountTemplates(gomock.Any()).Return(int64(12), nil)

		report, err := uc.Setup(context.Background())
		if err != nil || !report.CategoriesSkipped || !report.TemplatesSkipped {
			t.Fatalf("unexpected result: %+v, %v", report, err)
		}
	})

	t.Run("count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, nil, seed, 768)
		repo.EXPECT().CountCategories(gomock.Any()).Return(int64(0), errors.New("db"))

		if _, err := uc.Setup(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCatalogUseCase_EmbedCategories(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, nil, CatalogSeed{}, 768)
		if _, err := uc.EmbedCategories(context.Background()); !errors.Is(err, ErrRetrievalUnavailable) {
			t.Fatalf("expected ErrRetrievalUnavailable, got %v", err)
		}
	})

	t.Run("skips failing categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		vectors := mock_interfaces.NewMockIVectorStore(ctrl)
		uc := NewCatalogUseCase(repo, llm, vectors, CatalogSeed{}, 768)

		repo.EXPECT().ListCategories(gomock.Any()).Return(testCategories(), nil)
		vectors.EXPECT().EnsureIndex(gomock.Any(), CategoryEmbeddingsIndex, 768).Return(nil)
		gomock.InOrder(
			llm.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{1}}, nil),
			llm.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(nil, errors.New("quota")),
			llm.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{3}}, nil),
		)
		vectors.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, chunks []entities.DocumentChunk) error {
				c := chunks[0]
				if c.IndexName != CategoryEmbeddingsIndex || c.Metadata["category_id"] != c.ID {
					t.Fatalf("unexpected chunk: %+v", c)
				}
				return nil
			},
		).Times(2)

		n, err := uc.EmbedCategories(context.Background())
		if err != nil || n != 2 {
			t.Fatalf("unexpected result: %d, %v", n, err)
		}
	})

	t.Run("waits between categories until canceled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		vectors := mock_interfaces.NewMockIVectorStore(ctrl)
		uc := NewCatalogUseCase(repo, llm, vectors, CatalogSeed{}, 768)
		uc.EmbedInterval = time.Hour

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo.EXPECT().ListCategories(gomock.Any()).Return(testCategories(), nil)
		vectors.EXPECT().EnsureIndex(gomock.Any(), CategoryEmbeddingsIndex, 768).Return(nil)
		llm.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([][]float32{{1}}, nil).Times(1)
		vectors.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, []entities.DocumentChunk) error {
				cancel()
				return nil
			},
		).Times(1)

		n, err := uc.EmbedCategories(ctx)
		if !errors.Is(err, context.Canceled) || n != 1 {
			t.Fatalf("expected 1 embedding and context.Canceled, got %d, %v", n, err)
		}
	})
}

func TestCategoryEmbeddingText(t *testing.T) {
	text := CategoryEmbeddingText(entities.SystemCategory{Name: "CRM", Description: "Customers", Keywords: []string{"lead"}})
	if !strings.Contains(text, "Name: CRM") || !strings.Contains(text, `Keywords: ["lead"]`) {
		t.Fatalf("unexpected text: %s", text)
	}
	if empty := CategoryEmbeddingText(entities.SystemCategory{Name: "X"}); !strings.Contains(empty, "Keywords: []") {
		t.Fatalf("unexpected text: %s", empty)
	}
}
