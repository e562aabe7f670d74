package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"
	"estimate_agent/pkg/logger"

	"github.com/google/uuid"
)

// CatalogSeed is the reference data installed by Setup.
type CatalogSeed struct {
	Categories []entities.SystemCategory
	Templates  []entities.QuestionTemplate
}

// SetupReport tells which reference tables were seeded.
type SetupReport struct {
	CategoriesCreated int
	CategoriesSkipped bool
	TemplatesCreated  int
	TemplatesSkipped  bool
}

// ICatalogUseCase manages the system category catalog.
type ICatalogUseCase interface {
	Setup(ctx context.Context) (SetupReport, error)
	EmbedCategories(ctx context.Context) (int, error)
}

type CatalogUseCase struct {
	repo      interfaces.ICatalogRepository
	llm       interfaces.ILLMClient
	vectors   interfaces.IVectorStore
	seed      CatalogSeed
	dimension int

	// EmbedInterval is waited between two category embeddings.
	EmbedInterval time.Duration
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, llm interfaces.ILLMClient, vectors interfaces.IVectorStore, seed CatalogSeed, dimension int) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, llm: llm, vectors: vectors, seed: seed, dimension: dimension}
}

// Setup seeds each reference table only when it is empty.
func (u *CatalogUseCase) Setup(ctx context.Context) (SetupReport, error) {
	var report SetupReport
	now := time.Now().UTC()

	count, err := u.repo.CountCategories(ctx)
	if err != nil {
		return report, fmt.Errorf("count system categories: %w", err)
	}
	if count > 0 {
		report.CategoriesSkipped = true
	} else if len(u.seed.Categories) > 0 {
		categories := make([]entities.SystemCategory, len(u.seed.Categories))
		for i, c := range u.seed.Categories {
			if c.ID == "" {
				c.ID = uuid.NewString()
			}
			c.CreatedAt, c.UpdatedAt = now, now
			categories[i] = c
		}
		if err := u.repo.CreateCategories(ctx, categories); err != nil {
			return report, fmt.Errorf("seed system categories: %w", err)
		}
		report.CategoriesCreated = len(categories)
	}

	count, err = u.repo.CountTemplates(ctx)
	if err != nil {
		return report, fmt.Errorf("count question templates: %w", err)
	}
	if count > 0 {
		report.TemplatesSkipped = true
	} else if len(u.seed.Templates) > 0 {
		templates := make([]entities.QuestionTemplate, len(u.seed.Templates))
		for i, t := range u.seed.Templates {
			if t.ID == "" {
				t.ID = uuid.NewString()
			}
			t.CreatedAt, t.UpdatedAt = now, now
			templates[i] = t
		}
		if err := u.repo.CreateTemplates(ctx, templates); err != nil {
			return report, fmt.Errorf("seed question templates: %w", err)
		}
		report.TemplatesCreated = len(templates)
	}

	logger.Info(ctx, "catalog setup finished",
		"categories_created", report.CategoriesCreated,
		"templates_created", report.TemplatesCreated,
	)
	return report, nil
}

// EmbedCategories stores one embedding per system category in the category
// index. Categories that fail are logged and skipped.
func (u *CatalogUseCase) EmbedCategories(ctx context.Context) (int, error) {
	if u.llm == nil || u.vectors == nil {
		return 0, ErrRetrievalUnavailable
	}

	categories, err := u.repo.ListCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("list system categories: %w", err)
	}
	if len(categories) == 0 {
		return 0, nil
	}

	if err := u.vectors.EnsureIndex(ctx, CategoryEmbeddingsIndex, u.dimension); err != nil {
		return 0, fmt.Errorf("ensure index %s: %w", CategoryEmbeddingsIndex, err)
	}

	embedded := 0
	for i, c := range categories {
		if i > 0 && u.EmbedInterval > 0 {
			select {
			case <-ctx.Done():
				return embedded, ctx.Err()
			case <-time.After(u.EmbedInterval):
			}
		}

		if err := u.embedCategory(ctx, c); err != nil {
			logger.Warn(ctx, "failed to embed category", "category_id", c.ID, "error", err)
			continue
		}
		embedded++
	}
	return embedded, nil
}

func (u *CatalogUseCase) embedCategory(ctx context.Context, c entities.SystemCategory) error {
	text := CategoryEmbeddingText(c)

	vectors, err := u.llm.Embed(ctx, []string{text})
	if err != nil {
		return err
	}
	if len(vectors) == 0 {
		return fmt.Errorf("empty embedding for category %s", c.ID)
	}

	return u.vectors.Upsert(ctx, []entities.DocumentChunk{{
		ID:        c.ID,
		IndexName: CategoryEmbeddingsIndex,
		Text:      text,
		Metadata: map[string]any{
			"category_id": c.ID,
			"name":        c.Name,
			"text":        text,
		},
		Embedding: vectors[0],
	}})
}

// CategoryEmbeddingText is the text embedded for a category.
func CategoryEmbeddingText(c entities.SystemCategory) string {
	keywords, _ := json.Marshal(c.Keywords)
	if c.Keywords == nil {
		keywords = []byte("[]")
	}
	return fmt.Sprintf("Name: %s\nDescription: %s\nKeywords: %s", c.Name, c.Description, keywords)
}
