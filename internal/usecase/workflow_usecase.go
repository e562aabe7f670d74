package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"
	"estimate_agent/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound    = errors.New("system category not found")
	ErrNoQuestionTemplates = errors.New("no question templates found")
)

const (
	// CategoryEmbeddingsIndex holds one embedded document per system category.
	CategoryEmbeddingsIndex = "category_embeddings"

	minGeneratedQuestions  = 10
	defaultQuestionStart   = 100
	questionPositionStep   = 10
	semanticMatchThreshold = 0.5
	customQuestionCategory = "custom"
)

// WorkflowResult is what the initial-estimate workflow produced.
type WorkflowResult struct {
	EstimateID string
	Category   CategoryMatch
	Questions  []entities.Question
}

// IWorkflowUseCase runs the initial-estimate workflow:
// estimate-category followed by generate-questions.
type IWorkflowUseCase interface {
	Categorize(ctx context.Context, description string) (CategoryMatch, error)
	GenerateQuestions(ctx context.Context, estimateID string, categoryID string) ([]entities.Question, error)
	Run(ctx context.Context, estimateID string, description string) (WorkflowResult, error)
}

type WorkflowUseCase struct {
	catalog         interfaces.ICatalogRepository
	estimates       interfaces.IEstimateRepository
	questions       interfaces.IQuestionRepository
	llm             interfaces.ILLMClient
	vectors         interfaces.IVectorStore
	events          interfaces.IEventPublisher
	defaultCategory string
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

// NewWorkflowUseCase builds the workflow. llm and vectors may be nil, in which
// case only the keyword heuristic is used.
func NewWorkflowUseCase(
	catalog interfaces.ICatalogRepository,
	estimates interfaces.IEstimateRepository,
	questions interfaces.IQuestionRepository,
	llm interfaces.ILLMClient,
	vectors interfaces.IVectorStore,
	events interfaces.IEventPublisher,
	defaultCategory string,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		catalog:         catalog,
		estimates:       estimates,
		questions:       questions,
		llm:             llm,
		vectors:         vectors,
		events:          events,
		defaultCategory: defaultCategory,
	}
}

func (u *WorkflowUseCase) Categorize(ctx context.Context, description string) (CategoryMatch, error) {
	categories, err := u.catalog.ListCategories(ctx)
	if err != nil {
		return CategoryMatch{}, fmt.Errorf("list system categories: %w", err)
	}

	match, err := Categorize(description, categories, u.defaultCategory)
	if err != nil {
		return CategoryMatch{}, err
	}
	if !match.Fallback || u.llm == nil || u.vectors == nil {
		return match, nil
	}

	semantic, ok, err := u.semanticCategory(ctx, description, categories)
	if err != nil {
		logger.Warn(ctx, "semantic categorization failed, keeping default category", "error", err)
		return match, nil
	}
	if ok {
		return semantic, nil
	}
	return match, nil
}

func (u *WorkflowUseCase) semanticCategory(ctx context.Context, description string, categories []entities.SystemCategory) (CategoryMatch, bool, error) {
	vectors, err := u.llm.Embed(ctx, []string{description})
	if err != nil {
		return CategoryMatch{}, false, err
	}
	if len(vectors) == 0 {
		return CategoryMatch{}, false, nil
	}

	hits, err := u.vectors.Query(ctx, CategoryEmbeddingsIndex, vectors[0], 1, nil)
	if err != nil {
		return CategoryMatch{}, false, err
	}
	if len(hits) == 0 || hits[0].Score < semanticMatchThreshold {
		return CategoryMatch{}, false, nil
	}

	categoryID, _ := hits[0].Metadata["category_id"].(string)
	for _, c := range categories {
		if c.ID == categoryID {
			return CategoryMatch{Category: c, Confidence: hits[0].Score, Keywords: []string{}}, true, nil
		}
	}
	return CategoryMatch{}, false, nil
}

func (u *WorkflowUseCase) GenerateQuestions(ctx context.Context, estimateID string, categoryID string) ([]entities.Question, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}

	estimate, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if estimate.ID == "" {
		return nil, ErrEstimateNotFound
	}

	category, err := u.catalog.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get system category: %w", err)
	}
	if category.ID == "" {
		return nil, ErrCategoryNotFound
	}

	templates, err := u.collectTemplates(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, ErrNoQuestionTemplates
	}

	now := time.Now().UTC()
	questions := make([]entities.Question, 0, len(templates))
	for i, t := range templates {
		position := t.Position
		if position == 0 {
			position = i*questionPositionStep + questionPositionStep
		}
		qc := t.Category
		if qc == "" {
			qc = customQuestionCategory
		}
		questions = append(questions, entities.Question{
			ID:          uuid.NewString(),
			EstimateID:  estimateID,
			Question:    t.Question,
			Description: t.Description,
			Category:    qc,
			TemplateID:  t.ID,
			Position:    position,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	created, err := u.questions.CreateBatch(ctx, questions)
	if err != nil {
		return nil, fmt.Errorf("save questions: %w", err)
	}

	status := entities.EstimateStatusQuestions
	if !estimate.Status.CanTransitionTo(status) {
		status = estimate.Status
	}
	if _, err := u.estimates.UpdateCategoryByID(ctx, estimateID, category.ID, status); err != nil {
		return nil, fmt.Errorf("update estimate category: %w", err)
	}

	return created, nil
}

// collectTemplates returns the common templates, then the category's own, then
// default questions not already covered while fewer than ten were found.
// Default questions carry an empty template ID.
func (u *WorkflowUseCase) collectTemplates(ctx context.Context, category entities.SystemCategory) ([]entities.QuestionTemplate, error) {
	all, err := u.catalog.ListTemplatesByCategory(ctx, entities.CommonTemplateCategory)
	if err != nil {
		return nil, fmt.Errorf("list common question templates: %w", err)
	}

	if category.Slug != "" && category.Slug != entities.CommonTemplateCategory {
		own, err := u.catalog.ListTemplatesByCategory(ctx, category.Slug)
		if err != nil {
			return nil, fmt.Errorf("list %s question templates: %w", category.Slug, err)
		}
		all = append(all, own...)
	}

	if len(category.DefaultQuestions) == 0 || len(all) >= minGeneratedQuestions {
		return all, nil
	}

	position := defaultQuestionStart
	if len(all) > 0 {
		highest := 0
		for _, t := range all {
			if t.Position > highest {
				highest = t.Position
			}
		}
		position = highest + questionPositionStep
	}

	qc := category.Slug
	if qc == "" {
		qc = customQuestionCategory
	}
	for _, text := range category.DefaultQuestions {
		if text == "" || containsQuestion(all, text) {
			continue
		}
		all = append(all, entities.QuestionTemplate{
			Category:    qc,
			Question:    text,
			Description: fmt.Sprintf("Question about %s", category.Name),
			Position:    position,
			IsRequired:  true,
		})
		position += questionPositionStep
	}
	return all, nil
}

func containsQuestion(templates []entities.QuestionTemplate, text string) bool {
	needle := strings.ToLower(text)
	for _, t := range templates {
		existing := strings.ToLower(t.Question)
		if strings.Contains(existing, needle) || strings.Contains(needle, existing) {
			return true
		}
	}
	return false
}

func (u *WorkflowUseCase) Run(ctx context.Context, estimateID string, description string) (WorkflowResult, error) {
	match, err := u.Categorize(ctx, description)
	if err != nil {
		return WorkflowResult{}, fmt.Errorf("estimate-category: %w", err)
	}

	questions, err := u.GenerateQuestions(ctx, estimateID, match.Category.ID)
	if err != nil {
		return WorkflowResult{}, fmt.Errorf("generate-questions: %w", err)
	}

	logger.Info(ctx, "initial estimate workflow finished",
		"estimate_id", estimateID,
		"category", match.Category.Name,
		"confidence", match.Confidence,
		"questions", len(questions),
	)

	publishEvent(ctx, u.events, SubjectQuestionsGenerated, map[string]any{
		"estimate_id":    estimateID,
		"category_id":    match.Category.ID,
		"confidence":     match.Confidence,
		"question_count": len(questions),
	})

	return WorkflowResult{EstimateID: estimateID, Category: match, Questions: questions}, nil
}
