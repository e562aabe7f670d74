package interfaces

import (
	"context"
	"estimate_agent/internal/domain/entities"
)

//go:generate mockgen -source=question_repository_interface.go -destination=mocks/question_repository_interface_mock.go -package=mock_interfaces

// IQuestionRepository abstracts persistence for estimate questions.
//
// Answer is scoped to the estimate: a question belonging to another estimate is
// reported as not found (zero Question).
type IQuestionRepository interface {
	CreateBatch(ctx context.Context, questions []entities.Question) ([]entities.Question, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Question, error)
	Answer(ctx context.Context, estimateID string, questionID string, answer string) (entities.Question, error)
	CountUnanswered(ctx context.Context, estimateID string) (int, error)
}
