package usecase

import (
	"context"
	"errors"
	"strings"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"
)

var (
	ErrAnswerRequired   = errors.New("answer is required")
	ErrQuestionNotFound = errors.New("question not found")
)

//go:generate mockgen -source=question_usecase.go -destination=../adapter/http/handlers/mocks/question_usecase_mock.go -package=mocks

// IQuestionUseCase lists and answers the clarifying questions of a session.
type IQuestionUseCase interface {
	ListBySession(ctx context.Context, sessionID string) (entities.Estimate, []entities.Question, error)
	Answer(ctx context.Context, sessionID string, questionID string, answer string) (int, error)
}

type QuestionUseCase struct {
	estimates interfaces.IEstimateRepository
	questions interfaces.IQuestionRepository
}

var _ IQuestionUseCase = (*QuestionUseCase)(nil)

func NewQuestionUseCase(estimates interfaces.IEstimateRepository, questions interfaces.IQuestionRepository) *QuestionUseCase {
	return &QuestionUseCase{estimates: estimates, questions: questions}
}

func (u *QuestionUseCase) ListBySession(ctx context.Context, sessionID string) (entities.Estimate, []entities.Question, error) {
	estimate, err := resolveSession(ctx, u.estimates, sessionID)
	if err != nil {
		return entities.Estimate{}, nil, err
	}

	questions, err := u.questions.ListByEstimateID(ctx, estimate.ID)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	return estimate, questions, nil
}

// Answer records the answer and returns how many questions remain unanswered.
func (u *QuestionUseCase) Answer(ctx context.Context, sessionID string, questionID string, answer string) (int, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, ErrInvalidSessionID
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, ErrAnswerRequired
	}
	questionID = strings.TrimSpace(questionID)
	if questionID == "" {
		return 0, ErrQuestionNotFound
	}

	estimate, err := resolveSession(ctx, u.estimates, sessionID)
	if err != nil {
		return 0, err
	}

	q, err := u.questions.Answer(ctx, estimate.ID, questionID, answer)
	if err != nil {
		return 0, err
	}
	if q.ID == "" {
		return 0, ErrQuestionNotFound
	}

	return u.questions.CountUnanswered(ctx, estimate.ID)
}
