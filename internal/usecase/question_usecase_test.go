package usecase

import (
	"context"
	"errors"
	"testing"

	"estimate_agent/internal/domain/entities"
	mock_interfaces "estimate_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newQuestionUseCaseWithMocks(t *testing.T) (*QuestionUseCase, *mock_interfaces.MockIEstimateRepository, *mock_interfaces.MockIQuestionRepository) {
	ctrl := gomock.NewController(t)
	estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
	questions := mock_interfaces.NewMockIQuestionRepository(ctrl)
	return NewQuestionUseCase(estimates, questions), estimates, questions
}

func TestQuestionUseCase_ListBySession(t *testing.T) {
	t.Run("session not found", func(t *testing.T) {
		uc, estimates, _ := newQuestionUseCaseWithMocks(t)
		estimates.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{}, nil)

		_, _, err := uc.ListBySession(context.Background(), "sess-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, estimates, questions := newQuestionUseCaseWithMocks(t)
		estimates.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{ID: "est-1", SessionID: "sess-1"}, nil)
		questions.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.Question{{ID: "q-1"}, {ID: "q-2"}}, nil)

		e, qs, err := uc.ListBySession(context.Background(), "sess-1")
		if err != nil || e.ID != "est-1" || len(qs) != 2 {
			t.Fatalf("unexpected result: %+v %+v %v", e, qs, err)
		}
	})
}

func TestQuestionUseCase_Answer(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewQuestionUseCase(nil, nil)
		if _, err := uc.Answer(context.Background(), "", "q-1", "yes"); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
		if _, err := uc.Answer(context.Background(), "sess-1", "q-1", " "); !errors.Is(err, ErrAnswerRequired) {
			t.Fatalf("expected ErrAnswerRequired, got %v", err)
		}
	})

	t.Run("question of another estimate", func(t *testing.T) {
		uc, estimates, questions := newQuestionUseCaseWithMocks(t)
		estimates.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{ID: "est-1"}, nil)
		questions.EXPECT().Answer(gomock.Any(), "est-1", "q-9", "yes").Return(entities.Question{}, nil)

		_, err := uc.Answer(context.Background(), "sess-1", "q-9", "yes")
		if !errors.Is(err, ErrQuestionNotFound) {
			t.Fatalf("expected ErrQuestionNotFound, got %v", err)
		}
	})

	t.Run("returns remaining count", func(t *testing.T) {
		uc, estimates, questions := newQuestionUseCaseWithMocks(t)
		estimates.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{ID: "est-1"}, nil)
		questions.EXPECT().Answer(gomock.Any(), "est-1", "q-1", "about 50").Return(entities.Question{ID: "q-1", IsAnswered: true}, nil)
		questions.EXPECT().CountUnanswered(gomock.Any(), "est-1").Return(3, nil)

		remaining, err := uc.Answer(context.Background(), "sess-1", "q-1", " about 50 ")
		if err != nil || remaining != 3 {
			t.Fatalf("unexpected result: %d, %v", remaining, err)
		}
	})
}
