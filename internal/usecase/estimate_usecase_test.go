package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"estimate_agent/internal/domain/entities"
	mock_interfaces "estimate_agent/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type estimateMocks struct {
	repo   *mock_interfaces.MockIEstimateRepository
	items  *mock_interfaces.MockIEstimateItemRepository
	events *mock_interfaces.MockIEventPublisher
}

func newEstimateUseCaseWithMocks(t *testing.T) (*EstimateUseCase, estimateMocks) {
	ctrl := gomock.NewController(t)
	m := estimateMocks{
		repo:   mock_interfaces.NewMockIEstimateRepository(ctrl),
		items:  mock_interfaces.NewMockIEstimateItemRepository(ctrl),
		events: mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	return NewEstimateUseCase(m.repo, m.items, m.events, 24*time.Hour), m
}

func activeEstimate() entities.Estimate {
	expires := time.Now().Add(time.Hour)
	return entities.Estimate{ID: "est-1", SessionID: "sess-1", Status: entities.EstimateStatusQuestions, ExpiresAt: &expires}
}

func TestEstimateUseCase_CreateEstimate(t *testing.T) {
	t.Run("missing requirements", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, time.Hour)
		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{Requirements: "   "})
		if !errors.Is(err, ErrRequirementsRequired) {
			t.Fatalf("expected ErrRequirementsRequired, got %v", err)
		}
	})

	t.Run("generates session id and expiry", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		before := time.Now().UTC()

		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.SessionID == "" {
					t.Fatalf("expected generated ids, got %+v", e)
				}
				if e.Status != entities.EstimateStatusDraft || e.Title != "Untitled estimate" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.ExpiresAt == nil || e.ExpiresAt.Before(before.Add(23*time.Hour)) {
					t.Fatalf("expected expiry about a day ahead, got %v", e.ExpiresAt)
				}
				return e, nil
			},
		)

		res, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{Requirements: " a booking site "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.InitialRequirements != "a booking site" {
			t.Fatalf("expected trimmed requirements, got %q", res.InitialRequirements)
		}
	})

	t.Run("keeps given session", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) { return e, nil },
		)

		res, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{SessionID: "sess-9", Title: "Shop", Requirements: "shop"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SessionID != "sess-9" || res.Title != "Shop" {
			t.Fatalf("unexpected estimate: %+v", res)
		}
	})
}

func TestEstimateUseCase_GetBySessionID(t *testing.T) {
	t.Run("invalid session", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, time.Hour)
		_, err := uc.GetBySessionID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetBySessionID(context.Background(), "sess-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetBySessionID(context.Background(), "sess-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		past := time.Now().Add(-time.Minute)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{ID: "est-1", ExpiresAt: &past}, nil)

		_, err := uc.GetBySessionID(context.Background(), "sess-1")
		if !errors.Is(err, ErrEstimateExpired) {
			t.Fatalf("expected ErrEstimateExpired, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)

		res, err := uc.GetBySessionID(context.Background(), " sess-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "est-1" {
			t.Fatalf("unexpected estimate: %+v", res)
		}
	})
}

func TestEstimateUseCase_ListRecent(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultRecentLimit},
		{-3, DefaultRecentLimit},
		{20, 20},
		{1000, 100},
	}
	for _, tc := range cases {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().ListRecent(gomock.Any(), tc.want).Return([]entities.Estimate{}, nil)
		if _, err := uc.ListRecent(context.Background(), tc.in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestEstimateUseCase_AddItems(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, time.Hour)
		_, err := uc.AddItems(context.Background(), "sess-1", nil)
		if !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	invalid := []NewEstimateItem{
		{Name: " ", UnitPrice: 10},
		{Name: "Login", UnitPrice: -1},
		{Name: "Login", UnitPrice: 1, Quantity: -2},
		{Name: "Login", UnitPrice: 1, Complexity: "extreme"},
	}
	for _, in := range invalid {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		_, err := uc.AddItems(context.Background(), "sess-1", []NewEstimateItem{in})
		if !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem for %+v, got %v", in, err)
		}
	}

	t.Run("appends after existing and updates total", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		existing := []entities.EstimateItem{{ID: "it-1", EstimateID: "est-1", UnitPrice: 100, Quantity: 1, IsSelected: true, Position: 3}}

		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(existing, nil)
		m.items.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error) {
				if len(items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(items))
				}
				if items[0].Position != 4 || items[1].Position != 5 {
					t.Fatalf("unexpected positions: %d, %d", items[0].Position, items[1].Position)
				}
				if items[0].Quantity != 1 {
					t.Fatalf("expected default quantity 1, got %d", items[0].Quantity)
				}
				if !items[1].IsSelected {
					t.Fatalf("expected required item to be selected")
				}
				return items, nil
			},
		)
		// 100 + 50*2 (required, selected) ; optional unselected item ignored
		m.repo.EXPECT().UpdateTotalByID(gomock.Any(), "est-1", 200.0).Return(entities.Estimate{ID: "est-1", TotalAmount: 200}, nil)
		m.events.EXPECT().Publish(gomock.Any(), SubjectTotalUpdated, gomock.Any()).Return(nil)

		res, err := uc.AddItems(context.Background(), "sess-1", []NewEstimateItem{
			{Name: "Reports", UnitPrice: 300},
			{Name: "Auth", UnitPrice: 50, Quantity: 2, IsRequired: true, Complexity: entities.ComplexityLow},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].EstimateID != "est-1" || res[0].ID == "" {
			t.Fatalf("unexpected items: %+v", res)
		}
	})
}

func TestEstimateUseCase_SelectItem(t *testing.T) {
	t.Run("item not found", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.items.EXPECT().UpdateSelection(gomock.Any(), "est-1", "it-9", true).Return(entities.EstimateItem{}, nil)

		_, _, err := uc.SelectItem(context.Background(), "sess-1", "it-9", true)
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("total equals sum of selected", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		items := []entities.EstimateItem{
			{ID: "it-1", UnitPrice: 1000, Quantity: 2, IsSelected: true},
			{ID: "it-2", UnitPrice: 500, Quantity: 3, IsSelected: true},
			{ID: "it-3", UnitPrice: 99, Quantity: 1, IsSelected: false},
		}
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.items.EXPECT().UpdateSelection(gomock.Any(), "est-1", "it-2", true).Return(items[1], nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(items, nil)
		m.repo.EXPECT().UpdateTotalByID(gomock.Any(), "est-1", 3500.0).Return(entities.Estimate{ID: "est-1", TotalAmount: 3500}, nil)
		m.events.EXPECT().Publish(gomock.Any(), SubjectTotalUpdated, gomock.Any()).Return(errors.New("nats down"))

		item, estimate, err := uc.SelectItem(context.Background(), "sess-1", "it-2", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "it-2" || estimate.TotalAmount != 3500 {
			t.Fatalf("unexpected result: %+v %+v", item, estimate)
		}
	})
}

func TestEstimateUseCase_RecalculateTotal(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, errors.New("db"))

		_, err := uc.RecalculateTotal(context.Background(), "sess-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		m.repo.EXPECT().UpdateTotalByID(gomock.Any(), "est-1", 0.0).Return(entities.Estimate{ID: "est-1"}, nil)
		m.events.EXPECT().Publish(gomock.Any(), SubjectTotalUpdated, gomock.Any()).Return(nil)

		res, err := uc.RecalculateTotal(context.Background(), "sess-1")
		if err != nil || res.TotalAmount != 0 {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})
}

func TestEstimateUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, time.Hour)
		_, err := uc.UpdateStatus(context.Background(), "sess-1", "archived")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("backwards transition", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)

		_, err := uc.UpdateStatus(context.Background(), "sess-1", entities.EstimateStatusDraft)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)

		res, err := uc.UpdateStatus(context.Background(), "sess-1", entities.EstimateStatusQuestions)
		if err != nil || res.Status != entities.EstimateStatusQuestions {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})

	t.Run("forward", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.EstimateStatusReview).
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusReview}, nil)

		res, err := uc.UpdateStatus(context.Background(), "sess-1", entities.EstimateStatusReview)
		if err != nil || res.Status != entities.EstimateStatusReview {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})
}

func TestEstimateUseCase_Finalize(t *testing.T) {
	t.Run("already permanent", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		done := entities.Estimate{ID: "est-1", SessionID: "sess-1", Status: entities.EstimateStatusCompleted}
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(done, nil)

		res, err := uc.Finalize(context.Background(), "sess-1")
		if err != nil || res.ID != "est-1" {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})

	t.Run("clears expiry", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.repo.EXPECT().FinalizeByID(gomock.Any(), "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusCompleted}, nil)

		res, err := uc.Finalize(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsPermanent() || res.Status != entities.EstimateStatusCompleted {
			t.Fatalf("expected permanent completed estimate, got %+v", res)
		}
	})

	t.Run("not found on update", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(activeEstimate(), nil)
		m.repo.EXPECT().FinalizeByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.Finalize(context.Background(), "sess-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}
