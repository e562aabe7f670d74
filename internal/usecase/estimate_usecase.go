package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrEstimateExpired         = errors.New("estimate expired")
	ErrInvalidSessionID        = errors.New("invalid session id")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrRequirementsRequired    = errors.New("initial requirements are required")
	ErrInvalidItem             = errors.New("invalid estimate item")
	ErrItemNotFound            = errors.New("estimate item not found")
	ErrInvalidStatus           = errors.New("invalid estimate status")
	ErrInvalidStatusTransition = errors.New("invalid estimate status transition")
)

const (
	DefaultRecentLimit = 5
	maxRecentLimit     = 100
)

// CreateEstimateInput carries the fields of a new draft estimate.
// SessionID is generated when empty.
type CreateEstimateInput struct {
	SessionID    string
	Title        string
	Requirements string
	Description  string
	Email        string
	Metadata     entities.EstimateMetadata
}

// NewEstimateItem is a line item to be appended to an estimate.
type NewEstimateItem struct {
	Name           string
	Description    string
	UnitPrice      float64
	Quantity       int
	IsSelected     bool
	IsRequired     bool
	Complexity     entities.Complexity
	EstimatedHours float64
}

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/estimate_usecase_mock.go -package=mocks

// IEstimateUseCase exposes estimate and line item operations. Estimates are
// addressed by the wizard session that owns them.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Estimate, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Estimate, error)
	AddItems(ctx context.Context, sessionID string, items []NewEstimateItem) ([]entities.EstimateItem, error)
	ListItems(ctx context.Context, sessionID string) ([]entities.EstimateItem, error)
	SelectItem(ctx context.Context, sessionID string, itemID string, selected bool) (entities.EstimateItem, entities.Estimate, error)
	RecalculateTotal(ctx context.Context, sessionID string) (entities.Estimate, error)
	UpdateStatus(ctx context.Context, sessionID string, status entities.EstimateStatus) (entities.Estimate, error)
	Finalize(ctx context.Context, sessionID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo   interfaces.IEstimateRepository
	items  interfaces.IEstimateItemRepository
	events interfaces.IEventPublisher
	ttl    time.Duration
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, items interfaces.IEstimateItemRepository, events interfaces.IEventPublisher, ttl time.Duration) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, items: items, events: events, ttl: ttl}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	requirements := strings.TrimSpace(in.Requirements)
	if requirements == "" {
		return entities.Estimate{}, ErrRequirementsRequired
	}

	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = untitledEstimate
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:                  uuid.NewString(),
		SessionID:           sessionID,
		Title:               title,
		Description:         strings.TrimSpace(in.Description),
		InitialRequirements: requirements,
		Email:               strings.TrimSpace(in.Email),
		Metadata:            in.Metadata,
		Status:              entities.EstimateStatusDraft,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if u.ttl > 0 {
		expiresAt := now.Add(u.ttl)
		e.ExpiresAt = &expiresAt
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetBySessionID(ctx context.Context, sessionID string) (entities.Estimate, error) {
	return u.activeBySession(ctx, sessionID)
}

func (u *EstimateUseCase) ListRecent(ctx context.Context, limit int) ([]entities.Estimate, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return u.repo.ListRecent(ctx, limit)
}

func (u *EstimateUseCase) AddItems(ctx context.Context, sessionID string, items []NewEstimateItem) ([]entities.EstimateItem, error) {
	if len(items) == 0 {
		return nil, ErrInvalidItem
	}

	estimate, err := u.activeBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := u.items.ListByEstimateID(ctx, estimate.ID)
	if err != nil {
		return nil, err
	}
	position := 0
	for _, it := range existing {
		if it.Position > position {
			position = it.Position
		}
	}

	now := time.Now().UTC()
	batch := make([]entities.EstimateItem, 0, len(items))
	for _, in := range items {
		item, err := buildItem(in)
		if err != nil {
			return nil, err
		}
		position++
		item.ID = uuid.NewString()
		item.EstimateID = estimate.ID
		item.Position = position
		item.CreatedAt = now
		item.UpdatedAt = now
		batch = append(batch, item)
	}

	created, err := u.items.CreateBatch(ctx, batch)
	if err != nil {
		return nil, err
	}

	if _, err := u.recalculate(ctx, estimate, append(existing, created...)); err != nil {
		return nil, err
	}
	return created, nil
}

func buildItem(in NewEstimateItem) (entities.EstimateItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.EstimateItem{}, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if in.UnitPrice < 0 {
		return entities.EstimateItem{}, fmt.Errorf("%w: unit_price must not be negative", ErrInvalidItem)
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return entities.EstimateItem{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidItem)
	}
	if !in.Complexity.Valid() {
		return entities.EstimateItem{}, fmt.Errorf("%w: unknown complexity %q", ErrInvalidItem, in.Complexity)
	}
	if in.EstimatedHours < 0 {
		return entities.EstimateItem{}, fmt.Errorf("%w: estimated_hours must not be negative", ErrInvalidItem)
	}

	return entities.EstimateItem{
		Name:           name,
		Description:    strings.TrimSpace(in.Description),
		UnitPrice:      in.UnitPrice,
		Quantity:       quantity,
		IsSelected:     in.IsSelected || in.IsRequired,
		IsRequired:     in.IsRequired,
		Complexity:     in.Complexity,
		EstimatedHours: in.EstimatedHours,
	}, nil
}

func (u *EstimateUseCase) ListItems(ctx context.Context, sessionID string) ([]entities.EstimateItem, error) {
	estimate, err := u.activeBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.items.ListByEstimateID(ctx, estimate.ID)
}

func (u *EstimateUseCase) SelectItem(ctx context.Context, sessionID string, itemID string, selected bool) (entities.EstimateItem, entities.Estimate, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.EstimateItem{}, entities.Estimate{}, ErrItemNotFound
	}

	estimate, err := u.activeBySession(ctx, sessionID)
	if err != nil {
		return entities.EstimateItem{}, entities.Estimate{}, err
	}

	item, err := u.items.UpdateSelection(ctx, estimate.ID, itemID, selected)
	if err != nil {
		return entities.EstimateItem{}, entities.Estimate{}, err
	}
	if item.ID == "" {
		return entities.EstimateItem{}, entities.Estimate{}, ErrItemNotFound
	}

	updated, err := u.recalculateFromStore(ctx, estimate)
	if err != nil {
		return entities.EstimateItem{}, entities.Estimate{}, err
	}
	return item, updated, nil
}

func (u *EstimateUseCase) RecalculateTotal(ctx context.Context, sessionID string) (entities.Estimate, error) {
	estimate, err := u.activeBySession(ctx, sessionID)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.recalculateFromStore(ctx, estimate)
}

func (u *EstimateUseCase) recalculateFromStore(ctx context.Context, estimate entities.Estimate) (entities.Estimate, error) {
	items, err := u.items.ListByEstimateID(ctx, estimate.ID)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.recalculate(ctx, estimate, items)
}

func (u *EstimateUseCase) recalculate(ctx context.Context, estimate entities.Estimate, items []entities.EstimateItem) (entities.Estimate, error) {
	total := entities.SumSelected(items)

	updated, err := u.repo.UpdateTotalByID(ctx, estimate.ID, total)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	publishEvent(ctx, u.events, SubjectTotalUpdated, map[string]any{
		"estimate_id":  updated.ID,
		"session_id":   updated.SessionID,
		"total_amount": total,
	})
	return updated, nil
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, sessionID string, status entities.EstimateStatus) (entities.Estimate, error) {
	if !status.Valid() {
		return entities.Estimate{}, ErrInvalidStatus
	}

	estimate, err := u.activeBySession(ctx, sessionID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !estimate.Status.CanTransitionTo(status) {
		return entities.Estimate{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, estimate.Status, status)
	}
	if estimate.Status == status {
		return estimate, nil
	}

	updated, err := u.repo.UpdateStatusByID(ctx, estimate.ID, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) Finalize(ctx context.Context, sessionID string) (entities.Estimate, error) {
	estimate, err := u.activeBySession(ctx, sessionID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if estimate.Status == entities.EstimateStatusCompleted && estimate.IsPermanent() {
		return estimate, nil
	}

	updated, err := u.repo.FinalizeByID(ctx, estimate.ID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) activeBySession(ctx context.Context, sessionID string) (entities.Estimate, error) {
	return resolveSession(ctx, u.repo, sessionID)
}

// resolveSession returns the latest estimate of a session, rejecting estimates
// whose expiry has passed but the store has not yet removed.
func resolveSession(ctx context.Context, repo interfaces.IEstimateRepository, sessionID string) (entities.Estimate, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Estimate{}, ErrInvalidSessionID
	}

	e, err := repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if e.IsExpired(time.Now().UTC()) {
		return entities.Estimate{}, ErrEstimateExpired
	}
	return e, nil
}
