package request

import (
	"errors"
	"strconv"
	"strings"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase"
)

var (
	ErrNoItems       = errors.New("at least one item is required")
	ErrMissingStatus = errors.New("status is required")
	ErrMissingChoice = errors.New("is_selected is required")
	ErrInvalidLimit  = errors.New("limit must be a positive integer")
)

type EstimateItemRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	IsSelected     bool    `json:"is_selected"`
	IsRequired     bool    `json:"is_required"`
	Complexity     string  `json:"complexity"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// AddItemsRequest appends line items to the estimate of a session.
type AddItemsRequest struct {
	Items []EstimateItemRequest `json:"items"`
}

func (r AddItemsRequest) ResolveItems() ([]usecase.NewEstimateItem, error) {
	if len(r.Items) == 0 {
		return nil, ErrNoItems
	}
	out := make([]usecase.NewEstimateItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, usecase.NewEstimateItem{
			Name:           strings.TrimSpace(it.Name),
			Description:    strings.TrimSpace(it.Description),
			UnitPrice:      it.UnitPrice,
			Quantity:       it.Quantity,
			IsSelected:     it.IsSelected,
			IsRequired:     it.IsRequired,
			Complexity:     entities.Complexity(strings.ToLower(strings.TrimSpace(it.Complexity))),
			EstimatedHours: it.EstimatedHours,
		})
	}
	return out, nil
}

// SelectItemRequest toggles an item. IsSelected is a pointer so that an
// omitted field is told apart from false.
type SelectItemRequest struct {
	IsSelected *bool `json:"is_selected"`
}

func (r SelectItemRequest) ResolveSelected() (bool, error) {
	if r.IsSelected == nil {
		return false, ErrMissingChoice
	}
	return *r.IsSelected, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) ResolveStatus() (entities.EstimateStatus, error) {
	s := strings.ToLower(strings.TrimSpace(r.Status))
	if s == "" {
		return "", ErrMissingStatus
	}
	return entities.EstimateStatus(s), nil
}

// ParseLimit reads the ?limit= query value; empty means the default.
func ParseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return usecase.DefaultRecentLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}
