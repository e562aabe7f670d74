package response

import (
	"time"

	"estimate_agent/internal/domain/entities"
)

type EstimateResponse struct {
	ID                  string                    `json:"id"`
	SessionID           string                    `json:"session_id"`
	Title               string                    `json:"title"`
	Description         string                    `json:"description,omitempty"`
	InitialRequirements string                    `json:"initial_requirements"`
	Email               string                    `json:"email,omitempty"`
	Metadata            entities.EstimateMetadata `json:"metadata"`
	Status              string                    `json:"status"`
	SystemCategoryID    string                    `json:"system_category_id,omitempty"`
	TotalAmount         float64                   `json:"total_amount"`
	IsPermanent         bool                      `json:"is_permanent"`
	ExpiresAt           *time.Time                `json:"expires_at,omitempty"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                  e.ID,
		SessionID:           e.SessionID,
		Title:               e.Title,
		Description:         e.Description,
		InitialRequirements: e.InitialRequirements,
		Email:               e.Email,
		Metadata:            e.Metadata,
		Status:              string(e.Status),
		SystemCategoryID:    e.SystemCategoryID,
		TotalAmount:         e.TotalAmount,
		IsPermanent:         e.IsPermanent(),
		ExpiresAt:           e.ExpiresAt,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

type EstimateItemResponse struct {
	ID             string  `json:"id"`
	EstimateID     string  `json:"estimate_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	Subtotal       float64 `json:"subtotal"`
	IsSelected     bool    `json:"is_selected"`
	IsRequired     bool    `json:"is_required"`
	Complexity     string  `json:"complexity,omitempty"`
	EstimatedHours float64 `json:"estimated_hours,omitempty"`
	Position       int     `json:"position"`
}

func FromEstimateItem(i entities.EstimateItem) EstimateItemResponse {
	return EstimateItemResponse{
		ID:             i.ID,
		EstimateID:     i.EstimateID,
		Name:           i.Name,
		Description:    i.Description,
		UnitPrice:      i.UnitPrice,
		Quantity:       i.Quantity,
		Subtotal:       i.Subtotal(),
		IsSelected:     i.IsSelected,
		IsRequired:     i.IsRequired,
		Complexity:     string(i.Complexity),
		EstimatedHours: i.EstimatedHours,
		Position:       i.Position,
	}
}

func FromEstimateItems(items []entities.EstimateItem) []EstimateItemResponse {
	out := make([]EstimateItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromEstimateItem(it))
	}
	return out
}

// ItemSelectionResponse returns the toggled item with the refreshed total.
type ItemSelectionResponse struct {
	Item        EstimateItemResponse `json:"item"`
	TotalAmount float64              `json:"total_amount"`
}
