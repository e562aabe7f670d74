package entities

import "time"

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

func (c Complexity) Valid() bool {
	switch c {
	case "", ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// EstimateItem is one priced line of an estimate.
type EstimateItem struct {
	ID             string     `json:"id"`
	EstimateID     string     `json:"estimate_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	UnitPrice      float64    `json:"unit_price"`
	Quantity       int        `json:"quantity"`
	IsSelected     bool       `json:"is_selected"`
	IsRequired     bool       `json:"is_required"`
	Complexity     Complexity `json:"complexity,omitempty"`
	EstimatedHours float64    `json:"estimated_hours,omitempty"`
	Position       int        `json:"position"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (i EstimateItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// SumSelected totals unit_price * quantity over the selected items.
func SumSelected(items []EstimateItem) float64 {
	total := 0.0
	for _, it := range items {
		if it.IsSelected {
			total += it.Subtotal()
		}
	}
	return total
}
