package entities

import "time"

// EstimateStatus represents the wizard step an estimate has reached.
//
// Statuses only move forward: draft -> questions -> features -> review -> completed.
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusQuestions EstimateStatus = "questions"
	EstimateStatusFeatures  EstimateStatus = "features"
	EstimateStatusReview    EstimateStatus = "review"
	EstimateStatusCompleted EstimateStatus = "completed"
)

var estimateStatusRank = map[EstimateStatus]int{
	EstimateStatusDraft:     0,
	EstimateStatusQuestions: 1,
	EstimateStatusFeatures:  2,
	EstimateStatusReview:    3,
	EstimateStatusCompleted: 4,
}

func (s EstimateStatus) Valid() bool {
	_, ok := estimateStatusRank[s]
	return ok
}

// CanTransitionTo reports whether next is the same step or a later one.
func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	from, ok := estimateStatusRank[s]
	if !ok {
		return next.Valid()
	}
	to, ok := estimateStatusRank[next]
	return ok && to >= from
}

// EstimateMetadata is the context captured with the initial requirements.
type EstimateMetadata struct {
	Organization string `json:"organization,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Budget       string `json:"budget,omitempty"`
	Timeline     string `json:"timeline,omitempty"`
}

// Estimate is a quoted project cost record.
//
// A temporary estimate carries an ExpiresAt deadline and is removed by the
// store once it passes. A nil ExpiresAt marks a permanent (finalized) estimate.
type Estimate struct {
	ID                  string           `json:"id"`
	SessionID           string           `json:"session_id"`
	Title               string           `json:"title"`
	Description         string           `json:"description,omitempty"`
	InitialRequirements string           `json:"initial_requirements"`
	Email               string           `json:"email,omitempty"`
	Metadata            EstimateMetadata `json:"metadata"`
	Status              EstimateStatus   `json:"status"`
	SystemCategoryID    string           `json:"system_category_id,omitempty"`
	TotalAmount         float64          `json:"total_amount"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	ExpiresAt           *time.Time       `json:"expires_at,omitempty"`
}

func (e Estimate) IsExpired(now time.Time) bool {
	return e.ExpiresAt != nil && !e.ExpiresAt.After(now)
}

func (e Estimate) IsPermanent() bool {
	return e.ExpiresAt == nil
}
