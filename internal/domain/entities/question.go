package entities

import "time"

// Question is a clarifying question attached to an estimate.
type Question struct {
	ID          string    `json:"id"`
	EstimateID  string    `json:"estimate_id"`
	Question    string    `json:"question"`
	Description string    `json:"description,omitempty"`
	Answer      string    `json:"answer,omitempty"`
	IsAnswered  bool      `json:"is_answered"`
	Category    string    `json:"category,omitempty"`
	TemplateID  string    `json:"template_id,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
