package entities

import "time"

// CommonTemplateCategory groups templates asked for every estimate.
const CommonTemplateCategory = "common"

// SystemCategory is seeded reference data describing a kind of system
// (CRM, inventory, booking, ...) and the keywords that identify it.
//
// Slug is the question template category used for this system category.
type SystemCategory struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug,omitempty"`
	Description      string    `json:"description,omitempty"`
	Keywords         []string  `json:"keywords"`
	DefaultQuestions []string  `json:"default_questions"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// QuestionTemplate is seeded reference data used to generate questions.
type QuestionTemplate struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Question    string    `json:"question"`
	Description string    `json:"description,omitempty"`
	Position    int       `json:"position"`
	IsRequired  bool      `json:"is_required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// APIKey authorizes clients when API key authentication is enabled.
type APIKey struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	KeyValue    string   `json:"-"`
	IsActive    bool     `json:"is_active"`
	Permissions []string `json:"permissions"`
}
