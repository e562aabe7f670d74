package repository

import (
	"time"

	"estimate_agent/internal/domain/entities"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type estimateRecord struct {
	ID                  string `gorm:"primaryKey;size:36"`
	SessionID           string `gorm:"size:64;not null;index"`
	Title               string `gorm:"size:255;not null"`
	Description         string `gorm:"type:text"`
	InitialRequirements string `gorm:"type:text;not null"`
	Email               string `gorm:"size:255"`
	Metadata            datatypes.JSONType[entities.EstimateMetadata]
	Status              string `gorm:"size:20;not null;index"`
	SystemCategoryID    string `gorm:"size:36"`
	TotalAmount         float64
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
	ExpiresAt           *time.Time `gorm:"index"`
}

func (estimateRecord) TableName() string { return "estimates" }

type estimateItemRecord struct {
	ID             string `gorm:"primaryKey;size:36"`
	EstimateID     string `gorm:"size:36;not null;index"`
	Name           string `gorm:"size:255;not null"`
	Description    string `gorm:"type:text"`
	UnitPrice      float64
	Quantity       int
	IsSelected     bool
	IsRequired     bool
	Complexity     string `gorm:"size:10"`
	EstimatedHours float64
	Position       int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Estimate estimateRecord `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`
}

func (estimateItemRecord) TableName() string { return "estimate_items" }

type questionRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	EstimateID  string `gorm:"size:36;not null;index"`
	Question    string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	Answer      string `gorm:"type:text"`
	IsAnswered  bool   `gorm:"index"`
	Category    string `gorm:"size:50"`
	TemplateID  string `gorm:"size:36"`
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Estimate estimateRecord `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`
}

func (questionRecord) TableName() string { return "estimate_questions" }

type systemCategoryRecord struct {
	ID               string `gorm:"primaryKey;size:36"`
	Name             string `gorm:"size:100;not null;uniqueIndex"`
	Slug             string `gorm:"size:50"`
	Description      string `gorm:"type:text"`
	Keywords         datatypes.JSONSlice[string]
	DefaultQuestions datatypes.JSONSlice[string]
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (systemCategoryRecord) TableName() string { return "system_categories" }

type questionTemplateRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	Category    string `gorm:"size:50;not null;index"`
	Question    string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	Position    int
	IsRequired  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (questionTemplateRecord) TableName() string { return "question_templates" }

type apiKeyRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"size:36"`
	KeyValue    string `gorm:"size:128;not null;uniqueIndex"`
	IsActive    bool
	Permissions datatypes.JSONSlice[string]
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (apiKeyRecord) TableName() string { return "api_keys" }

// AutoMigrate creates or updates the relational tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&estimateRecord{},
		&estimateItemRecord{},
		&questionRecord{},
		&systemCategoryRecord{},
		&questionTemplateRecord{},
		&apiKeyRecord{},
	)
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	return estimateRecord{
		ID:                  e.ID,
		SessionID:           e.SessionID,
		Title:               e.Title,
		Description:         e.Description,
		InitialRequirements: e.InitialRequirements,
		Email:               e.Email,
		Metadata:            datatypes.NewJSONType(e.Metadata),
		Status:              string(e.Status),
		SystemCategoryID:    e.SystemCategoryID,
		TotalAmount:         e.TotalAmount,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
		ExpiresAt:           e.ExpiresAt,
	}
}

func fromEstimateRecord(r estimateRecord) entities.Estimate {
	return entities.Estimate{
		ID:                  r.ID,
		SessionID:           r.SessionID,
		Title:               r.Title,
		Description:         r.Description,
		InitialRequirements: r.InitialRequirements,
		Email:               r.Email,
		Metadata:            r.Metadata.Data(),
		Status:              entities.EstimateStatus(r.Status),
		SystemCategoryID:    r.SystemCategoryID,
		TotalAmount:         r.TotalAmount,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		ExpiresAt:           r.ExpiresAt,
	}
}

func toEstimateItemRecord(i entities.EstimateItem) estimateItemRecord {
	return estimateItemRecord{
		ID:             i.ID,
		EstimateID:     i.EstimateID,
		Name:           i.Name,
		Description:    i.Description,
		UnitPrice:      i.UnitPrice,
		Quantity:       i.Quantity,
		IsSelected:     i.IsSelected,
		IsRequired:     i.IsRequired,
		Complexity:     string(i.Complexity),
		EstimatedHours: i.EstimatedHours,
		Position:       i.Position,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func fromEstimateItemRecord(r estimateItemRecord) entities.EstimateItem {
	return entities.EstimateItem{
		ID:             r.ID,
		EstimateID:     r.EstimateID,
		Name:           r.Name,
		Description:    r.Description,
		UnitPrice:      r.UnitPrice,
		Quantity:       r.Quantity,
		IsSelected:     r.IsSelected,
		IsRequired:     r.IsRequired,
		Complexity:     entities.Complexity(r.Complexity),
		EstimatedHours: r.EstimatedHours,
		Position:       r.Position,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toQuestionRecord(q entities.Question) questionRecord {
	return questionRecord{
		ID:          q.ID,
		EstimateID:  q.EstimateID,
		Question:    q.Question,
		Description: q.Description,
		Answer:      q.Answer,
		IsAnswered:  q.IsAnswered,
		Category:    q.Category,
		TemplateID:  q.TemplateID,
		Position:    q.Position,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func fromQuestionRecord(r questionRecord) entities.Question {
	return entities.Question{
		ID:          r.ID,
		EstimateID:  r.EstimateID,
		Question:    r.Question,
		Description: r.Description,
		Answer:      r.Answer,
		IsAnswered:  r.IsAnswered,
		Category:    r.Category,
		TemplateID:  r.TemplateID,
		Position:    r.Position,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toSystemCategoryRecord(c entities.SystemCategory) systemCategoryRecord {
	return systemCategoryRecord{
		ID:               c.ID,
		Name:             c.Name,
		Slug:             c.Slug,
		Description:      c.Description,
		Keywords:         datatypes.NewJSONSlice(nonNil(c.Keywords)),
		DefaultQuestions: datatypes.NewJSONSlice(nonNil(c.DefaultQuestions)),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func fromSystemCategoryRecord(r systemCategoryRecord) entities.SystemCategory {
	return entities.SystemCategory{
		ID:               r.ID,
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		Keywords:         []string(r.Keywords),
		DefaultQuestions: []string(r.DefaultQuestions),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toQuestionTemplateRecord(t entities.QuestionTemplate) questionTemplateRecord {
	return questionTemplateRecord{
		ID:          t.ID,
		Category:    t.Category,
		Question:    t.Question,
		Description: t.Description,
		Position:    t.Position,
		IsRequired:  t.IsRequired,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func fromQuestionTemplateRecord(r questionTemplateRecord) entities.QuestionTemplate {
	return entities.QuestionTemplate{
		ID:          r.ID,
		Category:    r.Category,
		Question:    r.Question,
		Description: r.Description,
		Position:    r.Position,
		IsRequired:  r.IsRequired,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
