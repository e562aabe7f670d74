package repository

import (
	"context"
	"errors"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const seedBatchSize = 100

// CatalogGormRepository reads the system_categories and question_templates
// reference tables. Categories are listed by name so categorization is
// deterministic.
type CatalogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogRepository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ListCategories(ctx context.Context) ([]entities.SystemCategory, error) {
	var recs []systemCategoryRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.SystemCategory, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromSystemCategoryRecord(rec))
	}
	return out, nil
}

func (r *CatalogGormRepository) GetCategoryByID(ctx context.Context, id string) (entities.SystemCategory, error) {
	var rec systemCategoryRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.SystemCategory{}, nil
		}
		return entities.SystemCategory{}, err
	}
	return fromSystemCategoryRecord(rec), nil
}

func (r *CatalogGormRepository) ListTemplatesByCategory(ctx context.Context, category string) ([]entities.QuestionTemplate, error) {
	var recs []questionTemplateRecord
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("position ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.QuestionTemplate, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromQuestionTemplateRecord(rec))
	}
	return out, nil
}

func (r *CatalogGormRepository) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&systemCategoryRecord{}).Count(&n).Error
	return n, err
}

func (r *CatalogGormRepository) CountTemplates(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&questionTemplateRecord{}).Count(&n).Error
	return n, err
}

func (r *CatalogGormRepository) CreateCategories(ctx context.Context, categories []entities.SystemCategory) error {
	if len(categories) == 0 {
		return nil
	}
	recs := make([]systemCategoryRecord, 0, len(categories))
	for _, c := range categories {
		recs = append(recs, toSystemCategoryRecord(c))
	}
	return r.db.WithContext(ctx).CreateInBatches(&recs, seedBatchSize).Error
}

func (r *CatalogGormRepository) CreateTemplates(ctx context.Context, templates []entities.QuestionTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	recs := make([]questionTemplateRecord, 0, len(templates))
	for _, t := range templates {
		recs = append(recs, toQuestionTemplateRecord(t))
	}
	return r.db.WithContext(ctx).CreateInBatches(&recs, seedBatchSize).Error
}
