package repository

import (
	"context"
	"errors"
	"time"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EstimateItemGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateItemRepository = (*EstimateItemGormRepository)(nil)

func NewEstimateItemGormRepository(db *gorm.DB) *EstimateItemGormRepository {
	return &EstimateItemGormRepository{db: db}
}

func (r *EstimateItemGormRepository) CreateBatch(ctx context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error) {
	if len(items) == 0 {
		return []entities.EstimateItem{}, nil
	}
	recs := make([]estimateItemRecord, 0, len(items))
	for _, it := range items {
		recs = append(recs, toEstimateItemRecord(it))
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.EstimateItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromEstimateItemRecord(rec))
	}
	return out, nil
}

func (r *EstimateItemGormRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateItem, error) {
	var recs []estimateItemRecord
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("position ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.EstimateItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromEstimateItemRecord(rec))
	}
	return out, nil
}

func (r *EstimateItemGormRepository) UpdateSelection(ctx context.Context, estimateID string, itemID string, selected bool) (entities.EstimateItem, error) {
	res := r.db.WithContext(ctx).
		Model(&estimateItemRecord{}).
		Where("id = ? AND estimate_id = ?", itemID, estimateID).
		Updates(map[string]any{"is_selected": selected, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return entities.EstimateItem{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.EstimateItem{}, nil
	}

	var rec estimateItemRecord
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.EstimateItem{}, nil
		}
		return entities.EstimateItem{}, err
	}
	return fromEstimateItemRecord(rec), nil
}
