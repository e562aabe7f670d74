package repository

import (
	"context"
	"errors"
	"time"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// EstimateGormRepository persists Estimate entities in the relational store
// (PostgreSQL or SQLite).
type EstimateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRepository = (*EstimateGormRepository)(nil)

func NewEstimateGormRepository(db *gorm.DB) *EstimateGormRepository {
	return &EstimateGormRepository{db: db}
}

func (r *EstimateGormRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	rec := toEstimateRecord(e)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec), nil
}

func (r *EstimateGormRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *EstimateGormRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Estimate, error) {
	return r.first(r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("created_at DESC"))
}

func (r *EstimateGormRepository) ListRecent(ctx context.Context, limit int) ([]entities.Estimate, error) {
	var recs []estimateRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromEstimateRecord(rec))
	}
	return out, nil
}

func (r *EstimateGormRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, map[string]any{"status": string(status)})
}

func (r *EstimateGormRepository) UpdateCategoryByID(ctx context.Context, id string, categoryID string, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, map[string]any{
		"system_category_id": categoryID,
		"status":             string(status),
	})
}

func (r *EstimateGormRepository) UpdateTotalByID(ctx context.Context, id string, total float64) (entities.Estimate, error) {
	return r.update(ctx, id, map[string]any{"total_amount": total})
}

// FinalizeByID completes the estimate and clears its expiry so the store keeps it.
func (r *EstimateGormRepository) FinalizeByID(ctx context.Context, id string) (entities.Estimate, error) {
	return r.update(ctx, id, map[string]any{
		"status":     string(entities.EstimateStatusCompleted),
		"expires_at": nil,
	})
}

func (r *EstimateGormRepository) update(ctx context.Context, id string, values map[string]any) (entities.Estimate, error) {
	values["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&estimateRecord{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return entities.Estimate{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Estimate{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *EstimateGormRepository) first(q *gorm.DB) (entities.Estimate, error) {
	var rec estimateRecord
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec), nil
}
