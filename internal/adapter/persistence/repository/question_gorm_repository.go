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

type QuestionGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuestionRepository = (*QuestionGormRepository)(nil)

func NewQuestionGormRepository(db *gorm.DB) *QuestionGormRepository {
	return &QuestionGormRepository{db: db}
}

func (r *QuestionGormRepository) CreateBatch(ctx context.Context, questions []entities.Question) ([]entities.Question, error) {
	if len(questions) == 0 {
		return []entities.Question{}, nil
	}
	recs := make([]questionRecord, 0, len(questions))
	for _, q := range questions {
		recs = append(recs, toQuestionRecord(q))
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Question, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromQuestionRecord(rec))
	}
	return out, nil
}

func (r *QuestionGormRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Question, error) {
	var recs []questionRecord
	err := r.db.WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("position ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Question, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromQuestionRecord(rec))
	}
	return out, nil
}

func (r *QuestionGormRepository) Answer(ctx context.Context, estimateID string, questionID string, answer string) (entities.Question, error) {
	res := r.db.WithContext(ctx).
		Model(&questionRecord{}).
		Where("id = ? AND estimate_id = ?", questionID, estimateID).
		Updates(map[string]any{
			"answer":      answer,
			"is_answered": true,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Question{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Question{}, nil
	}

	var rec questionRecord
	if err := r.db.WithContext(ctx).Where("id = ?", questionID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Question{}, nil
		}
		return entities.Question{}, err
	}
	return fromQuestionRecord(rec), nil
}

func (r *QuestionGormRepository) CountUnanswered(ctx context.Context, estimateID string) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&questionRecord{}).
		Where("estimate_id = ? AND is_answered = ?", estimateID, false).
		Count(&n).Error
	return int(n), err
}
