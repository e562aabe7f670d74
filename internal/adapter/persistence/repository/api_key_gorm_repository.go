package repository

import (
	"context"
	"errors"

	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type APIKeyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IAPIKeyRepository = (*APIKeyGormRepository)(nil)

func NewAPIKeyGormRepository(db *gorm.DB) *APIKeyGormRepository {
	return &APIKeyGormRepository{db: db}
}

// FindActive returns the active key with the given value, or a zero APIKey.
func (r *APIKeyGormRepository) FindActive(ctx context.Context, keyValue string) (entities.APIKey, error) {
	var rec apiKeyRecord
	err := r.db.WithContext(ctx).
		Where("key_value = ? AND is_active = ?", keyValue, true).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.APIKey{}, nil
		}
		return entities.APIKey{}, err
	}
	return entities.APIKey{
		ID:          rec.ID,
		UserID:      rec.UserID,
		KeyValue:    rec.KeyValue,
		IsActive:    rec.IsActive,
		Permissions: []string(rec.Permissions),
	}, nil
}
