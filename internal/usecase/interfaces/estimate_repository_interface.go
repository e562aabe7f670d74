package interfaces

import (
	"context"
	"estimate_agent/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_interface_mock.go -package=mock_interfaces

// IEstimateRepository abstracts persistence for Estimate.
//
// Lookups return a zero Estimate (empty ID) and a nil error when nothing matches.
// GetBySessionID returns the most recently created estimate of the session.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Estimate, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Estimate, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
	UpdateCategoryByID(ctx context.Context, id string, categoryID string, status entities.EstimateStatus) (entities.Estimate, error)
	UpdateTotalByID(ctx context.Context, id string, total float64) (entities.Estimate, error)
	FinalizeByID(ctx context.Context, id string) (entities.Estimate, error)
}
