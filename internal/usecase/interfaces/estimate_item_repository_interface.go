package interfaces

import (
	"context"
	"estimate_agent/internal/domain/entities"
)

//go:generate mockgen -source=estimate_item_repository_interface.go -destination=mocks/estimate_item_repository_interface_mock.go -package=mock_interfaces

// IEstimateItemRepository abstracts persistence for estimate line items.
type IEstimateItemRepository interface {
	CreateBatch(ctx context.Context, items []entities.EstimateItem) ([]entities.EstimateItem, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.EstimateItem, error)
	UpdateSelection(ctx context.Context, estimateID string, itemID string, selected bool) (entities.EstimateItem, error)
}
