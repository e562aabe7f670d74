package interfaces

import (
	"context"
	"estimate_agent/internal/domain/entities"
)

//go:generate mockgen -source=api_key_repository_interface.go -destination=mocks/api_key_repository_interface_mock.go -package=mock_interfaces

type IAPIKeyRepository interface {
	FindActive(ctx context.Context, keyValue string) (entities.APIKey, error)
}
