package interfaces

import (
	"context"
	"estimate_agent/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_interface_mock.go -package=mock_interfaces

// ICatalogRepository reads and seeds the system category and question template
// reference tables.
type ICatalogRepository interface {
	ListCategories(ctx context.Context) ([]entities.SystemCategory, error)
	GetCategoryByID(ctx context.Context, id string) (entities.SystemCategory, error)
	ListTemplatesByCategory(ctx context.Context, category string) ([]entities.QuestionTemplate, error)
	CountCategories(ctx context.Context) (int64, error)
	CountTemplates(ctx context.Context) (int64, error)
	CreateCategories(ctx context.Context, categories []entities.SystemCategory) error
	CreateTemplates(ctx context.Context, templates []entities.QuestionTemplate) error
}
