package catalog

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByName(ctx context.Context, name CategoryName) (*models.Category, error)

	ListServices(ctx context.Context) ([]models.Service, error)
	ListServicesByCategory(ctx context.Context, categoryID uint) ([]models.Service, error)
	GetServiceByName(ctx context.Context, name ServiceName) (*models.Service, error)
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)

	// Seed inserts missing categories and services. Existing rows are left
	// untouched.
	Seed(ctx context.Context, categories []CategorySeed, services []ServiceSeed) error
}
