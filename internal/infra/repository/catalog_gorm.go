package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Category
// --------------------------------------------------

func (r *CatalogGormRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	cats := []models.Category{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (r *CatalogGormRepository) GetCategoryByName(
	ctx context.Context,
	name domain.CategoryName,
) (*models.Category, error) {

	var cat models.Category
	if err := r.db.WithContext(ctx).
		Where("name = ?", string(name)).
		First(&cat).Error; err != nil {
		return nil, lookupErr(err, "category_not_found", "Category not found.")
	}
	return &cat, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *CatalogGormRepository) ListServicesByCategory(
	ctx context.Context,
	categoryID uint,
) ([]models.Service, error) {

	services := []models.Service{}
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services by category: %w", err)
	}
	return services, nil
}

func (r *CatalogGormRepository) GetServiceByName(
	ctx context.Context,
	name domain.ServiceName,
) (*models.Service, error) {
	return getServiceByName(ctx, r.db, string(name))
}

func (r *CatalogGormRepository) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	return getServiceByID(ctx, r.db, id)
}

// --------------------------------------------------
// Seed
// --------------------------------------------------

func (r *CatalogGormRepository) Seed(
	ctx context.Context,
	categories []domain.CategorySeed,
	services []domain.ServiceSeed,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range categories {
			row := models.Category{Name: string(c.Name), Description: c.Description}
			if err := tx.
				Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
				Create(&row).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", c.Name, err)
			}
		}

		for _, s := range services {
			var cat models.Category
			if err := tx.Where("name = ?", string(s.Category)).First(&cat).Error; err != nil {
				return fmt.Errorf("seed service %s: category %s: %w", s.Name, s.Category, err)
			}

			row := models.Service{
				Name:        string(s.Name),
				Description: s.Description,
				CategoryID:  cat.ID,
			}
			if err := tx.
				Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
				Create(&row).Error; err != nil {
				return fmt.Errorf("seed service %s: %w", s.Name, err)
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Shared lookups
// --------------------------------------------------

func getServiceByName(ctx context.Context, db *gorm.DB, name string) (*models.Service, error) {
	var s models.Service
	if err := db.WithContext(ctx).Where("name = ?", name).First(&s).Error; err != nil {
		return nil, lookupErr(err, "service_not_found", "Service not found.")
	}
	return &s, nil
}

func getServiceByID(ctx context.Context, db *gorm.DB, id uint) (*models.Service, error) {
	var s models.Service
	if err := db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, lookupErr(err, "service_not_found", "Service not found.")
	}
	return &s, nil
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
