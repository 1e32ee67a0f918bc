package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type ListCategories struct {
	repo  domain.Repository
	cache Cache
}

// NewListCategories accepts a nil cache.
func NewListCategories(repo domain.Repository, cache Cache) *ListCategories {
	return &ListCategories{repo: repo, cache: cache}
}

func (uc *ListCategories) Execute(ctx context.Context) ([]models.Category, error) {
	return cached(ctx, uc.cache, keyCategories, func() ([]models.Category, error) {
		return uc.repo.ListCategories(ctx)
	})
}

type GetCategory struct {
	repo domain.Repository
}

func NewGetCategory(repo domain.Repository) *GetCategory {
	return &GetCategory{repo: repo}
}

func (uc *GetCategory) Execute(ctx context.Context, name string) (*models.Category, error) {
	cat, err := domain.ParseCategoryName(name)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetCategoryByName(ctx, cat)
}
