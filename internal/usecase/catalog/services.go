package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type ListServices struct {
	repo  domain.Repository
	cache Cache
}

func NewListServices(repo domain.Repository, cache Cache) *ListServices {
	return &ListServices{repo: repo, cache: cache}
}

// Execute lists every service, or only the services of category when it is
// not empty. An unknown category is NotFound.
func (uc *ListServices) Execute(ctx context.Context, category string) ([]models.Service, error) {
	if category == "" {
		return cached(ctx, uc.cache, servicesKey(""), func() ([]models.Service, error) {
			return uc.repo.ListServices(ctx)
		})
	}

	name, err := domain.ParseCategoryName(category)
	if err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, servicesKey(string(name)), func() ([]models.Service, error) {
		cat, err := uc.repo.GetCategoryByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return uc.repo.ListServicesByCategory(ctx, cat.ID)
	})
}

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, name string) (*models.Service, error) {
	return domain.ResolveService(ctx, uc.repo, domain.ServiceRef{Name: name})
}
