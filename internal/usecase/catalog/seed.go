package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
)

type Seed struct {
	repo domain.Repository
}

func NewSeed(repo domain.Repository) *Seed {
	return &Seed{repo: repo}
}

// Execute is idempotent; running it on a seeded store changes nothing.
func (uc *Seed) Execute(ctx context.Context) error {
	services, err := domain.ServiceSeeds()
	if err != nil {
		return err
	}
	return uc.repo.Seed(ctx, domain.CategorySeeds(), services)
}
