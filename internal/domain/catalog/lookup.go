package catalog

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// ServiceRef names a service either by catalog name or by id. Name wins
// when both are set.
type ServiceRef struct {
	Name string
	ID   uint
}

type ServiceLookup interface {
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	GetServiceByName(ctx context.Context, name ServiceName) (*models.Service, error)
}

// ResolveService validates the reference before touching the store, so an
// unknown name fails with InvalidServiceName without any query.
func ResolveService(ctx context.Context, lookup ServiceLookup, ref ServiceRef) (*models.Service, error) {
	if ref.Name != "" {
		name, err := ParseServiceName(ref.Name)
		if err != nil {
			return nil, err
		}
		return lookup.GetServiceByName(ctx, name)
	}
	if ref.ID != 0 {
		return lookup.GetServiceByID(ctx, ref.ID)
	}
	return nil, httperr.ErrInvalidInput("missing_service", "A service name or id is required.")
}
