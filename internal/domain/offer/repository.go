package offer

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	identity.Directory

	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	GetServiceByName(ctx context.Context, name catalog.ServiceName) (*models.Service, error)

	FindOffer(ctx context.Context, providerID uint, serviceID uint) (*models.ProviderOffer, error)
	GetOffer(ctx context.Context, id uint) (*models.ProviderOffer, error)
	LockOffer(ctx context.Context, id uint) (*models.ProviderOffer, error)

	CreateOffer(ctx context.Context, o *models.ProviderOffer) error
	UpdateOffer(ctx context.Context, o *models.ProviderOffer) error
	DeleteOffer(ctx context.Context, id uint) error

	ListOffersForProvider(ctx context.Context, providerID uint) ([]models.ProviderOffer, error)
	ListOffersForService(ctx context.Context, serviceID uint) ([]models.ProviderOffer, error)

	RecordEvent(ctx context.Context, ev audit.Event) error
}
