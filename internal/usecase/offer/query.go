package offer

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/offer"
	"github.com/BruksfildServices01/service-marketplace/internal/dto"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// Offers are public: reads need no principal.

type GetOffer struct {
	repo domain.Repository
}

func NewGetOffer(repo domain.Repository) *GetOffer {
	return &GetOffer{repo: repo}
}

func (uc *GetOffer) Execute(ctx context.Context, offerID uint) (*models.ProviderOffer, error) {
	return uc.repo.GetOffer(ctx, offerID)
}

type ListOffersForProvider struct {
	repo domain.Repository
}

func NewListOffersForProvider(repo domain.Repository) *ListOffersForProvider {
	return &ListOffersForProvider{repo: repo}
}

func (uc *ListOffersForProvider) Execute(ctx context.Context, providerID uint) ([]dto.OfferListDTO, error) {
	offers, err := uc.repo.ListOffersForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return dto.OfferList(offers), nil
}

type ListOffersForService struct {
	repo domain.Repository
}

func NewListOffersForService(repo domain.Repository) *ListOffersForService {
	return &ListOffersForService{repo: repo}
}

func (uc *ListOffersForService) Execute(ctx context.Context, ref catalog.ServiceRef) ([]dto.OfferListDTO, error) {
	service, err := catalog.ResolveService(ctx, uc.repo, ref)
	if err != nil {
		return nil, err
	}

	offers, err := uc.repo.ListOffersForService(ctx, service.ID)
	if err != nil {
		return nil, err
	}
	return dto.OfferList(offers), nil
}
