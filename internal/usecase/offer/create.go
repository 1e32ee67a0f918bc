package offer

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/offer"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

// ======================================================
// INPUT
// ======================================================

type CreateOfferInput struct {
	Actor       identity.Principal
	Service     catalog.ServiceRef
	Price       int64
	Description string
}

// ======================================================
// USE CASE
// ======================================================

type CreateOffer struct {
	repo domain.Repository
}

func NewCreateOffer(repo domain.Repository) *CreateOffer {
	return &CreateOffer{repo: repo}
}

func (uc *CreateOffer) Execute(
	ctx context.Context,
	in CreateOfferInput,
) (*models.ProviderOffer, error) {

	if err := policy.Authorize(in.Actor, policy.ActionOfferCreate, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	if err := domain.ValidatePrice(in.Price); err != nil {
		return nil, err
	}
	desc, err := domain.NormalizeDescription(in.Description)
	if err != nil {
		return nil, err
	}

	var created *models.ProviderOffer

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		// The stored role, not the token's, decides who may publish.
		role, err := tx.RoleOf(ctx, in.Actor.ID)
		if err != nil {
			return err
		}
		stored := identity.Principal{ID: in.Actor.ID, Role: role}
		if err := policy.Authorize(stored, policy.ActionOfferCreate, policy.Resource{}).Err(); err != nil {
			return err
		}

		service, err := catalog.ResolveService(ctx, tx, in.Service)
		if err != nil {
			return err
		}

		existing, err := tx.FindOffer(ctx, in.Actor.ID, service.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate()
		}

		o := &models.ProviderOffer{
			ProviderID:  in.Actor.ID,
			ServiceID:   service.ID,
			Price:       in.Price,
			Description: desc,
		}
		if err := tx.CreateOffer(ctx, o); err != nil {
			return err
		}

		if err := tx.RecordEvent(ctx, audit.Event{
			ActorID:  &in.Actor.ID,
			Action:   audit.ActionOfferCreated,
			Entity:   "offer",
			EntityID: &o.ID,
			Metadata: map[string]any{"service": service.Name, "price": o.Price},
		}); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
