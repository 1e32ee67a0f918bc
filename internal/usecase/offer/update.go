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

// UpdateOfferInput carries a partial update. Nil fields are left as stored.
type UpdateOfferInput struct {
	Actor       identity.Principal
	OfferID     uint
	Price       *int64
	Description *string
	ServiceName *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateOffer struct {
	repo domain.Repository
}

func NewUpdateOffer(repo domain.Repository) *UpdateOffer {
	return &UpdateOffer{repo: repo}
}

func (uc *UpdateOffer) Execute(
	ctx context.Context,
	in UpdateOfferInput,
) (*models.ProviderOffer, error) {

	var updated *models.ProviderOffer

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		o, err := tx.LockOffer(ctx, in.OfferID)
		if err != nil {
			return err
		}

		if err := policy.Authorize(in.Actor, policy.ActionOfferUpdate, policy.Resource{
			OwnerID: o.ProviderID,
		}).Err(); err != nil {
			return err
		}

		patch := domain.Patch{
			Price:       in.Price,
			Description: in.Description,
		}

		if in.ServiceName != nil {
			service, err := catalog.ResolveService(ctx, tx, catalog.ServiceRef{Name: *in.ServiceName})
			if err != nil {
				return err
			}
			if service.ID != o.ServiceID {
				existing, err := tx.FindOffer(ctx, o.ProviderID, service.ID)
				if err != nil {
					return err
				}
				if existing != nil {
					return domain.ErrDuplicate()
				}
			}
			patch.ServiceID = &service.ID
		}

		if err := patch.Apply(o); err != nil {
			return err
		}

		if err := tx.UpdateOffer(ctx, o); err != nil {
			return err
		}

		if err := tx.RecordEvent(ctx, audit.Event{
			ActorID:  &in.Actor.ID,
			Action:   audit.ActionOfferUpdated,
			Entity:   "offer",
			EntityID: &o.ID,
		}); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
