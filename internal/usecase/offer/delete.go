package offer

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/offer"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

type DeleteOffer struct {
	repo domain.Repository
}

func NewDeleteOffer(repo domain.Repository) *DeleteOffer {
	return &DeleteOffer{repo: repo}
}

func (uc *DeleteOffer) Execute(
	ctx context.Context,
	actor identity.Principal,
	offerID uint,
) error {

	return uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		o, err := tx.LockOffer(ctx, offerID)
		if err != nil {
			return err
		}

		if err := policy.Authorize(actor, policy.ActionOfferDelete, policy.Resource{
			OwnerID: o.ProviderID,
		}).Err(); err != nil {
			return err
		}

		if err := tx.DeleteOffer(ctx, o.ID); err != nil {
			return err
		}

		return tx.RecordEvent(ctx, audit.Event{
			ActorID:  &actor.ID,
			Action:   audit.ActionOfferDeleted,
			Entity:   "offer",
			EntityID: &o.ID,
			Metadata: map[string]any{"service_id": o.ServiceID},
		})
	})
}
