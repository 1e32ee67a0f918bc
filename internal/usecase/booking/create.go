package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor   identity.Principal
	Service catalog.ServiceRef
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := policy.Authorize(in.Actor, policy.ActionBookingCreate, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	var created *models.Booking

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		// A token can outlive its user.
		if _, err := tx.ResolveUser(ctx, in.Actor.ID); err != nil {
			return err
		}

		service, err := catalog.ResolveService(ctx, tx, in.Service)
		if err != nil {
			return err
		}

		b := &models.Booking{
			ServiceID:  service.ID,
			CustomerID: in.Actor.ID,
			Status:     string(domain.InitialStatus()),
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		if err := tx.RecordEvent(ctx, audit.Event{
			ActorID:  &in.Actor.ID,
			Action:   audit.ActionBookingCreated,
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{"service": service.Name},
		}); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
