package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

// transition runs one lifecycle event against a locked booking row. The
// checks run in a fixed order: existence, authorization, then the state
// guard.
type transition struct {
	repo        domain.Repository
	event       domain.Event
	action      policy.Action
	auditAction string
}

func (t transition) run(
	ctx context.Context,
	actor identity.Principal,
	bookingID uint,
) (*models.Booking, error) {

	var out *models.Booking

	err := t.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1. Load + lock
		// --------------------------------------------------
		b, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 2. Authorize
		// --------------------------------------------------
		res, err := bookingResource(ctx, tx, actor, b)
		if err != nil {
			return err
		}
		if err := policy.Authorize(actor, t.action, res).Err(); err != nil {
			return err
		}

		// --------------------------------------------------
		// 3. State guard + write
		// --------------------------------------------------
		from, err := domain.Apply(b, t.event, actor.ID)
		if err != nil {
			return err
		}

		ok, err := tx.SaveTransition(ctx, b, from)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrInvalidTransition(
				"invalid_transition",
				"Booking was modified by another request.",
			)
		}

		// --------------------------------------------------
		// 4. Audit
		// --------------------------------------------------
		if err := tx.RecordEvent(ctx, audit.Event{
			ActorID:  &actor.ID,
			Action:   t.auditAction,
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{"from": string(from), "to": b.Status},
		}); err != nil {
			return err
		}

		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// bookingResource builds the policy view of b. The offer lookup only runs for
// provider callers on pending bookings, the one case where it decides.
func bookingResource(
	ctx context.Context,
	repo domain.Repository,
	actor identity.Principal,
	b *models.Booking,
) (policy.Resource, error) {

	res := policy.Resource{
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		Pending:    domain.Status(b.Status) == domain.StatusPending,
	}

	if actor.Role == identity.RoleProvider {
		has, err := repo.HasOffer(ctx, actor.ID, b.ServiceID)
		if err != nil {
			return res, err
		}
		res.ProviderHasOffer = has
	}

	return res, nil
}
