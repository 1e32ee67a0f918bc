package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

// AcceptBooking binds the calling provider to a pending booking. Only one of
// several concurrent accepts can win; the rest see InvalidTransition.
type AcceptBooking struct {
	t transition
}

func NewAcceptBooking(repo domain.Repository) *AcceptBooking {
	return &AcceptBooking{
		t: transition{
			repo:        repo,
			event:       domain.EventAccept,
			action:      policy.ActionBookingAccept,
			auditAction: audit.ActionBookingAccepted,
		},
	}
}

func (uc *AcceptBooking) Execute(
	ctx context.Context,
	actor identity.Principal,
	bookingID uint,
) (*models.Booking, error) {
	return uc.t.run(ctx, actor, bookingID)
}
