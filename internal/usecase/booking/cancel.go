package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

type CancelBooking struct {
	t transition
}

func NewCancelBooking(repo domain.Repository) *CancelBooking {
	return &CancelBooking{
		t: transition{
			repo:        repo,
			event:       domain.EventCancel,
			action:      policy.ActionBookingCancel,
			auditAction: audit.ActionBookingCanceled,
		},
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor identity.Principal,
	bookingID uint,
) (*models.Booking, error) {
	return uc.t.run(ctx, actor, bookingID)
}
