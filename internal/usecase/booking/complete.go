package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

type CompleteBooking struct {
	t transition
}

func NewCompleteBooking(repo domain.Repository) *CompleteBooking {
	return &CompleteBooking{
		t: transition{
			repo:        repo,
			event:       domain.EventComplete,
			action:      policy.ActionBookingComplete,
			auditAction: audit.ActionBookingCompleted,
		},
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	actor identity.Principal,
	bookingID uint,
) (*models.Booking, error) {
	return uc.t.run(ctx, actor, bookingID)
}
