package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

type RejectBooking struct {
	t transition
}

func NewRejectBooking(repo domain.Repository) *RejectBooking {
	return &RejectBooking{
		t: transition{
			repo:        repo,
			event:       domain.EventReject,
			action:      policy.ActionBookingReject,
			auditAction: audit.ActionBookingRejected,
		},
	}
}

func (uc *RejectBooking) Execute(
	ctx context.Context,
	actor identity.Principal,
	bookingID uint,
) (*models.Booking, error) {
	return uc.t.run(ctx, actor, bookingID)
}
