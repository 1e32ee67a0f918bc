// Package policy holds the single authorization decision every mutating
// operation consults: owner match, role match or admin override.
package policy

import (
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

type Action string

const (
	ActionOfferCreate Action = "offer:create"
	ActionOfferUpdate Action = "offer:update"
	ActionOfferDelete Action = "offer:delete"

	ActionBookingCreate       Action = "booking:create"
	ActionBookingAccept       Action = "booking:accept"
	ActionBookingReject       Action = "booking:reject"
	ActionBookingCancel       Action = "booking:cancel"
	ActionBookingComplete     Action = "booking:complete"
	ActionBookingRead         Action = "booking:read"
	ActionBookingListCustomer Action = "booking:list_customer"
	ActionBookingListProvider Action = "booking:list_provider"
	ActionBookingListOpen     Action = "booking:list_open"
	ActionBookingListAll      Action = "booking:list_all"

	ActionUserUpdate Action = "user:update"
	ActionUserDelete Action = "user:delete"

	ActionAuditRead Action = "audit:read"
)

// Resource describes the record an action targets. Only the fields relevant
// to the action need to be filled.
type Resource struct {
	// OwnerID is the owning user of an offer or user record, or the subject
	// user id of a list query.
	OwnerID uint

	CustomerID uint
	ProviderID *uint

	// Pending is true when the booking is still waiting for a provider.
	Pending bool

	// ProviderHasOffer is true when the acting provider has an offer for the
	// booking's service.
	ProviderHasOffer bool
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err converts a denial into a Forbidden business error.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return httperr.ErrForbidden("forbidden", d.Reason)
}

func Authorize(actor identity.Principal, action Action, res Resource) Decision {
	if actor.ID == 0 || !actor.Role.Valid() {
		return deny("Unknown caller.")
	}

	switch action {
	case ActionOfferCreate:
		if actor.Role != identity.RoleProvider {
			return deny("Only providers can publish offers.")
		}
		return allow()

	case ActionOfferUpdate, ActionOfferDelete:
		if res.OwnerID != actor.ID {
			return deny("You do not have permission to modify this offer.")
		}
		return allow()

	case ActionBookingCreate:
		return allow()

	case ActionBookingAccept, ActionBookingReject:
		if actor.Role != identity.RoleProvider {
			return deny("Only providers can accept or reject bookings.")
		}
		if !res.ProviderHasOffer {
			return deny("You do not offer this service.")
		}
		return allow()

	case ActionBookingCancel:
		if actor.IsAdmin() || res.CustomerID == actor.ID {
			return allow()
		}
		return deny("Only the customer who booked can cancel.")

	case ActionBookingComplete:
		if actor.IsAdmin() || isAssigned(actor, res.ProviderID) {
			return allow()
		}
		return deny("Only the assigned provider can complete this booking.")

	case ActionBookingRead:
		if actor.IsAdmin() || res.CustomerID == actor.ID || isAssigned(actor, res.ProviderID) {
			return allow()
		}
		if actor.Role == identity.RoleProvider && res.Pending && res.ProviderHasOffer {
			return allow()
		}
		return deny("You do not have access to this booking.")

	case ActionBookingListCustomer, ActionBookingListProvider:
		if actor.IsAdmin() || res.OwnerID == actor.ID {
			return allow()
		}
		return deny("You can only list your own bookings.")

	case ActionBookingListOpen:
		if actor.Role != identity.RoleProvider {
			return deny("Only providers can list open bookings.")
		}
		return allow()

	case ActionUserUpdate, ActionUserDelete:
		if actor.IsAdmin() || res.OwnerID == actor.ID {
			return allow()
		}
		return deny("You can only modify your own account.")

	case ActionBookingListAll, ActionAuditRead:
		if actor.IsAdmin() {
			return allow()
		}
		return deny("Admin only.")
	}

	return deny("Unknown action.")
}

func isAssigned(actor identity.Principal, providerID *uint) bool {
	return providerID != nil && *providerID == actor.ID
}
