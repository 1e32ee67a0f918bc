package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

var (
	customer = identity.Principal{ID: 1, Role: identity.RoleCustomer}
	provider = identity.Principal{ID: 2, Role: identity.RoleProvider}
	other    = identity.Principal{ID: 3, Role: identity.RoleProvider}
	admin    = identity.Principal{ID: 9, Role: identity.RoleAdmin}
)

func uptr(v uint) *uint { return &v }

func TestAuthorize_UnknownCaller(t *testing.T) {
	d := Authorize(identity.Principal{}, ActionBookingCreate, Resource{})
	assert.False(t, d.Allowed)

	d = Authorize(identity.Principal{ID: 1, Role: "root"}, ActionBookingCreate, Resource{})
	assert.False(t, d.Allowed)
}

func TestAuthorize_Offers(t *testing.T) {
	assert.True(t, Authorize(provider, ActionOfferCreate, Resource{}).Allowed)
	assert.False(t, Authorize(customer, ActionOfferCreate, Resource{}).Allowed)
	assert.False(t, Authorize(admin, ActionOfferCreate, Resource{}).Allowed)

	owned := Resource{OwnerID: provider.ID}
	assert.True(t, Authorize(provider, ActionOfferUpdate, owned).Allowed)
	assert.True(t, Authorize(provider, ActionOfferDelete, owned).Allowed)
	assert.False(t, Authorize(other, ActionOfferUpdate, owned).Allowed)
	assert.False(t, Authorize(other, ActionOfferDelete, owned).Allowed)
}

func TestAuthorize_AcceptReject(t *testing.T) {
	withOffer := Resource{CustomerID: customer.ID, Pending: true, ProviderHasOffer: true}
	withoutOffer := Resource{CustomerID: customer.ID, Pending: true}

	for _, action := range []Action{ActionBookingAccept, ActionBookingReject} {
		assert.True(t, Authorize(provider, action, withOffer).Allowed, action)
		assert.False(t, Authorize(provider, action, withoutOffer).Allowed, action)
		assert.False(t, Authorize(customer, action, withOffer).Allowed, action)
		assert.False(t, Authorize(admin, action, withOffer).Allowed, action)
	}
}

func TestAuthorize_Cancel(t *testing.T) {
	res := Resource{CustomerID: customer.ID, ProviderID: uptr(provider.ID)}

	assert.True(t, Authorize(customer, ActionBookingCancel, res).Allowed)
	assert.True(t, Authorize(admin, ActionBookingCancel, res).Allowed)
	assert.False(t, Authorize(provider, ActionBookingCancel, res).Allowed)
	assert.False(t, Authorize(identity.Principal{ID: 4, Role: identity.RoleCustomer}, ActionBookingCancel, res).Allowed)
}

func TestAuthorize_Complete(t *testing.T) {
	res := Resource{CustomerID: customer.ID, ProviderID: uptr(provider.ID)}

	assert.True(t, Authorize(provider, ActionBookingComplete, res).Allowed)
	assert.True(t, Authorize(admin, ActionBookingComplete, res).Allowed)
	assert.False(t, Authorize(other, ActionBookingComplete, res).Allowed)
	assert.False(t, Authorize(customer, ActionBookingComplete, res).Allowed)
	assert.False(t, Authorize(provider, ActionBookingComplete, Resource{CustomerID: customer.ID}).Allowed)
}

func TestAuthorize_Read(t *testing.T) {
	pending := Resource{CustomerID: customer.ID, Pending: true}

	assert.True(t, Authorize(customer, ActionBookingRead, pending).Allowed)
	assert.True(t, Authorize(admin, ActionBookingRead, pending).Allowed)
	assert.False(t, Authorize(provider, ActionBookingRead, pending).Allowed)

	pending.ProviderHasOffer = true
	assert.True(t, Authorize(provider, ActionBookingRead, pending).Allowed)

	accepted := Resource{CustomerID: customer.ID, ProviderID: uptr(provider.ID), ProviderHasOffer: true}
	assert.True(t, Authorize(provider, ActionBookingRead, accepted).Allowed)
	assert.False(t, Authorize(other, ActionBookingRead, accepted).Allowed)
}

func TestAuthorize_Lists(t *testing.T) {
	assert.True(t, Authorize(customer, ActionBookingListCustomer, Resource{OwnerID: customer.ID}).Allowed)
	assert.False(t, Authorize(customer, ActionBookingListCustomer, Resource{OwnerID: 42}).Allowed)
	assert.True(t, Authorize(admin, ActionBookingListProvider, Resource{OwnerID: provider.ID}).Allowed)

	assert.True(t, Authorize(provider, ActionBookingListOpen, Resource{}).Allowed)
	assert.False(t, Authorize(customer, ActionBookingListOpen, Resource{}).Allowed)

	assert.True(t, Authorize(admin, ActionBookingListAll, Resource{}).Allowed)
	assert.False(t, Authorize(provider, ActionBookingListAll, Resource{}).Allowed)
	assert.True(t, Authorize(admin, ActionAuditRead, Resource{}).Allowed)
	assert.False(t, Authorize(customer, ActionAuditRead, Resource{}).Allowed)
}

func TestAuthorize_Users(t *testing.T) {
	self := Resource{OwnerID: customer.ID}
	assert.True(t, Authorize(customer, ActionUserUpdate, self).Allowed)
	assert.True(t, Authorize(admin, ActionUserDelete, self).Allowed)
	assert.False(t, Authorize(provider, ActionUserDelete, self).Allowed)
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, Decision{Allowed: true}.Err())

	err := Authorize(customer, ActionOfferCreate, Resource{}).Err()
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
}

func TestAuthorize_UnknownAction(t *testing.T) {
	assert.False(t, Authorize(admin, Action("booking:teleport"), Resource{}).Allowed)
}
