package booking

import (
	"context"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/dto"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
)

// ======================================================
// BY CUSTOMER
// ======================================================

type ListBookingsForCustomer struct {
	repo domain.Repository
}

func NewListBookingsForCustomer(repo domain.Repository) *ListBookingsForCustomer {
	return &ListBookingsForCustomer{repo: repo}
}

func (uc *ListBookingsForCustomer) Execute(
	ctx context.Context,
	actor identity.Principal,
	customerID uint,
) ([]dto.BookingListDTO, error) {

	if err := policy.Authorize(actor, policy.ActionBookingListCustomer, policy.Resource{
		OwnerID: customerID,
	}).Err(); err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.BookingList(bookings), nil
}

// ======================================================
// BY PROVIDER
// ======================================================

type ListBookingsForProvider struct {
	repo domain.Repository
}

func NewListBookingsForProvider(repo domain.Repository) *ListBookingsForProvider {
	return &ListBookingsForProvider{repo: repo}
}

func (uc *ListBookingsForProvider) Execute(
	ctx context.Context,
	actor identity.Principal,
	providerID uint,
) ([]dto.BookingListDTO, error) {

	if err := policy.Authorize(actor, policy.ActionBookingListProvider, policy.Resource{
		OwnerID: providerID,
	}).Err(); err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return dto.BookingList(bookings), nil
}

// ======================================================
// OPEN (pending bookings a provider can pick up)
// ======================================================

type ListOpenBookings struct {
	repo domain.Repository
}

func NewListOpenBookings(repo domain.Repository) *ListOpenBookings {
	return &ListOpenBookings{repo: repo}
}

func (uc *ListOpenBookings) Execute(
	ctx context.Context,
	actor identity.Principal,
) ([]dto.BookingListDTO, error) {

	if err := policy.Authorize(actor, policy.ActionBookingListOpen, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListOpenBookingsForProvider(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.BookingList(bookings), nil
}

// ======================================================
// ALL (admin)
// ======================================================

type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(
	ctx context.Context,
	actor identity.Principal,
) ([]dto.BookingListDTO, error) {

	if err := policy.Authorize(actor, policy.ActionBookingListAll, policy.Resource{}).Err(); err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	return dto.BookingList(bookings), nil
}
