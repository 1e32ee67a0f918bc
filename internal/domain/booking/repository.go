package booking

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Directory / catalog / offers (read only) --------
	identity.Directory

	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	GetServiceByName(ctx context.Context, name catalog.ServiceName) (*models.Service, error)
	HasOffer(ctx context.Context, providerID uint, serviceID uint) (bool, error)

	// -------- Booking --------
	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	// LockBooking reads the booking with a row lock held until the
	// surrounding transaction ends.
	LockBooking(ctx context.Context, id uint) (*models.Booking, error)

	// SaveTransition writes b.Status and b.ProviderID only if the stored
	// status still equals from. It reports false when another writer got
	// there first.
	SaveTransition(ctx context.Context, b *models.Booking, from Status) (bool, error)

	ListBookingsForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error)
	ListBookingsForProvider(ctx context.Context, providerID uint) ([]models.Booking, error)
	ListOpenBookingsForProvider(ctx context.Context, providerID uint) ([]models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)

	// -------- Audit --------
	RecordEvent(ctx context.Context, ev audit.Event) error
}
