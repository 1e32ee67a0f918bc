package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/db/dbtest"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

func TestSaveTransition_CompareAndSet(t *testing.T) {
	db := dbtest.Seeded(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	customer := dbtest.User(t, db, "carla", "customer")
	provider := dbtest.User(t, db, "pedro", "provider")

	b := &models.Booking{
		ServiceID:  dbtest.Service(t, db, catalog.ServicePlumbing).ID,
		CustomerID: customer.ID,
		Status:     string(domain.StatusPending),
	}
	require.NoError(t, repo.CreateBooking(ctx, b))

	b.Status = string(domain.StatusAccepted)
	b.ProviderID = &provider.ID

	ok, err := repo.SaveTransition(ctx, b, domain.StatusPending)
	require.NoError(t, err)
	assert.True(t, ok)

	// Stale source status: nothing is written.
	b.Status = string(domain.StatusRejected)
	ok, err = repo.SaveTransition(ctx, b, domain.StatusPending)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAccepted), stored.Status)
	assert.Equal(t, provider.ID, *stored.ProviderID)
}

func TestBookingRepository_NotFound(t *testing.T) {
	repo := NewBookingGormRepository(dbtest.Open(t))

	_, err := repo.LockBooking(context.Background(), 1)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	db := dbtest.Seeded(t)
	repo := NewBookingGormRepository(db)
	customer := dbtest.User(t, db, "carla", "customer")
	cleaning := dbtest.Service(t, db, catalog.ServiceCleaning)

	// Only tx may be used inside the callback: the test pool has one
	// connection.
	err := repo.Transaction(context.Background(), func(tx domain.Repository) error {
		if err := tx.CreateBooking(context.Background(), &models.Booking{
			ServiceID:  cleaning.ID,
			CustomerID: customer.ID,
			Status:     string(domain.StatusPending),
		}); err != nil {
			return err
		}
		return httperr.ErrForbidden("forbidden", "no")
	})
	require.Error(t, err)

	assert.Zero(t, dbtest.Count(t, db, &models.Booking{}))
}

func TestOfferRepository_UniqueIndexBackstop(t *testing.T) {
	db := dbtest.Seeded(t)
	repo := NewOfferGormRepository(db)
	provider := dbtest.User(t, db, "pedro", "provider")
	service := dbtest.Service(t, db, catalog.ServicePlumbing)

	o := &models.ProviderOffer{ProviderID: provider.ID, ServiceID: service.ID, Price: 1, Description: "a"}
	require.NoError(t, repo.CreateOffer(context.Background(), o))

	dup := &models.ProviderOffer{ProviderID: provider.ID, ServiceID: service.ID, Price: 2, Description: "b"}
	err := repo.CreateOffer(context.Background(), dup)
	assert.True(t, httperr.IsBusiness(err, "duplicate_offer"))
}

func TestCreate_DanglingReferences(t *testing.T) {
	db := dbtest.Seeded(t)
	ctx := context.Background()
	customer := dbtest.User(t, db, "carla", "customer")
	plumbing := dbtest.Service(t, db, catalog.ServicePlumbing)

	bookings := NewBookingGormRepository(db)

	err := bookings.CreateBooking(ctx, &models.Booking{
		ServiceID:  plumbing.ID,
		CustomerID: 9999,
		Status:     string(domain.StatusPending),
	})
	assert.True(t, httperr.IsBusiness(err, "reference_not_found"), "customer: %v", err)

	err = bookings.CreateBooking(ctx, &models.Booking{
		ServiceID:  9999,
		CustomerID: customer.ID,
		Status:     string(domain.StatusPending),
	})
	assert.True(t, httperr.IsBusiness(err, "reference_not_found"), "service: %v", err)

	err = NewOfferGormRepository(db).CreateOffer(ctx, &models.ProviderOffer{
		ProviderID:  9999,
		ServiceID:   plumbing.ID,
		Price:       1,
		Description: "a",
	})
	assert.True(t, httperr.IsBusiness(err, "reference_not_found"), "provider: %v", err)

	assert.Zero(t, dbtest.Count(t, db, &models.Booking{}))
	assert.Zero(t, dbtest.Count(t, db, &models.ProviderOffer{}))
}

func TestDeleteService_RestrictedWhileBooked(t *testing.T) {
	db := dbtest.Seeded(t)
	customer := dbtest.User(t, db, "carla", "customer")
	plumbing := dbtest.Service(t, db, catalog.ServicePlumbing)

	require.NoError(t, NewBookingGormRepository(db).CreateBooking(context.Background(), &models.Booking{
		ServiceID:  plumbing.ID,
		CustomerID: customer.ID,
		Status:     string(domain.StatusPending),
	}))

	assert.Error(t, db.Delete(&models.Service{}, plumbing.ID).Error)
}
