package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Directory / catalog / offers
// --------------------------------------------------

func (r *BookingGormRepository) ResolveUser(ctx context.Context, id uint) (*models.User, error) {
	return resolveUser(ctx, r.db, id)
}

func (r *BookingGormRepository) RoleOf(ctx context.Context, id uint) (identity.Role, error) {
	return roleOf(ctx, r.db, id)
}

func (r *BookingGormRepository) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	return getServiceByID(ctx, r.db, id)
}

func (r *BookingGormRepository) GetServiceByName(ctx context.Context, name catalog.ServiceName) (*models.Service, error) {
	return getServiceByName(ctx, r.db, string(name))
}

func (r *BookingGormRepository) HasOffer(
	ctx context.Context,
	providerID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProviderOffer{}).
		Where("provider_id = ? AND service_id = ?", providerID, serviceID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("has offer: %w", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error; err != nil {
		if isForeignKeyViolation(err) {
			return errDanglingReference()
		}
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, lookupErr(err, "booking_not_found", "Booking not found.")
	}
	return &b, nil
}

func (r *BookingGormRepository) LockBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, id).Error; err != nil {
		return nil, lookupErr(err, "booking_not_found", "Booking not found.")
	}
	return &b, nil
}

func (r *BookingGormRepository) SaveTransition(
	ctx context.Context,
	b *models.Booking,
	from domain.Status,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, string(from)).
		Updates(map[string]any{
			"status":      b.Status,
			"provider_id": b.ProviderID,
		})
	if res.Error != nil {
		return false, fmt.Errorf("save booking transition: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {
	return r.list(ctx, r.db.Where("customer_id = ?", customerID))
}

func (r *BookingGormRepository) ListBookingsForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Booking, error) {
	return r.list(ctx, r.db.Where("provider_id = ?", providerID))
}

func (r *BookingGormRepository) ListOpenBookingsForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Booking, error) {

	offered := r.db.
		Model(&models.ProviderOffer{}).
		Select("service_id").
		Where("provider_id = ?", providerID)

	return r.list(ctx, r.db.
		Where("status = ?", string(domain.StatusPending)).
		Where("service_id IN (?)", offered))
}

func (r *BookingGormRepository) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	return r.list(ctx, r.db)
}

func (r *BookingGormRepository) list(ctx context.Context, q *gorm.DB) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := q.WithContext(ctx).
		Preload("Service").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (r *BookingGormRepository) RecordEvent(ctx context.Context, ev audit.Event) error {
	if err := audit.New(r.db).Log(ctx, ev); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
