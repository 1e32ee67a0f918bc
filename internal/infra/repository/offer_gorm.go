package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/offer"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type OfferGormRepository struct {
	db *gorm.DB
}

func NewOfferGormRepository(db *gorm.DB) *OfferGormRepository {
	return &OfferGormRepository{db: db}
}

func (r *OfferGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OfferGormRepository{db: tx})
	})
}

func (r *OfferGormRepository) ResolveUser(ctx context.Context, id uint) (*models.User, error) {
	return resolveUser(ctx, r.db, id)
}

func (r *OfferGormRepository) RoleOf(ctx context.Context, id uint) (identity.Role, error) {
	return roleOf(ctx, r.db, id)
}

func (r *OfferGormRepository) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	return getServiceByID(ctx, r.db, id)
}

func (r *OfferGormRepository) GetServiceByName(ctx context.Context, name catalog.ServiceName) (*models.Service, error) {
	return getServiceByName(ctx, r.db, string(name))
}

// FindOffer returns (nil, nil) when the provider has no offer for the service.
func (r *OfferGormRepository) FindOffer(
	ctx context.Context,
	providerID uint,
	serviceID uint,
) (*models.ProviderOffer, error) {

	var o models.ProviderOffer
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND service_id = ?", providerID, serviceID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find offer: %w", err)
	}
	return &o, nil
}

func (r *OfferGormRepository) GetOffer(ctx context.Context, id uint) (*models.ProviderOffer, error) {
	var o models.ProviderOffer
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, lookupErr(err, "offer_not_found", "Offer not found.")
	}
	return &o, nil
}

func (r *OfferGormRepository) LockOffer(ctx context.Context, id uint) (*models.ProviderOffer, error) {
	var o models.ProviderOffer
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&o, id).Error; err != nil {
		return nil, lookupErr(err, "offer_not_found", "Offer not found.")
	}
	return &o, nil
}

func (r *OfferGormRepository) CreateOffer(ctx context.Context, o *models.ProviderOffer) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate()
		}
		if isForeignKeyViolation(err) {
			return errDanglingReference()
		}
		return fmt.Errorf("create offer: %w", err)
	}
	return nil
}

func (r *OfferGormRepository) UpdateOffer(ctx context.Context, o *models.ProviderOffer) error {
	if err := r.db.WithContext(ctx).
		Model(o).
		Updates(map[string]any{
			"service_id":  o.ServiceID,
			"price":       o.Price,
			"description": o.Description,
		}).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate()
		}
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

func (r *OfferGormRepository) DeleteOffer(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.ProviderOffer{}, id).Error; err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}

func (r *OfferGormRepository) ListOffersForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.ProviderOffer, error) {
	return r.list(ctx, r.db.Where("provider_id = ?", providerID))
}

func (r *OfferGormRepository) ListOffersForService(
	ctx context.Context,
	serviceID uint,
) ([]models.ProviderOffer, error) {
	return r.list(ctx, r.db.Where("service_id = ?", serviceID))
}

func (r *OfferGormRepository) list(ctx context.Context, q *gorm.DB) ([]models.ProviderOffer, error) {
	offers := []models.ProviderOffer{}
	if err := q.WithContext(ctx).
		Preload("Provider").
		Preload("Service").
		Order("id ASC").
		Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

func (r *OfferGormRepository) RecordEvent(ctx context.Context, ev audit.Event) error {
	if err := audit.New(r.db).Log(ctx, ev); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*OfferGormRepository)(nil)
