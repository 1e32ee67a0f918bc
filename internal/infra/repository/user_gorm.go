package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UserGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *UserGormRepository) ResolveUser(ctx context.Context, id uint) (*models.User, error) {
	return resolveUser(ctx, r.db, id)
}

func (r *UserGormRepository) RoleOf(ctx context.Context, id uint) (domain.Role, error) {
	return roleOf(ctx, r.db, id)
}

// resolveUser and roleOf back the Directory half of every repository that
// needs to confirm a caller still exists.
func resolveUser(ctx context.Context, db *gorm.DB, id uint) (*models.User, error) {
	var u models.User
	if err := db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, lookupErr(err, "user_not_found", "User not found.")
	}
	return &u, nil
}

func roleOf(ctx context.Context, db *gorm.DB, id uint) (domain.Role, error) {
	u, err := resolveUser(ctx, db, id)
	if err != nil {
		return "", err
	}
	return domain.ParseRole(u.Role)
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, lookupErr(err, "user_not_found", "User not found.")
	}
	return &u, nil
}

func (r *UserGormRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	return r.taken(ctx, "email = ?", email, exceptID)
}

func (r *UserGormRepository) UsernameTaken(ctx context.Context, username string, exceptID uint) (bool, error) {
	return r.taken(ctx, "username = ?", username, exceptID)
}

func (r *UserGormRepository) taken(ctx context.Context, cond string, value string, exceptID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(cond, value).
		Where("id <> ?", exceptID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check unique user field: %w", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("duplicate_user", "Username or email already taken.")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserGormRepository) UpdateUser(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).
		Model(u).
		Select("username", "email", "phone", "address", "updated_at").
		Updates(u).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("duplicate_user", "Username or email already taken.")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserGormRepository) DeleteUserCascade(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)

	if err := db.
		Where("customer_id = ? OR provider_id = ?", id, id).
		Delete(&models.Booking{}).Error; err != nil {
		return fmt.Errorf("delete user bookings: %w", err)
	}

	if err := db.
		Where("provider_id = ?", id).
		Delete(&models.ProviderOffer{}).Error; err != nil {
		return fmt.Errorf("delete user offers: %w", err)
	}

	res := db.Delete(&models.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("user_not_found", "User not found.")
	}
	return nil
}

func (r *UserGormRepository) RecordEvent(ctx context.Context, ev audit.Event) error {
	if err := audit.New(r.db).Log(ctx, ev); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
