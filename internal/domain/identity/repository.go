package identity

import (
	"context"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// Directory is the read-only view other components use for ownership checks.
type Directory interface {
	ResolveUser(ctx context.Context, id uint) (*models.User, error)
	RoleOf(ctx context.Context, id uint) (Role, error)
}

type Repository interface {
	Directory

	Transaction(ctx context.Context, fn func(tx Repository) error) error

	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
	UsernameTaken(ctx context.Context, username string, exceptID uint) (bool, error)

	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error

	// DeleteUserCascade removes the user's offers, every booking the user is
	// customer or provider on, and finally the user row.
	DeleteUserCascade(ctx context.Context, id uint) error

	RecordEvent(ctx context.Context, ev audit.Event) error
}
