package identity

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

// ======================================================
// GET
// ======================================================

type GetUser struct {
	repo domain.Directory
}

func NewGetUser(repo domain.Directory) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	return uc.repo.ResolveUser(ctx, id)
}

// ======================================================
// UPDATE
// ======================================================

// UpdateProfileInput is a partial update; nil fields are kept.
type UpdateProfileInput struct {
	Actor    domain.Principal
	UserID   uint
	Username *string
	Email    *string
	Phone    *string
	Address  *string
}

type UpdateProfile struct {
	repo domain.Repository
}

func NewUpdateProfile(repo domain.Repository) *UpdateProfile {
	return &UpdateProfile{repo: repo}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in UpdateProfileInput,
) (*models.User, error) {

	var updated *models.User

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		u, err := tx.ResolveUser(ctx, in.UserID)
		if err != nil {
			return err
		}

		if err := policy.Authorize(in.Actor, policy.ActionUserUpdate, policy.Resource{
			OwnerID: u.ID,
		}).Err(); err != nil {
			return err
		}

		if in.Username != nil {
			username := strings.TrimSpace(*in.Username)
			if username == "" {
				return httperr.ErrInvalidInput("missing_username", "Username cannot be empty.")
			}
			u.Username = username
		}
		if in.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*in.Email))
			if !validators.IsEmailWellFormed(email) {
				return httperr.ErrInvalidInput("invalid_email", "Email address is not valid.")
			}
			u.Email = email
		}
		if in.Phone != nil {
			u.Phone = strings.TrimSpace(*in.Phone)
		}
		if in.Address != nil {
			u.Address = strings.TrimSpace(*in.Address)
		}

		if err := ensureUnique(ctx, tx, u.Username, u.Email, u.ID); err != nil {
			return err
		}

		if err := tx.UpdateUser(ctx, u); err != nil {
			return err
		}

		if err := tx.RecordEvent(ctx, audit.Event{
			ActorID:  &in.Actor.ID,
			Action:   audit.ActionUserUpdated,
			Entity:   "user",
			EntityID: &u.ID,
		}); err != nil {
			return err
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteUser struct {
	repo domain.Repository
}

func NewDeleteUser(repo domain.Repository) *DeleteUser {
	return &DeleteUser{repo: repo}
}

// Execute removes the user together with their offers and every booking they
// take part in.
func (uc *DeleteUser) Execute(
	ctx context.Context,
	actor domain.Principal,
	userID uint,
) error {

	return uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		u, err := tx.ResolveUser(ctx, userID)
		if err != nil {
			return err
		}

		if err := policy.Authorize(actor, policy.ActionUserDelete, policy.Resource{
			OwnerID: u.ID,
		}).Err(); err != nil {
			return err
		}

		if err := tx.DeleteUserCascade(ctx, u.ID); err != nil {
			return err
		}

		return tx.RecordEvent(ctx, audit.Event{
			ActorID:  &actor.ID,
			Action:   audit.ActionUserDeleted,
			Entity:   "user",
			EntityID: &u.ID,
			Metadata: map[string]any{"username": u.Username},
		})
	})
}
