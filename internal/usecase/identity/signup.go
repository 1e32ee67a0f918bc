package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

const minPasswordLen = 6

type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

// ======================================================
// INPUT
// ======================================================

type SignUpInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Address         string
	Role            string
}

// ======================================================
// USE CASE
// ======================================================

type SignUp struct {
	repo   domain.Repository
	tokens TokenIssuer

	// checkDomain is consulted after the syntax check; nil skips it.
	checkDomain func(email string) bool
}

func NewSignUp(
	repo domain.Repository,
	tokens TokenIssuer,
	checkDomain func(email string) bool,
) *SignUp {
	return &SignUp{
		repo:        repo,
		tokens:      tokens,
		checkDomain: checkDomain,
	}
}

func (uc *SignUp) Execute(
	ctx context.Context,
	in SignUpInput,
) (*models.User, string, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)

	if username == "" || email == "" || in.Password == "" ||
		in.ConfirmPassword == "" || phone == "" || address == "" {
		return nil, "", httperr.ErrInvalidInput(
			"missing_fields",
			"Username, email, password, confirm_password, phone and address are required.",
		)
	}
	if len(in.Password) < minPasswordLen {
		return nil, "", httperr.ErrInvalidInput(
			"weak_password",
			"Password must have at least 6 characters.",
		)
	}
	if in.Password != in.ConfirmPassword {
		return nil, "", httperr.ErrInvalidInput("password_mismatch", "Passwords do not match.")
	}

	role := domain.RoleCustomer
	if in.Role != "" {
		r, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, "", err
		}
		role = r
	}
	if role == domain.RoleAdmin {
		return nil, "", httperr.ErrInvalidInput(
			"invalid_role",
			"Accounts can only be registered as customer or provider.",
		)
	}

	if !validators.IsEmailWellFormed(email) {
		return nil, "", httperr.ErrInvalidInput("invalid_email", "Email address is not valid.")
	}
	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, "", httperr.ErrInvalidInput(
			"invalid_email_domain",
			"The email domain does not appear to be valid.",
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	// --------------------------------------------------
	// 2. Persist
	// --------------------------------------------------
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        phone,
		Address:      address,
		Role:         string(role),
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := ensureUnique(ctx, tx, user.Username, user.Email, 0); err != nil {
			return err
		}

		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}

		return tx.RecordEvent(ctx, audit.Event{
			ActorID:  &user.ID,
			Action:   audit.ActionUserCreated,
			Entity:   "user",
			EntityID: &user.ID,
			Metadata: map[string]any{"role": user.Role},
		})
	})
	if err != nil {
		return nil, "", err
	}

	// --------------------------------------------------
	// 3. Token
	// --------------------------------------------------
	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func ensureUnique(
	ctx context.Context,
	repo domain.Repository,
	username string,
	email string,
	exceptID uint,
) error {

	taken, err := repo.EmailTaken(ctx, email, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrConflict("duplicate_email", "Email is already registered.")
	}

	taken, err = repo.UsernameTaken(ctx, username, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrConflict("duplicate_username", "Username is already taken.")
	}

	return nil
}
