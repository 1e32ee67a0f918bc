package identity

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/service-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

type SignIn struct {
	repo   domain.Repository
	tokens TokenIssuer
}

func NewSignIn(repo domain.Repository, tokens TokenIssuer) *SignIn {
	return &SignIn{repo: repo, tokens: tokens}
}

func (uc *SignIn) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, string, error) {

	user, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return nil, "", errInvalidCredentials()
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errInvalidCredentials()
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func errInvalidCredentials() error {
	return httperr.ErrUnauthorized("invalid_credentials", "Invalid email or password.")
}
