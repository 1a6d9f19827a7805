package usecasecontract

import (
	"context"

	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

// ProfileUpdate is the candidate field set submitted to UpdateProfile.
// Password is optional: an empty value means "keep the current credential".
type ProfileUpdate struct {
	Name                 string
	Surname              string
	Email                string
	Password             string
	PasswordConfirmation string
	Username             string
	Locale               string
}

// Registration is the field set submitted to Register. Password is required.
type Registration struct {
	Name                 string
	Surname              string
	Email                string
	Password             string
	PasswordConfirmation string
	Username             string
	Locale               string
}

// IAccountUseCase defines the interface for account-related operations.
type IAccountUseCase interface {
	Register(ctx context.Context, reg Registration) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID int64, update ProfileUpdate) (*entity.Account, error)
	// Activate consumes a verification code and flips the owning account
	// active. The boolean reports whether activation happened; an unknown or
	// expired code is a normal outcome, not an error.
	Activate(ctx context.Context, code string) (bool, error)
}
