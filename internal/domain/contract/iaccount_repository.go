package contract

import (
	"context"

	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

type IAccountRepository interface {
	CreateAccount(ctx context.Context, account *entity.Account) error
	GetAccountByID(ctx context.Context, id int64) (*entity.Account, error)
	// GetAccountByEmail retrieves an account by email.
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	// GetAccountByUsername retrieves an account by username.
	GetAccountByUsername(ctx context.Context, username string) (*entity.Account, error)
	// UpdateProfile persists the full profile field set for the account in a
	// single update.
	UpdateProfile(ctx context.Context, id int64, fields entity.ProfileFields) error
	// ReplaceVerificationCode upserts the live code for the account, removing
	// any prior one. After it returns there is exactly one live code.
	ReplaceVerificationCode(ctx context.Context, code *entity.VerificationCode) error
	// GetActiveVerification retrieves the live, unexpired code matching the
	// token, or nil when no such code exists.
	GetActiveVerification(ctx context.Context, code string) (*entity.VerificationCode, error)
	// MarkAccountActive flips the account's activation state.
	MarkAccountActive(ctx context.Context, id int64) error
	// DeleteVerification consumes a code by its document ID.
	DeleteVerification(ctx context.Context, id string) error
}
