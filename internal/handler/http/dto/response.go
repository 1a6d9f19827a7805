package dto

import (
	"github.com/nandomoreu/mercadillo/internal/apperror"
	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

// AccountResponse is the public profile view of an account. It never carries
// the credential.
type AccountResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Locale   string `json:"locale,omitempty"`
	IsActive bool   `json:"is_active"`
}

// ToAccountResponse converts an entity.Account to its public profile view.
func ToAccountResponse(account entity.Account) AccountResponse {
	return AccountResponse{
		ID:       account.ID,
		Name:     account.Name,
		Surname:  account.Surname,
		Email:    account.Email,
		Username: account.Username,
		Locale:   account.Locale,
		IsActive: account.IsActive,
	}
}

// MessageResponse is a generic response for plain outcomes.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure shape. Details is only populated for
// validation failures.
type ErrorResponse struct {
	Message string               `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
}
