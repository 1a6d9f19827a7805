package mocks

import (
	"context"

	"github.com/nandomoreu/mercadillo/internal/domain/entity"
	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

// MockAccountUsecase is a mock implementation of the IAccountUseCase interface
type MockAccountUsecase struct {
	// Control mock behavior
	FailRegister      error
	FailUpdateProfile error
	FailActivate      error
	ActivateOutcome   bool

	// Return values
	MockAccount entity.Account

	// Captured inputs
	LastUpdate usecasecontract.ProfileUpdate
	LastCode   string
}

// Ensure MockAccountUsecase implements the interface required by the handler
var _ usecasecontract.IAccountUseCase = (*MockAccountUsecase)(nil)

func NewMockAccountUsecase() *MockAccountUsecase {
	return &MockAccountUsecase{
		MockAccount: entity.Account{
			ID:       1,
			Name:     "Alice",
			Surname:  "Doe",
			Email:    "alice@example.com",
			Username: "alice",
			Locale:   "Madrid",
			IsActive: true,
		},
		ActivateOutcome: true,
	}
}

func (m *MockAccountUsecase) Register(ctx context.Context, reg usecasecontract.Registration) (*entity.Account, error) {
	if m.FailRegister != nil {
		return nil, m.FailRegister
	}
	return &m.MockAccount, nil
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, accountID int64, update usecasecontract.ProfileUpdate) (*entity.Account, error) {
	m.LastUpdate = update
	if m.FailUpdateProfile != nil {
		return nil, m.FailUpdateProfile
	}
	updated := m.MockAccount
	updated.ID = accountID
	updated.Name = update.Name
	updated.Surname = update.Surname
	updated.Email = update.Email
	updated.Username = update.Username
	updated.Locale = update.Locale
	return &updated, nil
}

func (m *MockAccountUsecase) Activate(ctx context.Context, code string) (bool, error) {
	m.LastCode = code
	if m.FailActivate != nil {
		return false, m.FailActivate
	}
	return m.ActivateOutcome, nil
}
