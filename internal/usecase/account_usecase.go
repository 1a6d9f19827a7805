package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nandomoreu/mercadillo/internal/apperror"
	"github.com/nandomoreu/mercadillo/internal/domain/contract"
	"github.com/nandomoreu/mercadillo/internal/domain/entity"
	"github.com/nandomoreu/mercadillo/internal/infrastructure/metrics"
	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

// ProfileRules constrains the full profile field set. Password is optional
// here: an omitted password means the stored credential is kept.
var ProfileRules = usecasecontract.Rules{
	"name":                  "required,alphanum,max=30",
	"surname":               "required,alphanum,max=30",
	"email":                 "required,email",
	"username":              "required,alphanum,min=3,max=30",
	"password":              "omitempty,min=8,max=20",
	"password_confirmation": "eqfield=password",
	"locale":                "omitempty",
}

// PasswordRules is the stronger password-only rule set applied when a new
// credential is actually being set.
var PasswordRules = usecasecontract.Rules{
	"password":              "required,min=8,max=30",
	"password_confirmation": "eqfield=password",
}

// RegistrationRules reuses the profile constraints with a mandatory password.
var RegistrationRules = usecasecontract.Rules{
	"name":                  "required,alphanum,max=30",
	"surname":               "required,alphanum,max=30",
	"email":                 "required,email",
	"username":              "required,alphanum,min=3,max=30",
	"password":              "required,min=8,max=20",
	"password_confirmation": "eqfield=password",
	"locale":                "omitempty",
}

// ActivationRules constrains the verification code parameter.
var ActivationRules = usecasecontract.Rules{
	"code": fmt.Sprintf("required,len=%d", entity.VerificationCodeLength),
}

// AccountUsecase implements the account workflows: registration, profile
// update with conditional re-verification, and activation.
type AccountUsecase struct {
	accountRepo contract.IAccountRepository
	notifier    contract.IVerificationNotifier
	hasher      contract.IHasher
	codeGen     contract.ICodeGenerator
	uuidGen     contract.IUUIDGenerator
	validator   usecasecontract.IValidator
	logger      usecasecontract.IAppLogger
	config      usecasecontract.IConfigProvider
}

// NewAccountUsecase creates a new AccountUsecase instance.
func NewAccountUsecase(
	accountRepo contract.IAccountRepository,
	notifier contract.IVerificationNotifier,
	hasher contract.IHasher,
	codeGen contract.ICodeGenerator,
	uuidGen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *AccountUsecase {
	return &AccountUsecase{
		accountRepo: accountRepo,
		notifier:    notifier,
		hasher:      hasher,
		codeGen:     codeGen,
		uuidGen:     uuidGen,
		validator:   validator,
		logger:      logger,
		config:      cfg,
	}
}

// check if AccountUsecase implements the IAccountUseCase
var _ usecasecontract.IAccountUseCase = (*AccountUsecase)(nil)

// UpdateProfile runs the account update workflow. Uniqueness checks and
// credential resolution happen strictly before any mutation; the email-change
// side effect (notify, then replace the live verification code) runs against
// the new address and precedes the single persisting update, so a failure at
// any step leaves no partial state visible.
func (uc *AccountUsecase) UpdateProfile(ctx context.Context, accountID int64, update usecasecontract.ProfileUpdate) (*entity.Account, error) {
	values := map[string]string{
		"name":                  update.Name,
		"surname":               update.Surname,
		"email":                 update.Email,
		"username":              update.Username,
		"password":              update.Password,
		"password_confirmation": update.PasswordConfirmation,
		"locale":                update.Locale,
	}
	if err := uc.validator.Validate(values, ProfileRules); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		uc.logger.Errorf("failed to load account %d for update: %v", accountID, err)
		return nil, apperror.Transient(err)
	}
	if account == nil {
		// The id comes from an authenticated context, so a miss here is a
		// server-side integrity fault rather than a user error.
		uc.logger.Errorf("authenticated account %d missing from storage", accountID)
		return nil, apperror.Integrity(fmt.Sprintf("account %d does not exist", accountID))
	}

	byEmail, err := uc.accountRepo.GetAccountByEmail(ctx, update.Email)
	if err != nil {
		uc.logger.Errorf("failed to check email uniqueness: %v", err)
		return nil, apperror.Transient(err)
	}
	if byEmail != nil && byEmail.ID != accountID {
		return nil, apperror.Conflict("email", update.Email)
	}

	byUsername, err := uc.accountRepo.GetAccountByUsername(ctx, update.Username)
	if err != nil {
		uc.logger.Errorf("failed to check username uniqueness: %v", err)
		return nil, apperror.Transient(err)
	}
	if byUsername != nil && byUsername.ID != accountID {
		return nil, apperror.Conflict("username", update.Username)
	}

	passwordHash := account.PasswordHash
	if update.Password != "" {
		passwordValues := map[string]string{
			"password":              update.Password,
			"password_confirmation": update.PasswordConfirmation,
		}
		if err := uc.validator.Validate(passwordValues, PasswordRules); err != nil {
			return nil, err
		}
		passwordHash, err = uc.hasher.HashPassword(update.Password)
		if err != nil {
			uc.logger.Errorf("failed to hash password for account %d: %v", accountID, err)
			return nil, apperror.Transient(err)
		}
	}

	if update.Email != account.Email {
		if err := uc.issueVerification(ctx, accountID, update.Name, update.Email, "email_change"); err != nil {
			return nil, err
		}
	}

	fields := entity.ProfileFields{
		Name:         update.Name,
		Surname:      update.Surname,
		Email:        update.Email,
		Username:     update.Username,
		Locale:       update.Locale,
		PasswordHash: passwordHash,
	}
	if err := uc.accountRepo.UpdateProfile(ctx, accountID, fields); err != nil {
		uc.logger.Errorf("failed to persist profile for account %d: %v", accountID, err)
		return nil, apperror.Transient(err)
	}

	account.Name = fields.Name
	account.Surname = fields.Surname
	account.Email = fields.Email
	account.Username = fields.Username
	account.Locale = fields.Locale
	account.PasswordHash = fields.PasswordHash
	account.UpdatedAt = time.Now()
	return account, nil
}

// Register creates an inactive account and issues its first verification code.
func (uc *AccountUsecase) Register(ctx context.Context, reg usecasecontract.Registration) (*entity.Account, error) {
	values := map[string]string{
		"name":                  reg.Name,
		"surname":               reg.Surname,
		"email":                 reg.Email,
		"username":              reg.Username,
		"password":              reg.Password,
		"password_confirmation": reg.PasswordConfirmation,
		"locale":                reg.Locale,
	}
	if err := uc.validator.Validate(values, RegistrationRules); err != nil {
		return nil, err
	}

	byEmail, err := uc.accountRepo.GetAccountByEmail(ctx, reg.Email)
	if err != nil {
		uc.logger.Errorf("failed to check email uniqueness: %v", err)
		return nil, apperror.Transient(err)
	}
	if byEmail != nil {
		return nil, apperror.Conflict("email", reg.Email)
	}

	byUsername, err := uc.accountRepo.GetAccountByUsername(ctx, reg.Username)
	if err != nil {
		uc.logger.Errorf("failed to check username uniqueness: %v", err)
		return nil, apperror.Transient(err)
	}
	if byUsername != nil {
		return nil, apperror.Conflict("username", reg.Username)
	}

	passwordHash, err := uc.hasher.HashPassword(reg.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password for new account: %v", err)
		return nil, apperror.Transient(err)
	}

	account := &entity.Account{
		Name:         reg.Name,
		Surname:      reg.Surname,
		Email:        reg.Email,
		Username:     reg.Username,
		Locale:       reg.Locale,
		PasswordHash: passwordHash,
		IsActive:     false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uc.accountRepo.CreateAccount(ctx, account); err != nil {
		uc.logger.Errorf("failed to create account: %v", err)
		return nil, apperror.Transient(err)
	}

	if err := uc.issueVerification(ctx, account.ID, account.Name, account.Email, "register"); err != nil {
		return nil, err
	}
	return account, nil
}

// Activate consumes a verification code. Unknown or expired codes produce a
// plain "not activated" outcome rather than an error, which also makes the
// operation safe to retry with an already-consumed code.
func (uc *AccountUsecase) Activate(ctx context.Context, code string) (bool, error) {
	if err := uc.validator.Validate(map[string]string{"code": code}, ActivationRules); err != nil {
		return false, err
	}

	verification, err := uc.accountRepo.GetActiveVerification(ctx, code)
	if err != nil {
		uc.logger.Errorf("failed to look up verification code: %v", err)
		return false, apperror.Transient(err)
	}
	if verification == nil || verification.Expired(time.Now()) {
		return false, nil
	}

	if err := uc.accountRepo.MarkAccountActive(ctx, verification.AccountID); err != nil {
		uc.logger.Errorf("failed to activate account %d: %v", verification.AccountID, err)
		return false, apperror.Transient(err)
	}
	if err := uc.accountRepo.DeleteVerification(ctx, verification.ID); err != nil {
		uc.logger.Errorf("failed to consume verification code for account %d: %v", verification.AccountID, err)
		return false, apperror.Transient(err)
	}
	return true, nil
}

// issueVerification generates a fresh code, delivers it, and only then
// replaces the account's live code. Replacement is an upsert keyed by account,
// so there is never a visible window with zero or two codes, and a failed
// delivery leaves no orphaned record.
func (uc *AccountUsecase) issueVerification(ctx context.Context, accountID int64, name, email, trigger string) error {
	code, err := uc.codeGen.GenerateCode(entity.VerificationCodeLength)
	if err != nil {
		uc.logger.Errorf("failed to generate verification code: %v", err)
		return apperror.Transient(err)
	}

	if err := uc.notifier.SendVerification(ctx, name, email, code); err != nil {
		uc.logger.Errorf("failed to send verification code to %s: %v", email, err)
		return apperror.Transient(err)
	}

	now := time.Now().UTC()
	verification := &entity.VerificationCode{
		ID:        uc.uuidGen.NewUUID(),
		AccountID: accountID,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.config.GetVerificationCodeExpiry()),
	}
	if err := uc.accountRepo.ReplaceVerificationCode(ctx, verification); err != nil {
		uc.logger.Errorf("failed to replace verification code for account %d: %v", accountID, err)
		return apperror.Transient(err)
	}
	metrics.VerificationCodesIssued.WithLabelValues(trigger).Inc()
	return nil
}
