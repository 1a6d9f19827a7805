package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandomoreu/mercadillo/internal/handler/http/dto"
	"github.com/nandomoreu/mercadillo/internal/handler/http/middleware"
	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

// AccountHandlerInterface defines the methods for the account handler to
// allow interface-based dependency injection in tests.
type AccountHandlerInterface interface {
	Register(*gin.Context)
	UpdateAccount(*gin.Context)
	Activate(*gin.Context)
}

// Ensure AccountHandler implements AccountHandlerInterface
var _ AccountHandlerInterface = (*AccountHandler)(nil)

type AccountHandler struct {
	accountUsecase usecasecontract.IAccountUseCase
}

func NewAccountHandler(accountUsecase usecasecontract.IAccountUseCase) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
	}
}

// Register handles account registration
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	account, err := h.accountUsecase.Register(c.Request.Context(), usecasecontract.Registration{
		Name:                 req.Name,
		Surname:              req.Surname,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Username:             req.Username,
		Locale:               req.Locale,
	})
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToAccountResponse(*account))
}

// UpdateAccount handles the profile update workflow for the authenticated account
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "not authenticated"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	account, err := h.accountUsecase.UpdateProfile(c.Request.Context(), accountID, usecasecontract.ProfileUpdate{
		Name:                 req.Name,
		Surname:              req.Surname,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Username:             req.Username,
		Locale:               req.Locale,
	})
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToAccountResponse(*account))
}

// Activate consumes a verification code from the query string. An unknown or
// expired code is a recognized outcome, not a failure.
func (h *AccountHandler) Activate(c *gin.Context) {
	code := c.Query("code")

	activated, err := h.accountUsecase.Activate(c.Request.Context(), code)
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	if !activated {
		MessageHandler(c, http.StatusOK, "account not activated: the verification code is invalid or has expired")
		return
	}
	MessageHandler(c, http.StatusOK, "account activated successfully")
}
