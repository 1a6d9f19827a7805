package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandomoreu/mercadillo/internal/apperror"
	handler "github.com/nandomoreu/mercadillo/internal/handler/http"
	"github.com/nandomoreu/mercadillo/internal/handler/http/dto"
	"github.com/nandomoreu/mercadillo/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// asAccount fakes an authenticated identity the way the auth middleware does.
func asAccount(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("accountID", id)
		c.Next()
	}
}

func setupAccountRouter(h handler.AccountHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.Register)
	r.GET("/activate", h.Activate)
	r.PUT("/me", asAccount(1), h.UpdateAccount)
	return r
}

func putJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateAccount(t *testing.T) {
	mockUsecase := mocks.NewMockAccountUsecase()
	r := setupAccountRouter(handler.NewAccountHandler(mockUsecase))

	payload := dto.UpdateProfileRequest{
		Name:     "Alice",
		Surname:  "Doe",
		Email:    "b@x.com",
		Username: "alice",
		Locale:   "Madrid",
	}
	w := putJSON(r, "/me", payload)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "b@x.com", resp.Email)

	// the credential never appears in the public profile
	assert.NotContains(t, w.Body.String(), "password")
	assert.Equal(t, "b@x.com", mockUsecase.LastUpdate.Email)
}

func TestUpdateAccount_Conflict(t *testing.T) {
	mockUsecase := mocks.NewMockAccountUsecase()
	mockUsecase.FailUpdateProfile = apperror.Conflict("username", "bob")
	r := setupAccountRouter(handler.NewAccountHandler(mockUsecase))

	w := putJSON(r, "/me", dto.UpdateProfileRequest{Name: "A", Surname: "B", Email: "a@x.com", Username: "bob"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestUpdateAccount_ValidationDetails(t *testing.T) {
	mockUsecase := mocks.NewMockAccountUsecase()
	mockUsecase.FailUpdateProfile = apperror.Validation([]apperror.FieldError{
		{Field: "name", Reason: "is required"},
	})
	r := setupAccountRouter(handler.NewAccountHandler(mockUsecase))

	w := putJSON(r, "/me", dto.UpdateProfileRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "name", resp.Details[0].Field)
}

func TestUpdateAccount_ServerFaultsStayGeneric(t *testing.T) {
	mockUsecase := mocks.NewMockAccountUsecase()
	mockUsecase.FailUpdateProfile = apperror.Integrity("account 1 does not exist")
	r := setupAccountRouter(handler.NewAccountHandler(mockUsecase))

	w := putJSON(r, "/me", dto.UpdateProfileRequest{Name: "A", Surname: "B", Email: "a@x.com", Username: "alice"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "does not exist")
}

func TestActivate(t *testing.T) {
	mockUsecase := mocks.NewMockAccountUsecase()
	r := setupAccountRouter(handler.NewAccountHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/activate?code=somecode", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "account activated successfully")
	assert.Equal(t, "somecode", mockUsecase.LastCode)
}

func TestActivate_UnknownCodeIsNotAnError(t *testing.T) {
	mockUsecase := mocks.NewMockAccountUsecase()
	mockUsecase.ActivateOutcome = false
	r := setupAccountRouter(handler.NewAccountHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/activate?code=stale", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not activated")
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockAccountUsecase()
	r := setupAccountRouter(handler.NewAccountHandler(mockUsecase))

	payload := dto.RegisterRequest{
		Name:                 "Alice",
		Surname:              "Doe",
		Email:                "a@x.com",
		Username:             "alice",
		Password:             "password123",
		PasswordConfirmation: "password123",
	}
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestUpdateAccount_RequiresAuthentication(t *testing.T) {
	mockUsecase := mocks.NewMockAccountUsecase()
	h := handler.NewAccountHandler(mockUsecase)
	r := gin.New()
	r.PUT("/me", h.UpdateAccount) // no identity in context

	w := putJSON(r, "/me", dto.UpdateProfileRequest{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
