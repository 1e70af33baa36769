package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"million/internal/delivery/api/validator"
	"million/internal/domain/entity"
	mockusecase "million/internal/mocks/usecase"
	"million/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	authUC  *mockusecase.MockAuthUsecase
	handler *AuthHandler
	echo    *echo.Echo
}

func createTestAuthHandler(t *testing.T) *authHandlerFixtures {
	t.Helper()

	authUC := mockusecase.NewMockAuthUsecase(t)

	e := echo.New()
	e.Validator = validator.New()

	return &authHandlerFixtures{
		authUC: authUC,
		handler: NewAuthHandler(AuthHandlerParams{
			AuthUC: authUC,
			Logger: slog.Default(),
		}),
		echo: e,
	}
}

func (f *authHandlerFixtures) post(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func TestAuthHandler_Register_DefaultsRoleToOwner(t *testing.T) {
	f := createTestAuthHandler(t)

	f.authUC.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Role == entity.RoleOwner
	})).Return(&usecase.AuthOutput{Token: "tok"}, nil)

	c, rec := f.post("/auth/register", `{"email":"ana@example.com","password":"secret-123","fullName":"Ana Pérez"}`)

	require.NoError(t, f.handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_Register_PassesThroughExplicitRole(t *testing.T) {
	f := createTestAuthHandler(t)

	f.authUC.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Role == "Viewer"
	})).Return(&usecase.AuthOutput{Token: "tok"}, nil)

	c, rec := f.post("/auth/register", `{"email":"ana@example.com","password":"secret-123","fullName":"Ana Pérez","role":"Viewer"}`)

	require.NoError(t, f.handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
