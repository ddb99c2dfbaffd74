package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/animal-catalog/internal/domain"
	apperrors "github.com/spec-kit/animal-catalog/pkg/util/errorutil"
)

func newProtectedApp(tokens *TokenIssuer) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Code)
		},
	})
	mw := NewAuthMiddleware(tokens)
	whoami := func(c *fiber.Ctx) error {
		p, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		return c.SendString(p.Identity.Username + ":" + string(p.Identity.Role))
	}
	app.Get("/me", mw.Handle, RequireAnyRole(), whoami)
	app.Get("/admin", mw.Handle, RequireRole(domain.RoleAdmin), whoami)
	return app
}

func doGet(t *testing.T, app *fiber.App, path, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := NewTokenIssuer("test-secret")
	app := newProtectedApp(tokens)

	customer, _, err := tokens.Issue(IdentityClaims{Sub: "c-1", Role: domain.RoleCustomer, Username: "alice"})
	require.NoError(t, err)
	admin, _, err := tokens.Issue(IdentityClaims{Sub: "a-1", Role: domain.RoleAdmin, Username: "bob"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{"missing header", "/me", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong scheme", "/me", "Basic " + customer, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"garbage token", "/me", "Bearer nope", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"customer on me", "/me", "Bearer " + customer, http.StatusOK, "alice:customer"},
		{"lowercase scheme", "/me", "bearer " + admin, http.StatusOK, "bob:admin"},
		{"customer on admin", "/admin", "Bearer " + customer, http.StatusForbidden, "FORBIDDEN"},
		{"admin on admin", "/admin", "Bearer " + admin, http.StatusOK, "bob:admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doGet(t, app, tt.path, tt.header)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestAuthMiddlewareWithoutSecret(t *testing.T) {
	app := newProtectedApp(NewTokenIssuer(""))

	status, body := doGet(t, app, "/me", "Bearer abc.def.ghi")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "CONFIGURATION_ERROR", body)
}
