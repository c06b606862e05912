package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/loads-service/internal/api/http"
	"github.com/spec-kit/loads-service/internal/auth"
)

func protectedApp(t *testing.T, tokens *auth.TokenManager) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(httptransport.ErrorHandlingMiddleware(zap.NewNop(), nil))

	middleware := auth.NewAuthMiddleware(tokens)
	app.Post("/protected", middleware.Handle, func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"subject": principal.UserID})
	})
	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	app := protectedApp(t, auth.NewTokenManager("secret", 60))

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("secret", 60)
	token, _, err := tokens.GenerateToken("u1")
	require.NoError(t, err)

	app := protectedApp(t, tokens)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Basic "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	app := protectedApp(t, auth.NewTokenManager("secret", 60))

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("secret", 60)
	token, _, err := tokens.GenerateToken("u1")
	require.NoError(t, err)

	app := protectedApp(t, tokens)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
