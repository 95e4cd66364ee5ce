package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", Protected(testSecret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(UserIDKey).(string))
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestProtectedValidToken(t *testing.T) {
	app := newProtectedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, BearerSchema+token)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedMissingHeader(t *testing.T) {
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil), -1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedWrongScheme(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedWrongSecret(t *testing.T) {
	app := newProtectedApp()
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, BearerSchema+token)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedExpiredToken(t *testing.T) {
	app := newProtectedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, BearerSchema+token)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedMissingSubject(t *testing.T) {
	app := newProtectedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, BearerSchema+token)
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
