package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/playlist-service/pkg/util/errorutil"
)

func newGateApp(t *testing.T, tm *TokenManager) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		},
	})

	gate := NewMiddleware(tm)
	app.Get("/protected", gate.Handle, func(c *fiber.Ctx) error {
		userID, ok := UserIDFromContext(c)
		if !ok {
			t.Error("expected user id in context")
		}
		return c.SendString(userID)
	})
	return app
}

func TestMiddleware(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	t.Run("Missing Header Forbidden", func(t *testing.T) {
		app := newGateApp(t, tm)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", resp.StatusCode)
		}
	})

	t.Run("Invalid Token Unauthorized", func(t *testing.T) {
		app := newGateApp(t, tm)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", resp.StatusCode)
		}
	})

	t.Run("Foreign Secret Unauthorized", func(t *testing.T) {
		app := newGateApp(t, tm)

		foreign := NewTokenManager("another-secret", 60)
		token, _, err := foreign.GenerateToken("user-1")
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", resp.StatusCode)
		}
	})

	t.Run("Valid Token Passes With Identity", func(t *testing.T) {
		app := newGateApp(t, tm)

		token, _, err := tm.GenerateToken("user-42")
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("Bare Token Accepted", func(t *testing.T) {
		app := newGateApp(t, tm)

		token, _, err := tm.GenerateToken("user-42")
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
	})
}
