package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return s.AuthenticateFunc(ctx, token)
}

func tokenAuthenticator() *stubAuthenticator {
	return &stubAuthenticator{AuthenticateFunc: func(_ context.Context, token string) (*domain.User, error) {
		if token == "good" {
			return &domain.User{ID: "user-1"}, nil
		}
		return nil, domain.NewUnauthorizedError("invalid or expired token")
	}}
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func whoAmI(c *fiber.Ctx) error {
	if user := middleware.CurrentUser(c); user != nil {
		return c.SendString(user.ID)
	}
	return c.SendString("anonymous")
}

func do(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(middleware.AuthorizationHeader, authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestProtected(t *testing.T) {
	app := newApp()
	app.Get("/", middleware.Protected(tokenAuthenticator()), whoAmI)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"rejected token", "Bearer bad", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, tt.header)
			assert.Equal(t, tt.status, status)
			if status == http.StatusOK {
				assert.Equal(t, "user-1", body)
				return
			}
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, string(domain.CodeUnauthorized), resp.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	app := newApp()
	app.Get("/", middleware.OptionalAuth(tokenAuthenticator()), whoAmI)

	for header, want := range map[string]string{
		"Bearer good": "user-1",
		"Bearer bad":  "anonymous",
		"":            "anonymous",
		"Token good":  "anonymous",
	} {
		status, body := do(t, app, header)
		assert.Equal(t, http.StatusOK, status, header)
		assert.Equal(t, want, body, header)
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		details map[string]interface{}
	}{
		{"not found with path", domain.NewPathNotFoundError("domain folder not found", "/docs/cobol"), http.StatusNotFound, "NOT_FOUND", map[string]interface{}{"path": "/docs/cobol"}},
		{"generation error", domain.NewGenerationError("failed to generate questions via AI", errors.New("overloaded")), http.StatusInternalServerError, "GENERATION_ERROR", map[string]interface{}{"error": "overloaded"}},
		{"invalid input", domain.NewInvalidInputError("bad topic"), http.StatusBadRequest, "INVALID_INPUT", nil},
		{"forbidden", domain.NewForbiddenError("nope"), http.StatusForbidden, "FORBIDDEN", nil},
		{"persistence", domain.NewPersistenceError("save failed", errors.New("disk")), http.StatusInternalServerError, "PERSISTENCE_ERROR", nil},
		{"fiber error", fiber.NewError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_ERROR", nil},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Use(middleware.RequestLogger())
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			status, body := do(t, app, "")
			assert.Equal(t, tt.status, status)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.details, resp.Details)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := newApp()
	app.Get("/", func(c *fiber.Ctx) error {
		return domain.ValidationErrors{domain.NewMissingFieldError("domainId")}
	})

	status, body := do(t, app, "")
	assert.Equal(t, http.StatusBadRequest, status)

	var resp middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "domainId", resp.Errors[0].Field)
}

func TestStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, middleware.StatusForCode(domain.CodeOutOfRange))
	assert.Equal(t, http.StatusInternalServerError, middleware.StatusForCode(domain.CodeGeneration))
}
