package middleware

import (
	"context"
	"strings"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserKey             = "user" // *domain.User in fiber.Ctx locals
)

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(UserKey).(*domain.User)
	return user
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(AuthorizationHeader)
	if !strings.HasPrefix(header, BearerSchema) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerSchema))
	return token, token != ""
}

// Protected rejects requests without a valid bearer token.
func Protected(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(AuthorizationHeader) == "" {
			return domain.NewUnauthorizedError("authorization header is missing")
		}
		token, ok := bearerToken(c)
		if !ok {
			return domain.NewUnauthorizedError("authorization scheme must be Bearer")
		}

		user, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}
		c.Locals(UserKey, user)
		return c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and otherwise
// continues anonymously.
func OptionalAuth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		user, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			logger.Get().Debug("OptionalAuth: token rejected, proceeding as anonymous", zap.Error(err))
			return c.Next()
		}
		c.Locals(UserKey, user)
		return c.Next()
	}
}
