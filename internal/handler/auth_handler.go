package handler

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/logger"
	"doc-quiz/internal/middleware"
	"doc-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const oauthStateCookieName = "oauthstate"

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// DemoLogin godoc
// @Summary Log in as the demo user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.TokenResponse
// @Router /auth/demo [post]
func (h *AuthHandler) DemoLogin(c *fiber.Ctx) error {
	resp, err := h.authService.DemoLogin(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GoogleLogin godoc
// @Summary Initiate Google Login
// @Description Redirects the user to Google's OAuth2 consent page.
// @Tags auth
// @Success 307 {string} string "Redirects to Google"
// @Failure 403 {object} dto.ErrorResponse "Google login not configured"
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return domain.NewInternalError("could not generate oauth state", err)
	}
	state := base64.RawURLEncoding.EncodeToString(b)

	loginURL, err := h.authService.GoogleLoginURL(state)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
	logger.Get().Debug("Google login initiated")
	return c.Redirect(loginURL, fiber.StatusTemporaryRedirect)
}

// GoogleCallback godoc
// @Summary Google OAuth2 Callback
// @Description Completes Google login and issues an access token.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State string for CSRF protection"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return domain.NewInvalidInputError("authorization code is missing")
	}
	expected := c.Cookies(oauthStateCookieName)
	c.ClearCookie(oauthStateCookieName)

	resp, err := h.authService.HandleGoogleCallback(c.UserContext(), code, c.Query("state"), expected)
	if err != nil {
		logger.Get().Warn("Google callback failed", zap.Error(err))
		return err
	}
	return c.JSON(resp)
}

// GetMe godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me [get]
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domain.NewUnauthorizedError("authentication required")
	}
	return c.JSON(dto.UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	})
}
