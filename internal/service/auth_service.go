package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"doc-quiz/internal/config"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/sync/singleflight"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	tokenIssuer       = "doc-quiz"
)

var (
	ErrInvalidAuthState      = errors.New("invalid oauth state")
	ErrFailedToExchangeToken = errors.New("failed to exchange oauth token")
	ErrFailedToGetUserInfo   = errors.New("failed to get user info from google")
	ErrInvalidJWTToken       = errors.New("invalid jwt token")
)

// AuthService issues and checks access tokens.
type AuthService interface {
	// DemoLogin materializes the demo user and returns a token for it.
	DemoLogin(ctx context.Context) (*dto.TokenResponse, error)
	GoogleLoginURL(state string) (string, error)
	HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (*dto.TokenResponse, error)
	// Authenticate accepts the configured demo token or a signed access token.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	ValidateJWT(tokenString string) (*dto.AuthClaims, error)
	CreateJWT(user *domain.User) (string, error)
}

type authService struct {
	users        domain.UserRepository
	secret       []byte
	ttl          time.Duration
	demoToken    string
	oauth2Config *oauth2.Config
	userInfoURL  string
	// userCreates collapses concurrent get-or-create calls per Google id.
	userCreates singleflight.Group
	now         func() time.Time
}

// AuthOption configures the auth service.
type AuthOption func(*authService)

// WithGoogleEndpoint overrides the OAuth endpoint and user info URL.
func WithGoogleEndpoint(endpoint oauth2.Endpoint, userInfoURL string) AuthOption {
	return func(s *authService) {
		s.oauth2Config.Endpoint = endpoint
		s.userInfoURL = userInfoURL
	}
}

// WithAuthClock replaces time.Now for token timestamps.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates the auth service. An empty JWT secret is replaced by
// a random per-process key, so tokens do not survive a restart.
func NewAuthService(users domain.UserRepository, jwtCfg config.JWTConfig, authCfg config.AuthConfig, opts ...AuthOption) (AuthService, error) {
	if users == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	secret := []byte(jwtCfg.SecretKey)
	if len(secret) == 0 {
		logger.Get().Warn("JWT secret not configured, generating a per-process key")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate jwt secret: %w", err)
		}
	}
	ttl := jwtCfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	s := &authService{
		users:     users,
		secret:    secret,
		ttl:       ttl,
		demoToken: authCfg.DemoToken,
		oauth2Config: &oauth2.Config{
			ClientID:     authCfg.Google.ClientID,
			ClientSecret: authCfg.Google.ClientSecret,
			RedirectURL:  authCfg.Google.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *authService) DemoLogin(ctx context.Context) (*dto.TokenResponse, error) {
	user, err := s.getOrCreate(ctx, domain.NewDemoUser())
	if err != nil {
		return nil, err
	}
	return s.tokenResponse(user)
}

func (s *authService) GoogleLoginURL(state string) (string, error) {
	if s.oauth2Config.ClientID == "" {
		return "", domain.NewForbiddenError("google login is not configured")
	}
	return s.oauth2Config.AuthCodeURL(state), nil
}

func (s *authService) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (*dto.TokenResponse, error) {
	if expectedState == "" || receivedState != expectedState {
		return nil, domain.NewUnauthorizedError(ErrInvalidAuthState.Error())
	}

	googleToken, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		logger.Get().Warn("Google token exchange failed", zap.Error(err))
		return nil, domain.NewError(domain.CodeUnauthorized, ErrFailedToExchangeToken.Error(), err)
	}

	client := s.oauth2Config.Client(ctx, googleToken)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, domain.NewInternalError(ErrFailedToGetUserInfo.Error(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewInternalError(ErrFailedToGetUserInfo.Error(), fmt.Errorf("status %d", resp.StatusCode))
	}

	var info dto.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, domain.NewInternalError("failed to decode user info", err)
	}
	if info.ID == "" || info.Email == "" {
		return nil, domain.NewUnauthorizedError("google user info is incomplete")
	}

	user, err := s.getOrCreate(ctx, &domain.User{
		ID:       uuid.NewString(),
		GoogleID: info.ID,
		Email:    info.Email,
		Name:     info.Name,
		Picture:  info.Picture,
	})
	if err != nil {
		return nil, err
	}
	logger.Get().Info("User logged in via Google OAuth", zap.String("user_id", user.ID))
	return s.tokenResponse(user)
}

// getOrCreate returns the stored user with candidate's Google id, saving
// candidate when none exists.
func (s *authService) getOrCreate(ctx context.Context, candidate *domain.User) (*domain.User, error) {
	v, err, _ := s.userCreates.Do(candidate.GoogleID, func() (interface{}, error) {
		existing, err := s.users.GetByGoogleID(ctx, candidate.GoogleID)
		if err != nil {
			return nil, domain.NewPersistenceError("failed to look up user", err)
		}
		if existing != nil {
			return existing, nil
		}
		if err := s.users.Save(ctx, candidate); err != nil {
			return nil, domain.NewPersistenceError("failed to save user", err)
		}
		logger.Get().Info("User created", zap.String("user_id", candidate.ID))
		return candidate, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.User), nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.NewUnauthorizedError("missing access token")
	}
	if s.demoToken != "" && token == s.demoToken {
		return s.getOrCreate(ctx, domain.NewDemoUser())
	}

	claims, err := s.ValidateJWT(token)
	if err != nil {
		return nil, domain.NewError(domain.CodeUnauthorized, "invalid or expired token", err)
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.NewPersistenceError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewUnauthorizedError("user no longer exists")
	}
	return user, nil
}

func (s *authService) CreateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := dto.AuthClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) ValidateJWT(tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}

func (s *authService) tokenResponse(user *domain.User) (*dto.TokenResponse, error) {
	token, err := s.CreateJWT(user)
	if err != nil {
		return nil, domain.NewInternalError("failed to create access token", err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.ttl.Seconds()),
		User: &dto.UserResponse{
			ID:      user.ID,
			Email:   user.Email,
			Name:    user.Name,
			Picture: user.Picture,
		},
	}, nil
}
