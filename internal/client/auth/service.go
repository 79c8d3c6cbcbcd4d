// Package auth управляет учётными данными клиента: регистрация, вход,
// хранение токенов и их прозрачное обновление по refresh token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/iudanet/zametka/internal/client/api"
	"github.com/iudanet/zametka/internal/client/storage"
	"github.com/iudanet/zametka/internal/validation"
	"github.com/iudanet/zametka/pkg/api"
)

// ErrNotAuthenticated is returned when no usable credentials are stored.
var ErrNotAuthenticated = errors.New("not authenticated")

//go:generate moq -out api_mock.go . AuthAPI

// AuthAPI describes the remote auth endpoints the service needs.
type AuthAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.AuthResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

// expirySkew — запас до истечения access token, после которого
// токен считается просроченным и обновляется заранее.
const expirySkew = 30 * time.Second

// Service handles registration, login and token lifecycle. It also
// implements sync.TokenSource: AccessToken refreshes the access token
// transparently when it is about to expire.
type Service struct {
	api    AuthAPI
	store  storage.AuthStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(authAPI AuthAPI, store storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		api:    authAPI,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Register регистрирует нового пользователя и сохраняет полученные токены.
func (s *Service) Register(ctx context.Context, email, password string) (*storage.AuthData, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Register(ctx, api.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.saveTokens(ctx, resp)
}

// Login выполняет аутентификацию пользователя и сохраняет токены.
func (s *Service) Login(ctx context.Context, email, password string) (*storage.AuthData, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.saveTokens(ctx, resp)
}

// Logout revokes the session on the server (best effort) and removes
// stored credentials. Local credentials go away even when the server
// call fails: недоступный сервер не должен запирать пользователя.
func (s *Service) Logout(ctx context.Context) error {
	auth, err := s.store.GetAuth(ctx)
	if err == nil && auth.AccessToken != "" {
		if err := s.api.Logout(ctx, auth.AccessToken); err != nil {
			s.logger.Warn("server logout failed, clearing local session anyway", "error", err)
		}
	}

	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("delete auth data: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether stored credentials exist.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.store.IsAuthenticated(ctx)
}

// CurrentEmail returns the email of the logged-in user.
func (s *Service) CurrentEmail(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", err
	}
	return auth.Email, nil
}

// AccessToken returns a valid access token, refreshing it first when
// it has expired or is about to. An invalid refresh token clears the
// stored session and yields ErrNotAuthenticated.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("get auth data: %w", err)
	}

	if auth.AccessToken != "" && s.now().Unix() < auth.ExpiresAt-int64(expirySkew.Seconds()) {
		return auth.AccessToken, nil
	}

	if auth.RefreshToken == "" {
		return "", ErrNotAuthenticated
	}

	resp, err := s.api.Refresh(ctx, auth.RefreshToken)
	if err != nil {
		if errors.Is(err, clientapi.ErrUnauthorized) {
			// Refresh token отозван или истёк, сессия мертва
			s.logger.Info("refresh token rejected, clearing session")
			if delErr := s.store.DeleteAuth(ctx); delErr != nil && !errors.Is(delErr, storage.ErrAuthNotFound) {
				s.logger.Warn("delete stale auth data failed", "error", delErr)
			}
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("refresh token: %w", err)
	}

	saved, err := s.saveTokens(ctx, resp)
	if err != nil {
		return "", err
	}
	return saved.AccessToken, nil
}

func (s *Service) saveTokens(ctx context.Context, resp *api.AuthResponse) (*storage.AuthData, error) {
	auth := &storage.AuthData{
		Email:        resp.User.Email,
		UserID:       resp.User.ID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresAt:    s.now().Unix() + resp.ExpiresIn,
	}

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("save auth data: %w", err)
	}
	return auth, nil
}
