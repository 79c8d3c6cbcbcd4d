package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/zametka/internal/client/api"
	"github.com/iudanet/zametka/internal/client/storage"
	"github.com/iudanet/zametka/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authResponse() *api.AuthResponse {
	return &api.AuthResponse{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		ExpiresIn:    900,
		User:         api.User{ID: 1, Email: "alice@example.com"},
	}
}

func TestService_Register(t *testing.T) {
	var saved *storage.AuthData

	apiMock := &AuthAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			return authResponse(), nil
		},
	}
	store := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			saved = auth
			return nil
		},
	}

	svc := NewService(apiMock, store, testLogger())

	auth, err := svc.Register(context.Background(), "alice@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "access-1", auth.AccessToken)
	require.NotNil(t, saved)
	assert.Equal(t, int64(1), saved.UserID)
	assert.Greater(t, saved.ExpiresAt, time.Now().Unix())
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(&AuthAPIMock{}, &storage.AuthStorageMock{}, testLogger())

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "bad email", email: "not-an-email", password: "password123"},
		{name: "short password", email: "alice@example.com", password: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestService_Login(t *testing.T) {
	apiMock := &AuthAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			return authResponse(), nil
		},
	}
	store := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error { return nil },
	}

	svc := NewService(apiMock, store, testLogger())

	auth, err := svc.Login(context.Background(), "alice@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", auth.Email)
	require.Len(t, store.SaveAuthCalls(), 1)
}

func TestService_Logout_ClearsLocalEvenIfServerFails(t *testing.T) {
	apiMock := &AuthAPIMock{
		LogoutFunc: func(ctx context.Context, accessToken string) error {
			return errors.New("server unreachable")
		},
	}
	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{AccessToken: "access-1"}, nil
		},
		DeleteAuthFunc: func(ctx context.Context) error { return nil },
	}

	svc := NewService(apiMock, store, testLogger())

	err := svc.Logout(context.Background())

	require.NoError(t, err)
	require.Len(t, store.DeleteAuthCalls(), 1)
}

func TestService_AccessToken_Valid(t *testing.T) {
	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				AccessToken:  "still-good",
				RefreshToken: "refresh-1",
				ExpiresAt:    time.Now().Add(time.Hour).Unix(),
			}, nil
		},
	}
	apiMock := &AuthAPIMock{}

	svc := NewService(apiMock, store, testLogger())

	token, err := svc.AccessToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "still-good", token)
	assert.Empty(t, apiMock.RefreshCalls())
}

func TestService_AccessToken_RefreshesExpired(t *testing.T) {
	var saved *storage.AuthData

	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				Email:        "alice@example.com",
				AccessToken:  "expired",
				RefreshToken: "refresh-1",
				ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
			}, nil
		},
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			saved = auth
			return nil
		},
	}
	apiMock := &AuthAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*api.AuthResponse, error) {
			assert.Equal(t, "refresh-1", refreshToken)
			resp := authResponse()
			resp.AccessToken = "fresh"
			resp.RefreshToken = "refresh-2"
			return resp, nil
		},
	}

	svc := NewService(apiMock, store, testLogger())

	token, err := svc.AccessToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	// Новая пара токенов сохраняется в хранилище
	require.NotNil(t, saved)
	assert.Equal(t, "refresh-2", saved.RefreshToken)
}

func TestService_AccessToken_RejectedRefreshClearsSession(t *testing.T) {
	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				AccessToken:  "expired",
				RefreshToken: "revoked",
				ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
			}, nil
		},
		DeleteAuthFunc: func(ctx context.Context) error { return nil },
	}
	apiMock := &AuthAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*api.AuthResponse, error) {
			return nil, fmt.Errorf("refresh request failed: %w", clientapi.ErrUnauthorized)
		},
	}

	svc := NewService(apiMock, store, testLogger())

	_, err := svc.AccessToken(context.Background())

	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.Len(t, store.DeleteAuthCalls(), 1)
}

func TestService_AccessToken_NoAuth(t *testing.T) {
	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		},
	}

	svc := NewService(&AuthAPIMock{}, store, testLogger())

	_, err := svc.AccessToken(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
