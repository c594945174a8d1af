package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hrmviet/chamcong-go/internal/domain/auth"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
)

type authRepository struct {
	client *apiclient.Client
}

func NewAuthRepository(client *apiclient.Client) auth.AuthRepository {
	return &authRepository{client: client}
}

// Login implements auth.AuthRepository.
func (r *authRepository) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPair{}, err
	}

	var pair auth.TokenPair
	if err := r.client.PostPublic(ctx, "/api/v1/auth/login/employee-code", req, &pair); err != nil {
		if apiclient.IsStatus(err, http.StatusUnauthorized) {
			return auth.TokenPair{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPair{}, fmt.Errorf("login failed: %w", err)
	}
	return pair, nil
}

// Refresh implements auth.AuthRepository.
func (r *authRepository) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	var pair auth.TokenPair
	req := auth.RefreshRequest{RefreshToken: refreshToken}
	if err := r.client.PostPublic(ctx, "/api/v1/auth/refresh", req, &pair); err != nil {
		if apiclient.IsStatus(err, http.StatusUnauthorized) {
			return auth.TokenPair{}, auth.ErrSessionExpired
		}
		return auth.TokenPair{}, fmt.Errorf("token refresh failed: %w", err)
	}
	return pair, nil
}

// Logout implements auth.AuthRepository.
func (r *authRepository) Logout(ctx context.Context) error {
	if err := r.client.Post(ctx, "/api/v1/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}
