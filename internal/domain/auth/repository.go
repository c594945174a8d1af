package auth

import "context"

// AuthRepository forwards credential exchanges to the backend.
type AuthRepository interface {
	Login(ctx context.Context, req LoginRequest) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context) error
}
