package auth

import "context"

// AuthService owns the on-device session: login persists the token pair,
// AccessToken hands out a valid token (refreshing when expired), Logout
// clears the session.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) error
	Logout(ctx context.Context) error

	// AccessToken returns a usable access token or ErrNotLoggedIn /
	// ErrSessionExpired. Implements apiclient.TokenSource.
	AccessToken(ctx context.Context) (string, error)
}
