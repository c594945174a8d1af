package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hrmviet/chamcong-go/internal/domain/auth"
	"github.com/hrmviet/chamcong-go/internal/pkg/token"
)

// refreshLeeway refreshes slightly before the hard expiry so a token
// does not expire mid-request.
const refreshLeeway = 30 * time.Second

type AuthServiceImpl struct {
	repo  auth.AuthRepository
	store *token.Store

	mu   sync.Mutex
	pair *auth.TokenPair // in-memory copy of the stored session
}

func NewAuthService(repo auth.AuthRepository, store *token.Store) auth.AuthService {
	return &AuthServiceImpl{
		repo:  repo,
		store: store,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	pair, err := s.repo.Login(ctx, req)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(pair); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.pair = &pair
	return nil
}

// Logout implements auth.AuthService. The local session is cleared even
// when the backend call fails; the device must not stay logged in
// because the network was down.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := s.repo.Logout(ctx); err != nil {
		slog.Warn("backend logout failed, clearing local session anyway", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pair = nil
	return s.store.Clear()
}

// AccessToken implements auth.AuthService and apiclient.TokenSource.
func (s *AuthServiceImpl) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pair == nil {
		pair, err := s.store.Load()
		if err != nil {
			if errors.Is(err, token.ErrNoSession) {
				return "", auth.ErrNotLoggedIn
			}
			return "", err
		}
		s.pair = &pair
	}

	if !expired(*s.pair, time.Now()) {
		return s.pair.AccessToken, nil
	}

	pair, err := s.repo.Refresh(ctx, s.pair.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			s.pair = nil
			if clearErr := s.store.Clear(); clearErr != nil {
				slog.Warn("failed to clear expired session", "error", clearErr)
			}
		}
		return "", err
	}

	if err := s.store.Save(pair); err != nil {
		return "", fmt.Errorf("failed to persist refreshed session: %w", err)
	}
	s.pair = &pair
	return pair.AccessToken, nil
}

// expired consults both the backend-reported expiry and the token's own
// exp claim, treating the pair as expired when either says so. An
// unparsable token defers to the backend-reported timestamp alone.
func expired(pair auth.TokenPair, now time.Time) bool {
	deadline := now.Add(refreshLeeway)

	if pair.ExpiresAt > 0 && !deadline.Before(time.Unix(pair.ExpiresAt, 0)) {
		return true
	}

	exp, err := token.Expiry(pair.AccessToken)
	if err != nil || exp.IsZero() {
		return false
	}
	return !deadline.Before(exp)
}
