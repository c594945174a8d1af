// Package token persists the session token pair on disk and inspects
// access-token claims without verifying the signature; verification is
// the backend's job, the client only needs expiry and identity claims.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/hrmviet/chamcong-go/internal/domain/auth"
)

var ErrNoSession = errors.New("no stored session")

// Expiry returns the token's exp claim.
func Expiry(accessToken string) (time.Time, error) {
	tok, err := jwt.ParseString(accessToken, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	return tok.Expiration(), nil
}

// EmployeeID returns the employee_id claim, empty when absent.
func EmployeeID(accessToken string) string {
	tok, err := jwt.ParseString(accessToken, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return ""
	}
	v, ok := tok.Get("employee_id")
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// Store persists the token pair as JSON, owner-readable only.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() (auth.TokenPair, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return auth.TokenPair{}, ErrNoSession
		}
		return auth.TokenPair{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var pair auth.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	if pair.AccessToken == "" {
		return auth.TokenPair{}, ErrNoSession
	}
	return pair, nil
}

func (s *Store) Save(pair auth.TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
