package service

import (
	"context"
	"encoding/json"
	"fmt"

	"tavolo/internal/model"
	"tavolo/internal/storage"
)

const sessionKey = "@current_user"

// Session persists the signed-in user across restarts. It is the only
// non-collection state in the store, and the only component allowed to
// touch the session key; everything else receives the user explicitly.
type Session struct {
	store storage.Store
}

// NewSession creates the session over the given store.
func NewSession(store storage.Store) *Session {
	return &Session{store: store}
}

// SignIn records u as the active user.
func (s *Session) SignIn(ctx context.Context, u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := s.store.Set(ctx, sessionKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Current returns the active user, or ok=false when nobody is signed in.
func (s *Session) Current(ctx context.Context) (model.User, bool, error) {
	var u model.User
	raw, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return u, false, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok || raw == "" {
		return u, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return u, false, &DecodeError{Key: sessionKey, Err: err}
	}
	return u, true, nil
}

// SignOut clears the active user. The key stays present with an empty value
// because the store contract has no delete.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.store.Set(ctx, sessionKey, ""); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
