package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/example/storefront/internal/clientstate"
)

// Profile is the client-held view of the signed-in user.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Store keeps the session's bearer token and user profile, persisted under
// the well-known storage keys and rehydrated once at session start.
type Store struct {
	mu      sync.RWMutex
	storage clientstate.Storage
	token   string
	profile *Profile
	loaded  bool
}

func NewStore(storage clientstate.Storage) *Store {
	return &Store{storage: storage}
}

// Load rehydrates token and profile from storage. Only the first call reads.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}
	s.loaded = true

	tokenData, ok, err := s.storage.Get(ctx, clientstate.TokenKey)
	if err != nil {
		return fmt.Errorf("failed to load token: %w", err)
	}
	if !ok {
		return nil
	}

	profileData, ok, err := s.storage.Get(ctx, clientstate.UserKey)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		// A token without a profile is unusable; treat as signed out.
		return nil
	}

	var profile Profile
	if err := json.Unmarshal(profileData, &profile); err != nil {
		return fmt.Errorf("failed to decode saved profile: %w", err)
	}

	s.token = string(tokenData)
	s.profile = &profile
	return nil
}

// SignIn stores the credentials and persists them synchronously.
func (s *Store) SignIn(ctx context.Context, token string, profile Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.storage.Set(ctx, clientstate.TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if err := s.storage.Set(ctx, clientstate.UserKey, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	s.token = token
	s.profile = &profile
	return nil
}

// SignOut drops the credentials from memory and storage.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.profile = nil

	if err := s.storage.Delete(ctx, clientstate.TokenKey); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if err := s.storage.Delete(ctx, clientstate.UserKey); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Profile returns the stored user profile, or nil when signed out.
func (s *Store) Profile() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// IsAuthenticated reports whether both a token and a profile are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.profile != nil
}
