// Package session owns client-side authentication state: the current user,
// the bearer credential, and their persistence across runs.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/bloghub/bloghub-client/internal/localstore"
)

// ErrInvalidServerResponse is returned when an auth endpoint answered
// successfully but without both a user record and a token.
var ErrInvalidServerResponse = errors.New("invalid response from server")

// AuthError is surfaced to login/register callers. Message carries the
// server-provided error text when one was available, else a generic
// transport-failure description.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Authenticator is the slice of the API gateway the store depends on.
type Authenticator interface {
	Login(ctx context.Context, credentials gateway.Credentials) (gateway.AuthResponse, error)
	Register(ctx context.Context, input gateway.RegisterInput) (gateway.AuthResponse, error)
}

// Persistence is the slice of the local store the store depends on.
type Persistence interface {
	Get(ctx context.Context, key string) (string, error)
	SetPair(ctx context.Context, token, user string) error
	ClearPair(ctx context.Context) error
}

// Store holds the session. In-memory state and persisted state move
// together: mutations persist first and update memory only on success, so
// the two never disagree outside an in-flight auth round-trip.
type Store struct {
	auth    Authenticator
	persist Persistence

	mu    sync.RWMutex
	user  *domain.User
	token string
}

func NewStore(auth Authenticator, persist Persistence) *Store {
	return &Store{
		auth:    auth,
		persist: persist,
	}
}

// Initialize rehydrates the session from persisted state. A malformed or
// half-present credential pair is a corrupt-cache condition: both keys are
// cleared, the session stays unauthenticated, and no error is surfaced.
// It must complete before any session-dependent component starts serving.
func (s *Store) Initialize(ctx context.Context) error {
	token, tokenErr := s.persist.Get(ctx, localstore.KeyToken)
	userJSON, userErr := s.persist.Get(ctx, localstore.KeyUser)

	if errors.Is(tokenErr, localstore.ErrNotFound) && errors.Is(userErr, localstore.ErrNotFound) {
		return nil
	}
	if tokenErr != nil && !errors.Is(tokenErr, localstore.ErrNotFound) {
		return fmt.Errorf("reading persisted token: %w", tokenErr)
	}
	if userErr != nil && !errors.Is(userErr, localstore.ErrNotFound) {
		return fmt.Errorf("reading persisted user: %w", userErr)
	}

	if tokenErr != nil || userErr != nil || token == "" {
		// Half a session is as unusable as a corrupt one.
		return s.recoverCorrupt(ctx)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "persisted user record is malformed, clearing session", "error", err)
		return s.recoverCorrupt(ctx)
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()

	return nil
}

func (s *Store) recoverCorrupt(ctx context.Context) error {
	if err := s.persist.ClearPair(ctx); err != nil {
		return fmt.Errorf("clearing corrupt session state: %w", err)
	}
	return nil
}

// Login exchanges credentials for a session. Persisted and in-memory state
// are written only after a response carrying both user and token.
func (s *Store) Login(ctx context.Context, credentials gateway.Credentials) (gateway.AuthResponse, error) {
	response, err := s.auth.Login(ctx, credentials)
	if err != nil {
		return gateway.AuthResponse{}, wrapAuthFailure(err)
	}

	if err := s.establish(ctx, response); err != nil {
		return gateway.AuthResponse{}, err
	}

	return response, nil
}

// Register creates an account and establishes a session, with the same
// contract shape as Login.
func (s *Store) Register(ctx context.Context, input gateway.RegisterInput) (gateway.AuthResponse, error) {
	response, err := s.auth.Register(ctx, input)
	if err != nil {
		return gateway.AuthResponse{}, wrapAuthFailure(err)
	}

	if err := s.establish(ctx, response); err != nil {
		return gateway.AuthResponse{}, err
	}

	return response, nil
}

func (s *Store) establish(ctx context.Context, response gateway.AuthResponse) error {
	if response.User == nil || response.Token == "" {
		return ErrInvalidServerResponse
	}

	userJSON, err := json.Marshal(response.User)
	if err != nil {
		return fmt.Errorf("serializing user record: %w", err)
	}

	if err := s.persist.SetPair(ctx, response.Token, string(userJSON)); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.user = response.User
	s.token = response.Token
	s.mu.Unlock()

	return nil
}

// Logout clears the session synchronously. No network call is involved.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.persist.ClearPair(ctx); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	return nil
}

// Snapshot returns a point-in-time copy of the session.
func (s *Store) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var user *domain.User
	if s.user != nil {
		u := *s.user
		user = &u
	}

	return domain.Session{
		User:            user,
		Token:           s.token,
		IsAuthenticated: s.token != "",
	}
}

// Token implements gateway.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func wrapAuthFailure(err error) error {
	var remote *gateway.RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return &AuthError{Message: remote.Message, Err: err}
	}
	if errors.Is(err, gateway.ErrNetwork) {
		return &AuthError{Message: gateway.ErrNetwork.Error(), Err: err}
	}
	return &AuthError{Message: err.Error(), Err: err}
}
