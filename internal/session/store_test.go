package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
	"github.com/bloghub/bloghub-client/internal/localstore"
	"github.com/bloghub/bloghub-client/internal/session"
)

type stubAuthenticator struct {
	response gateway.AuthResponse
	err      error
	calls    int
}

func (s *stubAuthenticator) Login(ctx context.Context, credentials gateway.Credentials) (gateway.AuthResponse, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubAuthenticator) Register(ctx context.Context, input gateway.RegisterInput) (gateway.AuthResponse, error) {
	s.calls++
	return s.response, s.err
}

type memoryPersistence struct {
	values map[string]string
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{values: map[string]string{}}
}

func (m *memoryPersistence) Get(ctx context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", localstore.ErrNotFound
	}
	return value, nil
}

func (m *memoryPersistence) SetPair(ctx context.Context, token, user string) error {
	m.values[localstore.KeyToken] = token
	m.values[localstore.KeyUser] = user
	return nil
}

func (m *memoryPersistence) ClearPair(ctx context.Context) error {
	delete(m.values, localstore.KeyToken)
	delete(m.values, localstore.KeyUser)
	return nil
}

func validResponse() gateway.AuthResponse {
	return gateway.AuthResponse{
		User:  &domain.User{MongoID: "u1", Name: "Sara", Email: "sara@example.com"},
		Token: "tok-123",
	}
}

func TestStore_LoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	persist := newMemoryPersistence()
	auth := &stubAuthenticator{response: validResponse()}

	store := session.NewStore(auth, persist)
	response, err := store.Login(ctx, gateway.Credentials{Email: "sara@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", response.Token)

	snapshot := store.Snapshot()
	assert.True(t, snapshot.IsAuthenticated)
	assert.True(t, domain.CanEnter(snapshot))
	require.NotNil(t, snapshot.User)
	assert.Equal(t, "Sara", snapshot.User.Name)

	// A fresh store over the same persistence simulates a reload.
	reloaded := session.NewStore(&stubAuthenticator{}, persist)
	require.NoError(t, reloaded.Initialize(ctx))

	restored := reloaded.Snapshot()
	assert.True(t, restored.IsAuthenticated)
	require.NotNil(t, restored.User)
	assert.Equal(t, snapshot.User, restored.User)
	assert.Equal(t, "tok-123", reloaded.Token())
}

func TestStore_RegisterEstablishesSession(t *testing.T) {
	ctx := context.Background()
	persist := newMemoryPersistence()
	auth := &stubAuthenticator{response: validResponse()}

	store := session.NewStore(auth, persist)
	_, err := store.Register(ctx, gateway.RegisterInput{Name: "Sara", Email: "sara@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.True(t, store.Snapshot().IsAuthenticated)
	assert.Equal(t, "tok-123", persist.values[localstore.KeyToken])
}

func TestStore_LoginFailures(t *testing.T) {
	cases := []struct {
		name        string
		response    gateway.AuthResponse
		err         error
		wantMessage string
		wantInvalid bool
	}{
		{
			name:        "server_error_message_is_surfaced",
			err:         &gateway.RemoteError{StatusCode: 401, Message: "wrong password"},
			wantMessage: "wrong password",
		},
		{
			name:        "network_failure_uses_generic_message",
			err:         gateway.ErrNetwork,
			wantMessage: "network error - no response from server",
		},
		{
			name:        "response_without_token_is_invalid",
			response:    gateway.AuthResponse{User: &domain.User{MongoID: "u1"}},
			wantInvalid: true,
		},
		{
			name:        "response_without_user_is_invalid",
			response:    gateway.AuthResponse{Token: "tok"},
			wantInvalid: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			persist := newMemoryPersistence()
			store := session.NewStore(&stubAuthenticator{response: tc.response, err: tc.err}, persist)

			_, err := store.Login(ctx, gateway.Credentials{Email: "a@b.c", Password: "pw"})
			require.Error(t, err)

			if tc.wantInvalid {
				assert.ErrorIs(t, err, session.ErrInvalidServerResponse)
			} else {
				var authErr *session.AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tc.wantMessage, authErr.Message)
			}

			assert.False(t, store.Snapshot().IsAuthenticated)
			assert.NotContains(t, persist.values, localstore.KeyToken, "storage must stay untouched on failure")
		})
	}
}

func TestStore_InitializeCorruptionRecovery(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]string
	}{
		{
			name: "malformed_user_record",
			values: map[string]string{
				localstore.KeyToken: "tok-123",
				localstore.KeyUser:  "{not json",
			},
		},
		{
			name: "token_without_user",
			values: map[string]string{
				localstore.KeyToken: "tok-123",
			},
		},
		{
			name: "user_without_token",
			values: map[string]string{
				localstore.KeyUser: `{"name":"Sara"}`,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			persist := &memoryPersistence{values: tc.values}

			store := session.NewStore(&stubAuthenticator{}, persist)
			require.NoError(t, store.Initialize(ctx), "corruption is recovered, not surfaced")

			assert.False(t, store.Snapshot().IsAuthenticated)
			assert.NotContains(t, persist.values, localstore.KeyToken)
			assert.NotContains(t, persist.values, localstore.KeyUser)
		})
	}
}

func TestStore_InitializeEmptyStorage(t *testing.T) {
	store := session.NewStore(&stubAuthenticator{}, newMemoryPersistence())
	require.NoError(t, store.Initialize(context.Background()))
	assert.False(t, store.Snapshot().IsAuthenticated)
}

func TestStore_Logout(t *testing.T) {
	ctx := context.Background()
	persist := newMemoryPersistence()
	store := session.NewStore(&stubAuthenticator{response: validResponse()}, persist)

	_, err := store.Login(ctx, gateway.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	require.True(t, store.Snapshot().IsAuthenticated)

	require.NoError(t, store.Logout(ctx))

	snapshot := store.Snapshot()
	assert.False(t, snapshot.IsAuthenticated)
	assert.Nil(t, snapshot.User)
	assert.Empty(t, store.Token())
	assert.Empty(t, persist.values)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(&stubAuthenticator{response: validResponse()}, newMemoryPersistence())

	_, err := store.Login(ctx, gateway.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	snapshot := store.Snapshot()
	snapshot.User.Name = "mutated"

	assert.Equal(t, "Sara", store.Snapshot().User.Name)
}

func TestStore_PersistErrorSurfaces(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(
		&stubAuthenticator{response: validResponse()},
		failingPersistence{},
	)

	_, err := store.Login(ctx, gateway.Credentials{Email: "a@b.c", Password: "pw"})
	require.Error(t, err)
	assert.False(t, store.Snapshot().IsAuthenticated)
}

type failingPersistence struct{}

func (failingPersistence) Get(ctx context.Context, key string) (string, error) {
	return "", localstore.ErrNotFound
}

func (failingPersistence) SetPair(ctx context.Context, token, user string) error {
	return errors.New("disk full")
}

func (failingPersistence) ClearPair(ctx context.Context) error {
	return nil
}
