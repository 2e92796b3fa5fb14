package admin

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/azgaming/storefront/internal/errors"
	"github.com/azgaming/storefront/internal/storage"
)

const (
	testUsername = "68686868"
	testPassword = "Abcd!123456789"
)

func newTestAuth(t *testing.T, st storage.Store) (*Auth, *recorder) {
	t.Helper()
	rec := &recorder{}
	auth, err := NewAuth(st, testUsername, testPassword, zerolog.Nop(), WithAuthNotifier(rec))
	require.NoError(t, err)
	return auth, rec
}

func TestLoginWithValidCredentials(t *testing.T) {
	mem := storage.NewMemStore()
	auth, rec := newTestAuth(t, mem)

	require.NoError(t, auth.Login(testUsername, testPassword))

	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, "Login successful!", rec.last().Message)

	raw, err := mem.Get("azgaming-admin-auth")
	require.NoError(t, err)
	assert.JSONEq(t, `{"isAuthenticated": true}`, string(raw))
}

func TestLoginWithInvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong username", username: "admin", password: testPassword},
		{name: "wrong password", username: testUsername, password: "hunter2"},
		{name: "both wrong", username: "admin", password: "hunter2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := storage.NewMemStore()
			auth, rec := newTestAuth(t, mem)

			err := auth.Login(tt.username, tt.password)

			assert.ErrorIs(t, err, inErrors.ErrInvalidCredentials)
			assert.False(t, auth.IsAuthenticated())
			assert.Equal(t, "Invalid login credentials", rec.last().Message)

			_, err = mem.Get("azgaming-admin-auth")
			assert.ErrorIs(t, err, inErrors.ErrNoItem, "failed login must not persist a session")
		})
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	mem := storage.NewMemStore()
	auth, _ := newTestAuth(t, mem)
	require.NoError(t, auth.Login(testUsername, testPassword))

	rehydrated, _ := newTestAuth(t, mem)

	assert.True(t, rehydrated.IsAuthenticated())
}

func TestLogout(t *testing.T) {
	mem := storage.NewMemStore()
	auth, rec := newTestAuth(t, mem)
	require.NoError(t, auth.Login(testUsername, testPassword))

	auth.Logout()

	assert.False(t, auth.IsAuthenticated())
	assert.Equal(t, "Logged out", rec.last().Message)
	_, err := mem.Get("azgaming-admin-auth")
	assert.ErrorIs(t, err, inErrors.ErrNoItem)
}

func TestCorruptAuthFlagIsDiscarded(t *testing.T) {
	mem := storage.NewMemStore()
	require.NoError(t, mem.Set("azgaming-admin-auth", []byte("{oops")))

	auth, _ := newTestAuth(t, mem)

	assert.False(t, auth.IsAuthenticated())
	_, err := mem.Get("azgaming-admin-auth")
	assert.ErrorIs(t, err, inErrors.ErrNoItem, "corrupt flag is removed")
}
