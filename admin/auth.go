package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	inErrors "github.com/azgaming/storefront/internal/errors"
	"github.com/azgaming/storefront/internal/log"
	"github.com/azgaming/storefront/internal/storage"
	"github.com/azgaming/storefront/notify"
)

const authKey = "azgaming-admin-auth"

type authState struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Auth gates the admin panel behind a single credential pair. The
// session is a persisted boolean flag, nothing more.
type Auth struct {
	mu            sync.Mutex
	storage       storage.Store
	username      string
	passwordHash  []byte
	authenticated bool
	notifier      notify.Notifier
	logger        zerolog.Logger
}

type AuthOption func(a *Auth)

func WithAuthNotifier(n notify.Notifier) AuthOption {
	return func(a *Auth) {
		a.notifier = n
	}
}

// NewAuth hashes the configured password and rehydrates the session
// flag from storage. The plaintext password is not retained.
func NewAuth(st storage.Store, username, password string, logger zerolog.Logger, opts ...AuthOption) (*Auth, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed hashing admin password with error=%w", err)
	}
	a := &Auth{
		storage:      st,
		username:     username,
		passwordHash: hash,
		logger:       logger.With().Str(log.KeyTag, "admin Auth").Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.load()
	return a, nil
}

func (a *Auth) load() {
	logger := a.logger.With().
		Str(log.KeyProcess, "loading auth flag").
		Str(log.KeyStorageKey, authKey).
		Logger()

	raw, err := a.storage.Get(authKey)
	if err != nil {
		if !errors.Is(err, inErrors.ErrNoItem) {
			err = fmt.Errorf("failed loading auth flag with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
		}
		return
	}

	state := authState{}
	if err = json.Unmarshal(raw, &state); err != nil {
		err = fmt.Errorf("failed parsing auth flag with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		if err = a.storage.Remove(authKey); err != nil {
			logger.Error().Err(err).Msg("failed removing corrupt auth flag")
		}
		return
	}
	a.authenticated = state.IsAuthenticated
}

func (a *Auth) notify(level notify.Level, message string) {
	if a.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().
				Str(log.KeyProcess, "delivering notification").
				Str(log.KeyNotification, message).
				Msgf("notifier panicked: %v", r)
		}
	}()
	a.notifier.Notify(notify.Notification{Level: level, Message: message})
}

func (a *Auth) Login(username, password string) error {
	logger := a.logger.With().
		Str(log.KeyProcess, "logging in").
		Str(log.KeyUsername, username).
		Logger()

	if username != a.username ||
		bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) != nil {
		logger.Warn().Msg("invalid login credentials")
		a.notify(notify.LevelError, "Invalid login credentials")
		return inErrors.ErrInvalidCredentials
	}

	a.mu.Lock()
	a.authenticated = true
	raw, err := json.Marshal(authState{IsAuthenticated: true})
	if err == nil {
		err = a.storage.Set(authKey, raw)
	}
	a.mu.Unlock()
	if err != nil {
		err = fmt.Errorf("failed saving auth flag with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
	}

	logger.Info().Msg("logged in")
	a.notify(notify.LevelSuccess, "Login successful!")
	return nil
}

func (a *Auth) Logout() {
	a.mu.Lock()
	a.authenticated = false
	err := a.storage.Remove(authKey)
	a.mu.Unlock()
	if err != nil {
		err = fmt.Errorf("failed removing auth flag with error=%w", err)
		a.logger.Error().Err(err).Msg(err.Error())
	}

	a.logger.Info().Str(log.KeyProcess, "logging out").Msg("logged out")
	a.notify(notify.LevelInfo, "Logged out")
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}
