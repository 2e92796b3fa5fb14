package admin

import (
	"encoding/json"
	"errors"
	"fmt"

	inErrors "github.com/azgaming/storefront/internal/errors"
	"github.com/azgaming/storefront/internal/log"
	"github.com/azgaming/storefront/notify"
)

const settingsKey = "azgaming-settings"

// Settings is the free-form site configuration written by the admin
// settings view. It lives in its own blob, separate from the content
// data.
type Settings struct {
	SiteName            string `json:"siteName"`
	SiteDescription     string `json:"siteDescription"`
	ContactEmail        string `json:"contactEmail"`
	PhoneNumber         string `json:"phoneNumber"`
	FacebookLink        string `json:"facebookLink"`
	InstagramLink       string `json:"instagramLink"`
	EnableNotifications bool   `json:"enableNotifications"`
	MaintenanceMode     bool   `json:"maintenanceMode"`
}

func DefaultSettings() Settings {
	return Settings{
		SiteName:            "AZgaming",
		SiteDescription:     "Website bán game PS4, PS5 và PC chính hãng",
		ContactEmail:        "contact@azgaming.com",
		PhoneNumber:         "+84 123 456 789",
		FacebookLink:        "https://facebook.com/azgaming",
		InstagramLink:       "https://instagram.com/azgaming",
		EnableNotifications: true,
		MaintenanceMode:     false,
	}
}

// Settings returns the persisted settings, or the defaults when none
// were saved yet or the blob cannot be parsed.
func (s *Store) Settings() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With().
		Str(log.KeyProcess, "loading settings").
		Str(log.KeyStorageKey, settingsKey).
		Logger()

	raw, err := s.storage.Get(settingsKey)
	if err != nil {
		if errors.Is(err, inErrors.ErrNoItem) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed loading settings with error=%w", err)
	}

	settings := Settings{}
	if err = json.Unmarshal(raw, &settings); err != nil {
		err = fmt.Errorf("failed parsing settings with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return DefaultSettings(), nil
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed marshaling settings with error=%w", err)
	}
	if err = s.storage.Set(settingsKey, raw); err != nil {
		return fmt.Errorf("failed saving settings with error=%w", err)
	}
	s.logger.Info().
		Str(log.KeyProcess, "saving settings").
		Str(log.KeyStorageKey, settingsKey).
		Msg("saved settings")
	s.notify(notify.LevelSuccess, "Settings saved successfully")
	return nil
}
