package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyChimeSound           = "sound.chime"
	keyChimeCmd             = "sound.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyShowSeconds          = "display.show_seconds"
	keyDarkTheme            = "display.dark_theme"
	keyShareBaseURL         = "share.base_url"
)

const (
	defaultChimeSound = "chime"
	defaultBaseURL    = "https://belfry.pages.dev/"
)

// WithViperConfig returns an Option that loads configuration from the
// config file, writing the default file first when none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			loadViperConfig(v, c)
			return nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		loadViperConfig(v, c)

		return nil
	}
}

// setupViper configures Viper with default values.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyChimeSound, defaultChimeSound)
	v.SetDefault(keyChimeCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyShowSeconds, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyShareBaseURL, defaultBaseURL)
}

// loadViperConfig copies Viper values into the Config.
func loadViperConfig(v *viper.Viper, c *Config) {
	c.Sound.Chime = v.GetString(keyChimeSound)
	c.Sound.Cmd = v.GetString(keyChimeCmd)
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Display.ShowSeconds = v.GetBool(keyShowSeconds)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Share.BaseURL = v.GetString(keyShareBaseURL)
}
