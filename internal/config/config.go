// Package config is responsible for setting the program config from the
// config file and command-line arguments.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Sound         SoundConfig
		Notifications NotificationConfig
		Display       DisplayConfig
		Share         ShareConfig
		System        SystemConfig
	}

	// SoundConfig holds chime playback settings.
	SoundConfig struct {
		// Chime is the name of an embedded sound or a path to a custom
		// sound file.
		Chime string
		// Cmd is an arbitrary command executed after each chime.
		Cmd string
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// DisplayConfig holds clock display settings.
	DisplayConfig struct {
		ShowSeconds bool
		DarkTheme   bool
	}

	// ShareConfig holds share link settings.
	ShareConfig struct {
		BaseURL string
	}

	// SystemConfig holds file path settings.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.2"

var (
	configDir      = "belfry"
	configFileName = "config.yml"
	dbFileName     = "belfry.db"
	logFileName    = "belfry.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var Stdout io.Writer = os.Stdout

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the XDG locations for the config file, the
// settings database, and the log file. BELFRY_ENV switches to suffixed
// file names so tests and development runs never touch real data.
func InitializePaths() {
	belfryEnv := strings.TrimSpace(os.Getenv("BELFRY_ENV"))
	if belfryEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", belfryEnv)
		dbFileName = fmt.Sprintf("belfry_%s.db", belfryEnv)
		logFileName = fmt.Sprintf("belfry_%s.log", belfryEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, logFileName)
}

// New creates a Config from the provided options.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		System: SystemConfig{
			ConfigPath: configFilePath,
			DBPath:     dbFilePath,
		},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}
