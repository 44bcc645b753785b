package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/belfry-dev/belfry/internal/config"
)

func defaultConfig() *config.Config {
	return &config.Config{
		Sound: config.SoundConfig{
			Chime: "chime",
			Cmd:   "",
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			ShowSeconds: true,
			DarkTheme:   true,
		},
		Share: config.ShareConfig{
			BaseURL: "https://belfry.pages.dev/",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Fatal("default config file was not written:", err)
	}

	assert.Equal(t, defaultConfig(), cfg)
}

func TestViperReadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	modified := []byte(`sound:
  chime: /home/user/sounds/bell.ogg
  cmd: "notify-send done"
notifications:
  enabled: false
display:
  show_seconds: false
  dark_theme: true
share:
  base_url: https://example.com/bells/
`)

	if err := os.WriteFile(configPath, modified, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := &config.Config{
		Sound: config.SoundConfig{
			Chime: "/home/user/sounds/bell.ogg",
			Cmd:   "notify-send done",
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
		},
		Display: config.DisplayConfig{
			ShowSeconds: false,
			DarkTheme:   true,
		},
		Share: config.ShareConfig{
			BaseURL: "https://example.com/bells/",
		},
	}

	assert.Equal(t, want, cfg)
}

func TestConfigValidation(t *testing.T) {
	tmpDir := t.TempDir()

	cases := []struct {
		name string
		yaml string
	}{
		{
			name: "unsupported sound format",
			yaml: "sound:\n  chime: /tmp/bell.aiff\n",
		},
		{
			name: "relative base URL",
			yaml: "share:\n  base_url: ./bells\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, tc.name+".yml")

			if err := os.WriteFile(configPath, []byte(tc.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := config.New(config.WithViperConfig(configPath))
			assert.Error(t, err)
		})
	}
}
