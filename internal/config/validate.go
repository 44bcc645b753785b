package config

import (
	"net/url"
	"path/filepath"
)

var soundFormats = map[string]bool{
	".ogg":  true,
	".mp3":  true,
	".flac": true,
	".wav":  true,
}

// validate checks the configured values. A chime without an extension
// refers to an embedded sound and is resolved later.
func (c *Config) validate() error {
	ext := filepath.Ext(c.Sound.Chime)
	if ext != "" && !soundFormats[ext] {
		return errInvalidSoundFormat.Fmt(c.Sound.Chime)
	}

	u, err := url.Parse(c.Share.BaseURL)
	if err != nil || !u.IsAbs() {
		return errInvalidBaseURL.Fmt(c.Share.BaseURL)
	}

	return nil
}
