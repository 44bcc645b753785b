// Package static embeds the default chime sound into the binary and
// copies it to the filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/belfry-dev/belfry/internal/config"
)

const filesDir = "files"

//go:embed files/*
var Files embed.FS

// FilePath resolves a sound name to its location inside the embedded
// filesystem.
func FilePath(name string) string {
	return path.Join(filesDir, name)
}

// CopyFilesToDataDir seeds the embedded sounds into the XDG data
// directory so users can locate and replace them. Existing files are
// never overwritten.
func CopyFilesToDataDir() error {
	return fs.WalkDir(
		Files,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := Files.ReadFile(p)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(p, filesDir+"/")

			relPath := filepath.Join(config.Dir(), stripped)

			destPath, err := xdg.DataFile(relPath)
			if err != nil {
				return err
			}

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, 0o644); err != nil {
					return err
				}
			}

			return nil
		},
	)
}
