package store

import (
	"time"

	"github.com/belfry-dev/belfry/internal/timeutil"
	"github.com/belfry-dev/belfry/schedule"
)

// DB is the database storage interface.
type DB interface {
	// SaveSettings overwrites the stored timetable document. Saving is
	// best-effort; callers treat failures as non-fatal.
	SaveSettings(doc *schedule.Document) error
	// Settings returns the stored timetable document, or nil when no
	// usable document exists. A corrupt payload is treated as absent.
	Settings() (*schedule.Document, error)
	// RecordChime appends a fired bell to the chime history.
	RecordChime(rec *ChimeRecord) error
	// RecentChimes returns up to limit history records, newest first.
	RecentChimes(limit int) ([]*ChimeRecord, error)
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}

// ChimeRecord is one fired bell in the history log.
type ChimeRecord struct {
	RangAt time.Time         `json:"rang_at"`
	Bell   timeutil.BellTime `json:"bell"`
	Label  string            `json:"label"`
}
