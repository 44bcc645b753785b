// Package reconcile keeps the in-memory timetable, the settings
// database, and the share link in agreement.
package reconcile

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/belfry-dev/belfry/schedule"
	"github.com/belfry-dev/belfry/sharelink"
	"github.com/belfry-dev/belfry/store"
)

// Source identifies which channel seeded the timetable at startup.
type Source int

const (
	// SourceDefault means the built-in timetable was used.
	SourceDefault Source = iota
	// SourceStorage means the settings database was used.
	SourceStorage
	// SourceLink means a share link was used, overriding storage.
	SourceLink
)

func (s Source) String() string {
	switch s {
	case SourceLink:
		return "share link"
	case SourceStorage:
		return "saved settings"
	default:
		return "built-in default"
	}
}

// Reconciler hydrates the timetable once at startup and pushes every
// subsequent mutation back out to the settings database and the share
// link. The database write is unconditional and best-effort; the link
// is rebuilt only when its parameters differ from the last value this
// reconciler itself produced, which prevents a rewrite loop between
// hydration and sync.
type Reconciler struct {
	db          store.DB
	baseURL     string
	lastTimes   string
	lastLabel   string
	synced      bool
	showSeconds *bool
}

// New returns a reconciler that persists through db and renders share
// links on top of baseURL.
func New(db store.DB, baseURL string) *Reconciler {
	return &Reconciler{
		db:      db,
		baseURL: baseURL,
	}
}

// Hydrate builds the startup timetable. A share link with at least one
// valid time wins outright: it seeds both the schedule and the settings
// database, and its parameters become the last-synced snapshot so the
// next push does not rebuild the link. Otherwise the settings database
// is used when it holds at least one valid row, and the built-in
// default schedule when it does not. Hydrate runs exactly once, before
// any user interaction.
func (r *Reconciler) Hydrate(link string) (*schedule.Schedule, Source) {
	if link != "" {
		if s, ok := r.hydrateFromLink(link); ok {
			return s, SourceLink
		}
	}

	doc, err := r.db.Settings()
	if err != nil {
		slog.Warn("reading settings failed", slog.Any("error", err))
	}

	if doc != nil {
		r.showSeconds = doc.ShowSeconds

		if times := doc.Times(); len(times) > 0 {
			return schedule.New(times, doc.EffectiveLabel()), SourceStorage
		}
	}

	return schedule.Default(), SourceDefault
}

func (r *Reconciler) hydrateFromLink(link string) (*schedule.Schedule, bool) {
	times, label, ok := sharelink.Decode(link)
	if !ok {
		slog.Warn("share link carries no valid bell time", slog.String("link", link))
		return nil, false
	}

	s := schedule.New(times, label)

	// the raw parameter value, not the normalized form, becomes the
	// snapshot; a link with unsorted tokens is rewritten once
	if u, err := url.Parse(link); err == nil {
		r.lastTimes = u.Query().Get(sharelink.ParamTimes)
	}

	r.lastLabel = label
	r.synced = true

	r.saveSettings(s)

	return s, true
}

// Push writes the current timetable to the settings database and, when
// its share parameters differ from the last-synced snapshot, rebuilds
// the share link. It is idempotent: pushing an unchanged schedule
// writes storage again but reports no new link.
func (r *Reconciler) Push(s *schedule.Schedule) (link string, changed bool) {
	r.saveSettings(s)

	timesParam := sharelink.TimesParam(s.Times())

	labelParam := strings.TrimSpace(s.Label)
	if labelParam == "" {
		labelParam = schedule.DefaultLabel
	}

	if r.synced && timesParam == r.lastTimes && labelParam == r.lastLabel {
		return "", false
	}

	r.lastTimes = timesParam
	r.lastLabel = labelParam
	r.synced = true

	return sharelink.Build(r.baseURL, s), true
}

// Link renders the current share link without pushing.
func (r *Reconciler) Link(s *schedule.Schedule) string {
	return sharelink.Build(r.baseURL, s)
}

// SetShowSeconds records the display preference persisted alongside the
// timetable.
func (r *Reconciler) SetShowSeconds(v bool) {
	r.showSeconds = &v
}

// ShowSeconds returns the persisted display preference, or fallback
// when none has been stored.
func (r *Reconciler) ShowSeconds(fallback bool) bool {
	if r.showSeconds == nil {
		return fallback
	}

	return *r.showSeconds
}

// saveSettings rewrites the stored document. Durability is a
// convenience, not a correctness requirement, so failures are logged
// and swallowed.
func (r *Reconciler) saveSettings(s *schedule.Schedule) {
	doc := schedule.SnapshotDocument(s, r.ShowSeconds(true))

	if err := r.db.SaveSettings(doc); err != nil {
		slog.Warn("saving settings failed", slog.Any("error", err))
	}
}
