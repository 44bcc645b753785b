// Package trigger evaluates the clock against the timetable and rings
// the chime exactly once per bell per day.
package trigger

import (
	"log/slog"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/belfry-dev/belfry/internal/config"
	"github.com/belfry-dev/belfry/internal/timeutil"
	"github.com/belfry-dev/belfry/schedule"
	"github.com/belfry-dev/belfry/store"
)

// FireLog tracks which bells already rang today. It is owned by the
// running session and only the tick loop mutates it.
type FireLog struct {
	day   string
	fired map[timeutil.BellTime]struct{}
}

func NewFireLog() *FireLog {
	return &FireLog{
		fired: make(map[timeutil.BellTime]struct{}),
	}
}

// ShouldFire reports whether a bell matches the current minute and has
// not rung yet today, recording it as fired when it does. Crossing
// midnight clears the log, so every bell becomes eligible again exactly
// once per calendar day.
func (l *FireLog) ShouldFire(
	entries []schedule.Entry,
	now time.Time,
) (timeutil.BellTime, bool) {
	day := timeutil.DayKey(now)
	if l.day != day {
		l.day = day
		l.fired = make(map[timeutil.BellTime]struct{})
	}

	current := timeutil.FromClock(now)

	for _, e := range entries {
		if e.Time != current {
			continue
		}

		if _, done := l.fired[current]; done {
			return timeutil.BellTime{}, false
		}

		l.fired[current] = struct{}{}

		return current, true
	}

	return timeutil.BellTime{}, false
}

// NextBell returns the soonest upcoming bell: the first entry in the
// sorted view at or after the current minute, wrapping past midnight to
// the earliest one. ok is false only when the timetable is empty.
func NextBell(sorted []schedule.Entry, now time.Time) (schedule.Entry, bool) {
	if len(sorted) == 0 {
		return schedule.Entry{}, false
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	for _, e := range sorted {
		if e.Time.Minutes() >= nowMinutes {
			return e, true
		}
	}

	return sorted[0], true
}

// Ringer plays the chime and handles the side effects of a fired bell.
type Ringer struct {
	cfg *config.Config
	db  store.DB
}

func NewRinger(cfg *config.Config, db store.DB) *Ringer {
	return &Ringer{
		cfg: cfg,
		db:  db,
	}
}

// Ring plays the chime for a fired bell, sends a desktop notification,
// records the chime in the history, and runs the configured post-chime
// command. Every failure degrades: playback falls back to a synthesized
// tone sequence, and the rest is logged and skipped.
func (r *Ringer) Ring(bell timeutil.BellTime, label string) {
	r.play()

	if r.cfg.Notifications.Enabled {
		err := beeep.Notify("belfry", "チャイムを再生しました（"+bell.String()+"）", "")
		if err != nil {
			slog.Warn("unable to display notification", slog.Any("error", err))
		}
	}

	if r.db != nil {
		rec := &store.ChimeRecord{
			RangAt: time.Now(),
			Bell:   bell,
			Label:  label,
		}

		if err := r.db.RecordChime(rec); err != nil {
			slog.Warn("unable to record chime", slog.Any("error", err))
		}
	}

	if err := r.runChimeCmd(); err != nil {
		slog.Warn("post-chime command failed", slog.Any("error", err))
	}
}

// Test plays the chime once without any of the other side effects.
func (r *Ringer) Test() {
	r.play()
}

func (r *Ringer) play() {
	if err := playChimeFile(r.cfg.Sound.Chime); err != nil {
		slog.Warn(
			"chime playback failed, falling back to synthesized tones",
			slog.Any("error", err),
		)

		if err := playSynthChime(); err != nil {
			slog.Error("synthesized chime failed", slog.Any("error", err))
		}
	}
}

// runChimeCmd executes the configured post-chime command.
func (r *Ringer) runChimeCmd() error {
	if r.cfg.Sound.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(r.cfg.Sound.Cmd)
	if err != nil {
		return err
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return exec.Command(cmdSlice[0], cmdSlice[1:]...).Run()
}
