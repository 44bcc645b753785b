// Package schedule owns the editable bell timetable and its portable
// JSON document form.
package schedule

import (
	"crypto/rand"
	"encoding/hex"
	"sort"

	"github.com/belfry-dev/belfry/internal/timeutil"
)

// DefaultLabel is the display name applied when no label has been set.
// The stock timetable ships with a Japanese label since belfry is aimed
// at Japanese classrooms; the label is user data, not UI chrome.
const DefaultLabel = "標準設定"

// DefaultTimes is the built-in timetable used before anything has been
// configured.
var DefaultTimes = []timeutil.BellTime{
	{Hour: 8, Minute: 15},
}

// Entry is a single bell. Its id is stable across edits and independent
// of display order; times may be duplicated between entries.
type Entry struct {
	ID   string
	Time timeutil.BellTime
}

// Schedule is the ordered, editable set of bells and its display label.
// It is owned by a single goroutine; mutations are synchronous and
// immediately visible to readers.
type Schedule struct {
	Label   string
	entries []Entry
}

func newID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}

// New returns a schedule populated with the given times, assigning
// fresh ids.
func New(times []timeutil.BellTime, label string) *Schedule {
	s := &Schedule{}
	s.ReplaceAll(times, label)

	return s
}

// Default returns the built-in schedule.
func Default() *Schedule {
	return New(DefaultTimes, DefaultLabel)
}

// Add inserts a new 00:00 entry immediately after the entry with the
// given id, or at the end when afterID is empty or unknown. It returns
// the new entry's id so callers can move the cursor to it.
func (s *Schedule) Add(afterID string) string {
	entry := Entry{ID: newID()}

	if afterID != "" {
		for i := range s.entries {
			if s.entries[i].ID == afterID {
				s.entries = append(
					s.entries[:i+1],
					append([]Entry{entry}, s.entries[i+1:]...)...,
				)

				return entry.ID
			}
		}
	}

	s.entries = append(s.entries, entry)

	return entry.ID
}

// Remove deletes the entry with the given id. Unknown ids are a no-op.
func (s *Schedule) Remove(id string) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// SetTime updates the entry with the given id. The write applies only
// when text parses as a valid HH:MM time; otherwise the schedule is
// left unchanged and the parse error is returned.
func (s *Schedule) SetTime(id, text string) error {
	t, err := timeutil.Parse(text)
	if err != nil {
		return err
	}

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Time = t
			return nil
		}
	}

	return nil
}

// SetLabel replaces the display label.
func (s *Schedule) SetLabel(label string) {
	s.Label = label
}

// ReplaceAll discards every entry and rebuilds the schedule from the
// given times with fresh ids. No identity survives a replace.
func (s *Schedule) ReplaceAll(times []timeutil.BellTime, label string) {
	entries := make([]Entry, 0, len(times))
	for _, t := range times {
		entries = append(entries, Entry{ID: newID(), Time: t})
	}

	s.entries = entries
	s.Label = label
}

// Entries returns the bells in edit order.
func (s *Schedule) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Sorted returns the bells ordered by ascending time of day. Ties keep
// their edit order.
func (s *Schedule) Sorted() []Entry {
	out := s.Entries()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Minutes() < out[j].Time.Minutes()
	})

	return out
}

// Times returns the bell times in edit order.
func (s *Schedule) Times() []timeutil.BellTime {
	out := make([]timeutil.BellTime, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Time)
	}

	return out
}

// Len reports the number of bells.
func (s *Schedule) Len() int {
	return len(s.entries)
}
