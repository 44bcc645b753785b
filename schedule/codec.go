package schedule

import (
	"encoding/json"
	"strings"

	"github.com/belfry-dev/belfry/internal/apperr"
	"github.com/belfry-dev/belfry/internal/timeutil"
)

var (
	// ErrMalformedStructure is reported when an imported document is not
	// JSON or its rows field is absent or not a list.
	ErrMalformedStructure = &apperr.Error{
		Message: "rows が見つかりません",
	}

	// ErrNoValidEntries is reported when filtering leaves no usable bell
	// time in an imported document.
	ErrNoValidEntries = &apperr.Error{
		Message: "有効なチャイム時刻がありません",
	}
)

// Row is a single bell time in the portable document.
type Row struct {
	Time string `json:"time"`
}

// Document is the portable timetable payload used for both durable
// storage and exported files. Unknown or missing fields default rather
// than fail.
type Document struct {
	Label       string `json:"label"`
	Rows        []Row  `json:"rows"`
	ShowSeconds *bool  `json:"showSeconds,omitempty"`
}

// ExportDocument builds the portable document for a schedule. Rows are
// always emitted in ascending time order regardless of edit order.
func ExportDocument(s *Schedule) *Document {
	sorted := s.Sorted()

	rows := make([]Row, 0, len(sorted))
	for _, e := range sorted {
		rows = append(rows, Row{Time: e.Time.String()})
	}

	return &Document{
		Label: s.Label,
		Rows:  rows,
	}
}

// SnapshotDocument builds the document for durable storage, preserving
// the current edit order.
func SnapshotDocument(s *Schedule, showSeconds bool) *Document {
	rows := make([]Row, 0, s.Len())
	for _, t := range s.Times() {
		rows = append(rows, Row{Time: t.String()})
	}

	return &Document{
		Label:       s.Label,
		Rows:        rows,
		ShowSeconds: &showSeconds,
	}
}

// Times returns the parseable bell times in the document, silently
// dropping invalid rows.
func (d *Document) Times() []timeutil.BellTime {
	times := make([]timeutil.BellTime, 0, len(d.Rows))

	for _, row := range d.Rows {
		t, err := timeutil.Parse(row.Time)
		if err != nil {
			continue
		}

		times = append(times, t)
	}

	return times
}

// EffectiveLabel returns the document label, falling back to the
// default when absent or blank.
func (d *Document) EffectiveLabel() string {
	label := strings.TrimSpace(d.Label)
	if label == "" {
		return DefaultLabel
	}

	return label
}

// ImportDocument validates raw JSON and converts it into a schedule.
// Invalid rows are dropped; the import fails only when the structure is
// malformed or no valid bell time survives. On failure the caller's
// schedule is never touched.
func ImportDocument(raw []byte) (*Schedule, error) {
	var probe struct {
		Label string          `json:"label"`
		Rows  json.RawMessage `json:"rows"`
	}

	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, ErrMalformedStructure.Wrap(err)
	}

	if len(probe.Rows) == 0 || string(probe.Rows) == "null" {
		return nil, ErrMalformedStructure
	}

	var rows []Row
	if err := json.Unmarshal(probe.Rows, &rows); err != nil {
		return nil, ErrMalformedStructure
	}

	doc := Document{Label: probe.Label, Rows: rows}

	times := doc.Times()
	if len(times) == 0 {
		return nil, ErrNoValidEntries
	}

	return New(times, doc.EffectiveLabel()), nil
}

// ExportFileName derives the downloadable artifact name from the
// schedule's label.
func ExportFileName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "設定"
	}

	return "時間割 - " + label + ".json"
}

// MarshalIndent renders the document as pretty-printed JSON, the shape
// written to exported files.
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
