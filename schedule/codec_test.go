package schedule_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"

	"github.com/belfry-dev/belfry/schedule"
)

func TestImportDocument(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantErr   error
		wantTimes []string
		wantLabel string
	}{
		{
			name:      "valid document",
			raw:       `{"label":"2年3組","rows":[{"time":"08:15"},{"time":"12:30"}]}`,
			wantTimes: []string{"08:15", "12:30"},
			wantLabel: "2年3組",
		},
		{
			name:      "invalid rows are dropped",
			raw:       `{"rows":[{"time":"25:61"},{"time":"07:05"}]}`,
			wantTimes: []string{"07:05"},
			wantLabel: schedule.DefaultLabel,
		},
		{
			name:      "blank label falls back to default",
			raw:       `{"label":"   ","rows":[{"time":"08:15"}]}`,
			wantTimes: []string{"08:15"},
			wantLabel: schedule.DefaultLabel,
		},
		{
			name:      "signed components are dropped",
			raw:       `{"rows":[{"time":"+1:30"},{"time":"09:+5"},{"time":"08:15"}]}`,
			wantTimes: []string{"08:15"},
			wantLabel: schedule.DefaultLabel,
		},
		{
			name:    "no valid entries",
			raw:     `{"rows":[{"time":"25:61"}]}`,
			wantErr: schedule.ErrNoValidEntries,
		},
		{
			name:    "rows missing",
			raw:     `{"label":"test"}`,
			wantErr: schedule.ErrMalformedStructure,
		},
		{
			name:    "rows not a list",
			raw:     `{"rows":{"time":"08:15"}}`,
			wantErr: schedule.ErrMalformedStructure,
		},
		{
			name:    "rows null",
			raw:     `{"rows":null}`,
			wantErr: schedule.ErrMalformedStructure,
		},
		{
			name:    "not json",
			raw:     `{{`,
			wantErr: schedule.ErrMalformedStructure,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schedule.ImportDocument([]byte(tc.raw))

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			var gotTimes []string
			for _, bt := range got.Times() {
				gotTimes = append(gotTimes, bt.String())
			}

			if diff := cmp.Diff(tc.wantTimes, gotTimes); diff != "" {
				t.Errorf("times mismatch (-want +got):\n%s", diff)
			}

			if got.Label != tc.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tc.wantLabel)
			}
		})
	}
}

func TestImportFailureLeavesScheduleUntouched(t *testing.T) {
	prior := schedule.New(times(t, "08:15"), schedule.DefaultLabel)

	_, err := schedule.ImportDocument([]byte(`{"rows":[{"time":"25:61"}]}`))
	if err == nil {
		t.Fatal("expected import to fail")
	}

	if prior.Len() != 1 || prior.Entries()[0].Time.String() != "08:15" {
		t.Error("failed import must not modify the prior schedule")
	}
}

func TestExportDocumentSortsRows(t *testing.T) {
	s := schedule.New(times(t, "12:30", "08:15"), "2年3組")

	doc := schedule.ExportDocument(s)

	want := []schedule.Row{{Time: "08:15"}, {Time: "12:30"}}
	if diff := cmp.Diff(want, doc.Rows); diff != "" {
		t.Errorf("export rows mismatch (-want +got):\n%s", diff)
	}

	b, err := doc.MarshalIndent()
	if err != nil {
		t.Fatal(err)
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, "export", b)
}

func TestExportFileName(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{label: "2年3組", want: "時間割 - 2年3組.json"},
		{label: "  ", want: "時間割 - 設定.json"},
		{label: "", want: "時間割 - 設定.json"},
	}

	for _, tc := range cases {
		if got := schedule.ExportFileName(tc.label); got != tc.want {
			t.Errorf("ExportFileName(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}
