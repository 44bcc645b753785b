package sharelink_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/belfry-dev/belfry/internal/timeutil"
	"github.com/belfry-dev/belfry/schedule"
	"github.com/belfry-dev/belfry/sharelink"
)

const baseURL = "https://belfry.pages.dev/"

func bells(t *testing.T, ss ...string) []timeutil.BellTime {
	t.Helper()

	out := make([]timeutil.BellTime, 0, len(ss))

	for _, s := range ss {
		bt, err := timeutil.Parse(s)
		if err != nil {
			t.Fatal(err)
		}

		out = append(out, bt)
	}

	return out
}

func TestTimesParam(t *testing.T) {
	got := sharelink.TimesParam(bells(t, "08:15", "12:30"))
	if got != "0815-1230" {
		t.Errorf("TimesParam = %q, want 0815-1230", got)
	}

	if got := sharelink.TimesParam(nil); got != "" {
		t.Errorf("empty timetable should produce an empty param, got %q", got)
	}
}

func TestParseTimesParam(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "valid tokens sorted ascending",
			value: "1230-0815",
			want:  []string{"08:15", "12:30"},
		},
		{
			name:  "invalid segments dropped",
			value: "0815-2461-abcd-123-1230",
			want:  []string{"08:15", "12:30"},
		},
		{
			name:  "duplicates preserved",
			value: "0815-0815",
			want:  []string{"08:15", "08:15"},
		},
		{
			name:  "nothing valid",
			value: "junk",
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, bt := range sharelink.ParseTimesParam(tc.value) {
				got = append(got, bt.String())
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	s := schedule.New(bells(t, "08:15", "12:30"), "2年3組")

	link := sharelink.Build(baseURL, s)

	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}

	if got := u.Query().Get(sharelink.ParamTimes); got != "0815-1230" {
		t.Errorf("time param = %q, want 0815-1230", got)
	}

	if got := u.Query().Get(sharelink.ParamLabel); got != "2年3組" {
		t.Errorf("label param = %q, want 2年3組", got)
	}
}

func TestBuildOmitsDefaultLabel(t *testing.T) {
	s := schedule.New(bells(t, "08:15"), schedule.DefaultLabel)

	u, err := url.Parse(sharelink.Build(baseURL, s))
	if err != nil {
		t.Fatal(err)
	}

	if u.Query().Has(sharelink.ParamLabel) {
		t.Error("default label must be omitted from the link")
	}
}

func TestBuildOmitsTimeParamWhenEmpty(t *testing.T) {
	s := schedule.New(nil, schedule.DefaultLabel)

	u, err := url.Parse(sharelink.Build(baseURL, s))
	if err != nil {
		t.Fatal(err)
	}

	if u.Query().Has(sharelink.ParamTimes) {
		t.Error("empty timetable must remove the time param entirely")
	}
}

func TestDecode(t *testing.T) {
	times, label, ok := sharelink.Decode(baseURL + "?time=1230-0815&label=2%E5%B9%B43%E7%B5%84")
	if !ok {
		t.Fatal("expected link to decode")
	}

	var got []string
	for _, bt := range times {
		got = append(got, bt.String())
	}

	if diff := cmp.Diff([]string{"08:15", "12:30"}, got); diff != "" {
		t.Errorf("times mismatch (-want +got):\n%s", diff)
	}

	if label != "2年3組" {
		t.Errorf("label = %q, want 2年3組", label)
	}
}

func TestDecodeWithoutTimesParam(t *testing.T) {
	if _, _, ok := sharelink.Decode(baseURL); ok {
		t.Error("link with no time param must not decode")
	}

	if _, _, ok := sharelink.Decode(baseURL + "?time=junk"); ok {
		t.Error("link with no valid segment must not decode")
	}
}

func TestDecodeDefaultsLabel(t *testing.T) {
	_, label, ok := sharelink.Decode(baseURL + "?time=0815")
	if !ok {
		t.Fatal("expected link to decode")
	}

	if label != schedule.DefaultLabel {
		t.Errorf("label = %q, want default", label)
	}
}

func TestBuildDecodeRoundTrip(t *testing.T) {
	s := schedule.New(bells(t, "07:00", "08:15", "12:30"), "テスト")

	times, label, ok := sharelink.Decode(sharelink.Build(baseURL, s))
	if !ok {
		t.Fatal("expected built link to decode")
	}

	if diff := cmp.Diff(s.Times(), times); diff != "" {
		t.Errorf("times mismatch (-want +got):\n%s", diff)
	}

	if label != "テスト" {
		t.Errorf("label = %q, want テスト", label)
	}
}
