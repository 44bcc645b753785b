package trigger_test

import (
	"testing"
	"time"

	"github.com/belfry-dev/belfry/internal/timeutil"
	"github.com/belfry-dev/belfry/schedule"
	"github.com/belfry-dev/belfry/trigger"
)

func newSchedule(t *testing.T, ss ...string) *schedule.Schedule {
	t.Helper()

	times := make([]timeutil.BellTime, 0, len(ss))

	for _, s := range ss {
		bt, err := timeutil.Parse(s)
		if err != nil {
			t.Fatal(err)
		}

		times = append(times, bt)
	}

	return schedule.New(times, schedule.DefaultLabel)
}

func at(t *testing.T, day, clock string) time.Time {
	t.Helper()

	ts, err := time.ParseInLocation("2006-01-02 15:04:05", day+" "+clock, time.Local)
	if err != nil {
		t.Fatal(err)
	}

	return ts
}

func TestNextBell(t *testing.T) {
	s := newSchedule(t, "09:00", "12:30")

	cases := []struct {
		name  string
		clock string
		want  string
	}{
		{name: "before the first bell", clock: "08:00:00", want: "09:00"},
		{name: "exactly on a bell", clock: "09:00:00", want: "09:00"},
		{name: "within the matching minute", clock: "09:00:30", want: "09:00"},
		{name: "between bells", clock: "10:15:00", want: "12:30"},
		{name: "after the last bell wraps", clock: "13:00:00", want: "09:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := trigger.NextBell(s.Sorted(), at(t, "2024-04-08", tc.clock))
			if !ok {
				t.Fatal("expected a next bell")
			}

			if got := next.Time.String(); got != tc.want {
				t.Errorf("next bell = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestNextBellEmptySchedule(t *testing.T) {
	if _, ok := trigger.NextBell(nil, time.Now()); ok {
		t.Error("empty timetable must have no next bell")
	}
}

func TestShouldFireExactlyOncePerMinute(t *testing.T) {
	s := newSchedule(t, "10:00")
	log := trigger.NewFireLog()

	var fires int

	// tick every second of the matching minute
	for sec := 0; sec < 60; sec++ {
		now := at(t, "2024-04-08", "10:00:00").Add(time.Duration(sec) * time.Second)

		if _, fired := log.ShouldFire(s.Sorted(), now); fired {
			fires++
		}
	}

	if fires != 1 {
		t.Errorf("bell fired %d times in one minute, want exactly 1", fires)
	}
}

func TestShouldFireAgainAfterDayRollover(t *testing.T) {
	s := newSchedule(t, "10:00")
	log := trigger.NewFireLog()

	if _, fired := log.ShouldFire(s.Sorted(), at(t, "2024-04-08", "10:00:00")); !fired {
		t.Fatal("bell should fire on the first day")
	}

	if _, fired := log.ShouldFire(s.Sorted(), at(t, "2024-04-08", "10:00:30")); fired {
		t.Fatal("bell must not fire twice on the same day")
	}

	if _, fired := log.ShouldFire(s.Sorted(), at(t, "2024-04-09", "10:00:00")); !fired {
		t.Error("bell should fire again after the day key changes")
	}
}

func TestShouldFireIgnoresNonMatchingMinutes(t *testing.T) {
	s := newSchedule(t, "10:00")
	log := trigger.NewFireLog()

	for _, clock := range []string{"09:59:59", "10:01:00", "23:59:00"} {
		if _, fired := log.ShouldFire(s.Sorted(), at(t, "2024-04-08", clock)); fired {
			t.Errorf("bell fired at %s, want no fire", clock)
		}
	}
}

func TestShouldFireDuplicateTimesFireOnce(t *testing.T) {
	s := newSchedule(t, "10:00", "10:00")
	log := trigger.NewFireLog()

	var fires int

	for sec := 0; sec < 3; sec++ {
		now := at(t, "2024-04-08", "10:00:00").Add(time.Duration(sec) * time.Second)

		if _, fired := log.ShouldFire(s.Sorted(), now); fired {
			fires++
		}
	}

	// the guard tracks times, not entries, so duplicates collapse
	if fires != 1 {
		t.Errorf("duplicate bells fired %d times, want 1", fires)
	}
}

func TestShouldFireEmptySchedule(t *testing.T) {
	log := trigger.NewFireLog()

	if _, fired := log.ShouldFire(nil, time.Now()); fired {
		t.Error("no bell can fire on an empty timetable")
	}
}

func TestShouldFireMultipleBells(t *testing.T) {
	s := newSchedule(t, "10:00", "10:01")
	log := trigger.NewFireLog()

	first, fired := log.ShouldFire(s.Sorted(), at(t, "2024-04-08", "10:00:00"))
	if !fired || first.String() != "10:00" {
		t.Fatalf("expected 10:00 to fire, got %v (%v)", first, fired)
	}

	second, fired := log.ShouldFire(s.Sorted(), at(t, "2024-04-08", "10:01:00"))
	if !fired || second.String() != "10:01" {
		t.Errorf("expected 10:01 to fire, got %v (%v)", second, fired)
	}
}
