// Package sharelink encodes a timetable into a shareable URL and back.
package sharelink

import (
	"net/url"
	"sort"
	"strings"

	"github.com/belfry-dev/belfry/internal/timeutil"
	"github.com/belfry-dev/belfry/schedule"
)

const (
	// ParamTimes is the query parameter carrying the bell times as
	// 4-digit tokens joined by "-".
	ParamTimes = "time"

	// ParamLabel is the query parameter carrying the timetable label. It
	// is omitted when the label equals the default to keep links short.
	ParamLabel = "label"
)

// TimesParam joins the bell times into the compact query value. An
// empty slice yields an empty string, which callers translate into
// removing the parameter entirely.
func TimesParam(times []timeutil.BellTime) string {
	tokens := make([]string, 0, len(times))
	for _, t := range times {
		tokens = append(tokens, t.Token())
	}

	return strings.Join(tokens, "-")
}

// ParseTimesParam decodes the compact query value, discarding any
// segment that is not a valid 4-digit token. Duplicates are preserved
// and the result is sorted ascending, so link-sourced timetables lose
// their original edit order.
func ParseTimesParam(value string) []timeutil.BellTime {
	var times []timeutil.BellTime

	for _, segment := range strings.Split(value, "-") {
		t, err := timeutil.ParseToken(strings.TrimSpace(segment))
		if err != nil {
			continue
		}

		times = append(times, t)
	}

	sort.SliceStable(times, func(i, j int) bool {
		return times[i].Minutes() < times[j].Minutes()
	})

	return times
}

// Build renders the share link for a schedule on top of the given base
// URL.
func Build(baseURL string, s *schedule.Schedule) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		u = &url.URL{}
	}

	q := u.Query()

	timesParam := TimesParam(s.Times())
	if timesParam != "" {
		q.Set(ParamTimes, timesParam)
	} else {
		q.Del(ParamTimes)
	}

	label := strings.TrimSpace(s.Label)
	if label != "" && label != schedule.DefaultLabel {
		q.Set(ParamLabel, label)
	} else {
		q.Del(ParamLabel)
	}

	u.RawQuery = q.Encode()

	return u.String()
}

// Decode extracts the bell times and label from a share link. ok is
// false when the link has no time parameter or no segment survives
// validation.
func Decode(link string) (times []timeutil.BellTime, label string, ok bool) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, "", false
	}

	q := u.Query()

	value := q.Get(ParamTimes)
	if value == "" {
		return nil, "", false
	}

	times = ParseTimesParam(value)
	if len(times) == 0 {
		return nil, "", false
	}

	label = strings.TrimSpace(q.Get(ParamLabel))
	if label == "" {
		label = schedule.DefaultLabel
	}

	return times, label, true
}
