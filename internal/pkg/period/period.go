// Package period resolves caller-supplied period tokens ("this month",
// "last 7 days", "2025-01-15") into concrete inclusive date ranges.
package period

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultLookbackDays is the window used when a token carries no usable
// day count.
const DefaultLookbackDays = 30

// Range is an inclusive [Start, End] timestamp pair. Start is always at
// 00:00:00 of its day and End at 23:59:59.999999999 of its day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days the range spans, counting both
// boundary days.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
}

// ParseDate tries each accepted date format in order and returns the first
// successful parse. Exhausting all formats yields (zero, false), never an
// error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var lastNDaysRegex = regexp.MustCompile(`^last\s+(\d+)\s+days?$`)

// Resolve maps a period token to a concrete date range anchored at now.
// Relative phrases, explicit dates and "last N days" are all accepted;
// anything unrecognizable falls back to the last DefaultLookbackDays days.
func Resolve(token string, now time.Time) Range {
	token = strings.ToLower(strings.TrimSpace(token))

	switch token {
	case "today", "now", "":
		return dayRange(now)

	case "yesterday":
		return dayRange(now.AddDate(0, 0, -1))

	case "this week", "week":
		// Week starts Monday.
		start := startOfDay(now).AddDate(0, 0, -weekdayIndex(now))
		return Range{Start: start, End: endOfDay(now)}

	case "last week":
		// Full Monday-Sunday span of the previous week.
		start := startOfDay(now).AddDate(0, 0, -weekdayIndex(now)-7)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}

	case "this month", "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: endOfDay(now)}

	case "last month":
		// Calendar arithmetic, so a 28-day February stays 28 days.
		firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		lastOfPrevMonth := firstOfThisMonth.AddDate(0, 0, -1)
		start := time.Date(lastOfPrevMonth.Year(), lastOfPrevMonth.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: endOfDay(lastOfPrevMonth)}

	case "this year", "year":
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: endOfDay(now)}
	}

	if m := lastNDaysRegex.FindStringSubmatch(token); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return LastNDays(now, n)
		}
	}

	if t, ok := ParseDate(token); ok {
		return dayRange(t)
	}

	return LastNDays(now, DefaultLookbackDays)
}

// LastNDays returns [start_of_day(now-n), end_of_day(now)].
func LastNDays(now time.Time, n int) Range {
	if n < 0 {
		n = DefaultLookbackDays
	}
	return Range{
		Start: startOfDay(now.AddDate(0, 0, -n)),
		End:   endOfDay(now),
	}
}

func dayRange(t time.Time) Range {
	return Range{Start: startOfDay(t), End: endOfDay(t)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// weekdayIndex maps time.Weekday to a Monday-first index (Monday = 0).
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
