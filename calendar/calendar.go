// Package calendar extracts the Gregorian calendar fields the renderer
// consumes from a [time.Time] value.
//
// The field set and its conventions (1=Sunday day-of-week numbering, 0-based
// months for name-table indexing, configurable week rules) follow the
// classic desktop calendar model so that week-of-year and week-of-month
// values match what locale-aware formatters traditionally produce.  All
// computation is pure: [Extract] takes one snapshot and never mutates shared
// state, so a single formatter may be used from concurrent goroutines.
package calendar

import "time"

// Era values, used to index a locale's era-name table.
const (
	BC = 0
	AD = 1
)

// WeekRules carries the locale-dependent parameters of week numbering.
type WeekRules struct {
	// FirstWeekday is the first day of the week, 1=Sunday … 7=Saturday.
	FirstWeekday int
	// MinDaysInFirstWeek is the minimum number of days the first partial
	// week of a year (or month) must contain to count as week 1.  1 means
	// any partial week counts (US convention); 4 yields ISO 8601 weeks when
	// combined with FirstWeekday=2 (Monday).
	MinDaysInFirstWeek int
}

// DefaultWeekRules are the US conventions: weeks start on Sunday and the
// week containing January 1 is week 1.
var DefaultWeekRules = WeekRules{FirstWeekday: 1, MinDaysInFirstWeek: 1}

// Fields is a calendar snapshot of one instant in its own location.
type Fields struct {
	Era  int // BC or AD
	Year int // display year; year 0 of the proleptic calendar is 1 BC

	// WeekYear is the year that owns the instant's week under the active
	// week rules.  Late December days may belong to week 1 of the next
	// year, and (with MinDaysInFirstWeek > 1) early January days to the
	// last week of the previous year.
	WeekYear    int
	WeekOfYear  int
	WeekOfMonth int

	Month            int // 0-based, January = 0
	DayOfYear        int
	DayOfMonth       int
	DayOfWeek        int // 1=Sunday … 7=Saturday
	DayOfWeekInMonth int // ordinal of the weekday within the month (1-5)

	PM          bool
	Hour24      int // 0–23
	Hour12      int // 0–11
	Minute      int
	Second      int
	Millisecond int

	// ZoneAbbrev is the zone abbreviation in effect at the instant, as
	// reported by [time.Time.Zone] (e.g. "EST", "CEST", or "+0530" for
	// zones without a name).
	ZoneAbbrev string
	// ZoneOffset is the total offset east of UTC, DST included.
	ZoneOffset time.Duration
	// DSTOffset is the daylight-saving component of ZoneOffset; zero when
	// standard time is in effect.
	DSTOffset time.Duration
}

// Extract computes the calendar snapshot of t in its own location.
// Out-of-range week rules fall back to [DefaultWeekRules] values.
func Extract(t time.Time, rules WeekRules) Fields {
	if rules.FirstWeekday < 1 || rules.FirstWeekday > 7 {
		rules.FirstWeekday = DefaultWeekRules.FirstWeekday
	}
	if rules.MinDaysInFirstWeek < 1 || rules.MinDaysInFirstWeek > 7 {
		rules.MinDaysInFirstWeek = DefaultWeekRules.MinDaysInFirstWeek
	}

	year, month, day := t.Date()
	dow := int(t.Weekday()) + 1 // time.Sunday==0 → 1
	yday := t.YearDay()

	f := Fields{
		Month:            int(month) - 1,
		DayOfYear:        yday,
		DayOfMonth:       day,
		DayOfWeek:        dow,
		DayOfWeekInMonth: (day-1)/7 + 1,
		WeekOfMonth:      weekNumber(day, dow, rules),
	}

	week, weekYear := weekOfYear(year, yday, dow, rules)
	f.WeekOfYear = week
	f.Era, f.Year = eraYear(year)
	_, f.WeekYear = eraYear(weekYear)

	hour := t.Hour()
	f.PM = hour >= 12
	f.Hour24 = hour
	f.Hour12 = hour % 12
	f.Minute = t.Minute()
	f.Second = t.Second()
	f.Millisecond = t.Nanosecond() / int(time.Millisecond)

	abbrev, off := t.Zone()
	f.ZoneAbbrev = abbrev
	f.ZoneOffset = time.Duration(off) * time.Second
	f.DSTOffset = dstOffset(t)
	return f
}

// eraYear converts a proleptic (astronomical) year to era + display year:
// year 0 is 1 BC, year -1 is 2 BC.
func eraYear(year int) (era, display int) {
	if year <= 0 {
		return BC, 1 - year
	}
	return AD, year
}

// weekNumber computes the week number of a day within a period (year or
// month).  dayOfPeriod is 1-based, dayOfWeek is 1=Sunday.  The result is 0
// when the day falls in a leading partial week too short to count under
// rules.MinDaysInFirstWeek.
func weekNumber(dayOfPeriod, dayOfWeek int, rules WeekRules) int {
	periodStart := floorMod(dayOfWeek-rules.FirstWeekday-dayOfPeriod+1, 7)
	week := (dayOfPeriod + periodStart - 1) / 7
	if 7-periodStart >= rules.MinDaysInFirstWeek {
		week++
	}
	return week
}

// weekOfYear computes the week number and the owning week year, applying
// the two year-boundary corrections:
//
//   - week 0 means the day belongs to the last week of the previous year;
//   - a day in the final days of December may belong to week 1 of the next
//     year when the next year's leading partial week is long enough to
//     count and the day falls inside it.
func weekOfYear(year, yday, dow int, rules WeekRules) (week, weekYear int) {
	week = weekNumber(yday, dow, rules)
	if week == 0 {
		return weekNumber(yday+daysInYear(year-1), dow, rules), year - 1
	}
	if week >= 52 {
		remaining := daysInYear(year) - yday // full days left in the year
		jan1DOW := floorMod(dow-1+remaining+1, 7) + 1
		ndays := floorMod(rules.FirstWeekday-jan1DOW, 7)
		if ndays >= rules.MinDaysInFirstWeek && remaining+1+ndays <= 7 {
			return 1, year + 1
		}
	}
	return week, year
}

// daysInYear returns the length of a proleptic Gregorian year.
func daysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// dstOffset returns the daylight-saving component of t's UTC offset: the
// difference between the offset in effect at t and the location's standard
// offset for that year.  The standard offset is taken as the smaller of the
// offsets in effect on January 1 and July 1, which holds for both
// hemispheres.
func dstOffset(t time.Time) time.Duration {
	loc := t.Location()
	_, off := t.Zone()
	_, jan := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc).Zone()
	_, jul := time.Date(t.Year(), time.July, 1, 0, 0, 0, 0, loc).Zone()
	std := jan
	if jul < std {
		std = jul
	}
	if off > std {
		return time.Duration(off-std) * time.Second
	}
	return 0
}

// floorMod returns x mod m with the sign of m (always non-negative here).
func floorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
