package calendar

import (
	"testing"
	"time"
)

var (
	usRules  = WeekRules{FirstWeekday: 1, MinDaysInFirstWeek: 1}
	isoRules = WeekRules{FirstWeekday: 2, MinDaysInFirstWeek: 4}
)

func TestExtractBasicFields(t *testing.T) {
	// Friday, December 5, 2014 13:04:05.007 UTC.
	f := Extract(time.Date(2014, 12, 5, 13, 4, 5, 7_000_000, time.UTC), usRules)

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"Era", f.Era, AD},
		{"Year", f.Year, 2014},
		{"WeekYear", f.WeekYear, 2014},
		{"Month", f.Month, 11},
		{"WeekOfYear", f.WeekOfYear, 49},
		{"WeekOfMonth", f.WeekOfMonth, 1},
		{"DayOfYear", f.DayOfYear, 339},
		{"DayOfMonth", f.DayOfMonth, 5},
		{"DayOfWeek", f.DayOfWeek, 6}, // Friday
		{"DayOfWeekInMonth", f.DayOfWeekInMonth, 1},
		{"Hour24", f.Hour24, 13},
		{"Hour12", f.Hour12, 1},
		{"Minute", f.Minute, 4},
		{"Second", f.Second, 5},
		{"Millisecond", f.Millisecond, 7},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if !f.PM {
		t.Error("PM = false, want true")
	}
	if f.ZoneOffset != 0 || f.DSTOffset != 0 {
		t.Errorf("UTC offsets = %v/%v, want 0/0", f.ZoneOffset, f.DSTOffset)
	}
}

func TestWeekOfYearBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		date         time.Time
		rules        WeekRules
		wantWeek     int
		wantWeekYear int
	}{
		{
			name:         "january 1 is week 1 under US rules",
			date:         time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC),
			rules:        usRules,
			wantWeek:     1,
			wantWeekYear: 2014,
		},
		{
			// Dec 31 2017 is a Sunday; its week runs through Jan 6 2018 and
			// the 2018 partial week (Mon Jan 1 – Sat Jan 6) counts as week 1.
			name:         "late december rolls into week 1 of the next year",
			date:         time.Date(2017, 12, 31, 0, 0, 0, 0, time.UTC),
			rules:        usRules,
			wantWeek:     1,
			wantWeekYear: 2018,
		},
		{
			// Dec 30 2017 is a Saturday, still in the old year's last week.
			// 2017 starts on a Sunday, so its weeks align with the rules and
			// Saturday Dec 30 closes week 52.
			name:         "day before the rollover stays in the old year",
			date:         time.Date(2017, 12, 30, 0, 0, 0, 0, time.UTC),
			rules:        usRules,
			wantWeek:     52,
			wantWeekYear: 2017,
		},
		{
			// ISO 8601: Jan 1 2016 (Friday) belongs to week 53 of 2015.
			name:         "early january belongs to the previous ISO week year",
			date:         time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
			rules:        isoRules,
			wantWeek:     53,
			wantWeekYear: 2015,
		},
		{
			// ISO 8601: Dec 29 2014 (Monday) opens week 1 of 2015.
			name:         "late december belongs to the next ISO week year",
			date:         time.Date(2014, 12, 29, 0, 0, 0, 0, time.UTC),
			rules:        isoRules,
			wantWeek:     1,
			wantWeekYear: 2015,
		},
		{
			name:         "aligned year start keeps its final week",
			date:         time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), // Sunday
			rules:        usRules,
			wantWeek:     1,
			wantWeekYear: 2017,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Extract(tc.date, tc.rules)
			if f.WeekOfYear != tc.wantWeek || f.WeekYear != tc.wantWeekYear {
				t.Errorf("Extract(%s) week = %d of %d, want %d of %d",
					tc.date.Format("2006-01-02"), f.WeekOfYear, f.WeekYear, tc.wantWeek, tc.wantWeekYear)
			}
		})
	}
}

func TestEraAndDisplayYear(t *testing.T) {
	tests := []struct {
		year     int
		wantEra  int
		wantYear int
	}{
		{2014, AD, 2014},
		{1, AD, 1},
		{0, BC, 1},  // proleptic year 0 is 1 BC
		{-1, BC, 2}, // proleptic year -1 is 2 BC
	}
	for _, tc := range tests {
		f := Extract(time.Date(tc.year, 6, 15, 0, 0, 0, 0, time.UTC), usRules)
		if f.Era != tc.wantEra || f.Year != tc.wantYear {
			t.Errorf("year %d: era/year = %d/%d, want %d/%d",
				tc.year, f.Era, f.Year, tc.wantEra, tc.wantYear)
		}
	}
}

func TestHourConventions(t *testing.T) {
	midnight := Extract(time.Date(2014, 12, 5, 0, 0, 0, 0, time.UTC), usRules)
	if midnight.Hour24 != 0 || midnight.Hour12 != 0 || midnight.PM {
		t.Errorf("midnight = %d/%d PM=%v, want 0/0 PM=false",
			midnight.Hour24, midnight.Hour12, midnight.PM)
	}
	noon := Extract(time.Date(2014, 12, 5, 12, 0, 0, 0, time.UTC), usRules)
	if noon.Hour24 != 12 || noon.Hour12 != 0 || !noon.PM {
		t.Errorf("noon = %d/%d PM=%v, want 12/0 PM=true", noon.Hour24, noon.Hour12, noon.PM)
	}
}

func TestDayOfWeekInMonth(t *testing.T) {
	tests := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {28, 4}, {29, 5}, {31, 5},
	}
	for _, tc := range tests {
		f := Extract(time.Date(2014, 12, tc.day, 0, 0, 0, 0, time.UTC), usRules)
		if f.DayOfWeekInMonth != tc.want {
			t.Errorf("day %d: DayOfWeekInMonth = %d, want %d", tc.day, f.DayOfWeekInMonth, tc.want)
		}
	}
}

func TestFixedZoneOffsets(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	f := Extract(time.Date(2014, 12, 5, 0, 0, 0, 0, loc), usRules)
	if f.ZoneAbbrev != "PST" {
		t.Errorf("ZoneAbbrev = %q, want PST", f.ZoneAbbrev)
	}
	if f.ZoneOffset != -8*time.Hour {
		t.Errorf("ZoneOffset = %v, want -8h", f.ZoneOffset)
	}
	if f.DSTOffset != 0 {
		t.Errorf("DSTOffset = %v, want 0 for a fixed zone", f.DSTOffset)
	}
}

func TestDSTOffset(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	summer := Extract(time.Date(2014, 7, 1, 12, 0, 0, 0, loc), usRules)
	if summer.DSTOffset != time.Hour {
		t.Errorf("July DSTOffset = %v, want 1h", summer.DSTOffset)
	}
	if summer.ZoneAbbrev != "EDT" {
		t.Errorf("July ZoneAbbrev = %q, want EDT", summer.ZoneAbbrev)
	}
	winter := Extract(time.Date(2014, 1, 15, 12, 0, 0, 0, loc), usRules)
	if winter.DSTOffset != 0 {
		t.Errorf("January DSTOffset = %v, want 0", winter.DSTOffset)
	}
	if winter.ZoneOffset != -5*time.Hour {
		t.Errorf("January ZoneOffset = %v, want -5h", winter.ZoneOffset)
	}
}

func TestExtractRejectsBadRules(t *testing.T) {
	// Out-of-range rules silently fall back to the defaults.
	f := Extract(time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), WeekRules{FirstWeekday: 9, MinDaysInFirstWeek: 0})
	if f.WeekOfYear != 1 {
		t.Errorf("WeekOfYear = %d, want 1 under default rules", f.WeekOfYear)
	}
}
