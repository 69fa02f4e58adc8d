package locale

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestLookupMatching(t *testing.T) {
	tests := []struct {
		tag  string
		want *Symbols
	}{
		{"en", English},
		{"en-US", English},
		{"en-GB", BritishEnglish},
		{"de", German},
		{"de-AT", German},
		{"fr-CA", French},
		{"es-MX", Spanish},
		{"pt-BR", Portuguese},
		{"zh", English}, // no Chinese locale registered → fallback
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			got := Lookup(language.MustParse(tc.tag))
			if got != tc.want {
				t.Errorf("Lookup(%s) = %v, want %v", tc.tag, got.Tag, tc.want.Tag)
			}
		})
	}
}

func TestRegisterOverridesAndExtends(t *testing.T) {
	custom := &Symbols{}
	*custom = *English
	custom.Tag = language.MustParse("nn")
	Register(custom)
	if got := Lookup(language.MustParse("nn")); got != custom {
		t.Errorf("Lookup after Register = %v, want the registered locale", got.Tag)
	}
}

func TestZoneName(t *testing.T) {
	tests := []struct {
		name   string
		abbrev string
		offset time.Duration
		isDST  bool
		long   bool
		want   string
	}{
		{"short standard", "PST", -8 * time.Hour, false, false, "PST"},
		{"long standard", "PST", -8 * time.Hour, false, true, "Pacific Standard Time"},
		{"short daylight", "PDT", -7 * time.Hour, true, false, "PDT"},
		{"long daylight", "PDT", -7 * time.Hour, true, true, "Pacific Daylight Time"},
		{"utc long", "UTC", 0, false, true, "Coordinated Universal Time"},
		{"unknown abbrev short passes through", "XYZ", 2 * time.Hour, false, false, "XYZ"},
		{"unknown abbrev long falls back to GMT", "XYZ", 2 * time.Hour, false, true, "GMT+02:00"},
		{"numeric abbrev short falls back to GMT", "+0530", 5*time.Hour + 30*time.Minute, false, false, "GMT+05:30"},
		{"empty abbrev", "", -3 * time.Hour, false, false, "GMT-03:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := English.ZoneName(tc.abbrev, tc.offset, tc.isDST, tc.long)
			if got != tc.want {
				t.Errorf("ZoneName(%q, %v, dst=%v, long=%v) = %q, want %q",
					tc.abbrev, tc.offset, tc.isDST, tc.long, got, tc.want)
			}
		})
	}
}

func TestTableShapes(t *testing.T) {
	for _, s := range []*Symbols{English, BritishEnglish, German, French, Spanish, Portuguese} {
		t.Run(s.Tag.String(), func(t *testing.T) {
			for i, m := range s.Months {
				if m == "" {
					t.Errorf("Months[%d] is empty", i)
				}
			}
			for i, m := range s.ShortMonths {
				if m == "" {
					t.Errorf("ShortMonths[%d] is empty", i)
				}
			}
			if s.Weekdays[0] != "" || s.ShortWeekdays[0] != "" {
				t.Error("weekday index 0 must stay unused")
			}
			for i := 1; i < 8; i++ {
				if s.Weekdays[i] == "" || s.ShortWeekdays[i] == "" {
					t.Errorf("weekday entry %d is empty", i)
				}
			}
			if s.Week.FirstWeekday < 1 || s.Week.FirstWeekday > 7 {
				t.Errorf("FirstWeekday %d out of range", s.Week.FirstWeekday)
			}
			if s.Week.MinDaysInFirstWeek < 1 || s.Week.MinDaysInFirstWeek > 7 {
				t.Errorf("MinDaysInFirstWeek %d out of range", s.Week.MinDaysInFirstWeek)
			}
		})
	}
}

// ── TOML loading ──────────────────────────────────────────────────────────────

const dutchTOML = `
tag = "nl"
months = [
  "januari", "februari", "maart", "april", "mei", "juni",
  "juli", "augustus", "september", "oktober", "november", "december",
]
short-months = [
  "jan.", "feb.", "mrt.", "apr.", "mei", "jun.",
  "jul.", "aug.", "sep.", "okt.", "nov.", "dec.",
]
weekdays = [
  "zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag",
]
short-weekdays = ["zo", "ma", "di", "wo", "do", "vr", "za"]

[week]
first-weekday = 2
min-days-in-first-week = 4

[zones.CET]
short = "CET"
long = "Midden-Europese standaardtijd"
dst-short = "CEST"
dst-long = "Midden-Europese zomertijd"
`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(dutchTOML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Tag != language.MustParse("nl") {
		t.Errorf("Tag = %v, want nl", s.Tag)
	}
	if s.Months[11] != "december" {
		t.Errorf("Months[11] = %q, want december", s.Months[11])
	}
	if s.Weekdays[1] != "zondag" || s.Weekdays[7] != "zaterdag" {
		t.Errorf("weekday placement wrong: %q … %q", s.Weekdays[1], s.Weekdays[7])
	}
	if s.Week.FirstWeekday != 2 || s.Week.MinDaysInFirstWeek != 4 {
		t.Errorf("week rules = %+v, want Monday-first ISO", s.Week)
	}
	// Omitted eras and am-pm fall back to English.
	if s.Eras != English.Eras {
		t.Errorf("Eras = %v, want English fallback", s.Eras)
	}
	if s.AmPm != English.AmPm {
		t.Errorf("AmPm = %v, want English fallback", s.AmPm)
	}
	got := s.ZoneName("CEST", 2*time.Hour, true, true)
	if got != "Midden-Europese zomertijd" {
		t.Errorf("ZoneName(CEST, long, dst) = %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"missing tag", `months = ["a"]`},
		{"bad tag", "tag = \"!!\"\n"},
		{
			"wrong month count",
			"tag = \"nl\"\nmonths = [\"januari\"]\n" +
				"short-months = [\"jan.\"]\nweekdays = [\"zo\"]\nshort-weekdays = [\"zo\"]\n",
		},
		{
			"bad week rules",
			strings.Replace(dutchTOML, "first-weekday = 2", "first-weekday = 8", 1),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tc.toml)); err == nil {
				t.Error("Load succeeded, want error")
			}
		})
	}
}

func TestLoadedLocaleRegisters(t *testing.T) {
	s, err := Load(strings.NewReader(dutchTOML))
	if err != nil {
		t.Fatal(err)
	}
	Register(s)
	if got := Lookup(language.MustParse("nl")); got != s {
		t.Errorf("Lookup(nl) = %v, want the loaded locale", got.Tag)
	}
}
