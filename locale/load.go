package locale

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-datefmt/calendar"
)

// fileLocale is the TOML shape of a user-defined locale:
//
//	tag = "nl"
//	months = ["januari", ..., "december"]          # 12 entries
//	short-months = ["jan.", ..., "dec."]           # 12 entries
//	weekdays = ["zondag", ..., "zaterdag"]         # 7 entries, Sunday first
//	short-weekdays = ["zo", ..., "za"]             # 7 entries, Sunday first
//	eras = ["v.Chr.", "n.Chr."]                    # optional
//	am-pm = ["a.m.", "p.m."]                       # optional
//
//	[week]
//	first-weekday = 2            # 1=Sunday … 7=Saturday
//	min-days-in-first-week = 4
//
//	[zones.CET]
//	short = "CET"
//	long = "Midden-Europese standaardtijd"
//	dst-short = "CEST"
//	dst-long = "Midden-Europese zomertijd"
//
// Omitted eras and am-pm fall back to the English strings; an omitted
// [week] section falls back to the default week rules.
type fileLocale struct {
	Tag           string              `toml:"tag"`
	Eras          []string            `toml:"eras"`
	Months        []string            `toml:"months"`
	ShortMonths   []string            `toml:"short-months"`
	Weekdays      []string            `toml:"weekdays"`
	ShortWeekdays []string            `toml:"short-weekdays"`
	AmPm          []string            `toml:"am-pm"`
	Week          fileWeek            `toml:"week"`
	Zones         map[string]fileZone `toml:"zones"`
}

type fileWeek struct {
	FirstWeekday       int `toml:"first-weekday"`
	MinDaysInFirstWeek int `toml:"min-days-in-first-week"`
}

type fileZone struct {
	Short    string `toml:"short"`
	Long     string `toml:"long"`
	DSTShort string `toml:"dst-short"`
	DSTLong  string `toml:"dst-long"`
}

// LoadFile reads a TOML locale definition from the named file.  The result
// is not registered automatically; pass it to [Register] to make it
// resolvable through [Lookup].
func LoadFile(path string) (*Symbols, error) {
	var fl fileLocale
	if _, err := toml.DecodeFile(path, &fl); err != nil {
		return nil, fmt.Errorf("locale: load %q: %w", path, err)
	}
	s, err := fl.symbols()
	if err != nil {
		return nil, fmt.Errorf("locale: load %q: %w", path, err)
	}
	return s, nil
}

// Load reads a TOML locale definition from r.
func Load(r io.Reader) (*Symbols, error) {
	var fl fileLocale
	if _, err := toml.NewDecoder(r).Decode(&fl); err != nil {
		return nil, fmt.Errorf("locale: load: %w", err)
	}
	s, err := fl.symbols()
	if err != nil {
		return nil, fmt.Errorf("locale: load: %w", err)
	}
	return s, nil
}

// symbols validates the decoded tables and assembles the Symbols value.
func (fl *fileLocale) symbols() (*Symbols, error) {
	if fl.Tag == "" {
		return nil, fmt.Errorf("missing tag")
	}
	tag, err := language.Parse(fl.Tag)
	if err != nil {
		return nil, fmt.Errorf("bad tag %q: %w", fl.Tag, err)
	}

	s := &Symbols{Tag: tag}

	if err := fillTable(s.Months[:], fl.Months, "months", 12, nil); err != nil {
		return nil, err
	}
	if err := fillTable(s.ShortMonths[:], fl.ShortMonths, "short-months", 12, nil); err != nil {
		return nil, err
	}
	// Weekday tables are Sunday-first in the file; index 0 stays unused.
	if err := fillTable(s.Weekdays[1:], fl.Weekdays, "weekdays", 7, nil); err != nil {
		return nil, err
	}
	if err := fillTable(s.ShortWeekdays[1:], fl.ShortWeekdays, "short-weekdays", 7, nil); err != nil {
		return nil, err
	}
	if err := fillTable(s.Eras[:], fl.Eras, "eras", 2, English.Eras[:]); err != nil {
		return nil, err
	}
	if err := fillTable(s.AmPm[:], fl.AmPm, "am-pm", 2, English.AmPm[:]); err != nil {
		return nil, err
	}

	s.Week = calendar.WeekRules{
		FirstWeekday:       fl.Week.FirstWeekday,
		MinDaysInFirstWeek: fl.Week.MinDaysInFirstWeek,
	}
	if s.Week.FirstWeekday == 0 && s.Week.MinDaysInFirstWeek == 0 {
		s.Week = calendar.DefaultWeekRules
	}
	if s.Week.FirstWeekday < 1 || s.Week.FirstWeekday > 7 {
		return nil, fmt.Errorf("week.first-weekday %d out of range [1, 7]", s.Week.FirstWeekday)
	}
	if s.Week.MinDaysInFirstWeek < 1 || s.Week.MinDaysInFirstWeek > 7 {
		return nil, fmt.Errorf("week.min-days-in-first-week %d out of range [1, 7]", s.Week.MinDaysInFirstWeek)
	}

	if len(fl.Zones) > 0 {
		s.Zones = make(map[string]ZoneNames, len(fl.Zones))
		for abbrev, z := range fl.Zones {
			s.Zones[abbrev] = ZoneNames(z)
		}
	}
	return s, nil
}

// fillTable copies src into dst, enforcing the expected entry count.  When
// src is empty and fallback is non-nil the fallback entries are used instead.
func fillTable(dst []string, src []string, name string, want int, fallback []string) error {
	if len(src) == 0 && fallback != nil {
		copy(dst, fallback)
		return nil
	}
	if len(src) != want {
		return fmt.Errorf("%s needs %d entries, got %d", name, want, len(src))
	}
	copy(dst, src)
	return nil
}
