// Package locale holds the symbol tables the renderer consumes: era names,
// month and weekday names, AM/PM markers, time-zone display names, and the
// locale's week-numbering rules.
//
// A handful of locales are built in; [Lookup] resolves a BCP 47 tag against
// the registered set using [golang.org/x/text/language] matching and falls
// back to [English] when nothing matches.  Additional locales can be
// registered at runtime with [Register] or loaded from declarative TOML
// files with [Load] and [LoadFile].
package locale

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-datefmt/calendar"
)

// ZoneNames holds the display names for one time zone.  Empty fields fall
// back to the zone abbreviation (short forms) or a GMT offset (long forms).
type ZoneNames struct {
	Short    string // standard time, short form, e.g. "PST"
	Long     string // standard time, long form, e.g. "Pacific Standard Time"
	DSTShort string // daylight time, short form, e.g. "PDT"
	DSTLong  string // daylight time, long form, e.g. "Pacific Daylight Time"
}

// Symbols is one locale's complete symbol set.
//
// Weekday tables are indexed 1=Sunday … 7=Saturday with index 0 unused,
// month tables 0-based with January at 0 — both matching the conventions of
// [calendar.Fields].
type Symbols struct {
	// Tag identifies the locale, e.g. language.AmericanEnglish.
	Tag language.Tag

	Eras          [2]string // index calendar.BC / calendar.AD
	Months        [12]string
	ShortMonths   [12]string
	Weekdays      [8]string // index 0 unused
	ShortWeekdays [8]string
	AmPm          [2]string

	// Week carries the locale's week-numbering rules.
	Week calendar.WeekRules

	// Zones maps zone abbreviations — both standard and daylight forms, as
	// reported by [time.Time.Zone] — to their display names.  May be nil.
	Zones map[string]ZoneNames
}

// ZoneName returns the display name for a zone, given the abbreviation and
// total offset in effect at the instant.  isDST selects the daylight-saving
// variants, long the long forms.  Unknown abbreviations fall back to the
// abbreviation itself (short) or to "GMT±hh:mm" (long, or when the
// abbreviation is a bare numeric offset such as "+0530").
func (s *Symbols) ZoneName(abbrev string, offset time.Duration, isDST, long bool) string {
	if z, ok := s.Zones[abbrev]; ok {
		switch {
		case isDST && long && z.DSTLong != "":
			return z.DSTLong
		case isDST && !long && z.DSTShort != "":
			return z.DSTShort
		case long && z.Long != "":
			return z.Long
		case !long && z.Short != "":
			return z.Short
		}
	}
	if !long && abbrev != "" && !strings.ContainsAny(abbrev, "+-0123456789") {
		return abbrev
	}
	return gmtName(offset)
}

// gmtName renders an offset as "GMT±hh:mm".
func gmtName(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	mins := int(offset / time.Minute)
	return fmt.Sprintf("GMT%s%02d:%02d", sign, mins/60, mins%60)
}

// ── registry ─────────────────────────────────────────────────────────────────

var registry = struct {
	sync.RWMutex
	byTag   map[string]*Symbols
	tags    []language.Tag
	matcher language.Matcher // rebuilt lazily after Register
}{byTag: make(map[string]*Symbols)}

// Register adds s to the locale registry, replacing any locale previously
// registered under the same tag.  It is typically called from init or
// program startup; registration is safe for concurrent use with Lookup.
func Register(s *Symbols) {
	registry.Lock()
	defer registry.Unlock()
	key := s.Tag.String()
	if _, exists := registry.byTag[key]; !exists {
		registry.tags = append(registry.tags, s.Tag)
	}
	registry.byTag[key] = s
	registry.matcher = nil
}

// Lookup resolves tag against the registered locales.  Matching follows the
// x/text language matcher, so "en-US" resolves to the registered "en" and
// regional variants pick their parent.  An unmatched tag falls back to
// [English].
func Lookup(tag language.Tag) *Symbols {
	registry.Lock()
	if registry.matcher == nil {
		registry.matcher = language.NewMatcher(registry.tags)
	}
	m := registry.matcher
	registry.Unlock()

	_, idx, conf := m.Match(tag)
	registry.RLock()
	defer registry.RUnlock()
	if conf == language.No || idx < 0 || idx >= len(registry.tags) {
		return English
	}
	return registry.byTag[registry.tags[idx].String()]
}

// Default returns the locale used when none is specified.
func Default() *Symbols { return English }

// ── built-in locales ──────────────────────────────────────────────────────────

// English is the default locale and the first match candidate, so any tag
// with no registered locale resolves here.
var English = &Symbols{
	Tag:  language.English,
	Eras: [2]string{"BC", "AD"},
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ShortMonths: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays: [8]string{"",
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	ShortWeekdays: [8]string{"", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	AmPm:          [2]string{"AM", "PM"},
	Week:          calendar.WeekRules{FirstWeekday: 1, MinDaysInFirstWeek: 1},
	Zones: map[string]ZoneNames{
		"UTC":  {Short: "UTC", Long: "Coordinated Universal Time"},
		"GMT":  {Short: "GMT", Long: "Greenwich Mean Time"},
		"EST":  {Short: "EST", Long: "Eastern Standard Time", DSTShort: "EDT", DSTLong: "Eastern Daylight Time"},
		"EDT":  {Short: "EST", Long: "Eastern Standard Time", DSTShort: "EDT", DSTLong: "Eastern Daylight Time"},
		"CST":  {Short: "CST", Long: "Central Standard Time", DSTShort: "CDT", DSTLong: "Central Daylight Time"},
		"CDT":  {Short: "CST", Long: "Central Standard Time", DSTShort: "CDT", DSTLong: "Central Daylight Time"},
		"MST":  {Short: "MST", Long: "Mountain Standard Time", DSTShort: "MDT", DSTLong: "Mountain Daylight Time"},
		"MDT":  {Short: "MST", Long: "Mountain Standard Time", DSTShort: "MDT", DSTLong: "Mountain Daylight Time"},
		"PST":  {Short: "PST", Long: "Pacific Standard Time", DSTShort: "PDT", DSTLong: "Pacific Daylight Time"},
		"PDT":  {Short: "PST", Long: "Pacific Standard Time", DSTShort: "PDT", DSTLong: "Pacific Daylight Time"},
		"CET":  {Short: "CET", Long: "Central European Standard Time", DSTShort: "CEST", DSTLong: "Central European Summer Time"},
		"CEST": {Short: "CET", Long: "Central European Standard Time", DSTShort: "CEST", DSTLong: "Central European Summer Time"},
		"BST":  {Short: "GMT", Long: "Greenwich Mean Time", DSTShort: "BST", DSTLong: "British Summer Time"},
	},
}

// BritishEnglish shares the English name tables but uses Monday-first,
// minimum-four-day weeks (ISO 8601 numbering).
var BritishEnglish = &Symbols{
	Tag:           language.BritishEnglish,
	Eras:          English.Eras,
	Months:        English.Months,
	ShortMonths:   English.ShortMonths,
	Weekdays:      English.Weekdays,
	ShortWeekdays: English.ShortWeekdays,
	AmPm:          [2]string{"am", "pm"},
	Week:          calendar.WeekRules{FirstWeekday: 2, MinDaysInFirstWeek: 4},
	Zones:         English.Zones,
}

// German uses Monday-first ISO weeks.
var German = &Symbols{
	Tag:  language.German,
	Eras: [2]string{"v. Chr.", "n. Chr."},
	Months: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	ShortMonths: [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	Weekdays: [8]string{"",
		"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
	},
	ShortWeekdays: [8]string{"", "So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	AmPm:          [2]string{"vorm.", "nachm."},
	Week:          calendar.WeekRules{FirstWeekday: 2, MinDaysInFirstWeek: 4},
}

// French uses Monday-first ISO weeks.
var French = &Symbols{
	Tag:  language.French,
	Eras: [2]string{"av. J.-C.", "ap. J.-C."},
	Months: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	ShortMonths: [12]string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	Weekdays: [8]string{"",
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	},
	ShortWeekdays: [8]string{"", "dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	AmPm:          [2]string{"AM", "PM"},
	Week:          calendar.WeekRules{FirstWeekday: 2, MinDaysInFirstWeek: 4},
}

// Spanish uses Monday-first ISO weeks.
var Spanish = &Symbols{
	Tag:  language.Spanish,
	Eras: [2]string{"a. C.", "d. C."},
	Months: [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	ShortMonths: [12]string{
		"ene.", "feb.", "mar.", "abr.", "may.", "jun.",
		"jul.", "ago.", "sept.", "oct.", "nov.", "dic.",
	},
	Weekdays: [8]string{"",
		"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
	},
	ShortWeekdays: [8]string{"", "dom.", "lun.", "mar.", "mié.", "jue.", "vie.", "sáb."},
	AmPm:          [2]string{"a. m.", "p. m."},
	Week:          calendar.WeekRules{FirstWeekday: 2, MinDaysInFirstWeek: 4},
}

// Portuguese uses Sunday-first weeks with ISO minimum days, matching the
// Brazilian convention.
var Portuguese = &Symbols{
	Tag:  language.Portuguese,
	Eras: [2]string{"a.C.", "d.C."},
	Months: [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	ShortMonths: [12]string{
		"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
		"jul.", "ago.", "set.", "out.", "nov.", "dez.",
	},
	Weekdays: [8]string{"",
		"domingo", "segunda-feira", "terça-feira", "quarta-feira",
		"quinta-feira", "sexta-feira", "sábado",
	},
	ShortWeekdays: [8]string{"", "dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
	AmPm:          [2]string{"AM", "PM"},
	Week:          calendar.WeekRules{FirstWeekday: 1, MinDaysInFirstWeek: 4},
}

func init() {
	// English first: it is the fallback when matching fails entirely.
	Register(English)
	Register(BritishEnglish)
	Register(German)
	Register(French)
	Register(Spanish)
	Register(Portuguese)
}
