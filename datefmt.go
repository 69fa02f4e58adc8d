// Package datefmt formats time values using date-format pattern strings.
//
// A pattern is a mix of pattern letters, quoted literal text, and separator
// characters, in the style of the classic date-format pattern languages.  On
// top of the usual letters the package adds two ordinal-suffix fields: 'o'
// renders the English ordinal suffix of the day of month and 'O' that of the
// day of year, so "do" formats day 5 as "5th".
//
// # Quick start
//
//	f := datefmt.New("'Today is' MMM do, yyyy")
//	s, err := f.Format(time.Date(2014, 12, 5, 0, 0, 0, 0, time.UTC))
//	// s == "Today is Dec 5th, 2014"
//
// A Formatter parses its pattern once at construction; [Formatter.Format]
// may then be called many times, from concurrent goroutines, each call
// taking its own calendar snapshot of the instant.
//
// # Pattern letters
//
//	G    era name                        E    weekday name (EEEE = full)
//	y    year (yy = two digits)          a    AM/PM marker
//	Y    week-based year                 h    hour 1–12
//	M    month (MMM/MMMM = names)        H    hour 0–23
//	w    week of year                    k    hour 1–24
//	W    week of month                   K    hour 0–11
//	D    day of year                     m    minute
//	d    day of month                    s    second
//	F    weekday ordinal in month        S    millisecond
//	o    day-of-month ordinal suffix     z    time zone name (zzzz = long)
//	O    day-of-year ordinal suffix      Z    RFC 822 offset (+hhmm)
//
// The run length of a numeric letter is the zero-padded field width, so
// "HH:mm" formats 07:05 while "H:m" formats 7:5.  Text in single quotes is
// emitted verbatim; two adjacent single quotes are a literal apostrophe.
// Any other character is a separator and passes through unchanged —
// including letters outside the table above, which are never an error.
//
// # Locales
//
// Name tables (months, weekdays, eras, AM/PM, zone display names) and the
// week-numbering rules come from a [locale.Symbols] value.  [New] uses the
// default English locale; [NewLocalized] resolves a BCP 47 tag against the
// registered locales; [NewWithSymbols] binds explicit tables, for example
// ones loaded from a TOML locale file with [locale.LoadFile].
//
// # Excel format strings
//
// The excelfmt subpackage translates the date portion of an Excel
// number-format string (e.g. "yyyy-mm-dd hh:mm") into this package's
// pattern language, so spreadsheet formats can drive the formatter.
package datefmt

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/TsubasaBE/go-datefmt/calendar"
	"github.com/TsubasaBE/go-datefmt/locale"
	"github.com/TsubasaBE/go-datefmt/pattern"
)

// Version is the current version of the go-datefmt library.
const Version = "1.0.0"

// Formatter renders time values according to a fixed pattern and locale.
//
// The pattern is tokenized once at construction and the token sequence is
// immutable afterwards, so a single Formatter is safe for concurrent use.
type Formatter struct {
	pattern string
	symbols *locale.Symbols
	tokens  []pattern.Token
}

// New returns a Formatter for the given pattern using the default (English)
// locale.  An empty pattern is valid and formats every instant to "".
func New(p string) *Formatter {
	return NewWithSymbols(p, locale.Default())
}

// NewLocalized returns a Formatter bound to the locale registered for tag.
// Tags with no registered locale fall back to English; see [locale.Lookup].
func NewLocalized(p string, tag language.Tag) *Formatter {
	return NewWithSymbols(p, locale.Lookup(tag))
}

// NewWithSymbols returns a Formatter bound to explicit symbol tables.
// A nil symbols value falls back to the default locale.
func NewWithSymbols(p string, symbols *locale.Symbols) *Formatter {
	if symbols == nil {
		symbols = locale.Default()
	}
	return &Formatter{
		pattern: p,
		symbols: symbols,
		tokens:  pattern.Tokenize(p),
	}
}

// Pattern returns the pattern string the Formatter was constructed from.
func (f *Formatter) Pattern() string { return f.pattern }

// Format renders t according to the Formatter's pattern and locale.  The
// calendar fields are taken in t's own location.
//
// Format either returns the complete output string or an error with no
// partial output.  Errors indicate programming mistakes (a formatter token
// carrying an unrecognized letter), not transient conditions.
func (f *Formatter) Format(t time.Time) (string, error) {
	fields := calendar.Extract(t, f.symbols.Week)

	var b strings.Builder
	for _, tok := range f.tokens {
		s, err := renderToken(tok, fields, f.symbols)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// MustFormat is like [Formatter.Format] but panics on error.  Rendering
// only fails on tokens the lexer cannot produce, so MustFormat is safe for
// any Formatter built from a pattern string.
func (f *Formatter) MustFormat(t time.Time) string {
	s, err := f.Format(t)
	if err != nil {
		panic(err)
	}
	return s
}
