package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/TsubasaBE/go-datefmt/calendar"
	"github.com/TsubasaBE/go-datefmt/locale"
	"github.com/TsubasaBE/go-datefmt/pattern"
)

// renderToken maps one token to its output text.  Separators pass through,
// Text tokens are unquoted, and Formatter tokens dispatch on their letter
// with the run length as the field width.
func renderToken(tok pattern.Token, f calendar.Fields, sym *locale.Symbols) (string, error) {
	switch tok.Kind {
	case pattern.Separator:
		return tok.Content, nil
	case pattern.Text:
		return unquote(tok.Content), nil
	}

	// Formatter: every character of the run is the same letter.
	letter := rune(tok.Content[0])
	width := len(tok.Content)

	switch letter {
	case 'G':
		return sym.Eras[f.Era], nil
	case 'y':
		return yearString(f.Year, width), nil
	case 'Y':
		return yearString(f.WeekYear, width), nil
	case 'M':
		// Numeric months are 1-based and unpadded below width 3.
		switch {
		case width < 3:
			return strconv.Itoa(f.Month + 1), nil
		case width == 3:
			return sym.ShortMonths[f.Month], nil
		default:
			return sym.Months[f.Month], nil
		}
	case 'w':
		return padded(f.WeekOfYear, width), nil
	case 'W':
		return padded(f.WeekOfMonth, width), nil
	case 'D':
		return padded(f.DayOfYear, width), nil
	case 'd':
		return padded(f.DayOfMonth, width), nil
	case 'F':
		return padded(f.DayOfWeekInMonth, width), nil
	case 'E':
		if width > 3 {
			return sym.Weekdays[f.DayOfWeek], nil
		}
		return sym.ShortWeekdays[f.DayOfWeek], nil
	case 'a':
		if f.PM {
			return sym.AmPm[1], nil
		}
		return sym.AmPm[0], nil
	case 'h':
		h := f.Hour12
		if h == 0 {
			h = 12
		}
		return padded(h, width), nil
	case 'H':
		return padded(f.Hour24, width), nil
	case 'k':
		h := f.Hour24
		if h == 0 {
			h = 24
		}
		return padded(h, width), nil
	case 'K':
		return padded(f.Hour12, width), nil
	case 'm':
		return padded(f.Minute, width), nil
	case 's':
		return padded(f.Second, width), nil
	case 'S':
		return padded(f.Millisecond, width), nil
	case 'z':
		return sym.ZoneName(f.ZoneAbbrev, f.ZoneOffset, f.DSTOffset != 0, width >= 4), nil
	case 'Z':
		return rfc822Offset(f.ZoneOffset)
	case 'o':
		return ordinalSuffix(f.DayOfMonth), nil
	case 'O':
		return ordinalSuffix(f.DayOfYear), nil
	}

	// Unreachable through Tokenize, which only builds Formatter runs from
	// the recognized letter set.  Kept as a hard failure for tokens built
	// by hand.
	return "", fmt.Errorf("datefmt: invalid pattern letter %q", letter)
}

// unquote strips the quote delimiters from a Text token's content and
// collapses doubled quotes into literal apostrophes.  A doubled quote is an
// escape wherever it appears; a lone quote toggles the quoted region and is
// dropped.  An unterminated region (no closing quote before end of content)
// yields whatever accumulated.
func unquote(content string) string {
	var b strings.Builder
	rs := []rune(content)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\'' {
			b.WriteRune(rs[i])
			continue
		}
		if i+1 < len(rs) && rs[i+1] == '\'' {
			b.WriteRune('\'')
			i++
		}
	}
	return b.String()
}

// padded renders v in decimal, zero-padded to exactly width characters.
func padded(v, width int) string {
	return fmt.Sprintf("%0*d", width, v)
}

// yearString renders a year field: width 2 is the special two-digit form
// (year mod 100, always two digits); any other width zero-pads the full
// year to the run length.
func yearString(year, width int) string {
	if width == 2 {
		return fmt.Sprintf("%02d", year%100)
	}
	return padded(year, width)
}

// rfc822Offset renders a UTC offset as sign plus HHMM.  The width is fixed
// at four digits regardless of the pattern run length.
func rfc822Offset(off time.Duration) (string, error) {
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	mins := int(off / time.Minute)
	hhmm := mins/60*100 + mins%60
	if hhmm > 9999 {
		return "", fmt.Errorf("datefmt: utc offset %s too large for +hhmm form", off)
	}
	return fmt.Sprintf("%s%04d", sign, hhmm), nil
}

// ordinalSuffix returns the English ordinal suffix for day: "st", "nd",
// "rd", or "th", with the 11/12/13 teen exception ("11th", not "11st").
func ordinalSuffix(day int) string {
	if t := day % 100; t >= 11 && t <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
