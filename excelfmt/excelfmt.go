// Package excelfmt translates the date portion of Excel number-format
// strings into datefmt patterns.
//
// Excel and datefmt speak different pattern languages: Excel zero-pads with
// repeated letters too, but uses double-quoted literals, case-insensitive
// letters, and context-dependent "m" (month or minute, depending on the
// nearest hour token).  [Pattern] resolves all of that and returns an
// equivalent datefmt pattern, so a spreadsheet's format string can drive
// [github.com/TsubasaBE/go-datefmt.Formatter] directly:
//
//	p, err := excelfmt.Pattern("yyyy-mm-dd hh:mm") // "yyyy-MM-dd HH:mm"
//	f := datefmt.New(p)
//
// Format-string parsing is delegated to [github.com/xuri/nfp]; this package
// only maps the resulting token stream.
//
// Known translation gaps: Excel zero-pads numeric months ("mm"), while the
// pattern language renders numeric months unpadded at any width below 3, so
// "mm" maps to the unpadded month.  Elapsed-time tokens ([h], [mm], [ss])
// measure a duration rather than a calendar field and are rejected.
package excelfmt

import (
	"fmt"
	"strings"

	"github.com/xuri/nfp"

	"github.com/TsubasaBE/go-datefmt/pattern"
)

// Pattern translates the first section of an Excel number-format string
// into a datefmt pattern.  It returns an error when the format contains no
// date/time tokens at all, or when it contains tokens with no calendar
// equivalent (elapsed time, unknown date tokens).
func Pattern(fmtStr string) (string, error) {
	p := nfp.NumberFormatParser()
	sections := p.Parse(fmtStr)
	if len(sections) == 0 {
		return "", fmt.Errorf("excelfmt: empty format %q", fmtStr)
	}
	sec := sections[0]

	// An AM/PM token anywhere in the section switches every hour token to
	// the 12-hour clock, matching Excel's rendering.
	hasAmPm := false
	for _, tok := range sec.Items {
		if tok.TType == nfp.TokenTypeDateTimes {
			upper := strings.ToUpper(tok.TValue)
			if upper == "AM/PM" || upper == "A/P" {
				hasAmPm = true
				break
			}
		}
	}

	var b strings.Builder
	wroteDate := false
	lastWasHour := false

	for _, tok := range sec.Items {
		switch tok.TType {
		case nfp.TokenTypeDateTimes:
			mapped, isHour, err := mapDateToken(strings.ToUpper(tok.TValue), hasAmPm, lastWasHour)
			if err != nil {
				return "", err
			}
			b.WriteString(mapped)
			wroteDate = true
			lastWasHour = isHour

		case nfp.TokenTypeElapsedDateTimes:
			return "", fmt.Errorf("excelfmt: elapsed-time token [%s] has no calendar equivalent", tok.TValue)

		case nfp.TokenTypeLiteral:
			// A literal separator (e.g. ":") between an hour token and a
			// following m must not break minute disambiguation, so
			// lastWasHour is deliberately left alone.
			b.WriteString(quoteLiteral(tok.TValue))

		default:
			// Colours, conditions, alignment markers and the like have no
			// textual output.
			lastWasHour = false
		}
	}

	if !wroteDate {
		return "", fmt.Errorf("excelfmt: %q contains no date tokens", fmtStr)
	}
	return b.String(), nil
}

// mapDateToken maps one upper-cased Excel date/time token to its datefmt
// equivalent.  isHour reports whether the token was an hour, which decides
// whether a following M token is a month or a minute.
func mapDateToken(upper string, hasAmPm, lastWasHour bool) (mapped string, isHour bool, err error) {
	switch upper {
	case "YYYY", "YYY":
		return "yyyy", false, nil
	case "YY", "Y":
		return "yy", false, nil

	case "MMMM", "MMMMM":
		return "MMMM", false, nil
	case "MMM":
		return "MMM", false, nil
	case "MM":
		if lastWasHour {
			return "mm", false, nil
		}
		// Renders unpadded either way; the run length is kept for
		// readability of the translated pattern.
		return "MM", false, nil
	case "M":
		if lastWasHour {
			return "m", false, nil
		}
		return "M", false, nil

	case "DDDD":
		return "EEEE", false, nil
	case "DDD":
		return "EEE", false, nil
	case "DD":
		return "dd", false, nil
	case "D":
		return "d", false, nil

	case "HH":
		if hasAmPm {
			return "hh", true, nil
		}
		return "HH", true, nil
	case "H":
		if hasAmPm {
			return "h", true, nil
		}
		return "H", true, nil

	case "SS":
		return "ss", false, nil
	case "S":
		return "s", false, nil

	case "AM/PM", "A/P":
		return "a", false, nil
	}
	return "", false, fmt.Errorf("excelfmt: unsupported date token %q", upper)
}

// quoteLiteral emits literal text so that it survives pattern tokenization:
// text containing pattern letters or apostrophes is wrapped in single
// quotes with embedded apostrophes doubled; plain separators pass through.
func quoteLiteral(s string) string {
	needsQuoting := false
	for _, c := range s {
		if c == '\'' || pattern.IsPatternLetter(c) {
			needsQuoting = true
			break
		}
	}
	if !needsQuoting {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// IsDateFormat reports whether an Excel number-format string renders a
// date or time.  It scans the unquoted, unbracketed portion of the string
// for date token characters, so colour codes like [Red] and quoted text do
// not trigger a match.
func IsDateFormat(fmtStr string) bool {
	inQuote := false
	inBracket := false
	for _, ch := range fmtStr {
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == 'd' || ch == 'D' ||
			ch == 'm' || ch == 'M' ||
			ch == 'y' || ch == 'Y' ||
			ch == 'h' || ch == 'H' ||
			ch == 's' || ch == 'S':
			return true
		}
	}
	return false
}
