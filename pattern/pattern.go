// Package pattern tokenizes date-format pattern strings.
//
// A pattern is scanned once, left to right, into an ordered sequence of
// [Token] values.  Tokenization is total: it never fails, and it performs no
// validation beyond classifying characters — an unrecognized letter simply
// becomes part of a [Separator] token and is emitted verbatim at render time.
//
// Three token kinds exist:
//
//   - [Text] — a quoted literal region, e.g. 'Today is'.  Content keeps the
//     surrounding single-quote delimiters and any doubled-quote escapes
//     exactly as written; the renderer strips them.
//   - [Formatter] — a run of one repeated pattern letter, e.g. yyyy.  The run
//     length is the field width (zero padding, short vs. long names).  A run
//     ends as soon as the letter changes, so adjacent distinct letters such
//     as "Hm" form two independent runs with no separator between them.
//   - [Separator] — a run of anything else, emitted verbatim.
//
// The token sequence for a pattern is computed once per formatter and is
// immutable afterwards, so it is safe to read from concurrent rendering
// calls.
package pattern

import "strings"

// Kind classifies a token.
type Kind int

const (
	// Text is a quoted literal region, delimiters included.
	Text Kind = iota
	// Formatter is a run of one repeated pattern letter.
	Formatter
	// Separator is a run of characters that are neither pattern letters nor
	// quotes.
	Separator
)

// String returns the kind name, for error messages and test output.
func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Formatter:
		return "Formatter"
	case Separator:
		return "Separator"
	}
	return "Unknown"
}

// Token is one lexed unit of a pattern string.  Content is never empty.
type Token struct {
	Kind    Kind
	Content string
}

// Letters is the set of recognized pattern letters.  'o' and 'O' are the
// ordinal suffixes for day of month and day of year; the rest follow the
// common date-format letter conventions.
const Letters = "GyYMwWDdFEahHkKmsSzZoO"

// quote is the literal-text delimiter.
const quote = '\''

// IsPatternLetter reports whether c is a recognized pattern letter.
func IsPatternLetter(c rune) bool {
	return strings.ContainsRune(Letters, c)
}

// Tokenize scans p into its token sequence.  A nil result means p was empty.
//
// Quote handling follows the usual date-pattern rules: a single quote opens
// or closes a literal region; two adjacent quotes are an escaped literal
// quote, both inside and outside a region (so the pattern '' renders as a
// single apostrophe).  An unterminated region at end of input is not an
// error — whatever accumulated is sealed as a final Text token.
func Tokenize(p string) []Token {
	var (
		tokens  []Token
		pending []rune
		kind    Kind
		started bool
		inQuote bool
		letter  rune // current Formatter run letter
	)

	// seal finishes the pending token, if any, and resets the accumulator.
	seal := func() {
		if started && len(pending) > 0 {
			tokens = append(tokens, Token{Kind: kind, Content: string(pending)})
		}
		pending = pending[:0]
		started = false
	}
	// start seals the pending token and begins a new one of kind k.
	start := func(k Kind) {
		seal()
		kind = k
		started = true
	}

	rs := []rune(p)
	for i := 0; i < len(rs); i++ {
		c := rs[i]

		if inQuote {
			if c != quote {
				pending = append(pending, c)
				continue
			}
			pending = append(pending, c)
			if i+1 < len(rs) && rs[i+1] == quote {
				// Escaped quote; stay inside the region.
				pending = append(pending, quote)
				i++
			} else {
				inQuote = false
			}
			continue
		}

		switch {
		case c == quote && i+1 < len(rs) && rs[i+1] == quote:
			// Doubled quote outside a region: a literal apostrophe.
			if !started || kind != Text {
				start(Text)
			}
			pending = append(pending, quote, quote)
			i++
		case c == quote:
			if !started || kind != Text {
				start(Text)
			}
			pending = append(pending, c)
			inQuote = true
		case IsPatternLetter(c):
			// A new run starts whenever the letter changes, even between two
			// valid letters with nothing in between.
			if !started || kind != Formatter || c != letter {
				start(Formatter)
			}
			pending = append(pending, c)
			letter = c
		default:
			if !started || kind != Separator {
				start(Separator)
			}
			pending = append(pending, c)
		}
	}

	// End of input seals whatever is pending, including the body of an
	// unterminated quoted region.
	seal()
	return tokens
}
