// Package scan tokenizes the iReal Pro chord-progression language.
//
// The scanner is a single left-to-right pass applying maximal munch over a
// fixed symbol table. Two tokens are context-sensitive and resolved here so
// the parser never needs to backtrack: "#"/"b" are accidentals only when
// they directly follow a note letter (anywhere else they can only open an
// alteration such as b9), and "s"/"l" are size prefixes only when the next
// character is a note letter ("sus" gets its longest-match chance first).
package scan

import (
	"strings"

	"github.com/chordwire/chordwire/model"
)

const excerptWidth = 10

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

var sectionKinds = map[byte]bool{'A': true, 'B': true, 'C': true, 'D': true, 'v': true, 'i': true}

var markerKinds = map[byte]bool{'Q': true, 'S': true, 'f': true, 'n': true, 'x': true, 'Y': true, 'p': true, ',': true}

// matchAlteration returns the longest alteration token starting at s[i], or
// "" when none matches. model.Alterations is ordered longest-first.
func matchAlteration(s string, i int) string {
	for _, a := range model.Alterations {
		if strings.HasPrefix(s[i:], string(a)) {
			return string(a)
		}
	}
	return ""
}

// Scan converts a raw chord-progression string into its token sequence.
// Whitespace between tokens is skipped. The returned error, if any, is a
// *LexError pinpointing the first unrecognizable position.
func Scan(input string) ([]Token, error) {
	var tokens []Token
	// prev is the kind of the last emitted token; used for the two
	// context rules. -1 means no token yet.
	prev := Kind(-1)

	emit := func(kind Kind, text string, pos int) {
		tokens = append(tokens, Token{Kind: kind, Text: text, Pos: pos})
		prev = kind
	}
	fail := func(pos int) ([]Token, error) {
		return nil, &LexError{Pos: pos, Excerpt: Excerpt(input, pos, excerptWidth)}
	}

	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case isSpace(c):
			i++

		case c == '|':
			if i+1 < len(input) && input[i+1] == '|' {
				emit(KindBarline, "||", i)
				i += 2
			} else {
				emit(KindBarline, "|", i)
				i++
			}

		case c == 'Z' || c == '{' || c == '}' || c == '[' || c == ']':
			emit(KindBarline, string(c), i)
			i++

		case c == 'T':
			// T + numerator digits + denominator digit, at least two
			// digits total.
			j := i + 1
			for j < len(input) && isDigit(input[j]) {
				j++
			}
			if j-i < 3 {
				return fail(i)
			}
			emit(KindTimeSig, input[i:j], i)
			i = j

		case c == 'N':
			if i+1 >= len(input) || !isDigit(input[i+1]) {
				return fail(i)
			}
			emit(KindEnding, input[i:i+2], i)
			i += 2

		case c == '*':
			if i+1 >= len(input) || !sectionKinds[input[i+1]] {
				return fail(i)
			}
			emit(KindSection, input[i:i+2], i)
			i += 2

		case c == '<':
			end := strings.IndexByte(input[i+1:], '>')
			if end < 0 {
				return fail(i)
			}
			emit(KindAnnotation, input[i+1:i+1+end], i)
			i += end + 2

		case markerKinds[c]:
			emit(KindMarker, string(c), i)
			i++

		case c == 's':
			if strings.HasPrefix(input[i:], "sus") {
				emit(KindQuality, "sus", i)
				i += 3
			} else if i+1 < len(input) && model.IsNoteName(input[i+1]) {
				emit(KindSizePrefix, "s", i)
				i++
			} else {
				return fail(i)
			}

		case c == 'l':
			if i+1 < len(input) && model.IsNoteName(input[i+1]) {
				emit(KindSizePrefix, "l", i)
				i++
			} else {
				return fail(i)
			}

		case model.IsNoteName(c):
			emit(KindNote, string(c), i)
			i++

		case c == '#' || c == 'b':
			if prev == KindNote {
				emit(KindAccidental, string(c), i)
				i++
			} else if alt := matchAlteration(input, i); alt != "" {
				emit(KindAlteration, alt, i)
				i += len(alt)
			} else {
				return fail(i)
			}

		case c == '-' || c == '+' || c == 'o' || c == 'h':
			emit(KindQuality, string(c), i)
			i++

		case c == '^':
			emit(KindCaret, "^", i)
			i++

		case c == '(':
			emit(KindOpenParen, "(", i)
			i++

		case c == ')':
			emit(KindCloseParen, ")", i)
			i++

		case c == '/':
			emit(KindSlash, "/", i)
			i++

		case isDigit(c):
			if c == '2' && (prev == KindNote || prev == KindAccidental) {
				// C2 is a sus2 triad, not an extension.
				emit(KindQuality, "2", i)
				i++
				break
			}
			j := i
			for j < len(input) && isDigit(input[j]) {
				j++
			}
			emit(KindDigits, input[i:j], i)
			i = j

		default:
			if alt := matchAlteration(input, i); alt != "" {
				emit(KindAlteration, alt, i)
				i += len(alt)
			} else {
				return fail(i)
			}
		}
	}
	return tokens, nil
}
