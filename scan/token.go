package scan

import "fmt"

// Kind classifies a raw token produced by the scanner.
type Kind int

const (
	KindBarline Kind = iota
	KindTimeSig
	KindEnding
	KindMarker
	KindSection
	KindAnnotation
	KindSizePrefix
	KindNote
	KindAccidental
	KindQuality
	KindCaret
	KindDigits
	KindAlteration
	KindOpenParen
	KindCloseParen
	KindSlash
)

var kindNames = map[Kind]string{
	KindBarline:    "barline",
	KindTimeSig:    "time signature",
	KindEnding:     "ending",
	KindMarker:     "marker",
	KindSection:    "section mark",
	KindAnnotation: "annotation",
	KindSizePrefix: "size prefix",
	KindNote:       "note",
	KindAccidental: "accidental",
	KindQuality:    "quality",
	KindCaret:      "caret",
	KindDigits:     "digits",
	KindAlteration: "alteration",
	KindOpenParen:  "open paren",
	KindCloseParen: "close paren",
	KindSlash:      "slash",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one raw token of the chord-progression language. Text is the
// wire spelling, except for annotations where Text is the content without
// the surrounding angle brackets. Pos is the byte offset of the token's
// first byte in the scanned string.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

// LexError reports a position at which no symbol-table entry matches.
type LexError struct {
	Pos     int
	Excerpt string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized token at offset %d near %q", e.Pos, e.Excerpt)
}

// Excerpt returns up to width bytes of s starting at pos, for error
// messages.
func Excerpt(s string, pos, width int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	end := pos + width
	if end > len(s) {
		end = len(s)
	}
	return s[pos:end]
}
