// Package cell converts between the scanner's raw token stream and the
// flat []model.Cell representation of a chord progression, in both
// directions. Parse and Serialize are exact inverses for any value either
// of them produces.
package cell

import (
	"fmt"
	"strconv"

	"github.com/chordwire/chordwire/model"
	"github.com/chordwire/chordwire/scan"
)

// Reason classifies a ParseError.
type Reason int

const (
	UnexpectedToken Reason = iota
	UnbalancedParens
	BadExtension
	BadEnding
	BadTimeSignature
)

var reasonNames = map[Reason]string{
	UnexpectedToken:  "unexpected token",
	UnbalancedParens: "unbalanced parentheses",
	BadExtension:     "invalid extension",
	BadEnding:        "invalid ending number",
	BadTimeSignature: "invalid time signature",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// ParseError reports a token the parser could not assign to any cell.
type ParseError struct {
	Reason Reason
	Pos    int
	Token  string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at offset %d", e.Reason, e.Pos)
	}
	return fmt.Sprintf("%v %q at offset %d", e.Reason, e.Token, e.Pos)
}

func parseError(r Reason, t scan.Token) error {
	return &ParseError{Reason: r, Pos: t.Pos, Token: t.Text}
}

// ParseString scans and parses a raw chord-progression string in one call.
func ParseString(input string) ([]model.Cell, error) {
	tokens, err := scan.Scan(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse consumes the full token stream and produces the cell sequence.
// It is a single left-to-right pass with one token of lookahead; the
// scanner's context rules make backtracking unnecessary.
func Parse(tokens []scan.Token) ([]model.Cell, error) {
	cells := make([]model.Cell, 0, len(tokens))
	p := 0
	for p < len(tokens) {
		t := tokens[p]
		switch t.Kind {
		case scan.KindBarline:
			cells = append(cells, model.Barline{Kind: model.BarlineKind(t.Text)})
			p++
		case scan.KindMarker:
			cells = append(cells, model.Marker{Kind: model.MarkerKind(t.Text)})
			p++
		case scan.KindSection:
			cells = append(cells, model.SectionMark{Kind: model.SectionKind(t.Text[1:])})
			p++
		case scan.KindAnnotation:
			cells = append(cells, model.TextAnnotation{Text: t.Text})
			p++
		case scan.KindTimeSig:
			ts, err := TimeSignatureFromToken(t.Text)
			if err != nil {
				return nil, parseError(BadTimeSignature, t)
			}
			cells = append(cells, ts)
			p++
		case scan.KindEnding:
			e, err := EndingFromToken(t.Text)
			if err != nil {
				return nil, parseError(BadEnding, t)
			}
			cells = append(cells, e)
			p++
		case scan.KindSizePrefix, scan.KindNote:
			chord, next, err := parseChord(tokens, p)
			if err != nil {
				return nil, err
			}
			cells = append(cells, chord)
			p = next
		case scan.KindCloseParen:
			return nil, parseError(UnbalancedParens, t)
		default:
			return nil, parseError(UnexpectedToken, t)
		}
	}
	return cells, nil
}

// parseChord applies the chord sub-grammar starting at tokens[p], which
// must be a size prefix or a note. It returns the chord and the index of
// the first token it did not consume.
//
//	chord := [size] note [accidental] [quality] ["^"] [digits]
//	         {alteration} ["(" chord ")"] ["/" note [accidental]]
func parseChord(tokens []scan.Token, p int) (model.Chord, int, error) {
	var c model.Chord

	if tokens[p].Kind == scan.KindSizePrefix {
		c.Size = model.ChordSize(tokens[p].Text)
		p++
		if p >= len(tokens) || tokens[p].Kind != scan.KindNote {
			// The scanner only emits a size prefix directly before a
			// note letter, so this is unreachable in practice.
			return c, p, parseError(UnexpectedToken, tokens[p-1])
		}
	}
	c.Root = model.NoteName(tokens[p].Text)
	p++

	if p < len(tokens) && tokens[p].Kind == scan.KindAccidental {
		c.Accidental = model.Accidental(tokens[p].Text)
		p++
	}
	if p < len(tokens) && tokens[p].Kind == scan.KindQuality {
		c.Quality = model.Quality(tokens[p].Text)
		p++
	}
	if p < len(tokens) && tokens[p].Kind == scan.KindCaret {
		c.MajorSeventh = true
		p++
	}
	if p < len(tokens) && tokens[p].Kind == scan.KindDigits {
		ext, err := strconv.Atoi(tokens[p].Text)
		if err != nil || !model.Extensions[ext] {
			return c, p, parseError(BadExtension, tokens[p])
		}
		c.Extension = ext
		p++
		// Charts commonly write the sus quality after the extension
		// (G7sus). Accept it there when no quality was seen yet.
		if c.Quality == model.QualityMajor && p < len(tokens) && tokens[p].Kind == scan.KindQuality {
			c.Quality = model.Quality(tokens[p].Text)
			p++
		}
	}
	for p < len(tokens) && tokens[p].Kind == scan.KindAlteration {
		c.Alterations = append(c.Alterations, model.Alteration(tokens[p].Text))
		p++
	}
	if p < len(tokens) && tokens[p].Kind == scan.KindOpenParen {
		open := tokens[p]
		p++
		if p >= len(tokens) {
			return c, p, parseError(UnbalancedParens, open)
		}
		if tokens[p].Kind != scan.KindNote && tokens[p].Kind != scan.KindSizePrefix {
			return c, p, parseError(UnexpectedToken, tokens[p])
		}
		sub, next, err := parseChord(tokens, p)
		if err != nil {
			return c, p, err
		}
		p = next
		if p >= len(tokens) || tokens[p].Kind != scan.KindCloseParen {
			return c, p, parseError(UnbalancedParens, open)
		}
		p++
		c.SubChord = &sub
	}
	if p < len(tokens) && tokens[p].Kind == scan.KindSlash {
		slash := tokens[p]
		p++
		if p >= len(tokens) || tokens[p].Kind != scan.KindNote {
			return c, p, parseError(UnexpectedToken, slash)
		}
		c.BassNote = model.NoteName(tokens[p].Text)
		p++
		if p < len(tokens) && tokens[p].Kind == scan.KindAccidental {
			c.BassAccidental = model.Accidental(tokens[p].Text)
			p++
		}
	}
	return c, p, nil
}

// TimeSignatureFromToken parses a "T<numerator><denominator>" token. The
// last digit is the denominator, which must be 4 or 8; the digits between
// "T" and it form the numerator.
func TimeSignatureFromToken(token string) (model.TimeSignature, error) {
	var ts model.TimeSignature
	if len(token) < 3 || token[0] != 'T' {
		return ts, fmt.Errorf("invalid time signature token %q", token)
	}
	den, err := strconv.Atoi(token[len(token)-1:])
	if err != nil {
		return ts, fmt.Errorf("invalid time signature token %q", token)
	}
	num, err := strconv.Atoi(token[1 : len(token)-1])
	if err != nil || num < 1 {
		return ts, fmt.Errorf("invalid time signature token %q", token)
	}
	if den != 4 && den != 8 {
		return ts, fmt.Errorf("invalid time signature denominator in %q", token)
	}
	return model.TimeSignature{Numerator: num, Denominator: den}, nil
}

// EndingFromToken parses an "N1"/"N2"/"N3" token.
func EndingFromToken(token string) (model.Ending, error) {
	var e model.Ending
	if len(token) != 2 || token[0] != 'N' {
		return e, fmt.Errorf("invalid ending token %q", token)
	}
	n := int(token[1] - '0')
	if n < 1 || n > 3 {
		return e, fmt.Errorf("invalid ending token %q", token)
	}
	return model.Ending{Number: n}, nil
}
