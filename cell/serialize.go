package cell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chordwire/chordwire/model"
)

// SerializeError reports a model value that has no wire rendering. The only
// such value is an annotation whose text contains the closing ">".
type SerializeError struct {
	Text string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("annotation text %q contains '>'", e.Text)
}

// Serialize renders a cell sequence back to its wire substring. It is the
// exact inverse of Parse: Parse(Serialize(cells)) yields cells again, and
// the output is byte-for-byte the canonical iReal Pro spelling.
func Serialize(cells []model.Cell) (string, error) {
	var b strings.Builder
	for _, c := range cells {
		if err := writeCell(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func writeCell(b *strings.Builder, c model.Cell) error {
	switch v := c.(type) {
	case model.Chord:
		writeChord(b, v)
	case model.Barline:
		b.WriteString(string(v.Kind))
	case model.SectionMark:
		b.WriteByte('*')
		b.WriteString(string(v.Kind))
	case model.TimeSignature:
		b.WriteString(TimeSignatureToToken(v))
	case model.Ending:
		b.WriteString(EndingToToken(v))
	case model.Marker:
		b.WriteString(string(v.Kind))
	case model.TextAnnotation:
		if strings.ContainsRune(v.Text, '>') {
			return &SerializeError{Text: v.Text}
		}
		b.WriteByte('<')
		b.WriteString(v.Text)
		b.WriteByte('>')
	default:
		// model.Cell is a closed union; a new variant must be handled
		// above before it can exist.
		panic(fmt.Sprintf("unhandled cell type %T", c))
	}
	return nil
}

func writeChord(b *strings.Builder, c model.Chord) {
	b.WriteString(string(c.Size))
	b.WriteString(string(c.Root))
	b.WriteString(string(c.Accidental))
	// A sus4 on an extended chord is spelled after the extension (G7sus);
	// every other quality comes before it.
	susAfter := c.Quality == model.QualitySus4 && c.Extension != 0
	if !susAfter {
		b.WriteString(string(c.Quality))
	}
	if c.MajorSeventh {
		b.WriteByte('^')
	}
	if c.Extension != 0 {
		b.WriteString(strconv.Itoa(c.Extension))
	}
	if susAfter {
		b.WriteString(string(c.Quality))
	}
	for _, a := range c.Alterations {
		b.WriteString(string(a))
	}
	if c.SubChord != nil {
		b.WriteByte('(')
		writeChord(b, *c.SubChord)
		b.WriteByte(')')
	}
	if c.BassNote != "" {
		b.WriteByte('/')
		b.WriteString(string(c.BassNote))
		b.WriteString(string(c.BassAccidental))
	}
}

// TimeSignatureToToken renders the wire token, e.g. T44 or T128.
func TimeSignatureToToken(ts model.TimeSignature) string {
	return fmt.Sprintf("T%d%d", ts.Numerator, ts.Denominator)
}

// EndingToToken renders the wire token, e.g. N1.
func EndingToToken(e model.Ending) string {
	return fmt.Sprintf("N%d", e.Number)
}
