package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []Kind {
	res := make([]Kind, 0, len(tokens))
	for _, t := range tokens {
		res = append(res, t.Kind)
	}
	return res
}

func texts(tokens []Token) []string {
	res := make([]string, 0, len(tokens))
	for _, t := range tokens {
		res = append(res, t.Text)
	}
	return res
}

func TestScanSimpleChord(t *testing.T) {
	tokens, err := Scan("C^7")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Kind{KindNote, KindCaret, KindDigits}, kinds(tokens))
	assert.Equal([]string{"C", "^", "7"}, texts(tokens))
}

func TestScanBarlinesMaximalMunch(t *testing.T) {
	tokens, err := Scan("|||")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"||", "|"}, texts(tokens))
}

func TestScanTimeSignature(t *testing.T) {
	cases := map[string]string{
		"T44":  "T44",
		"T128": "T128",
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			tokens, err := Scan(input)
			assert.NoError(t, err)
			assert.Equal(t, []Token{{Kind: KindTimeSig, Text: want, Pos: 0}}, tokens)
		})
	}
}

func TestScanBareTFails(t *testing.T) {
	_, err := Scan("T4")
	assert.Error(t, err)
	lexErr, ok := err.(*LexError)
	assert.True(t, ok)
	assert.Equal(t, 0, lexErr.Pos)
}

func TestScanEnding(t *testing.T) {
	tokens, err := Scan("N1")
	assert.NoError(t, err)
	assert.Equal(t, []Token{{Kind: KindEnding, Text: "N1", Pos: 0}}, tokens)
}

func TestScanSectionMarks(t *testing.T) {
	tokens, err := Scan("*A*v*i")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"*A", "*v", "*i"}, texts(tokens))
	assert.Equal([]Kind{KindSection, KindSection, KindSection}, kinds(tokens))
}

func TestScanAnnotation(t *testing.T) {
	tokens, err := Scan("<D.C. al Coda>")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, len(tokens))
	assert.Equal(KindAnnotation, tokens[0].Kind)
	assert.Equal("D.C. al Coda", tokens[0].Text)
}

func TestScanUnterminatedAnnotationFails(t *testing.T) {
	_, err := Scan("<Fine")
	assert.Error(t, err)
}

func TestScanAccidentalOnlyAfterNote(t *testing.T) {
	assert := assert.New(t)

	// Bb13: the b binds to the note, 13 is the extension.
	tokens, err := Scan("Bb13")
	assert.NoError(err)
	assert.Equal([]Kind{KindNote, KindAccidental, KindDigits}, kinds(tokens))

	// G7b13: the b opens the b13 alteration.
	tokens, err = Scan("G7b13")
	assert.NoError(err)
	assert.Equal([]Kind{KindNote, KindDigits, KindAlteration}, kinds(tokens))
	assert.Equal("b13", tokens[2].Text)
}

func TestScanAlterationLongestFirst(t *testing.T) {
	tokens, err := Scan("C7b9#11add9")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"C", "7", "b9", "#11", "add9"}, texts(tokens))
}

func TestScanSizePrefixBeforeNote(t *testing.T) {
	tokens, err := Scan("sEh")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Kind{KindSizePrefix, KindNote, KindQuality}, kinds(tokens))
}

func TestScanSusBeatsSizePrefix(t *testing.T) {
	tokens, err := Scan("Csus")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Kind{KindNote, KindQuality}, kinds(tokens))
	assert.Equal("sus", tokens[1].Text)
}

func TestScanSus2AfterNote(t *testing.T) {
	tokens, err := Scan("C2")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Kind{KindNote, KindQuality}, kinds(tokens))
	assert.Equal("2", tokens[1].Text)
}

func TestScanSlashBass(t *testing.T) {
	tokens, err := Scan("lD-/C")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Kind{KindSizePrefix, KindNote, KindQuality, KindSlash, KindNote}, kinds(tokens))
}

func TestScanWhitespaceSkipped(t *testing.T) {
	spaced, err := Scan("C^7 | A-7")
	assert.NoError(t, err)
	packed, err := Scan("C^7|A-7")
	assert.NoError(t, err)
	assert.Equal(t, texts(packed), texts(spaced))
}

func TestScanFullProgressionLine(t *testing.T) {
	tokens, err := Scan("T44*A{C^7|A-7|D-9|G7#5}")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{
		"T44", "*A", "{",
		"C", "^", "7", "|",
		"A", "-", "7", "|",
		"D", "-", "9", "|",
		"G", "7", "#5",
		"}",
	}, texts(tokens))
}

func TestScanPositions(t *testing.T) {
	tokens, err := Scan("C |G")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0, tokens[0].Pos)
	assert.Equal(2, tokens[1].Pos)
	assert.Equal(3, tokens[2].Pos)
}

func TestScanStrayCharacterFails(t *testing.T) {
	_, err := Scan("C^7 & G7")
	assert.Error(t, err)
	lexErr, ok := err.(*LexError)
	assert.True(t, ok)
	assert.Equal(t, 4, lexErr.Pos)
	assert.Equal(t, "& G7", lexErr.Excerpt)
}
