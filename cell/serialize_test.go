package cell

import (
	"testing"

	"github.com/chordwire/chordwire/model"
	"github.com/stretchr/testify/assert"
)

func TestSerializeChordSpellings(t *testing.T) {
	cases := []struct {
		name  string
		chord model.Chord
		want  string
	}{
		{"plain triad", model.Chord{Root: model.NoteC}, "C"},
		{"major seventh", model.Chord{Root: model.NoteC, MajorSeventh: true, Extension: 7}, "C^7"},
		{"minor seventh", model.Chord{Root: model.NoteA, Quality: model.QualityMinor, Extension: 7}, "A-7"},
		{"half diminished", model.Chord{Root: model.NoteB, Quality: model.QualityHalfDim, Extension: 7}, "Bh7"},
		{"diminished", model.Chord{Root: model.NoteC, Quality: model.QualityDim, Extension: 7}, "Co7"},
		{"augmented", model.Chord{Root: model.NoteC, Quality: model.QualityAug}, "C+"},
		{"sus4", model.Chord{Root: model.NoteC, Quality: model.QualitySus4}, "Csus"},
		{"dominant sus", model.Chord{Root: model.NoteG, Quality: model.QualitySus4, Extension: 7}, "G7sus"},
		{"sus2", model.Chord{Root: model.NoteC, Quality: model.QualitySus2}, "C2"},
		{"altered", model.Chord{Root: model.NoteG, Extension: 7, Alterations: []model.Alteration{model.Sharp5}}, "G7#5"},
		{"stacked alterations", model.Chord{Root: model.NoteG, Extension: 7, Alterations: []model.Alteration{model.Flat9, model.Sharp11}}, "G7b9#11"},
		{"flat root", model.Chord{Root: model.NoteB, Accidental: model.Flat, Extension: 7}, "Bb7"},
		{"slash bass", model.Chord{Root: model.NoteD, Quality: model.QualityMinor, BassNote: model.NoteC}, "D-/C"},
		{"flat bass", model.Chord{Root: model.NoteC, BassNote: model.NoteB, BassAccidental: model.Flat}, "C/Bb"},
		{"small", model.Chord{Root: model.NoteE, Quality: model.QualityHalfDim, Size: model.SizeSmall}, "sEh"},
		{"large", model.Chord{Root: model.NoteD, Quality: model.QualityMinor, Size: model.SizeLarge}, "lD-"},
		{"bare caret", model.Chord{Root: model.NoteC, MajorSeventh: true}, "C^"},
		{
			"sub chord",
			model.Chord{
				Root: model.NoteB, Accidental: model.Flat, Extension: 7,
				SubChord: &model.Chord{Root: model.NoteA, Extension: 7, Alterations: []model.Alteration{model.Flat9}},
			},
			"Bb7(A7b9)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Serialize([]model.Cell{tc.chord})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSerializeNonChordCells(t *testing.T) {
	got, err := Serialize([]model.Cell{
		model.TimeSignature{Numerator: 4, Denominator: 4},
		model.SectionMark{Kind: model.SectionA},
		model.Barline{Kind: model.BarRepeatOpen},
		model.Marker{Kind: model.MarkerNoChord},
		model.Barline{Kind: model.BarSingle},
		model.Ending{Number: 2},
		model.TextAnnotation{Text: model.NavFine},
		model.Barline{Kind: model.BarRepeatClose},
		model.Barline{Kind: model.BarFinal},
	})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("T44*A{n|N2<Fine>}Z", got)
}

func TestSerializeAnnotationWithCloserFails(t *testing.T) {
	_, err := Serialize([]model.Cell{model.TextAnnotation{Text: "a > b"}})

	serErr, ok := err.(*SerializeError)
	assert.True(t, ok)
	assert.Equal(t, "a > b", serErr.Text)
}

// Wire strings in canonical spelling must survive parse → serialize without
// a byte changing.
func TestWireRoundTripByteExact(t *testing.T) {
	inputs := []string{
		"C",
		"C^7",
		"A-^7",
		"Bb7(A7b9)",
		"lD-/C",
		"T44*A{C^7|A-7|D-9|G7#5}",
		"*B[Bh7|Bb7(A7b9)|sEh,A7,|Y|lD-/C]",
		"T34*i[C-7b5/G|x|<Slowly>G7#9#5|n]",
		"{C2|Csus|Calt|Cadd9}N1C6Z N2C^Z",
		"T44{G7sus|C7sus/G|F}Z",
		"T128*v[D-7|G7b13|C^7#11|f x]",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			cells, err := ParseString(input)
			assert.NoError(t, err)
			got, err := Serialize(cells)
			assert.NoError(t, err)

			want := stripSpaces(input)
			assert.Equal(t, want, got)
		})
	}
}

// The sus-before-extension spelling parses to the same chord as the
// canonical one and re-emits canonically.
func TestSusBeforeExtensionNormalizes(t *testing.T) {
	cells, err := ParseString("Gsus7")
	assert.NoError(t, err)
	assert.Equal(t, []model.Cell{
		model.Chord{Root: model.NoteG, Quality: model.QualitySus4, Extension: 7},
	}, cells)

	got, err := Serialize(cells)
	assert.NoError(t, err)
	assert.Equal(t, "G7sus", got)
}

// Model round trip: serialize then reparse yields the same cells.
func TestModelRoundTrip(t *testing.T) {
	progressions := [][]model.Cell{
		{
			model.TimeSignature{Numerator: 4, Denominator: 4},
			model.SectionMark{Kind: model.SectionA},
			model.Barline{Kind: model.BarRepeatOpen},
			model.Chord{Root: model.NoteC, Quality: model.QualityMinor, Extension: 7},
			model.Barline{Kind: model.BarSingle},
			model.Chord{Root: model.NoteF, Extension: 7},
			model.Barline{Kind: model.BarRepeatClose},
			model.Ending{Number: 1},
			model.Chord{Root: model.NoteB, Accidental: model.Flat, MajorSeventh: true, Extension: 7},
			model.Barline{Kind: model.BarFinal},
		},
		{
			model.Chord{
				Root: model.NoteG, Extension: 7,
				Alterations: []model.Alteration{model.Flat9, model.Flat9},
				SubChord:    &model.Chord{Root: model.NoteD, Quality: model.QualityMinor, Extension: 7},
				BassNote:    model.NoteB, BassAccidental: model.Flat,
				Size: model.SizeSmall,
			},
			model.Marker{Kind: model.MarkerPush},
			model.TextAnnotation{Text: "Play 3x"},
		},
	}
	for _, cells := range progressions {
		wire, err := Serialize(cells)
		assert.NoError(t, err)
		reparsed, err := ParseString(wire)
		assert.NoError(t, err)
		assert.Equal(t, cells, reparsed)
	}
}

func stripSpaces(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
