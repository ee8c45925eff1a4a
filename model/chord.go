package model

// Quality is the triad quality. It describes the third of the chord, never
// the seventh: the "^" wire symbol (C^7) is not a quality but the
// major-seventh flag, kept separately on Chord. The enum value is the wire
// token; MAJOR is the empty token.
type Quality string

const (
	QualityMajor   Quality = ""
	QualityMinor   Quality = "-"
	QualityHalfDim Quality = "h"
	QualityDim     Quality = "o"
	QualityAug     Quality = "+"
	QualitySus4    Quality = "sus"
	QualitySus2    Quality = "2"
)

// Alteration is a single tension alteration following the extension, e.g.
// the "b9" in G7b9#11. A chord carries them in wire order; duplicates are
// legal and preserved.
type Alteration string

const (
	Flat5   Alteration = "b5"
	Sharp5  Alteration = "#5"
	Flat9   Alteration = "b9"
	Sharp9  Alteration = "#9"
	Sharp11 Alteration = "#11"
	Flat13  Alteration = "b13"
	Alt     Alteration = "alt"
	Add9    Alteration = "add9"
	Add11   Alteration = "add11"
)

// Alterations lists every valid alteration token, longest first so the
// scanner's maximal munch never splits b13 into b1+3.
var Alterations = []Alteration{Add11, Add9, Alt, Sharp11, Flat13, Flat5, Sharp5, Flat9, Sharp9}

// ChordSize is the display-size hint preceding a chord token: "s" renders
// the chord smaller, "l" larger.
type ChordSize string

const (
	SizeNormal ChordSize = ""
	SizeSmall  ChordSize = "s"
	SizeLarge  ChordSize = "l"
)

// Extensions is the set of valid numeric chord extensions.
var Extensions = map[int]bool{4: true, 5: true, 6: true, 7: true, 9: true, 11: true, 13: true}

// Chord is a single fully parsed chord symbol.
//
// MajorSeventh records that a present seventh is major rather than dominant
// (C^7 vs C7). A bare "^" with no extension is accepted and round-tripped
// as-is; its musical meaning (open voicing) is chart-dependent.
//
// SubChord is a substitution chord written in parentheses after this one,
// e.g. the A7b9 in Bb7(A7b9). Nesting is recursive with no depth bound.
type Chord struct {
	Root           NoteName
	Accidental     Accidental // empty when natural
	Quality        Quality
	MajorSeventh   bool
	Extension      int // 0 means plain triad
	Alterations    []Alteration
	SubChord       *Chord
	BassNote       NoteName   // empty unless slash chord
	BassAccidental Accidental // empty when natural
	Size           ChordSize
}

func (Chord) isCell() {}

// Equal reports structural equality, including alteration order and any
// nested sub-chords.
func (c Chord) Equal(o Chord) bool {
	if c.Root != o.Root || c.Accidental != o.Accidental || c.Quality != o.Quality ||
		c.MajorSeventh != o.MajorSeventh || c.Extension != o.Extension ||
		c.BassNote != o.BassNote || c.BassAccidental != o.BassAccidental ||
		c.Size != o.Size {
		return false
	}
	if len(c.Alterations) != len(o.Alterations) {
		return false
	}
	for i := range c.Alterations {
		if c.Alterations[i] != o.Alterations[i] {
			return false
		}
	}
	if (c.SubChord == nil) != (o.SubChord == nil) {
		return false
	}
	if c.SubChord != nil && !c.SubChord.Equal(*o.SubChord) {
		return false
	}
	return true
}
