package model

// Cell is one token-level unit of a chord progression. It is a closed
// union: the only implementations are Chord, Barline, SectionMark,
// TimeSignature, Ending, Marker and TextAnnotation, and the unexported
// marker method keeps it that way so a type switch over those seven cases
// is exhaustive.
//
// A Song's progression is a flat []Cell mirroring wire order exactly.
// Repeat brackets and endings stay as their constituent Barline/Ending
// tokens; there is deliberately no tree structure.
type Cell interface {
	isCell()
}

// BarlineKind is the wire symbol for a bar line or bracket.
type BarlineKind string

const (
	BarSingle       BarlineKind = "|"
	BarDouble       BarlineKind = "||"
	BarFinal        BarlineKind = "Z"
	BarRepeatOpen   BarlineKind = "{"
	BarRepeatClose  BarlineKind = "}"
	BarSectionOpen  BarlineKind = "["
	BarSectionClose BarlineKind = "]"
)

// Barline is any bar line or bracket symbol.
type Barline struct {
	Kind BarlineKind
}

func (Barline) isCell() {}

// SectionKind is the letter of a rehearsal mark: A-D plus v (verse) and
// i (intro).
type SectionKind string

const (
	SectionA     SectionKind = "A"
	SectionB     SectionKind = "B"
	SectionC     SectionKind = "C"
	SectionD     SectionKind = "D"
	SectionVerse SectionKind = "v"
	SectionIntro SectionKind = "i"
)

// SectionMark is a rehearsal mark, written *A, *B, *v, ... on the wire.
type SectionMark struct {
	Kind SectionKind
}

func (SectionMark) isCell() {}

// TimeSignature is a time-signature change. The wire token is "T" followed
// by the numerator digits and a single denominator digit: T44, T34, T128.
type TimeSignature struct {
	Numerator   int
	Denominator int // 4 or 8
}

func (TimeSignature) isCell() {}

// Ending is a numbered repeat-ending bracket: N1, N2 or N3.
type Ending struct {
	Number int
}

func (Ending) isCell() {}

// MarkerKind is a single-token structural or layout symbol.
//
//	Q  coda            S  segno
//	f  fermata         n  no chord (tacet)
//	x  repeat previous bar (simile)
//	Y  vertical spacer ("break")
//	p  pause           ,  push (anticipated chord)
type MarkerKind string

const (
	MarkerCoda      MarkerKind = "Q"
	MarkerSegno     MarkerKind = "S"
	MarkerFermata   MarkerKind = "f"
	MarkerNoChord   MarkerKind = "n"
	MarkerRepeatBar MarkerKind = "x"
	MarkerBreak     MarkerKind = "Y"
	MarkerPause     MarkerKind = "p"
	MarkerPush      MarkerKind = ","
)

// Marker is any single-token structural symbol.
type Marker struct {
	Kind MarkerKind
}

func (Marker) isCell() {}

// TextAnnotation is an inline <text> annotation. Text holds the content
// without the surrounding angle brackets; any string not containing ">" is
// valid. Well-known navigation directives are listed as Nav* constants.
type TextAnnotation struct {
	Text string
}

func (TextAnnotation) isCell() {}

// Common navigation annotation texts. The set is open: any text is a valid
// annotation, these are just the usual suspects.
const (
	NavDC       = "D.C."
	NavDS       = "D.S."
	NavDCAlCoda = "D.C. al Coda"
	NavDSAlCoda = "D.S. al Coda"
	NavFine     = "Fine"
)
