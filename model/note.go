package model

// NoteName is one of the seven diatonic note letters as they appear on the
// wire. The enum value is the wire token itself.
type NoteName string

const (
	NoteA NoteName = "A"
	NoteB NoteName = "B"
	NoteC NoteName = "C"
	NoteD NoteName = "D"
	NoteE NoteName = "E"
	NoteF NoteName = "F"
	NoteG NoteName = "G"
)

// IsNoteName reports whether b is a valid note letter.
func IsNoteName(b byte) bool {
	return b >= 'A' && b <= 'G'
}

// Accidental is a sharp or flat modifier on a note or chord root.
type Accidental string

const (
	Sharp Accidental = "#"
	Flat  Accidental = "b"
)

// Mode is the tonal mode of a key.
type Mode string

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

// Key is the key of a song. On the wire it is a note name with an optional
// accidental, followed by "-" for minor: "Bb", "D-", "F#-".
type Key struct {
	Root       NoteName   `json:"root"`
	Accidental Accidental `json:"accidental,omitempty"`
	Mode       Mode       `json:"mode"`
}
