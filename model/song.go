package model

// Song is a single lead sheet. Cells is the canonical flat representation
// of the progression, bar lines and marks interleaved with chords in wire
// order.
//
// Reserved1, Reserved2 and Flag carry the three uninterpreted wire fields
// (positions 3, 6 and 10 of the record) verbatim so that decoding and
// re-encoding a song reproduces the original bytes even for producers that
// put something unexpected there.
type Song struct {
	Title    string `json:"title"`
	Composer string `json:"composer"`
	Style    string `json:"style"`
	Key      Key    `json:"key"`
	Feel     string `json:"feel,omitempty"` // playback feel, may be empty
	BPM      int    `json:"bpm"`            // 0 means not set
	Cells    []Cell `json:"cells"`

	Reserved1 string `json:"reserved1,omitempty"`
	Reserved2 string `json:"reserved2,omitempty"`
	Flag      string `json:"flag,omitempty"`
}

// Playlist is a named ordered collection of songs, one .irealb file's
// worth.
type Playlist struct {
	Name  string `json:"name"`
	Songs []Song `json:"songs"`
}
