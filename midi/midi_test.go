package midi

import (
	"testing"

	"github.com/chordwire/chordwire/model"
	"github.com/stretchr/testify/assert"
)

func TestNotesMajorTriad(t *testing.T) {
	keys := Notes(model.Chord{Root: model.NoteC})
	assert.Equal(t, []uint8{60, 64, 67}, keys)
}

func TestNotesMinorSeventh(t *testing.T) {
	keys := Notes(model.Chord{Root: model.NoteA, Quality: model.QualityMinor, Extension: 7})
	assert.Equal(t, []uint8{69, 72, 76, 79}, keys)
}

func TestNotesMajorSeventhIsEleven(t *testing.T) {
	keys := Notes(model.Chord{Root: model.NoteC, MajorSeventh: true, Extension: 7})
	assert.Equal(t, []uint8{60, 64, 67, 71}, keys)
}

func TestNotesFlatRootAndBass(t *testing.T) {
	keys := Notes(model.Chord{
		Root: model.NoteB, Accidental: model.Flat,
		BassNote: model.NoteF,
	})
	// F bass two octaves down, then the Bb triad.
	assert.Equal(t, []uint8{41, 70, 74, 77}, keys)
}

func TestNotesDiminishedSeventh(t *testing.T) {
	keys := Notes(model.Chord{Root: model.NoteC, Quality: model.QualityDim, Extension: 7})
	assert.Equal(t, []uint8{60, 63, 66, 69}, keys)
}

func TestRenderProducesOneTrack(t *testing.T) {
	song := model.Song{
		Title: "Test",
		BPM:   140,
		Cells: []model.Cell{
			model.TimeSignature{Numerator: 4, Denominator: 4},
			model.Chord{Root: model.NoteC, Extension: 7},
			model.Barline{Kind: model.BarSingle},
			model.Marker{Kind: model.MarkerNoChord},
			model.Chord{Root: model.NoteF},
			model.Barline{Kind: model.BarFinal},
		},
	}
	s := Render(song)
	assert.Equal(t, 1, len(s.Tracks))
	assert.Greater(t, len(s.Tracks[0]), 4)
}
