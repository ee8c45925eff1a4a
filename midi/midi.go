// Package midi renders a parsed song to a Standard MIDI File: one minimal
// block voicing per chord cell, held for a bar, with meter changes taken
// from the progression's time-signature cells. It is an export aid, not a
// performance engine.
package midi

import (
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/chordwire/chordwire/model"
)

const (
	channel  = 0
	velocity = 90
	rootKey  = 60 // chords voiced from the octave above middle C's octave base
	bassKey  = 36
)

var pitchClasses = map[model.NoteName]int{
	model.NoteC: 0,
	model.NoteD: 2,
	model.NoteE: 4,
	model.NoteF: 5,
	model.NoteG: 7,
	model.NoteA: 9,
	model.NoteB: 11,
}

var triads = map[model.Quality][]int{
	model.QualityMajor:   {0, 4, 7},
	model.QualityMinor:   {0, 3, 7},
	model.QualityHalfDim: {0, 3, 6},
	model.QualityDim:     {0, 3, 6},
	model.QualityAug:     {0, 4, 8},
	model.QualitySus4:    {0, 5, 7},
	model.QualitySus2:    {0, 2, 7},
}

func pitchClass(n model.NoteName, acc model.Accidental) int {
	pc := pitchClasses[n]
	switch acc {
	case model.Sharp:
		pc++
	case model.Flat:
		pc--
	}
	return (pc + 12) % 12
}

// seventh picks the semitone offset of the chord's seventh, when the
// extension calls for one.
func seventh(c model.Chord) (int, bool) {
	if c.Extension < 7 {
		return 0, false
	}
	switch {
	case c.MajorSeventh:
		return 11, true
	case c.Quality == model.QualityDim:
		return 9, true
	default:
		return 10, true
	}
}

// Notes voices a chord as MIDI key numbers, low to high. Slash-chord
// basses land two octaves below the roots. Alterations and sub-chords do
// not change the voicing.
func Notes(c model.Chord) []uint8 {
	var keys []uint8
	if c.BassNote != "" {
		keys = append(keys, uint8(bassKey+pitchClass(c.BassNote, c.BassAccidental)))
	}
	root := rootKey + pitchClass(c.Root, c.Accidental)
	for _, iv := range triads[c.Quality] {
		keys = append(keys, uint8(root+iv))
	}
	if off, ok := seventh(c); ok {
		keys = append(keys, uint8(root+off))
	}
	return keys
}

// Render builds a single-track SMF from the song's progression. BPM 0
// falls back to 120; everything but chords, time signatures and the
// no-chord marker is layout information and leaves no trace in the MIDI.
func Render(song model.Song) *smf.SMF {
	clock := smf.MetricTicks(960)
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(song.Title))

	bpm := song.BPM
	if bpm == 0 {
		bpm = 120
	}
	tr.Add(0, smf.MetaTempo(float64(bpm)))

	num, den := 4, 4
	barTicks := func() uint32 {
		beat := clock.Ticks4th()
		if den == 8 {
			beat = clock.Ticks8th()
		}
		return uint32(num) * beat
	}

	delta := uint32(0)
	for _, c := range song.Cells {
		switch v := c.(type) {
		case model.TimeSignature:
			num, den = v.Numerator, v.Denominator
			tr.Add(delta, smf.MetaMeter(uint8(num), uint8(den)))
			delta = 0
		case model.Chord:
			keys := Notes(v)
			for _, k := range keys {
				tr.Add(delta, midi.NoteOn(channel, k, velocity))
				delta = 0
			}
			delta = barTicks()
			for _, k := range keys {
				tr.Add(delta, midi.NoteOff(channel, k))
				delta = 0
			}
		case model.Marker:
			if v.Kind == model.MarkerNoChord {
				delta += barTicks()
			}
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s
}

// WriteFile renders the song and writes the SMF to path.
func WriteFile(song model.Song, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = Render(song).WriteTo(f)
	return err
}
