package model

import (
	"encoding/json"
	"fmt"
)

// Cell values cross the JSON boundary as tagged objects, e.g.
//
//	{"type":"chord","root":"C","major_seventh":true,"extension":7}
//	{"type":"barline","kind":"|"}
//
// Marshaling works through the ordinary json package since each concrete
// type implements json.Marshaler; unmarshaling goes through UnmarshalCell
// (or Song/Playlist unmarshaling, which uses it) because an interface
// value cannot be decoded without the tag.

const (
	typeChord         = "chord"
	typeBarline       = "barline"
	typeSection       = "section"
	typeTimeSignature = "time_signature"
	typeEnding        = "ending"
	typeMarker        = "marker"
	typeAnnotation    = "annotation"
)

type chordJSON struct {
	Type           string       `json:"type"`
	Root           NoteName     `json:"root"`
	Accidental     Accidental   `json:"accidental,omitempty"`
	Quality        Quality      `json:"quality,omitempty"`
	MajorSeventh   bool         `json:"major_seventh,omitempty"`
	Extension      int          `json:"extension,omitempty"`
	Alterations    []Alteration `json:"alterations,omitempty"`
	SubChord       *chordJSON   `json:"sub_chord,omitempty"`
	BassNote       NoteName     `json:"bass_note,omitempty"`
	BassAccidental Accidental   `json:"bass_accidental,omitempty"`
	Size           ChordSize    `json:"size,omitempty"`
}

func chordToJSON(c Chord) *chordJSON {
	j := &chordJSON{
		Type:           typeChord,
		Root:           c.Root,
		Accidental:     c.Accidental,
		Quality:        c.Quality,
		MajorSeventh:   c.MajorSeventh,
		Extension:      c.Extension,
		Alterations:    c.Alterations,
		BassNote:       c.BassNote,
		BassAccidental: c.BassAccidental,
		Size:           c.Size,
	}
	if c.SubChord != nil {
		j.SubChord = chordToJSON(*c.SubChord)
	}
	return j
}

func chordFromJSON(j *chordJSON) (Chord, error) {
	c := Chord{
		Root:           j.Root,
		Accidental:     j.Accidental,
		Quality:        j.Quality,
		MajorSeventh:   j.MajorSeventh,
		Extension:      j.Extension,
		Alterations:    j.Alterations,
		BassNote:       j.BassNote,
		BassAccidental: j.BassAccidental,
		Size:           j.Size,
	}
	if len(j.Root) != 1 || !IsNoteName(j.Root[0]) {
		return c, fmt.Errorf("invalid chord root %q", j.Root)
	}
	if c.Extension != 0 && !Extensions[c.Extension] {
		return c, fmt.Errorf("invalid chord extension %d", c.Extension)
	}
	if !validQualities[c.Quality] {
		return c, fmt.Errorf("invalid chord quality %q", c.Quality)
	}
	if !validAccidentals[c.Accidental] {
		return c, fmt.Errorf("invalid accidental %q", c.Accidental)
	}
	if !validSizes[c.Size] {
		return c, fmt.Errorf("invalid chord size %q", c.Size)
	}
	for _, a := range c.Alterations {
		if !validAlterations[a] {
			return c, fmt.Errorf("invalid alteration %q", a)
		}
	}
	if c.BassNote != "" && (len(c.BassNote) != 1 || !IsNoteName(c.BassNote[0])) {
		return c, fmt.Errorf("invalid bass note %q", c.BassNote)
	}
	if !validAccidentals[c.BassAccidental] {
		return c, fmt.Errorf("invalid bass accidental %q", c.BassAccidental)
	}
	if j.SubChord != nil {
		sub, err := chordFromJSON(j.SubChord)
		if err != nil {
			return c, err
		}
		c.SubChord = &sub
	}
	return c, nil
}

func (c Chord) MarshalJSON() ([]byte, error) {
	return json.Marshal(chordToJSON(c))
}

func (b Barline) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string      `json:"type"`
		Kind BarlineKind `json:"kind"`
	}{typeBarline, b.Kind})
}

func (m SectionMark) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string      `json:"type"`
		Kind SectionKind `json:"kind"`
	}{typeSection, m.Kind})
}

func (ts TimeSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string `json:"type"`
		Numerator   int    `json:"numerator"`
		Denominator int    `json:"denominator"`
	}{typeTimeSignature, ts.Numerator, ts.Denominator})
}

func (e Ending) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Number int    `json:"number"`
	}{typeEnding, e.Number})
}

func (m Marker) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string     `json:"type"`
		Kind MarkerKind `json:"kind"`
	}{typeMarker, m.Kind})
}

func (a TextAnnotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{typeAnnotation, a.Text})
}

var validQualities = map[Quality]bool{
	QualityMajor: true, QualityMinor: true, QualityHalfDim: true,
	QualityDim: true, QualityAug: true, QualitySus4: true, QualitySus2: true,
}

var validAccidentals = map[Accidental]bool{"": true, Sharp: true, Flat: true}

var validSizes = map[ChordSize]bool{SizeNormal: true, SizeSmall: true, SizeLarge: true}

var validAlterations = func() map[Alteration]bool {
	m := make(map[Alteration]bool, len(Alterations))
	for _, a := range Alterations {
		m[a] = true
	}
	return m
}()

var validBarlines = map[BarlineKind]bool{
	BarSingle: true, BarDouble: true, BarFinal: true,
	BarRepeatOpen: true, BarRepeatClose: true,
	BarSectionOpen: true, BarSectionClose: true,
}

var validSections = map[SectionKind]bool{
	SectionA: true, SectionB: true, SectionC: true, SectionD: true,
	SectionVerse: true, SectionIntro: true,
}

var validMarkers = map[MarkerKind]bool{
	MarkerCoda: true, MarkerSegno: true, MarkerFermata: true,
	MarkerNoChord: true, MarkerRepeatBar: true, MarkerBreak: true,
	MarkerPause: true, MarkerPush: true,
}

// UnmarshalCell decodes one tagged cell object.
func UnmarshalCell(data []byte) (Cell, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}
	switch tag.Type {
	case typeChord:
		var j chordJSON
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, err
		}
		return chordFromJSON(&j)
	case typeBarline:
		var j struct {
			Kind BarlineKind `json:"kind"`
		}
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, err
		}
		if !validBarlines[j.Kind] {
			return nil, fmt.Errorf("invalid barline kind %q", j.Kind)
		}
		return Barline{Kind: j.Kind}, nil
	case typeSection:
		var j struct {
			Kind SectionKind `json:"kind"`
		}
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, err
		}
		if !validSections[j.Kind] {
			return nil, fmt.Errorf("invalid section kind %q", j.Kind)
		}
		return SectionMark{Kind: j.Kind}, nil
	case typeTimeSignature:
		var j struct {
			Numerator   int `json:"numerator"`
			Denominator int `json:"denominator"`
		}
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, err
		}
		if j.Numerator < 1 || (j.Denominator != 4 && j.Denominator != 8) {
			return nil, fmt.Errorf("invalid time signature %d/%d", j.Numerator, j.Denominator)
		}
		return TimeSignature{Numerator: j.Numerator, Denominator: j.Denominator}, nil
	case typeEnding:
		var j struct {
			Number int `json:"number"`
		}
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, err
		}
		if j.Number < 1 || j.Number > 3 {
			return nil, fmt.Errorf("invalid ending number %d", j.Number)
		}
		return Ending{Number: j.Number}, nil
	case typeMarker:
		var j struct {
			Kind MarkerKind `json:"kind"`
		}
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, err
		}
		if !validMarkers[j.Kind] {
			return nil, fmt.Errorf("invalid marker kind %q", j.Kind)
		}
		return Marker{Kind: j.Kind}, nil
	case typeAnnotation:
		var j struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, err
		}
		return TextAnnotation{Text: j.Text}, nil
	default:
		return nil, fmt.Errorf("unknown cell type %q", tag.Type)
	}
}

// UnmarshalJSON decodes a song whose cells arrive as tagged objects.
func (s *Song) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title     string            `json:"title"`
		Composer  string            `json:"composer"`
		Style     string            `json:"style"`
		Key       Key               `json:"key"`
		Feel      string            `json:"feel"`
		BPM       int               `json:"bpm"`
		Cells     []json.RawMessage `json:"cells"`
		Reserved1 string            `json:"reserved1"`
		Reserved2 string            `json:"reserved2"`
		Flag      string            `json:"flag"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Key.Mode == "" {
		raw.Key.Mode = Major
	}
	cells := make([]Cell, 0, len(raw.Cells))
	for i, rc := range raw.Cells {
		c, err := UnmarshalCell(rc)
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		cells = append(cells, c)
	}
	*s = Song{
		Title:     raw.Title,
		Composer:  raw.Composer,
		Style:     raw.Style,
		Key:       raw.Key,
		Feel:      raw.Feel,
		BPM:       raw.BPM,
		Cells:     cells,
		Reserved1: raw.Reserved1,
		Reserved2: raw.Reserved2,
		Flag:      raw.Flag,
	}
	return nil
}
