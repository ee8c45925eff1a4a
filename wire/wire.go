// Package wire splits and joins the iReal Pro record layers: the
// irealb:// prefix, the ===-separated song list, and the 10 =-joined
// fields of each song. The chords field (field 7, 1-indexed) is handed to
// an injected Scrambler and then to the cell codec; every other field is
// plain string data.
//
// Record layout:
//
//	title=composer==style=key==<chords>=feel=bpm=flag
//
// Fields 3 and 6 are reserved and normally empty; they are preserved
// verbatim, never interpreted.
package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chordwire/chordwire/cell"
	"github.com/chordwire/chordwire/model"
)

// Prefix is the URL scheme prefix of the wire format.
const Prefix = "irealb://"

// SongSeparator delimits songs inside one wire string.
const SongSeparator = "==="

// NumFields is the field count of a song record.
const NumFields = 10

const (
	fieldTitle = iota
	fieldComposer
	fieldReserved1
	fieldStyle
	fieldKey
	fieldReserved2
	fieldChords
	fieldFeel
	fieldBPM
	fieldFlag
)

// FieldError reports a song record with the wrong shape.
type FieldError struct {
	Song   int // 0-indexed song position in the playlist
	Count  int
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("song %d: %s", e.Song, e.Detail)
	}
	return fmt.Sprintf("song %d: wrong field count: got %d, want %d", e.Song, e.Count, NumFields)
}

// SplitSongs splits a wire body (without the prefix) into raw song
// records.
func SplitSongs(body string) []string {
	return strings.Split(body, SongSeparator)
}

// JoinSongs is the exact inverse of SplitSongs.
func JoinSongs(songs []string) string {
	return strings.Join(songs, SongSeparator)
}

// SplitFields splits one raw song record into its 10 fields, preserving
// empties at double-= boundaries. A record with any other field count is
// rejected.
func SplitFields(songText string) ([]string, error) {
	fields := strings.Split(songText, "=")
	if len(fields) != NumFields {
		return nil, &FieldError{Count: len(fields)}
	}
	return fields, nil
}

// JoinFields is the exact inverse of SplitFields.
func JoinFields(fields []string) string {
	return strings.Join(fields, "=")
}

// DecodeSong parses one raw song record. The chords field is descrambled
// with sc before being parsed; pass Identity for plain strings.
func DecodeSong(songText string, sc Scrambler) (model.Song, error) {
	var s model.Song
	fields, err := SplitFields(songText)
	if err != nil {
		return s, err
	}

	s.Title = fields[fieldTitle]
	s.Composer = fields[fieldComposer]
	s.Reserved1 = fields[fieldReserved1]
	s.Style = fields[fieldStyle]
	s.Reserved2 = fields[fieldReserved2]
	s.Feel = fields[fieldFeel]
	s.Flag = fields[fieldFlag]

	s.Key, err = ParseKey(fields[fieldKey])
	if err != nil {
		return s, err
	}
	s.BPM, err = parseBPM(fields[fieldBPM])
	if err != nil {
		return s, err
	}
	s.Cells, err = cell.ParseString(sc.Descramble(fields[fieldChords]))
	if err != nil {
		return s, err
	}
	return s, nil
}

// EncodeSong renders a song back to its raw record, rescrambling the
// chords field with sc.
func EncodeSong(s model.Song, sc Scrambler) (string, error) {
	chords, err := cell.Serialize(s.Cells)
	if err != nil {
		return "", err
	}
	fields := make([]string, NumFields)
	fields[fieldTitle] = s.Title
	fields[fieldComposer] = s.Composer
	fields[fieldReserved1] = s.Reserved1
	fields[fieldStyle] = s.Style
	fields[fieldKey] = KeyString(s.Key)
	fields[fieldReserved2] = s.Reserved2
	fields[fieldChords] = sc.Scramble(chords)
	fields[fieldFeel] = s.Feel
	fields[fieldBPM] = bpmString(s.BPM)
	fields[fieldFlag] = s.Flag
	return JoinFields(fields), nil
}

// DecodePlaylist parses a full wire string into a named playlist. The
// irealb:// prefix is accepted but not required; callers are expected to
// have URL-decoded the string already.
func DecodePlaylist(name, wire string, sc Scrambler) (model.Playlist, error) {
	pl := model.Playlist{Name: name}
	body := strings.TrimPrefix(wire, Prefix)
	for i, songText := range SplitSongs(body) {
		song, err := DecodeSong(songText, sc)
		if err != nil {
			if fe, ok := err.(*FieldError); ok {
				fe.Song = i
				return pl, fe
			}
			return pl, fmt.Errorf("song %d: %w", i, err)
		}
		pl.Songs = append(pl.Songs, song)
	}
	return pl, nil
}

// EncodePlaylist renders a playlist back to a full wire string including
// the irealb:// prefix.
func EncodePlaylist(pl model.Playlist, sc Scrambler) (string, error) {
	songs := make([]string, 0, len(pl.Songs))
	for i, s := range pl.Songs {
		text, err := EncodeSong(s, sc)
		if err != nil {
			return "", fmt.Errorf("song %d: %w", i, err)
		}
		songs = append(songs, text)
	}
	return Prefix + JoinSongs(songs), nil
}

// ParseKey parses a key field: note letter, optional accidental, optional
// "-" for minor. Examples: "C", "Bb", "D-", "F#-".
func ParseKey(field string) (model.Key, error) {
	k := model.Key{Mode: model.Major}
	rest := field
	if rest == "" || !model.IsNoteName(rest[0]) {
		return k, fmt.Errorf("invalid key field %q", field)
	}
	k.Root = model.NoteName(rest[:1])
	rest = rest[1:]
	if strings.HasPrefix(rest, string(model.Sharp)) || strings.HasPrefix(rest, string(model.Flat)) {
		k.Accidental = model.Accidental(rest[:1])
		rest = rest[1:]
	}
	if rest == "-" {
		k.Mode = model.Minor
		rest = ""
	}
	if rest != "" {
		return k, fmt.Errorf("invalid key field %q", field)
	}
	return k, nil
}

// KeyString renders a key back to its wire field.
func KeyString(k model.Key) string {
	s := string(k.Root) + string(k.Accidental)
	if k.Mode == model.Minor {
		s += "-"
	}
	return s
}

func parseBPM(field string) (int, error) {
	if field == "" {
		return 0, nil
	}
	bpm, err := strconv.Atoi(field)
	if err != nil || bpm < 0 {
		return 0, fmt.Errorf("invalid bpm field %q", field)
	}
	return bpm, nil
}

func bpmString(bpm int) string {
	if bpm == 0 {
		return "0"
	}
	return strconv.Itoa(bpm)
}
