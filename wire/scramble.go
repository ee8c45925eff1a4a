package wire

// Scrambler is the boundary to the byte transform iReal Pro applies to the
// chords field inside a URL. The algorithm is not part of this codec; any
// implementation must satisfy Descramble(Scramble(s)) == s.
type Scrambler interface {
	Scramble(plain string) string
	Descramble(raw string) string
}

// Identity is the no-op Scrambler, used for already-plain strings and
// throughout the tests so the codec stays independent of the cipher.
type Identity struct{}

func (Identity) Scramble(plain string) string { return plain }

func (Identity) Descramble(raw string) string { return raw }
