package num

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

var (
	// ErrEmpty is wrapped by a ParseError when the input text is empty.
	ErrEmpty = errors.New("empty input")

	// ErrSyntax is wrapped by a ParseError when the input text contains
	// anything other than the decimal digits '0' to '9'.
	ErrSyntax = errors.New("invalid decimal digit")
)

// ParseError records a failed conversion of text to a Natural.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	text := e.Text
	if len(text) > 64 {
		text = text[:61] + "..."
	}
	return fmt.Sprintf("num: natural string %q invalid: %v", text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NaturalFromString creates a Natural from a string of decimal digits. Signs,
// whitespace, digit separators and base prefixes are not accepted.
//
// The text is consumed in chunks of as many digits as always fit in a single
// limb, most significant chunk first, with each chunk folded in as
// n = n*10**chunk + chunk.
func NaturalFromString(s string) (out Natural, err error) {
	if s == "" {
		return out, &ParseError{Text: s, Err: ErrEmpty}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return out, &ParseError{Text: s, Err: ErrSyntax}
		}
	}

	chunkBase := Natural{small: decimalChunkPow}

	head := len(s) % decimalChunk
	if head == 0 {
		head = decimalChunk
	}
	for start, end := 0, head; start < len(s); start, end = end, end+decimalChunk {
		v, err := strconv.ParseUint(s[start:end], 10, bits.UintSize)
		if err != nil {
			return Natural{}, &ParseError{Text: s, Err: err}
		}
		out = out.Mul(chunkBase).Add(Natural{small: uint(v)})
	}
	return out, nil
}

// String returns the decimal representation of n.
func (n Natural) String() string {
	if n.limbs == nil {
		return strconv.FormatUint(uint64(n.small), 10)
	}

	// Peel off decimalChunk digits at a time, least significant first.
	x := make([]uint, len(n.limbs))
	copy(x, n.limbs)
	var chunks []uint
	for len(x) > 0 {
		chunks = append(chunks, divLimbWord(x, x, decimalChunkPow))
		x = normLimbs(x)
	}

	last := len(chunks) - 1
	out := make([]byte, 0, len(chunks)*decimalChunk)
	out = strconv.AppendUint(out, uint64(chunks[last]), 10)

	var pad [decimalChunk]byte
	for i := last - 1; i >= 0; i-- {
		digits := strconv.AppendUint(pad[:0], uint64(chunks[i]), 10)
		for j := len(digits); j < decimalChunk; j++ {
			out = append(out, '0')
		}
		out = append(out, digits...)
	}
	return string(out)
}

// Format implements fmt.Formatter. All verbs supported by big.Int are
// supported.
func (n Natural) Format(s fmt.State, c rune) {
	n.AsBigInt().Format(s, c)
}

func (n Natural) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Natural) UnmarshalText(bts []byte) (err error) {
	v, err := NaturalFromString(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Natural) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

func (n *Natural) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: natural invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := NaturalFromString(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
