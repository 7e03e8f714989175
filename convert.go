package num

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNegative is returned when a negative signed value is converted to a
// Natural.
var ErrNegative = errors.New("num: negative value cannot be a natural")

// NaturalFrom creates a Natural from any unsigned integer. Values wider than a
// limb are split into limbs, least significant first.
func NaturalFrom[T constraints.Unsigned](v T) Natural {
	// Shifting by a variable keeps narrower types legal: v >> s is 0 for
	// any s >= the width of T.
	s := uint(wordBits)
	if v>>s == 0 {
		return Natural{small: uint(v)}
	}

	var limbs []uint
	for v != 0 {
		limbs = append(limbs, uint(v))
		v >>= s
	}
	return trim(limbs)
}

// NaturalFromSigned creates a Natural from any signed integer. Negative values
// return ErrNegative.
func NaturalFromSigned[T constraints.Signed](v T) (out Natural, err error) {
	if v < 0 {
		return out, ErrNegative
	}
	return NaturalFrom(uint64(v)), nil
}

func NaturalFrom64(v uint64) Natural { return NaturalFrom(v) }
func NaturalFrom32(v uint32) Natural { return NaturalFrom(v) }
func NaturalFrom16(v uint16) Natural { return NaturalFrom(v) }
func NaturalFrom8(v uint8) Natural   { return NaturalFrom(v) }

// NaturalFromRaw creates a Natural from a 128-bit magnitude held as a pair of
// uint64s.
func NaturalFromRaw(hi, lo uint64) Natural {
	if hi == 0 {
		return NaturalFrom(lo)
	}
	if wordBits == 64 {
		return Natural{limbs: []uint{uint(lo), uint(hi)}}
	}
	return trim([]uint{uint(lo), uint(lo >> 32), uint(hi), uint(hi >> 32)})
}
