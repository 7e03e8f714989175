package num

import (
	"math/bits"
)

// Natural is an arbitrary-precision unsigned integer.
//
// A Natural is either compact, holding a value that fits in a single machine
// word, or extended, holding two or more words ("limbs") least-significant
// first. Extended values are always normalised: the most significant limb is
// never zero, so a value that fits in one word is always compact. The zero
// value of Natural is 0.
//
// Natural is a value type; all operations return new values and never modify
// their operands, so a Natural may be shared between goroutines freely.
type Natural struct {
	small uint
	limbs []uint // nil when compact, otherwise len(limbs) >= 2
}

// NaturalFromLimbs creates a Natural from a list of limbs, least-significant
// first. The limbs are copied.
func NaturalFromLimbs(limbs ...uint) Natural {
	z := make([]uint, len(limbs))
	copy(z, limbs)
	return trim(z)
}

// trim takes ownership of z and returns the canonical Natural for it: trailing
// zero limbs are stripped, and zero or one remaining limbs yield a compact
// value.
func trim(z []uint) Natural {
	z = normLimbs(z)
	switch len(z) {
	case 0:
		return Natural{}
	case 1:
		return Natural{small: z[0]}
	default:
		return Natural{limbs: z}
	}
}

// normLimbs strips trailing (most-significant) zero limbs.
func normLimbs(z []uint) []uint {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

func (n Natural) IsZero() bool { return n.limbs == nil && n.small == 0 }

// IsCompact reports whether n fits in a single limb.
func (n Natural) IsCompact() bool { return n.limbs == nil }

// LimbCount returns the number of limbs in n's representation. Compact values,
// including zero, have exactly one limb.
func (n Natural) LimbCount() int {
	if n.limbs == nil {
		return 1
	}
	return len(n.limbs)
}

// Limbs returns a copy of n's limbs, least-significant first. The result
// always contains at least one limb.
func (n Natural) Limbs() []uint {
	if n.limbs == nil {
		return []uint{n.small}
	}
	out := make([]uint, len(n.limbs))
	copy(out, n.limbs)
	return out
}

// words exposes n's limbs without copying. Callers must not modify the
// result.
func (n Natural) words() []uint {
	if n.limbs == nil {
		return []uint{n.small}
	}
	return n.limbs
}

// msl returns the most significant limb.
func (n Natural) msl() uint {
	if n.limbs == nil {
		return n.small
	}
	return n.limbs[len(n.limbs)-1]
}

// lsl returns the least significant limb.
func (n Natural) lsl() uint {
	if n.limbs == nil {
		return n.small
	}
	return n.limbs[0]
}

func (n Natural) bitLen() int {
	return wordBits*n.LimbCount() - bits.LeadingZeros(n.msl())
}

// TryWord returns n as a single machine word. ok is false if n does not fit
// in a word.
func (n Natural) TryWord() (w uint, ok bool) {
	if n.limbs != nil {
		return 0, false
	}
	return n.small, true
}

// AsUint64 truncates n to fit in a uint64. See IsUint64() if you want to check
// before you convert.
func (n Natural) AsUint64() uint64 {
	if wordBits == 64 || n.limbs == nil {
		return uint64(n.lsl())
	}
	return uint64(n.limbs[1])<<32 | uint64(n.limbs[0])
}

// IsUint64 reports whether n can be represented as a uint64.
func (n Natural) IsUint64() bool {
	return n.limbs == nil || len(n.limbs) <= 64/wordBits
}
