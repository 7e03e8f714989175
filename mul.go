package num

import "math/bits"

// Mul returns n * m.
//
// This is the schoolbook algorithm: the double-width product of every pair of
// limbs x[i], y[j] is accumulated into the result at limb i+j. It is quadratic
// in the number of limbs.
func (n Natural) Mul(m Natural) Natural {
	if n.IsZero() || m.IsZero() {
		return zeroNatural
	}
	if n.limbs == nil && m.limbs == nil {
		hi, lo := bits.Mul(n.small, m.small)
		if hi == 0 {
			return Natural{small: lo}
		}
		return Natural{limbs: []uint{lo, hi}}
	}

	x, y := n.words(), m.words()
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) > maxLimbs-len(x) {
		panic("natural: product exceeds maximum limb count")
	}

	z := make([]uint, len(x)+len(y))
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		z[len(x)+j] = addMulLimbWord(z[j:j+len(x)], x, yj)
	}
	return trim(z)
}

// shiftLimbs returns n with k zero limbs prepended, i.e. n * B**k where B is
// the limb base.
func (n Natural) shiftLimbs(k int) Natural {
	if k == 0 {
		return n
	}
	cnt := n.LimbCount()
	if k < 0 || k > maxLimbs-cnt {
		panic("natural: shift exceeds maximum limb count")
	}
	if n.IsZero() {
		return n
	}
	z := make([]uint, k+cnt)
	copy(z[k:], n.words())
	return Natural{limbs: z}
}
