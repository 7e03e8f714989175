package num

import "math/bits"

// Add returns n + m. Addition never overflows; a carry out of the top limb
// grows the result by one limb.
func (n Natural) Add(m Natural) Natural {
	if n.limbs == nil && m.limbs == nil {
		s, c := bits.Add(n.small, m.small, 0)
		if c == 0 {
			return Natural{small: s}
		}
		return Natural{limbs: []uint{s, c}}
	}

	x, y := n.words(), m.words()
	if len(x) < len(y) {
		x, y = y, x
	}

	z := make([]uint, len(x)+1)
	c := addLimbs(z[:len(y)], x[:len(y)], y)
	z[len(x)] = addLimbWord(z[len(y):len(x)], x[len(y):], c)
	return trim(z)
}

// Sub returns n - m. If m is larger than n the result would underflow, in
// which case ok is false and out is zero.
func (n Natural) Sub(m Natural) (out Natural, ok bool) {
	if n.limbs == nil && m.limbs == nil {
		d, b := bits.Sub(n.small, m.small, 0)
		if b != 0 {
			return out, false
		}
		return Natural{small: d}, true
	}

	x, y := n.words(), m.words()
	if len(x) < len(y) {
		return out, false
	}

	z := make([]uint, len(x))
	b := subLimbs(z[:len(y)], x[:len(y)], y)
	if subLimbWord(z[len(y):], x[len(y):], b) != 0 {
		return out, false
	}
	return trim(z), true
}
