package num

import "iter"

// BitLen returns the number of bits required to represent n. The bit length of
// 0 is 0.
func (n Natural) BitLen() Natural {
	return Natural{small: uint(n.bitLen())}
}

// Bits returns n's bits, most significant first. The sequence has exactly
// BitLen() elements, except for 0 which yields a single false.
//
// The sequence is computed from n's limbs on demand and can be ranged over any
// number of times.
func (n Natural) Bits() iter.Seq[bool] {
	ws := n.words()
	bl := n.bitLen()
	if bl == 0 {
		bl = 1
	}
	return func(yield func(bool) bool) {
		for i := bl - 1; i >= 0; i-- {
			if !yield((ws[i/wordBits]>>(uint(i)%wordBits))&1 == 1) {
				return
			}
		}
	}
}

// Bit returns the value of the i'th bit of n, counting from the least
// significant bit.
func (n Natural) Bit(i uint) uint {
	idx := i / wordBits
	if idx >= uint(n.LimbCount()) {
		return 0
	}
	return (n.words()[idx] >> (i % wordBits)) & 1
}
