package num

// Lsh returns n << amount.
//
// The amount is itself a Natural, but results are bounded by maxLimbs: if the
// result would need more limbs than can be indexed, a run-time panic occurs.
func (n Natural) Lsh(amount Natural) Natural {
	if amount.limbs != nil {
		panic("natural: shift exceeds maximum limb count")
	}

	whole, s := amount.small/wordBits, amount.small%wordBits

	// The result may need one limb beyond the prepended ones for the bits
	// carried out of the top limb.
	if whole >= uint(maxLimbs-n.LimbCount()) {
		panic("natural: shift exceeds maximum limb count")
	}

	v := n.shiftLimbs(int(whole))
	if s == 0 || v.IsZero() {
		return v
	}

	x := v.words()
	z := make([]uint, len(x)+1)
	for i, l := range x {
		z[i] |= l << s
		z[i+1] = l >> (wordBits - s)
	}
	return trim(z)
}

// Rsh returns n >> s.
func (n Natural) Rsh(s uint) Natural {
	if s == 0 {
		return n
	}
	if n.limbs == nil {
		if s >= wordBits {
			return zeroNatural
		}
		return Natural{small: n.small >> s}
	}

	whole := s / wordBits
	if whole >= uint(len(n.limbs)) {
		return zeroNatural
	}

	x := n.limbs[whole:]
	z := make([]uint, len(x))
	shrLimbs(z, x, s%wordBits)
	return trim(z)
}
