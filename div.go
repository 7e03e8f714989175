package num

import "math/bits"

// Quo returns the quotient n/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. See QuoRem for more details.
func (n Natural) Quo(by Natural) (q Natural) {
	q, _ = n.QuoRem(by)
	return q
}

// Rem returns the remainder n%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. See QuoRem for more details.
func (n Natural) Rem(by Natural) (r Natural) {
	_, r = n.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r of n/by for by != 0, such that
//
//	n == q*by + r, 0 <= r < by
//
// If by == 0, a division-by-zero run-time panic occurs.
//
// Divisors of more than one limb use schoolbook long division (Knuth, TAOCP
// vol. 2, 4.3.1, algorithm D); the cost is proportional to the product of the
// operand limb counts.
func (n Natural) QuoRem(by Natural) (q, r Natural) {
	if by.IsZero() {
		panic("natural: division by zero")
	}

	if n.limbs == nil && by.limbs == nil {
		return Natural{small: n.small / by.small}, Natural{small: n.small % by.small}
	}

	// Covers every compact dividend with an extended divisor: the divisor has
	// more limbs, so it is the larger value and the dividend is all remainder.
	if cmp := n.Cmp(by); cmp < 0 {
		return q, n
	} else if cmp == 0 {
		return oneNatural, r
	}

	if by.limbs == nil {
		z := make([]uint, len(n.limbs))
		rw := divLimbWord(z, n.limbs, by.small)
		return trim(z), Natural{small: rw}
	}

	qs, rs := divLimbs(n.limbs, by.limbs)
	return trim(qs), trim(rs)
}

// divLimbs divides u by v, where len(v) >= 2, v is normalised and u >= v. The
// returned quotient and remainder are not normalised.
func divLimbs(u, v []uint) (q, r []uint) {
	n := len(v)
	m := len(u) - n

	// D1: shift both operands so the top bit of the divisor is set. This keeps
	// the q̂ estimate below within 2 of the true quotient digit.
	s := uint(bits.LeadingZeros(v[n-1]))
	vn := make([]uint, n)
	shlLimbs(vn, v, s)
	un := make([]uint, len(u)+1)
	un[len(u)] = shlLimbs(un[:len(u)], u, s)

	q = make([]uint, m+1)
	qv := make([]uint, n+1)
	vn1, vn2 := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		// D3: estimate q̂ from the top two limbs of the current remainder.
		qhat := maxWord
		if ujn := un[j+n]; ujn != vn1 {
			var rhat uint
			qhat, rhat = bits.Div(ujn, un[j+n-1], vn1)

			// Refine q̂ against the second divisor limb.
			x1, x2 := bits.Mul(qhat, vn2)
			ujn2 := un[j+n-2]
			for x1 > rhat || (x1 == rhat && x2 > ujn2) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev { // rhat >= B, the test can no longer succeed
					break
				}
				x1, x2 = bits.Mul(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		qv[n] = mulLimbWord(qv[:n], vn, qhat)
		if subLimbs(un[j:j+n+1], un[j:j+n+1], qv) != 0 {
			// D6: q̂ was one too large; add the divisor back.
			c := addLimbs(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: the remainder is the low n limbs, un-normalised.
	r = make([]uint, n)
	shrLimbs(r, un[:n], s)
	return q, r
}
