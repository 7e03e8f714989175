package num

import "math/bits"

// Elementary operations on limb vectors. Unless stated otherwise, z, x and y
// must have the same length; z may alias x or y.

// z = x + y, returns the carry out of the top limb.
func addLimbs(z, x, y []uint) (c uint) {
	for i := range z {
		z[i], c = bits.Add(x[i], y[i], c)
	}
	return c
}

// z = x + c, returns the carry out of the top limb.
func addLimbWord(z, x []uint, c uint) uint {
	for i := range z {
		z[i], c = bits.Add(x[i], 0, c)
	}
	return c
}

// z = x - y, returns the borrow out of the top limb.
func subLimbs(z, x, y []uint) (b uint) {
	for i := range z {
		z[i], b = bits.Sub(x[i], y[i], b)
	}
	return b
}

// z = x - b, returns the borrow out of the top limb.
func subLimbWord(z, x []uint, b uint) uint {
	for i := range z {
		z[i], b = bits.Sub(x[i], 0, b)
	}
	return b
}

// z = x * y, returns the high limb of the product.
func mulLimbWord(z, x []uint, y uint) (c uint) {
	for i := range z {
		hi, lo := bits.Mul(x[i], y)
		var cc uint
		z[i], cc = bits.Add(lo, c, 0)
		c = hi + cc
	}
	return c
}

// z += x * y, returns the high limb that falls out of z.
//
// x[i]*y + z[i] + c is at most (B-1)**2 + 2(B-1) == B**2 - 1, so the high
// half never overflows.
func addMulLimbWord(z, x []uint, y uint) (c uint) {
	for i := range z {
		hi, lo := bits.Mul(x[i], y)
		var cc uint
		lo, cc = bits.Add(lo, z[i], 0)
		hi += cc
		z[i], cc = bits.Add(lo, c, 0)
		c = hi + cc
	}
	return c
}

// z = x << s for 0 <= s < wordBits, returns the bits shifted out of the top
// limb. z may alias x.
func shlLimbs(z, x []uint, s uint) (c uint) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(z)
	if n == 0 {
		return 0
	}
	ŝ := wordBits - s
	w1 := x[n-1]
	c = w1 >> ŝ
	for i := n - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>ŝ
	}
	z[0] = w1 << s
	return c
}

// z = x >> s for 0 <= s < wordBits, returns the bits shifted out of the
// bottom limb, in the high bits of c. z may alias x.
func shrLimbs(z, x []uint, s uint) (c uint) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(z)
	if n == 0 {
		return 0
	}
	ŝ := wordBits - s
	w1 := x[0]
	c = w1 << ŝ
	for i := 0; i < n-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<ŝ
	}
	z[n-1] = w1 >> s
	return c
}

// z = x / y, returns the remainder. y must not be zero; z may alias x.
func divLimbWord(z, x []uint, y uint) (r uint) {
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div(r, x[i], y)
	}
	return r
}

// cmpLimbs compares two normalised limb vectors.
func cmpLimbs(x, y []uint) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
