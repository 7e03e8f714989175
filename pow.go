package num

// Pow returns n**exp.
//
// The exponent is consumed one bit at a time from the most significant end
// (square-and-multiply), so the cost is proportional to exp.BitLen()
// multiplications. n**0 is 1 for every n, including 0.
func (n Natural) Pow(exp Natural) Natural {
	acc := oneNatural
	for bit := range exp.Bits() {
		acc = acc.Mul(acc)
		if bit {
			acc = acc.Mul(n)
		}
	}
	return acc
}
