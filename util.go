package num

type RandSource interface {
	Uint64() uint64
}

// RandNatural generates a random Natural of at most bits bits from an external
// source.
func RandNatural(source RandSource, bits uint) Natural {
	if bits == 0 {
		return zeroNatural
	}
	cnt := (bits + wordBits - 1) / wordBits
	z := make([]uint, cnt)
	for i := range z {
		z[i] = uint(source.Uint64())
	}
	if rem := bits % wordBits; rem != 0 {
		z[cnt-1] &= (1 << rem) - 1
	}
	return trim(z)
}

// DifferenceNatural subtracts the smaller of a and b from the larger.
func DifferenceNatural(a, b Natural) Natural {
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	d, _ := a.Sub(b)
	return d
}

func LargerNatural(a, b Natural) Natural {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerNatural(a, b Natural) Natural {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}

// SumNaturals returns the sum of ns. The sum of no values is 0.
func SumNaturals(ns ...Natural) (out Natural) {
	for _, n := range ns {
		out = out.Add(n)
	}
	return out
}

// ProductNaturals returns the product of ns. The product of no values is 1.
func ProductNaturals(ns ...Natural) (out Natural) {
	out = oneNatural
	for _, n := range ns {
		out = out.Mul(n)
	}
	return out
}
