package num

import "math/big"

// NaturalFromBigInt creates a Natural from a big.Int. Negative values are
// discarded and set accurate to 'false'.
func NaturalFromBigInt(v *big.Int) (out Natural, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()
	z := make([]uint, len(words))
	for i, w := range words {
		z[i] = uint(w)
	}
	return trim(z), true
}

func (n Natural) IntoBigInt(b *big.Int) {
	ws := n.words()
	bits := make([]big.Word, len(ws))
	for i, w := range ws {
		bits[i] = big.Word(w)
	}
	b.SetBits(bits)
}

func (n Natural) AsBigInt() (b *big.Int) {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}
