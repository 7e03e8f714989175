package num

import (
	"math"
	"math/bits"
)

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)

	// wordBits is the width of a single limb.
	wordBits = bits.UintSize

	// wordBytes is the width of a single limb in bytes.
	wordBytes = wordBits / 8

	maxWord = ^uint(0)

	// maxLimbs is the largest limb count a Natural may hold; a slice of
	// maxLimbs words is the largest one that can still be indexed by an int
	// without overflowing the address space.
	maxLimbs = math.MaxInt / wordBytes

	// decimalChunk is the largest count of decimal digits that always fits
	// in a single limb: 19 on 64-bit platforms, 9 on 32-bit.
	decimalChunk = 9 + (wordBits>>6)*10
)

var (
	zeroNatural Natural
	oneNatural  = Natural{small: 1}

	// MaxCompact is the largest value that fits in a single limb.
	MaxCompact = Natural{small: maxWord}

	// decimalChunkPow is 10**decimalChunk, the base used when moving between
	// limbs and decimal text.
	decimalChunkPow = pow10Word(decimalChunk)
)

func pow10Word(n int) (p uint) {
	p = 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
