package num

import "fmt"

// MustNaturalFromString is like [NaturalFromString] but panics if the string
// cannot be parsed. It is intended for constants and tests.
func MustNaturalFromString(s string) Natural {
	n, err := NaturalFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustNaturalFromString(%q) failed: %v", s, err))
	}
	return n
}

// MustSub is like [Natural.Sub] but panics if the subtraction underflows.
func (n Natural) MustSub(m Natural) Natural {
	d, ok := n.Sub(m)
	if !ok {
		panic(fmt.Sprintf("MustSub(%v) failed: %v < %v", m, n, m))
	}
	return d
}
