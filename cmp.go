package num

// Cmp compares n and m and returns:
//
//	-1 if n <  m
//	 0 if n == m
//	+1 if n >  m
//
// Limb counts are compared first. Both operands are normalised, so a value
// with more limbs is always the larger one, and any compact value is smaller
// than any extended value.
func (n Natural) Cmp(m Natural) int {
	if n.limbs == nil && m.limbs == nil {
		if n.small < m.small {
			return -1
		} else if n.small > m.small {
			return 1
		}
		return 0
	}
	if n.limbs == nil {
		return -1
	} else if m.limbs == nil {
		return 1
	}
	return cmpLimbs(n.limbs, m.limbs)
}

// Equal reports whether n and m hold the same value. A compact value is never
// equal to an extended one.
func (n Natural) Equal(m Natural) bool {
	if n.limbs == nil || m.limbs == nil {
		return n.limbs == nil && m.limbs == nil && n.small == m.small
	}
	if len(n.limbs) != len(m.limbs) {
		return false
	}
	for i, l := range n.limbs {
		if m.limbs[i] != l {
			return false
		}
	}
	return true
}

func (n Natural) GreaterThan(m Natural) bool      { return n.Cmp(m) > 0 }
func (n Natural) GreaterOrEqualTo(m Natural) bool { return n.Cmp(m) >= 0 }
func (n Natural) LessThan(m Natural) bool         { return n.Cmp(m) < 0 }
func (n Natural) LessOrEqualTo(m Natural) bool    { return n.Cmp(m) <= 0 }
