package fraction

import "fmt"

// MustAdd is like [Fraction.Add] but panics if computing error.
func (f Fraction) MustAdd(x Operand) Fraction {
	g, err := f.Add(x)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", x, err))
	}
	return g
}

// MustSub is like [Fraction.Sub] but panics if computing error.
func (f Fraction) MustSub(x Operand) Fraction {
	g, err := f.Sub(x)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", x, err))
	}
	return g
}

// MustMul is like [Fraction.Mul] but panics if computing error.
func (f Fraction) MustMul(x Operand) Fraction {
	g, err := f.Mul(x)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", x, err))
	}
	return g
}

// MustQuo is like [Fraction.Quo] but panics if computing error.
func (f Fraction) MustQuo(x Operand) Fraction {
	g, err := f.Quo(x)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", x, err))
	}
	return g
}

// MustPow is like [Fraction.Pow] but panics if computing error.
func (f Fraction) MustPow(exp int) Fraction {
	g, err := f.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return g
}
