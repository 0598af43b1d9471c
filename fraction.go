package fraction

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Fraction type is a representation of an exact rational number as a pair
// of int64 integers.
// The zero value is the numeric value of 0/1.
// It is designed to be safe for concurrent use by multiple goroutines,
// except for [Fraction.SimplifyInPlace].
//
// A fraction type is a struct with two parameters:
//
//   - Numerator: a signed integer carrying the sign of the fraction.
//   - Denominator: a positive integer.
//
// A fraction is not kept in lowest terms.
// For example, 2/4 and 1/2 have the same value but different representations.
// Use [Fraction.Simplify] to reduce a fraction, or [Fraction.Equal] to compare
// fractions by value.
//
// Neither the numerator nor the denominator can be [math.MinInt64].
type Fraction struct {
	num int64 // the numerator, carries the sign
	den int64 // the denominator minus one, so that the zero value is 0/1
}

// Int is an integer operand of fraction arithmetic.
// Int(k) behaves like k/1.
type Int int64

// Operand is either a [Fraction] or an [Int].
// It is implemented only by the types of this package.
type Operand interface {
	operand()
}

func (Fraction) operand() {}
func (Int) operand()      {}

var (
	// ErrDomain is the kind of every error caused by a value that has no
	// meaning as a fraction.
	ErrDomain = errors.New("domain error")
	// ErrZeroDenominator is returned when a fraction is constructed with a zero denominator.
	ErrZeroDenominator = fmt.Errorf("%w: zero denominator", ErrDomain)
	// ErrDivisionByZero is returned when dividing by a zero-valued operand.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrDomain)
	// ErrInvalidFloat is returned when converting NaN or infinity.
	ErrInvalidFloat = fmt.Errorf("%w: float is NaN or infinite", ErrDomain)
	// ErrUnsupportedOperand is returned when an operand is neither a Fraction nor an Int.
	ErrUnsupportedOperand = errors.New("unsupported operand")
	// ErrOverflow is returned when a numerator or denominator does not fit in int64.
	ErrOverflow = errors.New("integer overflow")
)

var (
	Zero = Fraction{}        // 0/1
	One  = newFraction(1, 1) // 1/1
	// DefaultThreshold is the tolerance used by [Fraction.EqualApprox].
	DefaultThreshold = newFraction(1, 1000)
)

// newFraction returns num/den without validation.
// den must be positive.
func newFraction(num, den int64) Fraction {
	return Fraction{num: num, den: den - 1}
}

// New returns a fraction equal to num/den.
// If den is negative, the sign is moved to the numerator.
// The result is not simplified.
//
// New returns an error if:
//   - den is 0;
//   - num or den is [math.MinInt64].
func New(num, den int64) (Fraction, error) {
	switch {
	case den == 0:
		return Fraction{}, ErrZeroDenominator
	case num < minInt || den < minInt:
		return Fraction{}, ErrOverflow
	case den < 0:
		num, den = -num, -den
	}
	return newFraction(num, den), nil
}

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// NewFromInt64 returns a fraction equal to n/1.
func NewFromInt64(n int64) (Fraction, error) {
	return New(n, 1)
}

// NewFromFloat64 converts a float to a fraction.
// It is equivalent to [NewFromFloat64Trunc] with unlimited places.
func NewFromFloat64(f float64) (Fraction, error) {
	return NewFromFloat64Trunc(f, -1)
}

// NewFromFloat64Trunc converts a float to a simplified fraction with
// a power-of-ten denominator.
// The float is multiplied by 10 until it becomes an integer or until
// places multiplications have been made, then it is truncated towards zero.
// A negative places means no limit.
//
// The result is exact only for floats whose decimal expansion terminates
// within the given places.
// The conversion operates on the binary representation of f, so values like
// 0.1 may carry representation error into the result.
//
// NewFromFloat64Trunc returns an error if:
//   - f is NaN or infinite;
//   - the numerator or the denominator does not fit in int64.
func NewFromFloat64Trunc(f float64, places int) (Fraction, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fraction{}, ErrInvalidFloat
	}

	var (
		den int64 = 1
		ok  bool
	)

	// Scaling
	for i := 0; f != math.Trunc(f) && (places < 0 || i < places); i++ {
		den, ok = mul64(den, 10)
		if !ok {
			return Fraction{}, fmt.Errorf("converting %v: denominator: %w", f, ErrOverflow)
		}
		f *= 10
	}

	// Truncation
	if f <= -(1<<63) || (1<<63) <= f {
		return Fraction{}, fmt.Errorf("converting %v: numerator: %w", f, ErrOverflow)
	}
	return newFraction(int64(f), den).Simplify(), nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a fraction in the form "numerator/denominator".
// The fraction is not simplified and the denominator is always printed,
// even if it is 1.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	var buf [41]byte
	return string(f.append(buf[:0]))
}

func (f Fraction) append(buf []byte) []byte {
	buf = strconv.AppendInt(buf, f.num, 10)
	buf = append(buf, '/')
	return strconv.AppendInt(buf, f.Den(), 10)
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -1/2
//	%q:    "-1/2"
//
// The following format flags can be used with all verbs: '+', ' ', '-'.
// Width pads the result with spaces.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {
	buf := make([]byte, 0, 48)

	// Quotes
	quoted := verb == 'q' || verb == 'Q'
	if quoted {
		buf = append(buf, '"')
	}

	// Arithmetic sign
	if !f.IsNeg() {
		switch {
		case state.Flag('+'):
			buf = append(buf, '+')
		case state.Flag(' '):
			buf = append(buf, ' ')
		}
	}

	buf = f.append(buf)
	if quoted {
		buf = append(buf, '"')
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(buf) {
		pad := make([]byte, w-len(buf))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			buf = append(buf, pad...)
		} else {
			buf = append(pad, buf...)
		}
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fraction.Fraction="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Num returns the numerator of the fraction.
func (f Fraction) Num() int64 {
	return f.num
}

// Den returns the denominator of the fraction.
// The denominator is always positive.
func (f Fraction) Den() int64 {
	return f.den + 1
}

// Float64 returns the nearest binary floating-point number to f.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.Den())
}

// Int64 returns the integer part of f rounded towards negative infinity.
// For example, the integer part of -7/2 is -4.
// Also see method [Fraction.TruncInt64].
func (f Fraction) Int64() int64 {
	den := f.Den()
	q := f.num / den
	if f.num%den != 0 && f.num < 0 {
		q--
	}
	return q
}

// TruncInt64 returns the integer part of f rounded towards zero.
// For example, the integer part of -7/2 is -3.
// Also see method [Fraction.Int64].
func (f Fraction) TruncInt64() int64 {
	return f.num / f.Den()
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	return sign(f.num)
}

// IsNeg returns true if f < 0.
func (f Fraction) IsNeg() bool {
	return f.num < 0
}

// IsPos returns true if f > 0.
func (f Fraction) IsPos() bool {
	return f.num > 0
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsInt returns true if f has no fractional part.
func (f Fraction) IsInt() bool {
	return f.num%f.Den() == 0
}

// Simplify returns f reduced to lowest terms.
// The numerator and denominator are divided by their greatest common divisor.
func (f Fraction) Simplify() Fraction {
	den := f.Den()
	g := GCD(den, f.num)
	if g < 0 {
		g = -g
	}
	return newFraction(f.num/g, den/g)
}

// SimplifyInPlace reduces f to lowest terms.
// It is the only method that modifies a fraction and requires exclusive
// access to f.
func (f *Fraction) SimplifyInPlace() {
	*f = f.Simplify()
}

// Neg returns f with opposite sign.
// The result is not simplified.
func (f Fraction) Neg() Fraction {
	return Fraction{num: -f.num, den: f.den}
}

// Abs returns absolute value of f.
// The result is not simplified.
func (f Fraction) Abs() Fraction {
	return Fraction{num: abs(f.num), den: f.den}
}

// Inv returns the simplified reciprocal of f.
//
// Inv returns an error if f is 0.
func (f Fraction) Inv() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, fmt.Errorf("inverting %v: %w", f, ErrDivisionByZero)
	}
	g, err := New(f.Den(), f.num)
	if err != nil {
		return Fraction{}, fmt.Errorf("inverting %v: %w", f, err)
	}
	return g.Simplify(), nil
}

// Floor returns the largest multiple of 1 that is less than or equal to f,
// expressed over the denominator of f.
// For example, the floor of -7/2 is -8/2.
// The result is not simplified.
// Also see method [Fraction.Ceil].
//
// Floor returns an error if the numerator of the result overflows int64.
func (f Fraction) Floor() (Fraction, error) {
	num, ok := sub64(f.num, f.mod())
	if !ok {
		return Fraction{}, fmt.Errorf("computing floor of %v: %w", f, ErrOverflow)
	}
	return Fraction{num: num, den: f.den}, nil
}

// Ceil returns the smallest multiple of 1 that is greater than or equal to f,
// expressed over the denominator of f.
// For example, the ceiling of -7/2 is -6/2.
// The result is not simplified.
// Also see method [Fraction.Floor].
//
// Ceil returns an error if the numerator of the result overflows int64.
func (f Fraction) Ceil() (Fraction, error) {
	m := f.mod()
	if m == 0 {
		return f, nil
	}
	num, ok := add64(f.num, f.Den()-m)
	if !ok {
		return Fraction{}, fmt.Errorf("computing ceiling of %v: %w", f, ErrOverflow)
	}
	return Fraction{num: num, den: f.den}, nil
}

// mod returns the numerator modulo the denominator, in the range [0, den).
func (f Fraction) mod() int64 {
	den := f.Den()
	m := f.num % den
	if m < 0 {
		m += den
	}
	return m
}

// Add returns the simplified sum of f and x.
// The operand x must be a [Fraction] or an [Int].
//
// Add returns an error if:
//   - x is not supported;
//   - an intermediate numerator or denominator overflows int64.
func (f Fraction) Add(x Operand) (Fraction, error) {
	var (
		g   Fraction
		err error
	)
	switch x := x.(type) {
	case Fraction:
		g, err = f.addFrac(x)
	case Int:
		g, err = f.addInt(int64(x))
	default:
		err = ErrUnsupportedOperand
	}
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v + %v]: %w", f, x, err)
	}
	return g, nil
}

func (f Fraction) addFrac(e Fraction) (Fraction, error) {
	var (
		fden = f.Den()
		eden = e.Den()
		num  int64
		den  int64
		ok   bool
	)

	// Special case: common denominator
	if fden == eden {
		num, ok = add64(f.num, e.num)
		if !ok {
			return Fraction{}, ErrOverflow
		}
		return newFraction(num, fden).Simplify(), nil
	}

	// General case
	den, ok = lcm64(fden, eden)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	fnum, ok := mul64(f.num, den/fden)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	enum, ok := mul64(e.num, den/eden)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	num, ok = add64(fnum, enum)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	return newFraction(num, den).Simplify(), nil
}

func (f Fraction) addInt(k int64) (Fraction, error) {
	den := f.Den()
	t, ok := mul64(k, den)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	num, ok := add64(f.num, t)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	return newFraction(num, den).Simplify(), nil
}

// Sub returns the simplified difference of f and x.
// The operand x must be a [Fraction] or an [Int].
//
// Sub returns an error if:
//   - x is not supported;
//   - an intermediate numerator or denominator overflows int64.
func (f Fraction) Sub(x Operand) (Fraction, error) {
	var (
		g   Fraction
		err error
	)
	switch x := x.(type) {
	case Fraction:
		g, err = f.addFrac(x.Neg())
	case Int:
		k, ok := neg64(int64(x))
		if !ok {
			err = ErrOverflow
			break
		}
		g, err = f.addInt(k)
	default:
		err = ErrUnsupportedOperand
	}
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v - %v]: %w", f, x, err)
	}
	return g, nil
}

// Mul returns the simplified product of f and x.
// The operand x must be a [Fraction] or an [Int].
//
// Mul returns an error if:
//   - x is not supported;
//   - the numerator or denominator of the product overflows int64.
func (f Fraction) Mul(x Operand) (Fraction, error) {
	var (
		g   Fraction
		err error
	)
	switch x := x.(type) {
	case Fraction:
		g, err = f.mulFrac(x)
	case Int:
		g, err = f.mulInt(int64(x))
	default:
		err = ErrUnsupportedOperand
	}
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v * %v]: %w", f, x, err)
	}
	return g, nil
}

func (f Fraction) mulFrac(e Fraction) (Fraction, error) {
	var (
		fnum, fden = f.num, f.Den()
		enum, eden = e.num, e.Den()
	)

	// Cross cancellation
	if g := abs(GCD(fnum, eden)); g > 1 {
		fnum, eden = fnum/g, eden/g
	}
	if g := abs(GCD(enum, fden)); g > 1 {
		enum, fden = enum/g, fden/g
	}

	num, ok := mul64(fnum, enum)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	den, ok := mul64(fden, eden)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	return newFraction(num, den).Simplify(), nil
}

func (f Fraction) mulInt(k int64) (Fraction, error) {
	num, ok := mul64(f.num, k)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	return newFraction(num, f.Den()).Simplify(), nil
}

// Quo returns the simplified quotient of f and x.
// The operand x must be a [Fraction] or an [Int].
//
// Quo returns an error if:
//   - x is not supported;
//   - x is 0;
//   - the numerator or denominator of the quotient overflows int64.
func (f Fraction) Quo(x Operand) (Fraction, error) {
	var (
		g   Fraction
		err error
	)
	switch x := x.(type) {
	case Fraction:
		g, err = f.quoFrac(x)
	case Int:
		g, err = f.quoInt(int64(x))
	default:
		err = ErrUnsupportedOperand
	}
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, x, err)
	}
	return g, nil
}

func (f Fraction) quoFrac(e Fraction) (Fraction, error) {
	if e.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	r, err := New(e.Den(), e.num)
	if err != nil {
		return Fraction{}, err
	}
	return f.mulFrac(r)
}

func (f Fraction) quoInt(k int64) (Fraction, error) {
	if k == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	den, ok := mul64(f.Den(), k)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	g, err := New(f.num, den)
	if err != nil {
		return Fraction{}, err
	}
	return g.Simplify(), nil
}

// QuoTrunc returns the quotient of f and x truncated towards zero.
// For example, -7/2 quotient 1 is -3.
//
// QuoTrunc returns an error in the same cases as [Fraction.Quo].
func (f Fraction) QuoTrunc(x Operand) (int64, error) {
	q, err := f.Quo(x)
	if err != nil {
		return 0, err
	}
	return q.TruncInt64(), nil
}

// Pow returns the simplified f raised to the integer power exp.
// A negative exp raises the reciprocal of f, so (-2/3)^-1 is -3/2.
// Zero raised to the power 0 is 1/1.
//
// Pow returns an error if:
//   - f is 0 and exp is negative;
//   - the numerator or denominator of the power overflows int64.
func (f Fraction) Pow(exp int) (Fraction, error) {
	g, err := f.pow(exp)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v^%v]: %w", f, exp, err)
	}
	return g, nil
}

func (f Fraction) pow(exp int) (Fraction, error) {
	f = f.Simplify()
	num, den := f.num, f.Den()

	// Reciprocal
	if exp < 0 {
		if num == 0 {
			return Fraction{}, ErrDivisionByZero
		}
		num, den = den, num
		exp = -exp
	}

	num, ok := pow64(num, exp)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	den, ok = pow64(den, exp)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	g, err := New(num, den)
	if err != nil {
		return Fraction{}, err
	}
	return g.Simplify(), nil
}

// resolve converts a supported operand to a fraction.
// An Int(math.MinInt64) produces a numerator outside of the fraction range,
// which is only safe for comparison.
func resolve(x Operand) (Fraction, bool) {
	switch x := x.(type) {
	case Fraction:
		return x, true
	case Int:
		return Fraction{num: int64(x)}, true
	}
	return Fraction{}, false
}

// Equal returns true if f and x have the same value.
// Both sides are simplified before their numerators and denominators are
// compared, so 1/2 is equal to 2/4.
// An [Int] k is equal to f if f simplifies to k/1.
// Equal returns false if x is not supported.
func (f Fraction) Equal(x Operand) bool {
	switch x := x.(type) {
	case Fraction:
		return f.Simplify() == x.Simplify()
	case Int:
		f = f.Simplify()
		return f.Den() == 1 && f.num == int64(x)
	}
	return false
}

// Cmp compares f and x numerically and returns:
//
//	-1 if f < x
//	 0 if f == x
//	+1 if f > x
//
// Cmp panics if x is not supported.
func (f Fraction) Cmp(x Operand) int {
	e, ok := resolve(x)
	if !ok {
		panic(fmt.Sprintf("%v.Cmp(%v) failed: %v", f, x, ErrUnsupportedOperand))
	}
	return cmpMul(f.num, e.Den(), e.num, f.Den())
}

// Greater returns true if f > x.
func (f Fraction) Greater(x Operand) bool {
	return f.Cmp(x) > 0
}

// GreaterEqual returns true if f >= x.
func (f Fraction) GreaterEqual(x Operand) bool {
	return f.Cmp(x) >= 0
}

// Less returns true if f < x.
// It is the negation of [Fraction.GreaterEqual].
func (f Fraction) Less(x Operand) bool {
	return !f.GreaterEqual(x)
}

// LessEqual returns true if f <= x.
// It is the negation of [Fraction.Greater].
func (f Fraction) LessEqual(x Operand) bool {
	return !f.Greater(x)
}

// Max returns maximum of f and e.
// If f and e are equal, Max returns f.
func (f Fraction) Max(e Fraction) Fraction {
	if f.Cmp(e) >= 0 {
		return f
	}
	return e
}

// Min returns minimum of f and e.
// If f and e are equal, Min returns f.
func (f Fraction) Min(e Fraction) Fraction {
	if f.Cmp(e) <= 0 {
		return f
	}
	return e
}

// EqualApprox is like [Fraction.EqualApproxWithin] with [DefaultThreshold].
func (f Fraction) EqualApprox(x Operand) (bool, error) {
	return f.EqualApproxWithin(x, DefaultThreshold)
}

// EqualApproxWithin returns true if x lies strictly between f - |threshold|
// and f + |threshold|.
// Both ends of the interval are excluded.
//
// EqualApproxWithin returns an error if:
//   - x is not supported;
//   - the interval bounds overflow int64.
func (f Fraction) EqualApproxWithin(x Operand, threshold Fraction) (bool, error) {
	e, ok := resolve(x)
	if !ok {
		return false, fmt.Errorf("comparing %v and %v: %w", f, x, ErrUnsupportedOperand)
	}
	t := threshold.Abs()
	hi, err := f.Add(t)
	if err != nil {
		return false, err
	}
	lo, err := f.Sub(t)
	if err != nil {
		return false, err
	}
	return hi.Greater(e) && e.Greater(lo), nil
}
