package fraction

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// minInt is the smallest int64 a fraction may hold.
// math.MinInt64 is excluded so that negation and absolute value never overflow.
const minInt = -math.MaxInt64

// GCD returns the greatest common divisor of x and y.
// It uses the Euclidean algorithm on the absolute values of x and y.
// If |x| == |y|, GCD returns x unchanged, including its sign.
// GCD(x, 0) is |x| and GCD(0, 0) is 0.
func GCD[T constraints.Signed](x, y T) T {
	a, b := abs(x), abs(y)
	if a == b {
		return x
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of x and y.
// The result is computed as |x / GCD(x, y) * y| to keep intermediate
// values small. LCM(0, 0) is 0.
func LCM[T constraints.Signed](x, y T) T {
	g := GCD(x, y)
	if g == 0 {
		return 0
	}
	return abs(x / g * y)
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// add64 calculates x + y and checks overflow.
func add64(x, y int64) (z int64, ok bool) {
	z = x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	if z < minInt {
		return 0, false
	}
	return z, true
}

// sub64 calculates x - y and checks overflow.
func sub64(x, y int64) (z int64, ok bool) {
	y, ok = neg64(y)
	if !ok {
		return 0, false
	}
	return add64(x, y)
}

// neg64 calculates -x and checks overflow.
func neg64(x int64) (z int64, ok bool) {
	if x < minInt {
		return 0, false
	}
	return -x, true
}

// mul64 calculates x * y and checks overflow.
func mul64(x, y int64) (z int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if x < minInt || y < minInt {
		return 0, false
	}
	hi, lo := bits.Mul64(uabs(x), uabs(y))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	z = int64(lo)
	if (x < 0) != (y < 0) {
		z = -z
	}
	return z, true
}

// pow64 calculates x^n using repeated squaring and checks overflow.
// n must be non-negative.
func pow64(x int64, n int) (z int64, ok bool) {
	if n < 0 {
		return 0, false
	}
	z = 1
	for n > 0 {
		if n&1 == 1 {
			z, ok = mul64(z, x)
			if !ok {
				return 0, false
			}
		}
		n >>= 1
		if n > 0 {
			x, ok = mul64(x, x)
			if !ok {
				return 0, false
			}
		}
	}
	return z, true
}

// lcm64 calculates LCM(x, y) and checks overflow.
// Both x and y must be positive.
func lcm64(x, y int64) (z int64, ok bool) {
	g := GCD(x, y)
	return mul64(x/g, y)
}

// uabs returns |x| as an unsigned integer.
// It is correct for math.MinInt64.
func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// cmpMul compares a * b with c * d exactly and returns:
//
//	-1 if a * b < c * d
//	 0 if a * b == c * d
//	+1 if a * b > c * d
func cmpMul(a, b, c, d int64) int {
	lsign := sign(a) * sign(b)
	rsign := sign(c) * sign(d)

	// Special case: different signs
	switch {
	case lsign < rsign:
		return -1
	case rsign < lsign:
		return 1
	case lsign == 0:
		return 0
	}

	// General case: same non-zero sign, compare magnitudes
	lhi, llo := bits.Mul64(uabs(a), uabs(b))
	rhi, rlo := bits.Mul64(uabs(c), uabs(d))
	r := 0
	switch {
	case lhi < rhi, lhi == rhi && llo < rlo:
		r = -1
	case lhi > rhi, lhi == rhi && llo > rlo:
		r = 1
	}
	return r * lsign
}

func sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
