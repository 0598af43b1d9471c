/*
Package fraction implements immutable exact rational numbers.
A fraction is a pair of int64 integers, so every operation is exact
as long as its numerator and denominator fit in 64 bits.

# Representation

[Fraction] is a struct with two fields:

  - Numerator: a signed integer carrying the sign of the fraction.
  - Denominator: a positive integer.

The numerical value of a fraction is Numerator / Denominator.

A fraction is not kept in lowest terms.
[New] keeps the numerator and denominator as given, except that a negative
denominator moves its sign to the numerator.
For example, New(2, -4) represents -2/4.
In this approach, the same numeric value can have multiple representations.
[Fraction.Simplify] returns the representation in lowest terms, and
[Fraction.SimplifyInPlace] reduces a fraction in place.

# Constraints

Both the numerator and the denominator are in the range
[-9,223,372,036,854,775,807, 9,223,372,036,854,775,807].
[math.MinInt64] is excluded, so that [Fraction.Neg] and [Fraction.Abs]
can never overflow.
Big-integer fallback is not provided: a result that does not fit is an error.

# Operands

Binary operations accept an [Operand], which is either a [Fraction] or an [Int].
An [Int] k takes part in arithmetic as k/1, but it is applied directly to the
numerator or the denominator where possible:

  - f + k is (num + k * den) / den;
  - f * k is (num * k) / den;
  - f / k is num / (den * k).

# Conversions

The package provides methods for converting fractions:

  - to string:
    [Fraction.String], [Fraction.Format].
  - from/to float64:
    [NewFromFloat64], [NewFromFloat64Trunc], [Fraction.Float64].
  - from/to int64:
    [New], [NewFromInt64], [Fraction.Int64], [Fraction.TruncInt64].

The string representation is always "numerator/denominator", for example 5/1.

Conversion from float64 multiplies the float by 10 until it becomes an integer.
It is exact only for floats with a short terminating decimal expansion and
is subject to binary floating-point representation error.

# Operations

[Fraction.Add], [Fraction.Sub], [Fraction.Mul], [Fraction.Quo], [Fraction.Inv]
and [Fraction.Pow] return simplified results.
Addition of fractions with different denominators rescales both numerators
to the least common multiple of the denominators.
Multiplication cancels common factors across operands before multiplying,
which keeps intermediate values small.

Comparison with [Fraction.Cmp] uses cross-multiplication with 128-bit
intermediate products, so it never overflows.
[Fraction.Equal] compares simplified numerators and denominators.

# Rounding

The package provides several methods for rounding to an integer:

  - rounding towards negative infinity:
    [Fraction.Floor], [Fraction.Int64].
  - rounding towards positive infinity:
    [Fraction.Ceil].
  - rounding towards zero:
    [Fraction.TruncInt64], [Fraction.QuoTrunc].

[Fraction.Floor] and [Fraction.Ceil] keep the denominator of the fraction,
so the floor of 7/2 is 6/2.

# Errors

All methods are panic-free and pure, except for the Must* methods,
ordering with an unsupported operand, and [Fraction.SimplifyInPlace],
which modifies its receiver.
Errors are returned in the following cases:

  - Domain error ([ErrDomain]).
    [New] returns [ErrZeroDenominator] for a zero denominator.
    [Fraction.Quo], [Fraction.QuoTrunc], [Fraction.Inv] and [Fraction.Pow]
    return [ErrDivisionByZero] when dividing by 0.
    Float conversion returns [ErrInvalidFloat] for NaN and infinities.

  - Unsupported operand ([ErrUnsupportedOperand]).
    Returned by arithmetic when the operand is neither a [Fraction] nor an [Int],
    which is only possible with a nil or pointer [Operand].
    [Fraction.Equal] returns false for such operands instead.

  - Overflow ([ErrOverflow]).
    Unlike standard integers, there is no "wrap around" for fractions.
    For out-of-range values, arithmetic operations return an error.
*/
package fraction
