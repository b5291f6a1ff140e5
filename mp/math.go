package mp

import (
	"errors"
	"math"
	"math/big"
	"math/bits"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)

	// ErrDivideByZero is returned when a modulus or divisor is zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrNegative is returned when an operand must be non-negative but isn't.
	ErrNegative = errors.New("negative operand")
	// ErrTooLarge is returned when a value cannot be narrowed to an int.
	ErrTooLarge = errors.New("value does not fit in an int")
)

// DivMod returns `q, r` such that `a = q*b + r` and `0 <= r < b`. Neither
// argument is modified. The divisor must be positive.
func DivMod(a *big.Int, b *big.Int) (*big.Int, *big.Int, error) {
	if b.Sign() <= 0 {
		return nil, nil, ErrDivideByZero
	}
	q := new(big.Int)
	r := new(big.Int)
	// Euclidean division so that r is never negative
	q.DivMod(a, b, r)
	return q, r, nil
}

// Int narrows z to an int, failing if it is negative or too large.
func Int(z *big.Int) (int, error) {
	if z.Sign() < 0 {
		return 0, ErrNegative
	}
	if !z.IsInt64() || z.Int64() > math.MaxInt {
		return 0, ErrTooLarge
	}
	return int(z.Int64()), nil
}

// Less reports whether a < b where b is a small value.
func Less(a *big.Int, b int) bool {
	return a.Cmp(big.NewInt(int64(b))) < 0
}

// PowMod returns `m^n mod mask`. None of the arguments are modified.
func PowMod(m *big.Int, n *big.Int, mask *big.Int) (*big.Int, error) {
	if mask.Sign() <= 0 {
		return nil, ErrDivideByZero
	}
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	z := big.NewInt(1)
	if mask.Cmp(one) == 0 {
		return z.SetInt64(0), nil
	}
	base := new(big.Int).Mod(m, mask)
	e := new(big.Int).Set(n)
	bit := new(big.Int)
	for e.Cmp(zero) > 0 {
		if bit.And(e, one).Sign() != 0 {
			z.Mul(z, base)
			z.Mod(z, mask)
		}
		e.Rsh(e, 1)
		base.Mul(base, base)
		base.Mod(base, mask)
	}
	return z, nil
}

// MulMod returns `a*b mod m` without overflow. The modulus must not be zero.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a%m, b%m)
	return bits.Rem64(hi, lo, m)
}
