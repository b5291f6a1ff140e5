package mp

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivMod(t *testing.T) {
	a, ok := new(big.Int).SetString("202420242024", 10)
	require.True(t, ok)
	q, r, err := DivMod(a, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, "28917177432", q.String())
	assert.Equal(t, int64(0), r.Int64())

	q, r, err = DivMod(big.NewInt(12), big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(2), q.Int64())
	assert.Equal(t, int64(2), r.Int64())

	// arguments are left alone
	b := big.NewInt(5)
	_, _, err = DivMod(a, b)
	require.NoError(t, err)
	assert.Equal(t, "202420242024", a.String())
	assert.Equal(t, int64(5), b.Int64())

	_, _, err = DivMod(a, big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestDivMod_Random(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rand.Int64N(math.MaxInt64)
		y := rand.Int64N(1_000_000) + 1
		q, r, err := DivMod(big.NewInt(x), big.NewInt(y))
		require.NoError(t, err)
		assert.Equal(t, x/y, q.Int64())
		assert.Equal(t, x%y, r.Int64())
	}
}

func TestInt(t *testing.T) {
	n, err := Int(big.NewInt(1234))
	require.NoError(t, err)
	assert.Equal(t, 1234, n)

	_, err = Int(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegative)

	huge := new(big.Int).Lsh(big.NewInt(1), 80)
	_, err = Int(huge)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestLess(t *testing.T) {
	assert.True(t, Less(big.NewInt(3), 4))
	assert.False(t, Less(big.NewInt(4), 4))
	assert.False(t, Less(new(big.Int).Lsh(big.NewInt(1), 70), 4))
}

func TestPowMod(t *testing.T) {
	// 2^1..4 mod 5 = 2, 4, 3, 1
	for n, expected := range []int64{1, 2, 4, 3, 1} {
		z, err := PowMod(big.NewInt(2), big.NewInt(int64(n)), big.NewInt(5))
		require.NoError(t, err)
		assert.Equal(t, expected, z.Int64(), "2^%d mod 5", n)
	}

	m := big.NewInt(1_000_000_007)
	e, _ := new(big.Int).SetString("1000000000000000", 10)
	z, err := PowMod(big.NewInt(3), e, m)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Cmp(new(big.Int).Exp(big.NewInt(3), e, m)))

	z, err = PowMod(big.NewInt(17), big.NewInt(3), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), z.Int64())

	_, err = PowMod(big.NewInt(2), big.NewInt(-1), big.NewInt(5))
	assert.ErrorIs(t, err, ErrNegative)
	_, err = PowMod(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestMulMod(t *testing.T) {
	assert.Equal(t, uint64(2), MulMod(3, 4, 10))
	for i := 0; i < 1000; i++ {
		a := rand.Uint64()
		b := rand.Uint64()
		m := rand.Uint64N(math.MaxUint64-1) + 1
		expected := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		expected.Mod(expected, new(big.Int).SetUint64(m))
		assert.Equal(t, expected.Uint64(), MulMod(a, b, m))
	}
}
