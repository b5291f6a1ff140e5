package quests

import (
	"math/big"
	"strings"
	"testing"

	"CycleSkip/cycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wheelsSample = `1,2,3

^_^ -.- ^,-
>.- ^_^ >.<
-_- -.- >.<
    -.^ ^_^
    >.>
`
	wheelsLever = `1,2,3

^_^ -.- ^,-
>.- ^_^ >.<
-_- -.- ^.^
    -.^ >.<
    >.>
`
)

func mustWheels(t *testing.T, txt string) Wheels {
	t.Helper()
	w, err := ParseWheels(strings.NewReader(txt))
	require.NoError(t, err)
	return w
}

func TestParseWheels(t *testing.T) {
	w := mustWheels(t, wheelsSample)
	assert.Equal(t, []int{1, 2, 3}, w.Speeds)
	assert.Equal(t, [][]string{
		{"^_^", ">.-", "-_-"},
		{"-.-", "^_^", "-.-", "-.^", ">.>"},
		{"^,-", ">.<", ">.<", "^_^"},
	}, w.Faces)

	for _, bad := range []string{
		"1,2\n",
		"1,x\n\n^_^ ^_^\n",
		"1,2\n^_^ ^_^\n^_^ ^_^\n",
		"1\n\n^_^ ^_^\n",
		"1,2\n\n^_^\n",
		"1,-2\n\n^_^ ^_^\n",
	} {
		_, err := ParseWheels(strings.NewReader(bad))
		var inputError *InputError
		assert.ErrorAs(t, err, &inputError, bad)
	}
}

func TestFacesAfter(t *testing.T) {
	faces, err := mustWheels(t, wheelsSample).FacesAfter(100)
	require.NoError(t, err)
	assert.Equal(t, ">.- -.- ^,-", faces)
}

func TestCoinsAfter(t *testing.T) {
	w := mustWheels(t, wheelsSample)
	for pulls, expected := range map[int64]string{
		10:           "15",
		1000:         "1383",
		202420242024: "280014668134",
	} {
		for _, method := range []cycle.Method{cycle.MethodExact, cycle.MethodFloyd} {
			coins, err := w.CoinsAfter(big.NewInt(pulls), cycle.WithMethod(method))
			require.NoError(t, err)
			assert.Equal(t, expected, coins.String(), "%d pulls", pulls)
		}
	}

	// direct pulls agree with the accelerated total
	positions := make([]int, len(w.Faces))
	total := int64(0)
	for pulls := int64(1); pulls <= 300; pulls++ {
		var coins int64
		positions, coins = w.Pull(positions)
		total += coins
		got, err := w.CoinsAfter(big.NewInt(pulls))
		require.NoError(t, err)
		assert.Equal(t, total, got.IntPart())
	}
}

func TestExtremes(t *testing.T) {
	w := mustWheels(t, wheelsLever)
	cases := []struct {
		pulls        int
		most, fewest int64
	}{
		{1, 4, 1},
		{2, 6, 1},
		{3, 9, 2},
		{10, 26, 5},
		{100, 246, 50},
		{256, 627, 128},
	}
	for _, c := range cases {
		most, fewest := w.Extremes(c.pulls)
		assert.Equal(t, c.most, most, "%d pulls", c.pulls)
		assert.Equal(t, c.fewest, fewest, "%d pulls", c.pulls)
	}

	most, fewest := w.Extremes(0)
	assert.Zero(t, most)
	assert.Zero(t, fewest)
}
