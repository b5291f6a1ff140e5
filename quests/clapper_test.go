package quests

import (
	"strings"
	"testing"

	"CycleSkip/cycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	danceSquare = `2 3 4 5
3 4 5 2
4 5 2 3
5 2 3 4
`
	danceWide = `2 3 4 5
6 7 8 9
`
)

func mustDance(t *testing.T, txt string) Dance {
	t.Helper()
	d, err := ParseDance(strings.NewReader(txt))
	require.NoError(t, err)
	return d
}

func TestParseDance(t *testing.T) {
	d := mustDance(t, danceWide)
	assert.Equal(t, [][]int{{2, 6}, {3, 7}, {4, 8}, {5, 9}}, d.Columns)
	assert.Equal(t, int64(2345), d.Shout())

	for _, bad := range []string{"", "1 2 3\n", "1 2\n3\n", "1 x\n2 3\n", "1 0\n2 3\n"} {
		_, err := ParseDance(strings.NewReader(bad))
		var inputError *InputError
		assert.ErrorAs(t, err, &inputError, bad)
	}
}

func TestShoutsMustFitInt64(t *testing.T) {
	// four columns of five digit dancers would shout 20 digits
	loud := "10000 20000 30000 40000\n50000 60000 70000 80000\n"
	_, err := ParseDance(strings.NewReader(loud))
	var inputError *InputError
	require.ErrorAs(t, err, &inputError)
	assert.Contains(t, err.Error(), "20 digits")

	// a wide dancer in a narrow dance still fits
	_, err = ParseDance(strings.NewReader("100000000 2\n3 4\n"))
	require.NoError(t, err)

	d := Dance{Columns: [][]int{{10000, 50000}, {20000, 60000}, {30000, 70000}, {40000, 80000}}}
	_, err = ShoutAfter(d, 10)
	assert.Error(t, err)
	_, err = HighestShout(d)
	assert.Error(t, err)
	_, err = RepeatedShout(d, 2)
	assert.Error(t, err)

	_, err = ShoutAfter(Dance{Columns: [][]int{{1}, {}}}, 1)
	assert.Error(t, err)
}

func TestClapIsPure(t *testing.T) {
	d := mustDance(t, danceSquare)
	before := columnsKey(d)
	next, shout := Clap(d)
	assert.Equal(t, before, columnsKey(d))
	assert.Equal(t, 0, d.Round)
	assert.Equal(t, 1, next.Round)
	assert.Equal(t, int64(3345), shout)
}

func TestShoutAfter(t *testing.T) {
	shout, err := ShoutAfter(mustDance(t, danceSquare), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2323), shout)

	// far past the first loop the answer is the shout of an equivalent round
	d := mustDance(t, danceSquare)
	tr, err := cycle.Detect(d, Clap, DanceKey, cycle.Options{}, cycle.NoHorizon)
	require.NoError(t, err)
	far := uint64(tr.Loop.Leadin + 3 + 1000*tr.Loop.Length)
	shout, err = ShoutAfter(d, far)
	require.NoError(t, err)
	assert.Equal(t, tr.States[tr.Loop.Leadin+3].Shout(), shout)
}

func bruteRepeatedShout(d Dance, times int) int64 {
	seen := map[int64]int{}
	for round := 1; ; round++ {
		var shout int64
		d, shout = Clap(d)
		seen[shout]++
		if seen[shout] == times {
			return shout * int64(round)
		}
	}
}

func TestRepeatedShout(t *testing.T) {
	got, err := RepeatedShout(mustDance(t, danceWide), 2024)
	require.NoError(t, err)
	assert.Equal(t, "50877075", got.String())

	got, err = RepeatedShout(mustDance(t, danceSquare), 2024)
	require.NoError(t, err)
	assert.Equal(t, "22579964", got.String())

	got, err = RepeatedShout(mustDance(t, danceSquare), 5)
	require.NoError(t, err)
	assert.Equal(t, "113424", got.String())

	for _, txt := range []string{danceSquare, danceWide} {
		for times := 1; times <= 40; times++ {
			got, err := RepeatedShout(mustDance(t, txt), times)
			require.NoError(t, err)
			assert.Equal(t, bruteRepeatedShout(mustDance(t, txt), times), got.Int64(), "times=%d", times)
		}
	}

	_, err = RepeatedShout(mustDance(t, danceWide), 0)
	assert.Error(t, err)
}

func TestHighestShout(t *testing.T) {
	highest, err := HighestShout(mustDance(t, danceWide))
	require.NoError(t, err)
	assert.Equal(t, int64(6584), highest)

	highest, err = HighestShout(mustDance(t, danceWide), cycle.WithMethod(cycle.MethodFloyd))
	require.NoError(t, err)
	assert.Equal(t, int64(6584), highest)

	// nothing louder turns up by dancing on
	d := mustDance(t, danceSquare)
	highest, err = HighestShout(d)
	require.NoError(t, err)
	loudest := int64(0)
	for i := 0; i < 5000; i++ {
		var shout int64
		d, shout = Clap(d)
		loudest = max(loudest, shout)
	}
	assert.Equal(t, loudest, highest)

	_, err = HighestShout(mustDance(t, danceSquare), cycle.WithMaxIterations(3))
	assert.ErrorIs(t, err, cycle.ErrNonPeriodic)
}

func TestShoutKeyFiresNoLater(t *testing.T) {
	for _, txt := range []string{danceSquare, danceWide} {
		d := mustDance(t, txt)
		exact, err := cycle.Detect(d, Clap, DanceKey, cycle.Options{}, cycle.NoHorizon)
		require.NoError(t, err)
		signal, err := cycle.Detect(d, Clap, ShoutKey, cycle.Options{}, cycle.NoHorizon)
		require.NoError(t, err)
		assert.LessOrEqual(t, signal.Steps(), exact.Steps())
	}
}
