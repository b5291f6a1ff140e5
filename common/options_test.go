package common

import (
	"strings"
	"testing"

	"CycleSkip/cycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLimit(t *testing.T) {
	cases := map[string]string{
		"2025":            "2025",
		"202_420_242_024": "202420242024",
		"10M":             "10000000",
		"10G":             "10000000000",
		"3T":              "3000000000000",
		"1P":              "1000000000000000",
		"2E":              "2000000000000000000",
		"1MT":             "1000000000000000000",
		"5EE":             "5000000000000000000000000000000000000",
		" 7 ":             "7",
	}
	for in, expected := range cases {
		limit, err := DecodeLimit(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, limit.String(), in)
	}

	for _, bad := range []string{"", "_", "10K", "-5", "1.5G", "G"} {
		_, err := DecodeLimit(bad)
		assert.Error(t, err, bad)
	}
}

func TestDecodeBudget(t *testing.T) {
	n, err := DecodeBudget("10M")
	require.NoError(t, err)
	assert.Equal(t, 10_000_000, n)

	_, err = DecodeBudget("1EEE")
	assert.Error(t, err)
}

func TestFormatLimit(t *testing.T) {
	for _, s := range []string{"10G", "202420242024", "5E", "1M", "0", "1000"} {
		limit, err := DecodeLimit(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatLimit(limit))
	}
	limit, err := DecodeLimit("1_000T")
	require.NoError(t, err)
	assert.Equal(t, "1P", FormatLimit(limit))
}

func TestReadConfig(t *testing.T) {
	config, err := ReadConfig(strings.NewReader(`
max_iterations: 50M
method: floyd
steps:
  wheel: 202420242024
  light: 1G
`))
	require.NoError(t, err)
	assert.Equal(t, "50M", config.MaxIterations)
	assert.Equal(t, "floyd", config.Method)
	assert.Equal(t, "1G", config.Steps["light"])
	assert.Equal(t, "202420242024", config.Steps["wheel"])

	options, err := config.Options()
	require.NoError(t, err)
	var o cycle.Options
	for _, option := range options {
		option(&o)
	}
	assert.Equal(t, 50_000_000, o.MaxIterations)
	assert.Equal(t, cycle.MethodFloyd, o.Method)

	empty, err := ReadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Method)

	_, err = ReadConfig(strings.NewReader("method: [unclosed"))
	assert.Error(t, err)

	_, err = Config{Method: "brent"}.Options()
	assert.Error(t, err)
	_, err = Config{MaxIterations: "lots"}.Options()
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, config)

	_, err = LoadConfig("/does/not/exist.yaml")
	assert.Error(t, err)
}
