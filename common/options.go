package common

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"CycleSkip/mp"
)

var decoder = regexp.MustCompile(`^([0-9_]+)([MGTPE]*)$`)

// DecodeLimit parses step counts such as `2025`, `202_420_242_024`, `10G` or
// `1MT`. Each suffix multiplies by a power of ten (M=10^6, G=10^9, T=10^12,
// P=10^15, E=10^18) and suffixes may be stacked. The result has no upper
// bound.
func DecodeLimit(limitString string) (*big.Int, error) {
	pieces := decoder.FindStringSubmatch(strings.TrimSpace(limitString))
	if pieces == nil {
		return nil, fmt.Errorf("unrecognized limit %q", limitString)
	}
	digits := strings.ReplaceAll(pieces[1], "_", "")
	if digits == "" {
		return nil, fmt.Errorf("unrecognized limit %q", limitString)
	}
	limit, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("unrecognized limit %q", limitString)
	}

	ten := big.NewInt(10)
	for _, s := range pieces[2] {
		var exponent int64
		switch s {
		case 'M':
			exponent = 6
		case 'G':
			exponent = 9
		case 'T':
			exponent = 12
		case 'P':
			exponent = 15
		case 'E':
			exponent = 18
		default:
			return nil, fmt.Errorf("unrecognized limit format '%c' from %q, can't happen", s, pieces[2])
		}
		limit.Mul(limit, new(big.Int).Exp(ten, big.NewInt(exponent), nil))
	}
	return limit, nil
}

// DecodeBudget is DecodeLimit for values that must fit in an int, such as
// iteration budgets.
func DecodeBudget(budgetString string) (int, error) {
	limit, err := DecodeLimit(budgetString)
	if err != nil {
		return 0, err
	}
	n, err := mp.Int(limit)
	if err != nil {
		return 0, fmt.Errorf("budget %s: %w", limit, err)
	}
	return n, nil
}

// FormatLimit renders a step count the way it would be typed, e.g. `10G`.
func FormatLimit(limit *big.Int) string {
	suffixes := []struct {
		suffix string
		zeros  int
	}{{"E", 18}, {"P", 15}, {"T", 12}, {"G", 9}, {"M", 6}}

	txt := limit.String()
	if limit.Sign() == 0 {
		return txt
	}
	for _, s := range suffixes {
		if len(txt) > s.zeros && strings.HasSuffix(txt, strings.Repeat("0", s.zeros)) {
			return txt[:len(txt)-s.zeros] + s.suffix
		}
	}
	return txt
}
