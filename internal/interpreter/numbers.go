package interpreter

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var numberRegex = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:e(\d+))?(mo|s|m|h|d|w|y)?$`)

// Seconds per time unit suffix.
var timeUnits = map[string]int64{
	"s":  1,
	"m":  60,
	"h":  3600,
	"d":  86400,
	"w":  604800,
	"mo": 2592000,
	"y":  31536000,
}

// ParseNumber converts number literal text into an exact integer. Decimal
// mantissas are scaled by the exponent (`1.5e18`) and the result may carry a
// time unit suffix (`7d`). A value that would need a fractional part fails.
func ParseNumber(text string) (*big.Int, error) {
	m := numberRegex.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil, fmt.Errorf("invalid number %q", text)
	}
	intPart, fracPart, expPart, unit := m[1], m[2], m[3], m[4]

	exp := 0
	if expPart != "" {
		e, err := strconv.Atoi(expPart)
		if err != nil {
			return nil, fmt.Errorf("invalid exponent in %q", text)
		}
		exp = e
	}

	digits := intPart + fracPart
	shift := exp - len(fracPart)
	if shift < 0 {
		cut := len(digits) + shift
		if strings.Trim(digits[cut:], "0") != "" {
			return nil, fmt.Errorf("number %s can't be represented as an integer", text)
		}
		digits = digits[:cut]
		shift = 0
	}
	if digits == "" {
		digits = "0"
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid number %q", text)
	}
	if shift > 0 {
		n.Mul(n, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil))
	}
	if unit != "" {
		n.Mul(n, big.NewInt(timeUnits[unit]))
	}
	return n, nil
}
