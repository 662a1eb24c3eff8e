package calculation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseOperand parses a raw query value as a finite decimal number.
func ParseOperand(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty operand", ErrInvalidInput)
	}

	// ParseFloat also takes Go literal forms such as 1_000 and 0x1p4.
	if strings.ContainsAny(s, "_xXpP") {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidInput, raw)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidInput, raw)
	}

	return v, nil
}
