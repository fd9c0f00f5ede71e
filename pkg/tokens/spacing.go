package tokens

import (
	"fmt"
	"strconv"
	"strings"
)

// Spacing is the base unit in pixels per spacing factor.
type Spacing float64

// DefaultSpacing returns the library spacing unit.
func DefaultSpacing() Spacing {
	return 8
}

const maxSpacingFactors = 4

// Of renders CSS lengths for up to four factors, in shorthand order.
// Calling it without factors renders a single unit.
func (s Spacing) Of(factors ...float64) (string, error) {
	if len(factors) == 0 {
		factors = []float64{1}
	}
	if len(factors) > maxSpacingFactors {
		return "", fmt.Errorf("spacing accepts at most %d factors, got %d", maxSpacingFactors, len(factors))
	}

	parts := make([]string, len(factors))
	for i, factor := range factors {
		parts[i] = strconv.FormatFloat(factor*float64(s), 'f', -1, 64) + "px"
	}
	return strings.Join(parts, " "), nil
}
