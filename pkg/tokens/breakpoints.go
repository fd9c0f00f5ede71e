package tokens

import (
	"fmt"
	"strconv"
)

// Breakpoints maps tier names to minimum widths. Values must increase
// strictly from xs to xl.
type Breakpoints struct {
	Xs int `yaml:"xs" json:"xs" validate:"gte=0"`
	Sm int `yaml:"sm" json:"sm" validate:"gtfield=Xs"`
	Md int `yaml:"md" json:"md" validate:"gtfield=Sm"`
	Lg int `yaml:"lg" json:"lg" validate:"gtfield=Md"`
	Xl int `yaml:"xl" json:"xl" validate:"gtfield=Lg"`
}

// BreakpointKeys lists the tiers from narrowest to widest.
var BreakpointKeys = []string{"xs", "sm", "md", "lg", "xl"}

// DefaultBreakpoints returns the library breakpoints.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{Xs: 0, Sm: 600, Md: 900, Lg: 1200, Xl: 1536}
}

// Value returns the minimum width of the tier named key.
func (b Breakpoints) Value(key string) (int, error) {
	switch key {
	case "xs":
		return b.Xs, nil
	case "sm":
		return b.Sm, nil
	case "md":
		return b.Md, nil
	case "lg":
		return b.Lg, nil
	case "xl":
		return b.Xl, nil
	default:
		return 0, fmt.Errorf("unknown breakpoint %q", key)
	}
}

// Up returns a media query matching widths at or above key.
func (b Breakpoints) Up(key string) (string, error) {
	min, err := b.Value(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("@media (min-width:%dpx)", min), nil
}

// Down returns a media query matching widths below key.
func (b Breakpoints) Down(key string) (string, error) {
	max, err := b.Value(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("@media (max-width:%spx)", belowWidth(max)), nil
}

// Between returns a media query matching widths from start up to, but not
// including, end.
func (b Breakpoints) Between(start, end string) (string, error) {
	min, err := b.Value(start)
	if err != nil {
		return "", err
	}
	max, err := b.Value(end)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("@media (min-width:%dpx) and (max-width:%spx)", min, belowWidth(max)), nil
}

// Only returns a media query matching the tier named key alone.
func (b Breakpoints) Only(key string) (string, error) {
	for i, k := range BreakpointKeys {
		if k != key {
			continue
		}
		if i == len(BreakpointKeys)-1 {
			return b.Up(key)
		}
		return b.Between(key, BreakpointKeys[i+1])
	}
	return "", fmt.Errorf("unknown breakpoint %q", key)
}

// belowWidth steps just under width so adjacent queries never overlap.
func belowWidth(width int) string {
	return strconv.FormatFloat(float64(width)-0.05, 'f', 2, 64)
}
