package tokens

import (
	"fmt"
	"strings"
)

// ShadowCount is the fixed length of the elevation scale.
const ShadowCount = 25

// NoShadow is the sentinel stored at elevation 0.
const NoShadow = "none"

// Shadows is the elevation scale. Index 0 is NoShadow and index 24 the
// deepest elevation. It is always replaced as a whole.
type Shadows [ShadowCount]string

const (
	umbraOpacity    = 0.2
	penumbraOpacity = 0.14
	ambientOpacity  = 0.12
)

// layers holds x, y, blur and spread offsets for the umbra, penumbra and
// ambient layers of elevations 1 through 24.
var layers = [ShadowCount - 1][12]int{
	{0, 2, 1, -1, 0, 1, 1, 0, 0, 1, 3, 0},
	{0, 3, 1, -2, 0, 2, 2, 0, 0, 1, 5, 0},
	{0, 3, 3, -2, 0, 3, 4, 0, 0, 1, 8, 0},
	{0, 2, 4, -1, 0, 4, 5, 0, 0, 1, 10, 0},
	{0, 3, 5, -1, 0, 5, 8, 0, 0, 1, 14, 0},
	{0, 3, 5, -1, 0, 6, 10, 0, 0, 1, 18, 0},
	{0, 4, 5, -2, 0, 7, 10, 1, 0, 2, 16, 1},
	{0, 5, 5, -3, 0, 8, 10, 1, 0, 3, 14, 2},
	{0, 5, 6, -3, 0, 9, 12, 1, 0, 3, 16, 2},
	{0, 6, 6, -3, 0, 10, 14, 1, 0, 4, 18, 3},
	{0, 6, 7, -4, 0, 11, 15, 1, 0, 4, 20, 3},
	{0, 7, 8, -4, 0, 12, 17, 2, 0, 5, 22, 4},
	{0, 7, 8, -4, 0, 13, 19, 2, 0, 5, 24, 4},
	{0, 7, 9, -4, 0, 14, 21, 2, 0, 5, 26, 4},
	{0, 8, 9, -5, 0, 15, 22, 2, 0, 6, 28, 5},
	{0, 8, 10, -5, 0, 16, 24, 2, 0, 6, 30, 5},
	{0, 8, 11, -5, 0, 17, 26, 2, 0, 6, 32, 5},
	{0, 9, 11, -5, 0, 18, 28, 2, 0, 7, 34, 6},
	{0, 9, 12, -6, 0, 19, 29, 2, 0, 7, 36, 6},
	{0, 10, 13, -6, 0, 20, 31, 3, 0, 8, 38, 7},
	{0, 10, 13, -6, 0, 21, 33, 3, 0, 8, 40, 7},
	{0, 10, 14, -6, 0, 22, 35, 3, 0, 8, 42, 7},
	{0, 11, 14, -7, 0, 23, 36, 3, 0, 9, 44, 8},
	{0, 11, 15, -7, 0, 24, 38, 3, 0, 9, 46, 8},
}

// DefaultShadows returns the library elevation scale.
func DefaultShadows() Shadows {
	var shadows Shadows
	shadows[0] = NoShadow
	for i, px := range layers {
		shadows[i+1] = shadow(px)
	}
	return shadows
}

func shadow(px [12]int) string {
	opacities := [3]float64{umbraOpacity, penumbraOpacity, ambientOpacity}
	parts := make([]string, 0, len(opacities))
	for layer, opacity := range opacities {
		o := px[layer*4 : layer*4+4]
		parts = append(parts, fmt.Sprintf("%dpx %dpx %dpx %dpx rgba(0,0,0,%g)", o[0], o[1], o[2], o[3], opacity))
	}
	return strings.Join(parts, ",")
}
