package tokens

// Shape is the border-radius token module.
type Shape struct {
	BorderRadius float64 `yaml:"borderRadius" json:"borderRadius" validate:"gte=0"`
}

// DefaultShape returns the library shape.
func DefaultShape() Shape {
	return Shape{BorderRadius: 4}
}
