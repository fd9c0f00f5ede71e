package theme

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
	"github.com/alexisbeaulieu97/tokensmith/pkg/tokens"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			return name
		})

		_ = v.RegisterValidation("shadow_scale", func(fl validator.FieldLevel) bool {
			shadows, ok := fl.Field().Interface().(tokens.Shadows)
			if !ok {
				return false
			}
			if shadows[0] != tokens.NoShadow {
				return false
			}
			for _, shadow := range shadows {
				if strings.TrimSpace(shadow) == "" {
					return false
				}
			}
			return true
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the invariants that the schema cannot express: strictly
// increasing breakpoints, a complete shadow scale starting at "none",
// non-negative spacing and radius, and fully resolved colour categories.
func (t Theme) Validate() error {
	if err := validatorInstance().Struct(t); err != nil {
		return convertValidationError(err)
	}
	for _, name := range tokens.CategoryNames {
		if !t.Palette.Category(name).Resolved() {
			return themeerrors.NewThemeShapeError("palette."+name, "colour category has unresolved shades", nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return themeerrors.NewThemeShapeError("", err.Error(), err)
	}

	fe := ves[0]
	return themeerrors.NewThemeShapeError(fieldPath(fe), describe(fe), err)
}

// fieldPath turns "Theme.breakpoints.md" into "breakpoints.md".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gtfield":
		return fmt.Sprintf("must be greater than %s (got %v)", strings.ToLower(fe.Param()), fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s (got %v)", fe.Param(), fe.Value())
	case "shadow_scale":
		return fmt.Sprintf("must hold %d non-empty entries starting with %q", tokens.ShadowCount, tokens.NoShadow)
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
