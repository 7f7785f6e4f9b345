package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tafaritech/brandkit/internal/brand"
	brandkiterrors "github.com/tafaritech/brandkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used by the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("brand_id", func(fl validator.FieldLevel) bool {
			return brand.Brand(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("display_mode", func(fl validator.FieldLevel) bool {
			return brand.DisplayMode(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("lockup", func(fl validator.FieldLevel) bool {
			return brand.Lockup(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("casing", func(fl validator.FieldLevel) bool {
			switch brand.Casing(fl.Field().String()) {
			case brand.CasingTitle, brand.CasingUpper:
				return true
			}
			return false
		})

		_ = v.RegisterValidation("treatment", func(fl validator.FieldLevel) bool {
			return brand.Treatment(fl.Field().String()).Valid()
		})

		// brand_hex accepts #RGB and #RRGGBB only; renderers and the audit
		// cannot use the alpha forms that hexcolor also allows.
		_ = v.RegisterValidation("brand_hex", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != 4 && len(value) != 7 {
				return false
			}
			_, err := colorful.Hex(value)
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateCatalog performs schema and cross-field validation. A complete
// catalog needs exactly one master brand; an overlay may carry none.
func ValidateCatalog(cat *Catalog, overlay bool) error {
	if cat == nil {
		return brandkiterrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cat); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cat.Brands))
	masters := 0

	for i, entry := range cat.Brands {
		if prev, exists := seen[entry.ID]; exists {
			return brandkiterrors.NewValidationError(fieldForBrand(i, "id"), fmt.Sprintf("duplicate brand id %q (first at brands[%d])", entry.ID, prev), nil)
		}
		seen[entry.ID] = i

		if entry.Master {
			masters++
		}

		if i := strings.Index(entry.Title, " "); entry.Splittable && (i <= 0 || i == len(entry.Title)-1) {
			return brandkiterrors.NewValidationError(fieldForBrand(i, "title"), fmt.Sprintf("splittable title %q has no word break", entry.Title), nil)
		}

		for _, mode := range brand.Modes() {
			row := entry.Modes[string(mode)]
			field := fieldForBrand(i, "modes."+string(mode))
			if brand.Treatment(row.Treatment) == brand.TreatmentFilter && strings.TrimSpace(row.Filter) == "" {
				return brandkiterrors.NewValidationError(field+".filter", "filter treatment requires a filter", nil)
			}
			if row.Filter != "" && brand.Treatment(row.Treatment) != brand.TreatmentFilter {
				return brandkiterrors.NewValidationError(field+".filter", "filter is only used with the filter treatment", nil)
			}
		}
	}

	switch {
	case masters > 1:
		return brandkiterrors.NewValidationError("brands", fmt.Sprintf("%d master brands, expected one", masters), nil)
	case masters == 0 && !overlay:
		return brandkiterrors.NewValidationError("brands", "no master brand", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return brandkiterrors.NewValidationError(field, msg, err)
	}

	return brandkiterrors.NewValidationError("catalog", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the yaml-tag namespace.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldForBrand(index int, field string) string {
	return fmt.Sprintf("brands[%d].%s", index, field)
}

// ValidateColor checks a caller-supplied colour override. Empty values are
// allowed and mean "not supplied".
func ValidateColor(field, value string) error {
	if err := validatorInstance().Var(value, "omitempty,brand_hex"); err != nil {
		return brandkiterrors.NewValidationError(field, fmt.Sprintf("%q is not a hex colour", value), err)
	}
	return nil
}
