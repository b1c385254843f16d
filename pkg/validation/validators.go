package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MinLevel = 0
	MaxLevel = 100
)

// New returns a validator with the custom tags registered and JSON field names
// reported in errors.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("level", ValidLevel)
	_ = v.RegisterValidation("not_blank", NotBlank)
}

// ValidLevel accepts integer proficiency levels in [MinLevel, MaxLevel].
// Zero is a valid level.
func ValidLevel(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		l := fl.Field().Int()
		return l >= MinLevel && l <= MaxLevel
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fl.Field().Uint() <= MaxLevel
	default:
		return false
	}
}

// NotBlank rejects strings that are empty after trimming whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
