package screens

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"github.com/go-playground/validator/v10"

	"portfolio-admin/internal/shortcode"
)

var ErrValidation = errors.New("validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	_ = v.RegisterValidation("absurl", func(fl validator.FieldLevel) bool {
		return isAbsoluteURL(fl.Field().String())
	})
	_ = v.RegisterValidation("shortcode", func(fl validator.FieldLevel) bool {
		return shortcode.Validate(fl.Field().String()) == nil
	})
	return v
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

// check validates form and reports the first failing field
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrValidation, fe.Field())
	case "absurl":
		return fmt.Errorf("%w: %s must be a valid absolute URL", ErrValidation, fe.Field())
	case "shortcode":
		return fmt.Errorf("%w: %s %v", ErrValidation, fe.Field(), shortcode.Validate(fmt.Sprint(fe.Value())))
	default:
		return fmt.Errorf("%w: %s is invalid", ErrValidation, fe.Field())
	}
}
