package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

// newValidate reads the same `binding` tags gin uses, so requests validate
// identically whether they arrive over HTTP or from internal callers.
func newValidate() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// Validate runs struct-tag validation on obj and returns the first
// violation as a plain error.
func Validate(obj interface{}) error {
	if err := validate.Struct(obj); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("field %s failed validation on %s", e.Field(), e.Tag())
		}
		return err
	}
	return nil
}

// Var validates a single value against a rule string, e.g. "oneof=low high".
func Var(value interface{}, rules string) error {
	return validate.Var(value, rules)
}
