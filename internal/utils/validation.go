package utils

import (
	"fmt"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the application's custom struct tags to v:
// appemail, strongpassword and accounttype.
func RegisterValidators(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"appemail": func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		},
		"strongpassword": func(fl validator.FieldLevel) bool {
			return ValidatePasswordStrength(fl.Field().String()) == nil
		},
		"accounttype": func(fl validator.FieldLevel) bool {
			return domain.AccountType(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// RegisterGinValidators installs the custom tags on gin's default binding engine.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin binding engine is %T, not *validator.Validate", binding.Validator.Engine())
	}
	return RegisterValidators(v)
}
