package serverutils

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// "required" accepts "   "; notblank does not
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// ValidateRequest runs struct-tag validation and returns
// validator.ValidationErrors on failure.
func ValidateRequest(req interface{}) error {
	return getValidator().Struct(req)
}
