package workflow

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validateStruct runs tag-based validation on a workflow input. The service
// layer never validates; every required-field and format check lives here.
func validateStruct(s interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate.Struct(s)
}
