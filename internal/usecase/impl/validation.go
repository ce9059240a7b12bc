// Package impl contains the implementation of the application's business logic.
package impl

import (
	"fmt"
	"strings"

	domainerrors "opencircle/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks the struct tags of a use-case input and reports every
// failing field under ErrValidationFailed.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		failures := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			failures = append(failures, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
		}

		return domainerrors.ErrValidationFailed.WrapMessage(strings.Join(failures, "; "))
	}

	return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
}

// validateVar checks a single value against a validator tag.
func validateVar(name string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("%s failed on %q", name, tag))
	}

	return nil
}
