// Package app contains the headless screen controllers. Each controller owns
// the loading/error state of one screen, talks to the remote API directly,
// and reads or writes the shared stores. Rendering and navigation chrome live
// outside this module.
//
// A controller survives only while its screen is mounted. Close marks it
// dead; responses that arrive after Close are dropped rather than mutating
// state for a screen the user already left.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var formValidator = validator.New()

// validateForm checks a tagged input struct and returns per-field messages,
// or nil when the input is valid.
func validateForm(in any) map[string]string {
	err := formValidator.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string]string{"form": err.Error()}
	}

	msgs := make(map[string]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		msgs[field] = fieldMessage(field, fe)
	}
	return msgs
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
