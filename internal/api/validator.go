package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	app_errors "safik-ai/site/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Message bodies (SubmitRequest, DraftRequest) carry their limits as
// validate tags. The validator caches struct metadata, so one instance is shared.

var (
	validate *validator.Validate
	once     sync.Once
)

// getInstance returns the shared validator.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateRequest checks a decoded message body against its validate tags,
// such as the 500 character cap on question text. Failures are wrapped in
// app_errors.ErrValidation so they surface as 400s.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	// Anything other than ValidationErrors means the payload was not a struct.
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		// A 501 character question reads "Field 'Text' failed on the 'max' tag".
		errMsg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		errorMessages = append(errorMessages, errMsg)
	}

	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}
