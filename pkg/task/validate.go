package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmptyTitle is returned for tasks whose title is blank.
	ErrEmptyTitle = errors.New("task: title is required")
	// ErrInvalid wraps all other field validation failures.
	ErrInvalid = errors.New("task: invalid")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, _, err := ParseClock(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks a task before it is handed to the planner. Forms call it
// to produce inline field errors.
func Validate(t Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return structErr(validate.Struct(t))
}

// ValidateCategory checks a category before it is added.
func ValidateCategory(c Category) error {
	return structErr(validate.Struct(c))
}

func structErr(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
