package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/betterrest/internal/constants"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects every rejected field of a validated value.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(e), strings.Join(messages, "; "))
}

// Has reports whether field was rejected.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Validator checks struct tags on estimation inputs and model artifacts.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the sleep_step and finite rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("sleep_step", validateSleepStep)
	_ = v.RegisterValidation("finite", validateFinite)

	return &Validator{validate: v}
}

// IsSleepStep reports whether hours lies on the sleep amount grid.
func IsSleepStep(hours float64) bool {
	steps := hours / constants.SleepAmountStep
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

func validateSleepStep(fl validator.FieldLevel) bool {
	return IsSleepStep(fl.Field().Float())
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate checks s and returns Errors when any field is rejected.
func (v *Validator) Validate(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}
	return nil
}

func translate(errs validator.ValidationErrors) Errors {
	var out Errors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = "is required"
		case "gte", "min":
			message = fmt.Sprintf("must be at least %s", err.Param())
		case "lte", "max":
			message = fmt.Sprintf("must be at most %s", err.Param())
		case "sleep_step":
			message = fmt.Sprintf("must be a multiple of %g hours", constants.SleepAmountStep)
		case "finite":
			message = "must be a finite number"
		}

		out = append(out, FieldError{
			Field:   fieldPath(err),
			Message: message,
		})
	}

	return out
}

// fieldPath drops the root struct name from the namespace: "EstimateRequest.wake.Hour" -> "wake.hour".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}
