package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern is deliberately loose: local@domain.tld with no whitespace.
// Matches the product's historical behavior rather than full RFC addresses.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// formValidator wraps go-playground/validator so Echo can call
// c.Validate(req), and additionally exposes FieldErrors for forms that
// surface every failing field at once instead of a single first failure.
type formValidator struct {
	v *validator.Validate
}

// NewValidator returns a formValidator ready to be assigned to
// echo.Echo.Validator. It registers the two custom tags the forms need:
//
//	notblank — fails on strings that are empty after trimming whitespace
//	emailish — fails unless the value matches local@domain.tld loosely
func NewValidator() *formValidator {
	v := validator.New()

	// Report field names by their json tag so error keys match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("emailish", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return &formValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (fv *formValidator) Validate(i any) error {
	if err := fv.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// FieldErrors runs the validation pass and collects one message per failing
// field, keyed by the payload field name. An empty map means the form is
// valid. Fields are evaluated independently; nothing short-circuits.
func (fv *formValidator) FieldErrors(i any) map[string]string {
	err := fv.v.Struct(i)
	if err == nil {
		return map[string]string{}
	}

	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_form"] = err.Error()
		return out
	}
	for _, fe := range ve {
		if _, dup := out[fe.Field()]; !dup {
			out[fe.Field()] = fieldError(fe)
		}
	}
	return out
}

// fieldLabels maps payload field names to the labels users see in messages.
var fieldLabels = map[string]string{
	"firstName":       "First name",
	"lastName":        "Last name",
	"username":        "Username",
	"email":           "Email",
	"password":        "Password",
	"confirmPassword": "Confirm password",
	"addressLine1":    "Address",
	"city":            "City",
	"state":           "State",
	"pincode":         "Pincode",
	"role":            "Role",
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "emailish":
		return label + " is invalid"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, fe.Tag())
	}
}
