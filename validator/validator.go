// Package validator wraps go-playground/validator with field names taken
// from json or env tags and readable messages.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const TagToolName = "toolname"

var toolNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type Validator struct {
	Validator *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}

	return strings.Join(msgs, "; ")
}

func DefaultRestValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation(TagToolName, isToolName); err != nil {
		panic(fmt.Errorf("validator: register %q: %w", TagToolName, err))
	}

	return &Validator{Validator: v}
}

func isToolName(fl validator.FieldLevel) bool {
	return toolNamePattern.MatchString(fl.Field().String())
}

// fieldName prefers the json name, then the env variable name, so messages
// refer to what the caller actually set.
func fieldName(fld reflect.StructField) string {
	const maxSplits = 2

	for _, tag := range []string{"json", "env"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", maxSplits)[0]

		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return ""
}

func (v *Validator) Validate(i any) error {
	if err := v.Validator.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.formatValidationErrors(validationErrs)
		}

		return err
	}

	return nil
}

func (v *Validator) formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrs := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		field := err.Field()
		if field == "" {
			field = err.StructField()
		}

		validationErrs = append(validationErrs, ValidationError{
			Field:   field,
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: v.generateErrorMessage(field, err),
		})
	}

	return validationErrs
}

func (v *Validator) generateErrorMessage(field string, err validator.FieldError) string {
	msg := v.getSimpleErrorMessage(field, err.Tag())
	if msg != "" {
		return msg
	}

	return v.getParameterizedErrorMessage(field, err)
}

func (v *Validator) getSimpleErrorMessage(field, tag string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "url":
		return field + " must be a valid URL"
	case "http_url":
		return field + " must be a valid HTTP or HTTPS URL"
	case "hostname", "hostname_rfc1123":
		return field + " must be a valid hostname"
	case "ip":
		return field + " must be a valid IP address"
	case "uuid":
		return field + " must be a valid UUID"
	case TagToolName:
		return field + " must be a lowercase tool name"
	default:
		return ""
	}
}

func (v *Validator) getParameterizedErrorMessage(field string, err validator.FieldError) string {
	param := err.Param()
	tag := err.Tag()

	switch tag {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "required_with":
		return fmt.Sprintf("%s is required when %s is set", field, param)
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, err.Tag())
	}
}

func (v *Validator) RegisterCustomValidation(tag string, fn validator.Func) error {
	return v.Validator.RegisterValidation(tag, fn)
}
