// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// StructValidator implements [Validator] on top of go-playground/validator.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a [StructValidator] with the client's custom
// rules registered:
//   - nickname: 3 to 64 characters without whitespace or control characters
//   - notblank_secret: non-empty after trimming spaces
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("nickname", validateNickname)
	_ = v.RegisterValidation("notblank_secret", validateNotBlank)

	return &StructValidator{validate: v}
}

// Validate implements [Validator]. When fields are given only those
// top-level struct fields (by Go name) are checked.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	sort.Strings(details)

	return &ValidationError{details: strings.Join(details, "; "), fields: validationErrs}
}

// ValidationError lists the violated rules of one validated value. It
// matches [ErrValidationFailed] with errors.Is.
type ValidationError struct {
	details string
	fields  validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + e.details
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidationFailed, e.fields}
}

// FieldErrors returns the violated rule of every failed field keyed by its
// JSON path, or nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		details[fe.Namespace()] = fe.Tag()
	}
	return details
}

func isStruct(obj any) bool {
	t := reflect.TypeOf(obj)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(obj).IsNil() {
			return false
		}
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

func validateNickname(fl validator.FieldLevel) bool {
	nickname := fl.Field().String()
	if n := len([]rune(nickname)); n < 3 || n > 64 {
		return false
	}
	for _, r := range nickname {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
