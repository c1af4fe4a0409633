// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/movista-travel/mt-logging-manager/internal/logging"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one field that failed validation.
type FieldError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the namespaced field name, without the root struct name.
func (e FieldError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e FieldError) Tag() string { return e.tag }

// Param returns the tag parameter ("100" for "max=100").
func (e FieldError) Param() string { return e.param }

func (e FieldError) Error() string { return e.message }

// ConfigError collects every field error from one validation pass.
type ConfigError struct {
	errors []FieldError
}

// Errors returns the individual field errors.
func (ce *ConfigError) Errors() []FieldError {
	return ce.errors
}

func (ce *ConfigError) Error() string {
	if len(ce.errors) == 0 {
		return "invalid configuration"
	}
	messages := make([]string, len(ce.errors))
	for i, err := range ce.errors {
		messages[i] = err.message
	}
	return "invalid configuration: " + strings.Join(messages, "; ")
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		mustRegister("loglevel", func(fl validator.FieldLevel) bool {
			return logging.ValidLevel(fl.Field().String())
		})
		mustRegister("timezone", func(fl validator.FieldLevel) bool {
			_, err := time.LoadLocation(fl.Field().String())
			return err == nil
		})
		mustRegister("groupid", func(fl validator.FieldLevel) bool {
			id := fl.Field().String()
			if id == "" {
				return true
			}
			return id != "." && id != ".." && !strings.ContainsAny(id, `/\`)
		})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

// ValidateStruct validates s. It returns nil on success and a *ConfigError
// otherwise. The return type is error so a nil result compares equal to nil.
func ValidateStruct(s any) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ConfigError{errors: []FieldError{{field: "unknown", tag: "unknown", message: err.Error()}}}
	}

	out := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		field := fieldName(fe)
		out[i] = FieldError{
			field:   field,
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: translateError(fe, field),
		}
	}
	return &ConfigError{errors: out}
}

// fieldName strips the root struct name from the namespace:
// "Config.Report.Timeout" becomes "Report.Timeout".
func fieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"loglevel": "%s must be one of trace, debug, info, warn, error, disabled",
	"timezone": "%s must be a valid IANA time zone",
	"groupid":  "%s must be a single path segment",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError, field string) string {
	tag := fe.Tag()
	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, strings.ReplaceAll(fe.Param(), " ", ", "))
	}

	switch tag {
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
