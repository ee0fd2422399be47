// Package validation evaluates typed field rules over request payloads and
// folds every failure into a structured field -> messages map, instead of
// scattering ad-hoc checks across call sites.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report failures under the JSON field name the caller actually sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct runs tag-declared rules over a request struct. A nil return means
// the struct passed; otherwise every failing field is present in the map.
func Struct(s any) *apperrors.ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verr := apperrors.NewValidationError()
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), messageFor(fe))
		}
		return verr
	}
	verr.Add("_", err.Error())
	return verr
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}

// Positive adds a failure unless d > 0. Decimal bounds cannot be expressed as
// struct tags, so services declare them through these helpers.
func Positive(verr *apperrors.ValidationError, field string, d decimal.Decimal) {
	if d.LessThanOrEqual(decimal.Zero) {
		verr.Add(field, "must be greater than zero")
	}
}

// NonNegative adds a failure unless d >= 0.
func NonNegative(verr *apperrors.ValidationError, field string, d decimal.Decimal) {
	if d.IsNegative() {
		verr.Add(field, "must not be negative")
	}
}

// InRange adds a failure unless min <= d <= max.
func InRange(verr *apperrors.ValidationError, field string, d, min, max decimal.Decimal) {
	if d.LessThan(min) || d.GreaterThan(max) {
		verr.Add(field, fmt.Sprintf("must be between %s and %s", min.String(), max.String()))
	}
}

// OneOf adds a failure unless value is a member of allowed.
func OneOf(verr *apperrors.ValidationError, field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	verr.Add(field, fmt.Sprintf("must be one of [%s]", strings.Join(allowed, " ")))
}

// Finish returns verr when it collected failures, or nil.
func Finish(verr *apperrors.ValidationError) error {
	if verr.HasErrors() {
		return verr
	}
	return nil
}
