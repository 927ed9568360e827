package handlers

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/benx421/bank-api/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

var alphaSpacePattern = regexp.MustCompile(`^[A-Za-z\s]*$`)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// dates and amounts are validated as time.Time and decimal strings
	v.RegisterCustomTypeFunc(dateValue, openapi_types.Date{})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpacePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "cpf", func(fl validator.FieldLevel) bool {
		return service.ValidateNationalID(service.NormalizeNationalID(fl.Field().String())) == nil
	})
	mustRegister(v, "past", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && t.Before(time.Now().UTC().Truncate(24*time.Hour))
	})
	mustRegister(v, "positive_amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
	mustRegister(v, "amount_scale", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.Equal(d.Truncate(service.AmountScale))
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func dateValue(field reflect.Value) any {
	d, ok := field.Interface().(openapi_types.Date)
	if !ok || d.IsZero() {
		return nil
	}
	return d.Time
}

func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return d.String()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "alphaspace":
		return "must contain only alphabetic characters and whitespaces"
	case "email":
		return "must be a well-formed email address"
	case "cpf":
		return "invalid Brazilian individual taxpayer registry number (CPF)"
	case "past":
		return "must be a past date"
	case "positive_amount":
		return "must be greater than 0"
	case "amount_scale":
		return "must have at most 4 decimal places"
	case "isdefault":
		return "must be null"
	case "min":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}
