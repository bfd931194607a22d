package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/shettypp/ai-syllabus-planner/pkg/errors"
)

// RequestValidator plugs go-playground/validator into echo
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator reports failing fields by their JSON names
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must have at most %s items", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// bindRequest decodes the body into req and validates it
func bindRequest(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument("invalid request body", err))
	}
	if err := c.Validate(req); err != nil {
		return errors.ToHTTPError(errors.InvalidArgument(validationMessage(err), err))
	}
	return nil
}
