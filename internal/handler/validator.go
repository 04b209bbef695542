package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into Echo's c.Validate.
// Field names in messages use the JSON tag so clients see "firstName",
// not "FirstName".
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator returns a validator reporting fields by JSON name.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{v: v}
}

// validationErrors lists failed fields as "field: tag[=param]".
type validationErrors struct {
	fields []string
}

func (e *validationErrors) Error() string { return strings.Join(e.fields, "; ") }

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &validationErrors{}
	for _, fe := range verrs {
		msg := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out.fields = append(out.fields, msg)
	}
	return out
}
