package validation

import (
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

// FieldError describes one failed validation rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = v10.New()

// Validate runs struct validation using go-playground/validator.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// FieldErrors converts a validator error into a slice of FieldError. Field
// names are resolved to their json tags on the provided example value when
// possible, so handlers can report the wire-level name.
func FieldErrors(err error, v interface{}) []FieldError {
	if err == nil {
		return nil
	}
	ve, ok := err.(v10.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Code: "invalid", Message: err.Error()}}
	}

	var rt reflect.Type
	if v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Ptr {
			rv = rv.Elem()
		}
		if rv.IsValid() {
			rt = rv.Type()
		}
	}

	out := make([]FieldError, 0, len(ve))
	for _, f := range ve {
		out = append(out, FieldError{
			Field:   jsonName(rt, f.Field()),
			Code:    strings.ToLower(f.Tag()),
			Message: f.Error(),
		})
	}
	return out
}

// jsonName resolves a struct field name to its json tag, falling back to the
// lowercased field name.
func jsonName(rt reflect.Type, field string) string {
	if rt != nil && rt.Kind() == reflect.Struct {
		if sf, found := rt.FieldByName(field); found {
			tag := sf.Tag.Get("json")
			if tag != "" {
				name := strings.Split(tag, ",")[0]
				if name != "" && name != "-" {
					return name
				}
			}
		}
	}
	return strings.ToLower(field)
}
