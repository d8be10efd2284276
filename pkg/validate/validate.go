// Package validate aplica las etiquetas `validate:"..."` de los DTOs con go-playground/validator
// y reporta los errores por campo usando el nombre JSON.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError error de un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	once sync.Once
	v    *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return v
}

// Struct valida s. Devuelve nil o la lista de errores por campo.
func Struct(s any) []FieldError {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{Field: e.Field(), Message: message(e)})
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo requerido"
	case "email":
		return "email inválido"
	case "min":
		return "debe ser al menos " + e.Param()
	case "max":
		return "debe ser como máximo " + e.Param()
	case "oneof":
		return "debe ser uno de: " + e.Param()
	case "numeric":
		return "debe ser numérico"
	case "len":
		return "debe tener longitud " + e.Param()
	default:
		return "valor inválido (" + e.Tag() + ")"
	}
}
