// Package validation проверяет тела и параметры запросов до обращения к хранилищу.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/model"
)

// Validator обёртка над go-playground/validator с путями полей в JSON-нотации.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Nullable проверяется по вложенному значению; отсутствующее и null пропускаются omitempty.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		n, ok := field.Interface().(model.Nullable[string])
		if !ok || !n.Valid {
			return nil
		}
		return n.Value
	}, model.Nullable[string]{})

	return &Validator{v: v}
}

// Struct проверяет структуру и возвращает *apperrors.Error класса Validation.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Internal(fmt.Errorf("validate: %w", err))
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		fields[path] = append(fields[path], message(fe))
	}
	return apperrors.Validation(fields)
}

// Field ошибка одного поля, например параметра пути.
func Field(path, msg string) error {
	return apperrors.Validation(map[string][]string{path: {msg}})
}

// fieldPath отрезает имя корневой структуры: "ShortenRequest.url" -> "url".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email"
	case "datetime":
		return "must be an RFC 3339 datetime"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s character(s)", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
