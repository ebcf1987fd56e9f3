package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator обёртка над go-playground/validator для проверки формы HTTP запросов
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор, который называет поля по json-тегам
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		default:
			return name
		}
	})
	return &Validator{validate: v}
}

// Struct проверяет struct-теги `validate`
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors превращает ошибку валидации в map "поле -> описание"
func FieldErrors(err error) map[string]string {
	result := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return result
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			result[field] = field + " is required"
		case "email":
			result[field] = field + " must be a valid email address"
		case "uuid", "uuid4":
			result[field] = field + " must be a valid UUID"
		case "max":
			result[field] = field + " must be at most " + e.Param() + " characters"
		case "min":
			result[field] = field + " must be at least " + e.Param()
		case "oneof":
			result[field] = field + " must be one of: " + e.Param()
		case "gtfield":
			result[field] = field + " must be after " + e.Param()
		default:
			result[field] = field + " is invalid"
		}
	}

	return result
}
