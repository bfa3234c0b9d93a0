package utils

import (
	"errors"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers custom validation rules used by
// the request DTOs.
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("ruphone", validateRussianPhone)
}

// validateRussianPhone accepts anything the normalizer can canonicalize
// into an 11-digit +7 number.
func validateRussianPhone(fl validator.FieldLevel) bool {
	normalized := NormalizePhone(fl.Field().String())
	if !strings.HasPrefix(normalized, "+7") {
		return false
	}
	return len(normalized) == 12
}

// TranslateValidationError turns validator failures into a single
// user-facing message. Russian by default, English behind
// APP_API_RETURN_LANG=EN.
func TranslateValidationError(err error) string {
	lang := strings.ToUpper(strings.TrimSpace(os.Getenv("APP_API_RETURN_LANG")))
	if lang == "" {
		lang = "RU"
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch lang {
			case "EN":
				switch fe.Tag() {
				case "required":
					messages = append(messages, field+" is required")
				case "min":
					messages = append(messages, field+" must be at least "+fe.Param()+" characters")
				case "max":
					messages = append(messages, field+" must be at most "+fe.Param()+" characters")
				case "oneof":
					messages = append(messages, field+" must be one of: "+fe.Param())
				case "ruphone":
					messages = append(messages, field+" must be a valid phone number")
				case "gte":
					messages = append(messages, field+" must be at least "+fe.Param())
				default:
					messages = append(messages, field+" is invalid")
				}
			default: // Russian
				switch fe.Tag() {
				case "required":
					messages = append(messages, "поле "+field+" обязательно")
				case "min":
					messages = append(messages, "поле "+field+" должно содержать не менее "+fe.Param()+" символов")
				case "max":
					messages = append(messages, "поле "+field+" должно содержать не более "+fe.Param()+" символов")
				case "oneof":
					messages = append(messages, "поле "+field+" должно быть одним из: "+fe.Param())
				case "ruphone":
					messages = append(messages, "поле "+field+" должно быть корректным номером телефона")
				case "gte":
					messages = append(messages, "поле "+field+" должно быть не меньше "+fe.Param())
				default:
					messages = append(messages, "поле "+field+" заполнено неверно")
				}
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}
