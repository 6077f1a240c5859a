package utils

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations hooks custom rules and JSON field naming into gin's
// validator. Safe to call more than once.
func RegisterValidations() {
	registerOnce.Do(registerValidations)
}

func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
		case "confirmed", "cancelled", "completed":
			return true
		}
		return false
	})
}

// ValidationDetails maps binding errors to field -> message. Non-validation
// errors (malformed JSON) come back under "body".
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required"
		case "email":
			out[field] = "Invalid email format"
		case "min", "gte":
			out[field] = "Value must be at least " + fe.Param()
		case "max", "lte":
			out[field] = "Value must be at most " + fe.Param()
		case "calendar_date":
			out[field] = "Invalid date format. Use YYYY-MM-DD"
		case "booking_status":
			out[field] = "Must be one of: confirmed, cancelled, completed"
		default:
			out[field] = "Invalid value"
		}
	}
	return out
}
