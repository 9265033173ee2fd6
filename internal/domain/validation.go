package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Messages name fields by their `label` tag so they read well on the console.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
		return f.Name
	})

	_ = v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})

	return v
}

// IsValidEmail reports whether s has exactly one "@" and a domain part containing ".".
func IsValidEmail(s string) bool {
	if strings.Count(s, "@") != 1 {
		return false
	}
	domainPart := s[strings.Index(s, "@")+1:]
	return strings.Contains(domainPart, ".")
}

// IsValidPhone accepts the "(123) 4567890" format.
func IsValidPhone(s string) bool {
	if len(s) != 13 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch i {
		case 0:
			if c != '(' {
				return false
			}
		case 4:
			if c != ')' {
				return false
			}
		case 5:
			if c != ' ' {
				return false
			}
		default:
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// validationMessages runs struct tag validation and renders each failure as a
// console-ready sentence. Programming errors (non-struct input) panic.
func validationMessages(s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		panic(err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "mailbox":
		return fmt.Sprintf("%s must be a valid email address.", fe.Field())
	case "phone":
		return fmt.Sprintf("%s must be formatted as (123) 4567890.", fe.Field())
	case "len":
		return fmt.Sprintf("%s must be %s characters.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
