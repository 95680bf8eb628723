package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// uzOperatorCodes are the two digits following the +998 country code.
var uzOperatorCodes = map[string]bool{
	"99": true, "98": true, "97": true, "95": true, "94": true, "93": true,
	"91": true, "90": true, "77": true, "55": true, "33": true, "71": true,
}

var personNamePattern = regexp.MustCompile(`^[\p{L}ʼ'` + "`" + `]+$`)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("uzphone", func(fl validator.FieldLevel) bool {
		return IsUzPhoneNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	return v
}

// IsUzPhoneNumber accepts numbers of the form +998XXYYYYYYY where XX is a
// known operator code. Spaces are ignored.
func IsUzPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	if len(phone) != 13 || !strings.HasPrefix(phone, "+998") {
		return false
	}
	for _, r := range phone[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return uzOperatorCodes[phone[4:6]]
}

// IsStrongPassword requires at least 8 characters with an uppercase letter,
// a digit and a letter.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, digit, letter bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper, letter = true, true
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && digit && letter
}

// Validate runs struct validation and converts failures into a 400 AppError
// with per-field messages.
func Validate(payload interface{}) *AppError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	appErr := NewAppError(http.StatusBadRequest, "Validation failed", nil)
	appErr.Fields = make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		appErr.Fields[fe.Field()] = fieldMessage(fe)
	}
	return appErr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "uzphone":
		return "Phone number must look like +998XXXXXXXXX with a valid operator code."
	case "personname":
		return "This field must contain only letters."
	case "strongpassword":
		return "The password must have at least 8 characters, an uppercase letter and a number."
	case "clock":
		return "Time must be in HH:MM format."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	default:
		return "Invalid value (" + fe.Tag() + ")."
	}
}

// ValidateAndDecode decodes the JSON body into payload and validates it.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}
	return Validate(payload)
}
