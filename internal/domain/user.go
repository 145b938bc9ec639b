package domain

import (
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	TelegramID   *int64
	CreatedAt    time.Time
}

// Registration is an unvalidated request to create a user.
// Fields are declared in the order a user would fix them; Validate reports
// the first one that fails.
type Registration struct {
	Username         string `validate:"required,alphanum,min=3,max=30"`
	Password         string `validate:"required,min=8,max=16,has_upper,has_digit"`
	RepeatedPassword string `validate:"eqfield=Password"`
	Email            string `validate:"required,email"`
	TelegramID       *int64
}

var registrationFieldErrors = map[string]error{
	"Username":         ErrInvalidUsername,
	"Password":         ErrInvalidPassword,
	"RepeatedPassword": ErrPasswordMismatch,
	"Email":            ErrInvalidEmail,
}

var registrationValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("has_upper", containsRune(unicode.IsUpper))
	_ = v.RegisterValidation("has_digit", containsRune(unicode.IsDigit))
	return v
})

func containsRune(match func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if match(r) {
				return true
			}
		}
		return false
	}
}

// Validate checks the registration fields, returning the sentinel for the first invalid one.
func (r Registration) Validate() error {
	err := registrationValidator().Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if sentinel, ok := registrationFieldErrors[fieldErrs[0].StructField()]; ok {
			return sentinel
		}
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
