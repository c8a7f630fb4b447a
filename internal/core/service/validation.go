package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rakeshkurk50/EndWebsite/internal/core/domain"
	"github.com/rakeshkurk50/EndWebsite/internal/core/ports"
)

var (
	nonDigitPattern = regexp.MustCompile(`\D`)
	mobilePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validate carries the custom tags used by ports.RegisterInput:
//
//	notblank   – non-empty after trimming surrounding whitespace
//	mobile     – exactly 10 decimal digits
//	emailshape – local@domain.tld shape
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("service: register validation " + tag + ": " + err.Error())
	}
}

// normalizeRegistration sanitizes the three normalized fields and leaves
// everything else untouched. Pure: the input value is copied, never mutated.
func normalizeRegistration(in ports.RegisterInput) ports.RegisterInput {
	in.Mobile = nonDigitPattern.ReplaceAllString(in.Mobile, "")
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	return in
}

// validateRegistration checks an already-normalized input. Required fields
// are checked first, enumerating every missing one; format checks run only
// once all required fields are present.
func validateRegistration(in ports.RegisterInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	var missing []string
	byTag := make(map[string]bool, len(ve))
	for _, fe := range ve {
		if fe.Tag() == "notblank" {
			missing = append(missing, fieldName(fe.Field()))
		}
		byTag[fe.Tag()] = true
	}
	if len(missing) > 0 {
		return domain.NewMissingFieldsError(missing)
	}
	if byTag["mobile"] {
		return &domain.ValidationError{Message: "mobile must be 10 digits"}
	}
	if byTag["emailshape"] {
		return &domain.ValidationError{Message: "invalid email address"}
	}
	return err
}

// fieldName converts a Go struct field name to its wire name (FirstName →
// firstName).
func fieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
