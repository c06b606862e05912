package auth

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Password policy: at least 8 characters drawn from letters, digits and the
// symbol set, with at least one of each character class present.
var (
	passwordAlphabetRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
	passwordLowerRe    = regexp.MustCompile(`[a-z]`)
	passwordUpperRe    = regexp.MustCompile(`[A-Z]`)
	passwordDigitRe    = regexp.MustCompile(`\d`)
	passwordSymbolRe   = regexp.MustCompile(`[@$!%*?&]`)
)

// ValidateEmail checks that the address is well-formed.
func ValidateEmail(email string) error {
	return validation.Validate(email,
		validation.Required.Error("email is required"),
		is.Email.Error("invalid email"),
	)
}

// ValidatePassword enforces the registration strength policy.
func ValidatePassword(password string) error {
	return validation.Validate(password,
		validation.Required.Error("password is required"),
		validation.Length(8, 0).Error("password must be at least 8 characters long"),
		validation.Match(passwordAlphabetRe).Error("password contains unsupported characters"),
		validation.Match(passwordLowerRe).Error("password must contain a lowercase letter"),
		validation.Match(passwordUpperRe).Error("password must contain an uppercase letter"),
		validation.Match(passwordDigitRe).Error("password must contain a digit"),
		validation.Match(passwordSymbolRe).Error("password must contain a symbol"),
	)
}
