package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// emailRegex accepts one or more allowed characters before the @, a domain of
// allowed characters, and a final label of at least two letters. Dots may
// repeat or sit at label boundaries; the goal is catching typos, not RFC 5322.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether s looks like a deliverable email address.
// Leading and trailing whitespace is ignored.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators. The email rule replaces the
// library's built-in check so DTO tags share IsValidEmail's policy.
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("email", validateEmail)
}

func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// Struct validates s against its validate tags using the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}

// Messages converts validation failures into user-facing form messages.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Something went wrong. Please check the form and try again."}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please fill in your %s.", fieldLabel(fe.Field()))
	case "email":
		return "Please enter a valid email address."
	}
	return fmt.Sprintf("Please check the %s field.", fieldLabel(fe.Field()))
}

// fieldLabel turns a struct field name into a lowercase label, e.g.
// "CurrentProcess" becomes "current process".
func fieldLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
