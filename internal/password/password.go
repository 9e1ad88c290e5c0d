// Package password checks the strength of passwords chosen at sign up.
//
// Errors carry the message shown next to the password field.
package password

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	MinimumLength      = 8
	minimumEntropyBits = 60
	// attributes shorter than this are too common to compare against
	minimumAttributeLength = 4
)

var (
	ErrTooShort = fmt.Errorf("This password is too short. It must contain at least %d characters.", MinimumLength)
	ErrNumeric  = errors.New("This password is entirely numeric.")
	ErrTooWeak  = errors.New("This password is too common or predictable.")
)

// SimilarityError reports a password that contains one of the user's own
// attributes.
type SimilarityError struct {
	Attribute string
}

func (e *SimilarityError) Error() string {
	return fmt.Sprintf("The password is too similar to the %s.", e.Attribute)
}

// Attribute is a user field the password must not resemble.
type Attribute struct {
	Name  string
	Value string
}

// ValidatePassword returns the first rule the password breaks, checking
// length, then digits-only, then similarity to attrs, then entropy.
func ValidatePassword(password string, attrs ...Attribute) error {
	if len([]rune(password)) < MinimumLength {
		return ErrTooShort
	}

	if isNumeric(password) {
		return ErrNumeric
	}

	lowered := strings.ToLower(password)
	for _, attr := range attrs {
		for _, part := range attributeParts(attr) {
			if len(part) < minimumAttributeLength {
				continue
			}
			if strings.Contains(lowered, part) || strings.Contains(part, lowered) {
				return &SimilarityError{Attribute: attr.Name}
			}
		}
	}

	if err := passwordvalidator.Validate(password, minimumEntropyBits); err != nil {
		return ErrTooWeak
	}

	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// attributeParts splits an attribute the way users tend to reuse it: the
// whole value plus its pieces around @, dots and separators.
func attributeParts(attr Attribute) []string {
	value := strings.ToLower(strings.TrimSpace(attr.Value))
	if value == "" {
		return nil
	}
	parts := []string{value}
	for _, p := range strings.FieldsFunc(value, func(r rune) bool {
		return r == '@' || r == '.' || r == '_' || r == '-' || r == '+'
	}) {
		if p != value {
			parts = append(parts, p)
		}
	}
	return parts
}
