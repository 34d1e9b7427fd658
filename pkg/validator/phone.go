package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrInvalidLength indicates phone number length is not 10 digits
	ErrInvalidLength = errors.New("phone number must be exactly 10 digits")

	// ErrInvalidPrefix indicates phone number doesn't start with a valid Kenyan mobile prefix
	ErrInvalidPrefix = errors.New("phone number must start with 07 or 01")

	// ErrInvalidFormat indicates phone number contains invalid characters
	ErrInvalidFormat = errors.New("phone number can only contain digits")

	// ErrEmptyPhone indicates phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")
)

// phoneRegex matches digits only
var phoneRegex = regexp.MustCompile(`^\d+$`)

// PhoneValidator handles Kenyan mobile number validation
type PhoneValidator struct{}

// NewPhoneValidator creates a new phone validator instance
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{}
}

// Validate validates a Kenyan phone number.
// Accepts formats: 0712345678, 0712 345 678, +254712345678, 254712345678.
// Returns the sanitized local form (0XXXXXXXXX) and an error if invalid.
func (v *PhoneValidator) Validate(phone string) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}

	sanitized := v.Sanitize(phone)

	if !phoneRegex.MatchString(sanitized) {
		return "", ErrInvalidFormat
	}

	if len(sanitized) != 10 {
		return "", ErrInvalidLength
	}

	if !strings.HasPrefix(sanitized, "07") && !strings.HasPrefix(sanitized, "01") {
		return "", ErrInvalidPrefix
	}

	return sanitized, nil
}

// Sanitize removes separators and collapses country-code variants to the
// local 0XXXXXXXXX form.
func (v *PhoneValidator) Sanitize(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, "(", "")
	phone = strings.ReplaceAll(phone, ")", "")
	phone = strings.ReplaceAll(phone, "+", "")
	phone = strings.ReplaceAll(phone, ".", "")

	// Replace country code with local prefix
	if strings.HasPrefix(phone, "254") && len(phone) == 12 {
		phone = "0" + phone[3:]
	}

	// Bare subscriber number without the leading zero
	if len(phone) == 9 && (strings.HasPrefix(phone, "7") || strings.HasPrefix(phone, "1")) {
		phone = "0" + phone
	}

	return phone
}

// Normalize254 validates a phone number and returns it in the 254XXXXXXXXX
// form the payment gateway requires.
func (v *PhoneValidator) Normalize254(phone string) (string, error) {
	sanitized, err := v.Validate(phone)
	if err != nil {
		return "", err
	}
	return "254" + sanitized[1:], nil
}

// IsValid is a convenience method that returns true if phone is valid
func (v *PhoneValidator) IsValid(phone string) bool {
	_, err := v.Validate(phone)
	return err == nil
}
