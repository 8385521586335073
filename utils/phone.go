package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// FormatPhoneNumber strips a phone number down to digits and prefixes the
// Indian country code when it is missing.
func FormatPhoneNumber(phoneNumber string) string {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")

	if len(digits) > 0 && !strings.HasPrefix(digits, "91") {
		digits = strings.TrimLeft(digits, "0")
		digits = "91" + digits
	}

	return digits
}

// ValidatePhoneNumber checks for a valid Indian mobile number: exactly 10
// digits starting with 6, 7, 8 or 9.
func ValidatePhoneNumber(phoneNumber string) bool {
	cleaned := nonDigits.ReplaceAllString(phoneNumber, "")
	cleaned = strings.TrimPrefix(cleaned, "91")

	if len(cleaned) != 10 {
		return false
	}

	switch cleaned[0] {
	case '6', '7', '8', '9':
		return true
	}
	return false
}

// NormalizePhoneNumber normalizes a phone number for storage and wa.me links.
func NormalizePhoneNumber(phoneNumber string) string {
	return FormatPhoneNumber(phoneNumber)
}

// DisplayPhoneNumber formats a stored number as +91 XXXXX XXXXX.
func DisplayPhoneNumber(phoneNumber string) string {
	formatted := FormatPhoneNumber(phoneNumber)
	if len(formatted) == 12 && strings.HasPrefix(formatted, "91") {
		return "+" + formatted[:2] + " " + formatted[2:7] + " " + formatted[7:]
	}
	return phoneNumber
}
