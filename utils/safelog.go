// Package utils holds small cross-cutting helpers. safelog masks personal
// data (emails, phone numbers, UPI addresses) before it reaches the logs in
// production; in development everything is logged as-is.
package utils

import (
	"os"
	"regexp"
)

// IsProduction enables masking. It tracks the same environment switches gin
// uses for release mode.
var IsProduction = os.Getenv("GIN_MODE") == "release" ||
	os.Getenv("ENVIRONMENT") == "production" ||
	os.Getenv("ENV") == "production"

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegex = regexp.MustCompile(`\+?\d[\d\s.-]{7,14}\d`)
	// UPI virtual payment addresses look like handle@bank but the bank part
	// has no TLD, so the email pattern misses them.
	upiRegex = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z]+`)
)

// MaskString masks emails, phone numbers and UPI addresses in a free-form
// string when running in production.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}
	out := emailRegex.ReplaceAllString(input, "***@***.***")
	out = upiRegex.ReplaceAllString(out, "***@***")
	out = phoneRegex.ReplaceAllString(out, "***")
	return out
}

// MaskEmail masks a full email address.
func MaskEmail(email string) string {
	if !IsProduction || email == "" {
		return email
	}
	return "***@***.***"
}

// MaskPhone masks a phone number.
func MaskPhone(phone string) string {
	if !IsProduction || phone == "" {
		return phone
	}
	return "***"
}

// MaskUPIAddress keeps only the bank handle of a virtual payment address.
func MaskUPIAddress(address string) string {
	if !IsProduction || address == "" {
		return address
	}
	for i := range address {
		if address[i] == '@' {
			return "***" + address[i:]
		}
	}
	return "***"
}
