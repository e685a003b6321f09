// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "VN"

// mobilePattern matches Vietnamese mobile numbers: a leading 0 or +84
// followed by 9 to 10 digits.
var mobilePattern = regexp.MustCompile(`^(0|\+84)\d{9,10}$`)

var separators = strings.NewReplacer(" ", "", ".", "", "-", "", "(", "", ")", "")

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// IsVietnameseMobile reports whether the input looks like a Vietnamese
// mobile number. Common separators are stripped before matching.
func IsVietnameseMobile(input string) bool {
	cleaned := separators.Replace(strings.TrimSpace(input))
	return mobilePattern.MatchString(cleaned)
}
