package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// NormalizePhone strips every non-digit character from a phone number.
// All lookups and writes key on the normalized form.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone normalizes a phone number and checks it is 10-15
// digits. Returns the normalized form on success.
func ValidatePhone(phone string) (bool, string, error) {
	normalized := NormalizePhone(phone)
	if !phonePattern.MatchString(normalized) {
		return false, "", fmt.Errorf("phone number must be 10-15 digits")
	}
	return true, normalized, nil
}

// Pagination clamps page/limit query values into a usable range
func Pagination(page, limit, defaultLimit, maxLimit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	skip := (page - 1) * limit
	return page, limit, skip
}
