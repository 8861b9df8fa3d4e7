package submission

import (
	"regexp"
	"strings"
)

var indianMobile = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// NormalizePhone strips spaces, hyphens and a leading +91 and returns the
// bare 10-digit mobile number.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "\t", "", "-", "").Replace(strings.TrimSpace(raw))
	cleaned = strings.TrimPrefix(cleaned, "+91")
	if !indianMobile.MatchString(cleaned) {
		return "", ErrInvalidPhone
	}
	return cleaned, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
