package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validate struct tags on a request body.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsInstitutionalEmail reports whether the (already lowercased) email belongs
// to one of the accepted campus domains.
func IsInstitutionalEmail(email string) bool {
	for _, domain := range AllowedEmailDomains {
		if strings.HasSuffix(email, domain) {
			return true
		}
	}
	return false
}

// LowercaseEmail normalizes an address for lookups and storage.
func LowercaseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailLocalPart returns the part before the @, used to derive default names
// and student ids at signup.
func EmailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
