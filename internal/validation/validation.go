// Package validation holds the pure field validators shared by every form
// schema. Each function takes the raw submitted value and returns a verdict;
// none of them mutate input or return errors.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	nameRe    = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	zipRe     = regexp.MustCompile(`^[a-zA-Z0-9\s\-]+$`)
	digitsRe  = regexp.MustCompile(`\D`)
	domainRe  = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	schemeRe  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)
)

// Name accepts human names: at least two characters after trimming, letters
// plus spaces, hyphens, apostrophes and periods.
func Name(v string) bool {
	v = strings.TrimSpace(v)
	return len(v) >= 2 && nameRe.MatchString(v)
}

// Phone accepts any formatting as long as at least 10 digits remain after
// stripping everything non-numeric.
func Phone(v string) bool {
	digits := digitsRe.ReplaceAllString(v, "")
	return len(digits) >= 10
}

// Email requires a local@domain.tld shape with no embedded whitespace and a
// TLD of at least two characters. The value must also satisfy validator's
// own email rule so obviously malformed addresses don't slip past the regex.
func Email(v string) bool {
	v = strings.TrimSpace(v)
	if !emailRe.MatchString(v) {
		return false
	}
	return validate.Var(v, "email") == nil
}

// City shares the human-name rule.
func City(v string) bool { return Name(v) }

// State shares the human-name rule.
func State(v string) bool { return Name(v) }

// Zip accepts postal codes of any country: at least three characters,
// letters, digits, spaces and hyphens.
func Zip(v string) bool {
	v = strings.TrimSpace(v)
	return len(v) >= 3 && zipRe.MatchString(v)
}

// Website accepts either a full URL (validated as such when a scheme prefix
// is present) or a bare domain like example.com.
func Website(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if schemeRe.MatchString(v) {
		return validate.Var(v, "url") == nil
	}
	return domainRe.MatchString(v)
}
