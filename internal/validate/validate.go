// Package validate holds the input validation rules shared with the mobile
// clients, so server and client reject the same values.
package validate

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)*$`)
)

// Email reports whether s is a plausible email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Name reports whether s is a display name: letters separated by single
// spaces, no leading or trailing whitespace.
func Name(s string) bool {
	return s != "" && namePattern.MatchString(s)
}
