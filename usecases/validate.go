package usecases

import "regexp"

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{2,29}$`)
)

// IsValidEmail reports whether the address has a plausible local@domain.tld
// shape.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidUsername reports whether the name is 3-30 characters of letters,
// digits, underscore or hyphen, starting with a letter or digit.
func IsValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}
