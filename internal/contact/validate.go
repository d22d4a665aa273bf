package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shaun/portfolio-api/internal/domain"
	apperrors "github.com/shaun/portfolio-api/internal/errors"
)

// Permissive syntactic check, not full RFC validation: something@something.tld
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxNameLen    = 80
	maxEmailLen   = 120
	maxSubjectLen = 120
	minMessageLen = 10
	maxMessageLen = 2000
)

// Validate trims the textual fields and checks them in order (name, email,
// subject, message); the first failure wins. On success it returns the
// normalized submission.
func Validate(sub domain.ContactSubmission) (domain.ContactSubmission, *apperrors.AppError) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Message = strings.TrimSpace(sub.Message)

	// Limits are in characters, not bytes; multibyte input must not shrink
	// the allowance
	if sub.Name == "" || utf8.RuneCountInString(sub.Name) > maxNameLen {
		return sub, apperrors.NewBadRequestError("Invalid name.")
	}
	if sub.Email == "" || utf8.RuneCountInString(sub.Email) > maxEmailLen || !emailRe.MatchString(sub.Email) {
		return sub, apperrors.NewBadRequestError("Invalid email.")
	}
	if sub.Subject == "" || utf8.RuneCountInString(sub.Subject) > maxSubjectLen {
		return sub, apperrors.NewBadRequestError("Invalid subject.")
	}
	if n := utf8.RuneCountInString(sub.Message); n < minMessageLen || n > maxMessageLen {
		return sub, apperrors.NewBadRequestError("Invalid message.")
	}
	return sub, nil
}
