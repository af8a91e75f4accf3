package users

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/akramarev/userreg/internal/models"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// normalizeEmail canonicalizes an address for comparison and storage.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validate checks every field independently and returns all failures in
// field order, so the client can render every problem at once.
func validate(req models.RegisterRequest) []FieldError {
	var errs []FieldError

	if len(req.Username) < 3 {
		errs = append(errs, FieldError{Field: "username", Msg: "Username must be at least 3 characters long"})
	}
	if !usernameRe.MatchString(req.Username) {
		errs = append(errs, FieldError{Field: "username", Msg: "Username can only contain letters and numbers"})
	}
	// mail.ParseAddress also accepts RFC 5322 display-name forms like
	// "Bob <bob@example.com>"; only a bare address is acceptable here.
	email := strings.TrimSpace(req.Email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Name != "" || addr.Address != email {
		errs = append(errs, FieldError{Field: "email", Msg: "Must be a valid email address"})
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Msg: "Password must be at least 6 characters long"})
	}

	return errs
}
