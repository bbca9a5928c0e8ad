package service

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/orrya/backend/internal/model"
)

const (
	maxNameLength    = 100
	maxCompanyLength = 100
	maxMessageLength = 2000
)

var phonePattern = regexp.MustCompile(`^\+?[1-9][\d\s\-()]{6,15}$`)

// ValidateContact checks an untrusted contact payload and returns every rule
// it breaks, in a fixed order. An empty result means the payload is accepted.
// Non-string values are treated as absent, except for phone where any
// non-null value that is not a matching string is a format error.
func ValidateContact(fields map[string]any) []string {
	var errs []string

	name, _ := stringField(fields, "name")
	email, _ := stringField(fields, "email")
	message, _ := stringField(fields, "message")
	company, _ := stringField(fields, "company")

	for _, f := range []struct{ label, value string }{
		{"Name", name},
		{"Email", email},
		{"Message", message},
	} {
		if f.value == "" {
			errs = append(errs, f.label+" is required")
		}
	}

	if email != "" && !validEmail(email) {
		errs = append(errs, "Invalid email address")
	}

	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, "Name must be less than 100 characters")
	}
	if utf8.RuneCountInString(company) > maxCompanyLength {
		errs = append(errs, "Company name must be less than 100 characters")
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		errs = append(errs, "Message must be less than 2000 characters")
	}

	if raw, ok := fields["phone"]; ok && raw != nil {
		phone, isString := raw.(string)
		phone = strings.TrimSpace(phone)
		if !isString || (phone != "" && !phonePattern.MatchString(phone)) {
			errs = append(errs, "Invalid phone number format")
		}
	}

	return errs
}

// NormalizeContact builds the record to store from a payload that passed
// ValidateContact: strings trimmed, email lowercased, blank optionals dropped.
func NormalizeContact(fields map[string]any) *model.ContactSubmission {
	name, _ := stringField(fields, "name")
	email, _ := stringField(fields, "email")
	message, _ := stringField(fields, "message")
	sub := &model.ContactSubmission{
		Name:    name,
		Email:   strings.ToLower(email),
		Message: message,
	}
	if company, ok := stringField(fields, "company"); ok && company != "" {
		sub.Company = &company
	}
	if phone, ok := stringField(fields, "phone"); ok && phone != "" {
		sub.Phone = &phone
	}
	return sub
}

// stringField returns the trimmed string value of key. ok is false when the
// key is missing or not a string.
func stringField(fields map[string]any, key string) (string, bool) {
	s, ok := fields[key].(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// validEmail is a syntax-only check: a bare addr-spec with a dotted,
// hostname-shaped domain. No DNS lookups.
func validEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at > 64 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	return validDomain(domain)
}

func validDomain(domain string) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || utf8.RuneCountInString(l) > 63 {
			return false
		}
		if strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
			return false
		}
		for _, r := range l {
			if r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
	}
	tld := labels[len(labels)-1]
	return strings.IndexFunc(tld, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0
}
