package service

import (
	"slices"
	"strings"
	"testing"
)

func validFields() map[string]any {
	return map[string]any{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"message": "Hello there",
	}
}

func TestValidateContact_Valid(t *testing.T) {
	if errs := ValidateContact(validFields()); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateContact_MissingRequired(t *testing.T) {
	errs := ValidateContact(map[string]any{})
	want := []string{"Name is required", "Email is required", "Message is required"}
	if !slices.Equal(errs, want) {
		t.Errorf("expected %v, got %v", want, errs)
	}
}

func TestValidateContact_BlankRequired(t *testing.T) {
	f := map[string]any{"name": "   ", "email": "\t", "message": "\n"}
	errs := ValidateContact(f)
	want := []string{"Name is required", "Email is required", "Message is required"}
	if !slices.Equal(errs, want) {
		t.Errorf("expected %v, got %v", want, errs)
	}
}

func TestValidateContact_NonStringTreatedAsMissing(t *testing.T) {
	f := validFields()
	f["name"] = 42
	errs := ValidateContact(f)
	if !slices.Contains(errs, "Name is required") {
		t.Errorf("expected 'Name is required', got %v", errs)
	}
}

func TestValidateContact_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ada@example.com", true},
		{"Ada.Lovelace+tag@Example.co.uk", true},
		{"  ada@example.com  ", true},
		{"not-an-email", false},
		{"ada@", false},
		{"@example.com", false},
		{"ada@example", false},
		{"ada@@example.com", false},
		{"ada@exa mple.com", false},
		{"Ada <ada@example.com>", false},
		{"ada@-example.com", false},
		{"ada..l@example.com", false},
		{"ada@example.123", false},
		{"ada@[127.0.0.1]", false},
	}
	for _, tt := range tests {
		f := validFields()
		f["email"] = tt.email
		errs := ValidateContact(f)
		flagged := slices.Contains(errs, "Invalid email address")
		if flagged == tt.valid {
			t.Errorf("email %q: valid=%v but errors=%v", tt.email, tt.valid, errs)
		}
	}
}

func TestValidateContact_LengthBoundaries(t *testing.T) {
	tests := []struct {
		field string
		limit int
		msg   string
	}{
		{"name", 100, "Name must be less than 100 characters"},
		{"company", 100, "Company name must be less than 100 characters"},
		{"message", 2000, "Message must be less than 2000 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := validFields()
			f[tt.field] = strings.Repeat("a", tt.limit)
			if errs := ValidateContact(f); len(errs) != 0 {
				t.Errorf("expected %d chars accepted, got %v", tt.limit, errs)
			}

			f[tt.field] = strings.Repeat("a", tt.limit+1)
			errs := ValidateContact(f)
			if !slices.Equal(errs, []string{tt.msg}) {
				t.Errorf("expected [%q] at %d chars, got %v", tt.msg, tt.limit+1, errs)
			}
		})
	}
}

func TestValidateContact_LengthCountsRunesAfterTrim(t *testing.T) {
	f := validFields()
	f["name"] = "  " + strings.Repeat("é", 100) + "  "
	if errs := ValidateContact(f); len(errs) != 0 {
		t.Errorf("expected 100 runes with padding to pass, got %v", errs)
	}
}

func TestValidateContact_Phone(t *testing.T) {
	tests := []struct {
		phone any
		valid bool
	}{
		{"+1234567", true},
		{"1234567", true},
		{"+1 (555) 123-4567", true},
		{"", true},
		{"   ", true},
		{nil, true},
		{"abc", false},
		{"+0123456", false},
		{"123456", false},
		{"+1 234 567 890 123 456 7", false},
		{"12345678x", false},
		{1234567, false},
	}
	for _, tt := range tests {
		f := validFields()
		f["phone"] = tt.phone
		errs := ValidateContact(f)
		flagged := slices.Contains(errs, "Invalid phone number format")
		if flagged == tt.valid {
			t.Errorf("phone %v: valid=%v but errors=%v", tt.phone, tt.valid, errs)
		}
	}
}

func TestValidateContact_CollectsAllErrors(t *testing.T) {
	f := map[string]any{
		"name":    strings.Repeat("n", 101),
		"email":   "nope",
		"company": strings.Repeat("c", 101),
		"phone":   "abc",
	}
	want := []string{
		"Message is required",
		"Invalid email address",
		"Name must be less than 100 characters",
		"Company name must be less than 100 characters",
		"Invalid phone number format",
	}
	if errs := ValidateContact(f); !slices.Equal(errs, want) {
		t.Errorf("expected %v, got %v", want, errs)
	}
}

func TestNormalizeContact(t *testing.T) {
	f := map[string]any{
		"name":    "  Ada  ",
		"email":   " Ada@Example.COM ",
		"message": " hi ",
		"company": "   ",
		"phone":   " +1234567 ",
	}
	sub := NormalizeContact(f)
	if sub.Name != "Ada" || sub.Email != "ada@example.com" || sub.Message != "hi" {
		t.Errorf("unexpected normalization: %+v", sub)
	}
	if sub.Company != nil {
		t.Errorf("expected blank company to be nil, got %q", *sub.Company)
	}
	if sub.Phone == nil || *sub.Phone != "+1234567" {
		t.Errorf("expected phone +1234567, got %v", sub.Phone)
	}
}
