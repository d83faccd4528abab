package validation

import (
	"strings"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "user@example.com", true},
		{"subdomain tld", "test.user@company.co.uk", true},
		{"plus tag", "john+tag@example.com", true},
		{"underscore and hyphen", "name_123@test-domain.com", true},
		{"digits first", "123user@example.com", true},
		{"two letter tld", "user@example.co", true},
		{"leading and trailing spaces", "  user@example.com  ", true},
		{"tab and newline", "\tuser@example.com\n", true},
		{"no at sign", "invalid", false},
		{"nothing after at", "invalid@", false},
		{"nothing before at", "@example.com", false},
		{"empty domain label", "user@.com", false},
		{"no tld", "user@domain", false},
		{"one letter tld", "user@example.c", false},
		{"double at", "user@@example.com", false},
		{"interior space", "user @example.com", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestStructEmailTag(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}

	if err := Struct(form{Email: "user@example.com"}); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	if err := Struct(form{Email: "not-an-email"}); err == nil {
		t.Error("invalid email accepted")
	}
	if err := Struct(form{}); err == nil {
		t.Error("missing email accepted")
	}
}

func TestMessages(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := Struct(form{Email: "bogus"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msgs := Messages(err)
	if len(msgs) != 2 {
		t.Fatalf("Messages() returned %d messages, want 2: %v", len(msgs), msgs)
	}
	joined := strings.Join(msgs, " ")
	if !strings.Contains(joined, "Please fill in your name.") {
		t.Errorf("missing required-name message in %v", msgs)
	}
	if !strings.Contains(joined, "Please enter a valid email address.") {
		t.Errorf("missing email message in %v", msgs)
	}
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Email", "email"},
		{"Name", "name"},
		{"CurrentProcess", "current process"},
	}
	for _, tt := range tests {
		if got := fieldLabel(tt.in); got != tt.want {
			t.Errorf("fieldLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
