package domain

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		" Ada@Example.com ":  "ada@example.com",
		"ada@example.com":    "ada@example.com",
		"\tADA@EXAMPLE.COM ": "ada@example.com",
		"":                   "",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeUserName(t *testing.T) {
	if got := NormalizeUserName("  Ada "); got != "Ada" {
		t.Fatalf("NormalizeUserName = %q, want Ada", got)
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret1"); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
	if err := ValidatePassword("abc"); err == nil {
		t.Fatalf("short password accepted")
	}
	if err := ValidatePassword(""); err == nil {
		t.Fatalf("empty password accepted")
	}
}

func TestUser_ValidateSchema(t *testing.T) {
	u := &User{UserName: "Ada", Email: "ada@example.com", PasswordHash: "$2a$10$digest"}
	if err := u.ValidateSchema(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	missing := &User{UserName: "Ada", Email: "ada@example.com"}
	if err := missing.ValidateSchema(); err == nil {
		t.Fatalf("record without password hash accepted")
	}
}
