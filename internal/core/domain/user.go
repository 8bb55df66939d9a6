package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var ErrRegistrationFieldsMissing = errors.New("username, email and password are required")
var ErrLoginFieldsMissing = errors.New("email and password are required")
var ErrEmailTaken = errors.New("user with this email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrPasswordMismatch = errors.New("password mismatch")
var ErrInvalidToken = errors.New("invalid or expired token")

// User models a registered account. PasswordHash only ever holds the bcrypt
// digest once the record has been through the credential-sealing pass.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"userName" validate:"required"`
	Email        string    `json:"email" validate:"required"`
	PasswordHash string    `json:"-" validate:"required"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var schemaValidate = validator.New()

// ValidateSchema enforces the document-level constraints checked before a
// record becomes durable.
func (u *User) ValidateSchema() error {
	return schemaValidate.Struct(u)
}

// ValidatePassword enforces the schema-level password minimum on the
// plaintext, before hashing. This is a schema rule, not a handler rule:
// the request handlers only require non-emptiness, so a violation here
// surfaces as an unexpected (500) error, matching the store-side minlength
// of the original contract.
func ValidatePassword(plaintext string) error {
	if err := schemaValidate.Var(plaintext, "required,min=6"); err != nil {
		return fmt.Errorf("password schema validation: %w", err)
	}
	return nil
}

// NormalizeEmail trims surrounding whitespace and lower-cases. Applied
// identically at write and lookup time so email matching is
// case/whitespace-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUserName trims surrounding whitespace.
func NormalizeUserName(name string) string {
	return strings.TrimSpace(name)
}
