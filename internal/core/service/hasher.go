package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the original schema hook's work factor.
const bcryptCost = 10

// PasswordHasher abstracts the one-way password digest so the account
// service stays testable without real bcrypt work.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// BcryptHasher hashes with a fresh random salt per call; the salt and cost
// are embedded in the digest, so Verify needs no extra state.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(digest), nil
}

func (BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
