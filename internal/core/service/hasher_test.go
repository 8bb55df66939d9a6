package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "secret1" {
		t.Fatalf("digest equals plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("digest not self-describing: %q", digest)
	}

	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcryptCost {
		t.Fatalf("expected cost %d, got %d", bcryptCost, cost)
	}

	if !h.Verify("secret1", digest) {
		t.Fatalf("Verify rejected correct password")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("Verify accepted wrong password")
	}
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher()

	a, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct digests for the same plaintext")
	}
}
