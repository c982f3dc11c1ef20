package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals plaintext")
	}
	if !h.Verify("s3cret", hash) {
		t.Fatal("Verify returned false for correct password")
	}
	if h.Verify("wrong", hash) {
		t.Fatal("Verify returned true for wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password are identical")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatal("salted hashes do not both verify")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	if !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatal("Verify returned true for malformed hash")
	}
	if h.Verify("anything", "") {
		t.Fatal("Verify returned true for empty hash")
	}
}
