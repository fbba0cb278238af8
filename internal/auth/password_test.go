package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt at the default cost is slow by design, so these tests share one
// digest produced at the minimum cost.
var testDigest string

func digestFor(t *testing.T, password string) string {
	t.Helper()
	if testDigest == "" {
		d, err := NewHasher(bcrypt.MinCost).Hash(password)
		if err != nil {
			t.Fatalf("Hash error: %v", err)
		}
		testDigest = d
	}
	return testDigest
}

func TestHasher_UsesConfiguredCost(t *testing.T) {
	digest, err := NewHasher(bcrypt.MinCost).Hash("abcdef")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Errorf("digest cost = %d, want configured cost %d", cost, bcrypt.MinCost)
	}
}

func TestHasher_DefaultCost(t *testing.T) {
	if testing.Short() {
		t.Skip("default-cost hashing is slow")
	}
	digest, err := NewHasher(0).Hash("abcdef")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost != HashCost {
		t.Errorf("digest cost = %d, want default %d", cost, HashCost)
	}
}

func TestCheckPassword_Roundtrip(t *testing.T) {
	const password = "abcdef"
	digest := digestFor(t, password)

	if digest == password {
		t.Fatal("digest must not equal the plaintext")
	}
	if !CheckPassword(password, digest) {
		t.Error("correct password did not verify")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	digest := digestFor(t, "abcdef")

	if CheckPassword("abcdeg", digest) {
		t.Error("wrong password verified")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	// Must return false, never panic or surface an error.
	if CheckPassword("abcdef", "not-a-bcrypt-digest") {
		t.Error("malformed digest verified")
	}
	if CheckPassword("abcdef", "") {
		t.Error("empty digest verified")
	}
}
