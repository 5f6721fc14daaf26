package helpers

import "testing"

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}

	if !CompareHashAndPassword(hash, "secret123") {
		t.Fatal("correct password did not verify")
	}
	if CompareHashAndPassword(hash, "wrong-password") {
		t.Fatal("wrong password verified")
	}
}

func TestHash_SaltUniqueness(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext are identical; salt is not unique")
	}
	if !CompareHashAndPassword(h1, "same-password") || !CompareHashAndPassword(h2, "same-password") {
		t.Fatal("hashes do not verify against their own plaintext")
	}
}
