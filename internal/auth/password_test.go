package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error = %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals plaintext")
	}

	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Errorf("ComparePassword with correct password: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Error("ComparePassword accepted a wrong password")
	}
}
