package utils

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "testpassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "" {
		t.Error("HashPassword() returned empty string")
	}

	if hash == password {
		t.Error("HashPassword() should not return plaintext password")
	}

	if len(hash) < 50 {
		t.Errorf("hash seems too short: %d chars", len(hash))
	}
}

func TestHashPassword_DifferentHashes(t *testing.T) {
	password := "testpassword"

	hash1, _ := HashPassword(password)
	hash2, _ := HashPassword(password)

	if hash1 == hash2 {
		t.Error("same password should produce different hashes (due to salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "correctpassword"
	hash, _ := HashPassword(password)

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword should accept the correct password")
	}

	if CheckPassword("wrongpassword", hash) {
		t.Error("CheckPassword should reject a wrong password")
	}
}

func TestCheckPassword_EmptyInputs(t *testing.T) {
	if CheckPassword("", "") {
		t.Error("empty password and hash should not verify")
	}

	hash, _ := HashPassword("something")
	if CheckPassword("", hash) {
		t.Error("empty password should not verify against a real hash")
	}
}
