package auth

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet is the character set for landlord invite codes: uppercase
// alphanumeric, so codes survive being read aloud or written down.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateLandlordCode creates a random 6-character invite code.
//
// With a 36-character alphabet the space is 36^6 ≈ 2.2 billion codes, so
// collisions are rare — but not impossible, which is why registration
// retries on a uniqueness violation rather than assuming the draw is free.
func GenerateLandlordCode() (string, error) {
	b := make([]byte, landlordCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating landlord code: %w", err)
	}

	code := make([]byte, landlordCodeLength)
	for i, v := range b {
		code[i] = codeAlphabet[int(v)%len(codeAlphabet)]
	}
	return string(code), nil
}
