// Package invitecode generates short, URL-safe invitation codes.
package invitecode

import (
	"crypto/rand"
	"fmt"
)

// DefaultLength is the generated code length. 12 characters over a 62-symbol
// alphabet is far beyond guessable for a 7-day-lived bearer code.
const DefaultLength = 12

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a random code of DefaultLength characters.
func Generate() (string, error) {
	return GenerateN(DefaultLength)
}

// GenerateN returns a random code of n characters drawn from the URL-safe
// alphabet. Uniqueness is not guaranteed here; callers insert against a
// unique index and retry on collision.
func GenerateN(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation code: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
