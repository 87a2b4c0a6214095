package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Uppercase base-36 alphabet used for human-facing ticket numbers.
	upperAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Generate creates a random short ID with the specified length using Base62
// encoding. The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	return generate(alphabet, length)
}

// GenerateUpper creates a random uppercase alphanumeric ID with the
// specified length. Ticket numbers use this form so they stay readable
// when printed on a job card or read over the phone.
func GenerateUpper(length int) (string, error) {
	return generate(upperAlphabet, length)
}

// MustGenerate creates a random short ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix-RANDOM"
// using the uppercase alphabet, e.g. "TK-7GQ2M1XC".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := GenerateUpper(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, id), nil
}

func generate(alpha string, length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alpha)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alpha[num.Int64()]
	}

	return string(result), nil
}
