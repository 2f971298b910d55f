package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Stripe-style prefixes of the external identifiers exposed by the API.
const (
	PrefixUser          = "usr"
	PrefixConnection    = "conn"
	PrefixConnectionLog = "log"
)

// Generate creates a cryptographically random, URL-safe Base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	max := big.NewInt(int64(len(alphabet)))
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// NewPrefixed returns "prefix_<random>".
func NewPrefixed(prefix string) (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

func NewUserID() (string, error)          { return NewPrefixed(PrefixUser) }
func NewConnectionID() (string, error)    { return NewPrefixed(PrefixConnection) }
func NewConnectionLogID() (string, error) { return NewPrefixed(PrefixConnectionLog) }

// ParsePrefixedID splits "prefix_short" into its parts.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	prefix, shortID, ok := strings.Cut(prefixedID, "_")
	if !ok || prefix == "" || shortID == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return prefix, shortID, nil
}

// HasPrefix reports whether prefixedID is well formed and carries expectedPrefix.
func HasPrefix(prefixedID, expectedPrefix string) bool {
	prefix, _, err := ParsePrefixedID(prefixedID)
	return err == nil && prefix == expectedPrefix
}
