// Package gameid generates short, time-sortable game identifiers.
//
// An ID packs a 48-bit millisecond timestamp followed by 32 random bits into
// 16 characters of Crockford base32. IDs created later sort later, which keeps
// simulation logs and statistics naturally ordered.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// Crockford's base32 alphabet
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource interface for dependency injection of randomness
type RandSource interface {
	Intn(n int) int
}

// Generate creates a new game ID using crypto/rand for the random tail.
func Generate() string {
	return GenerateWithRandSource(nil)
}

// GenerateWithRandSource creates a new game ID using the provided RandSource,
// falling back to crypto/rand when nil. Deterministic sources are for tests.
func GenerateWithRandSource(randSource RandSource) string {
	var raw [10]byte

	now := time.Now().UnixMilli()
	raw[0] = byte(now >> 40)
	raw[1] = byte(now >> 32)
	raw[2] = byte(now >> 24)
	raw[3] = byte(now >> 16)
	raw[4] = byte(now >> 8)
	raw[5] = byte(now)

	if randSource != nil {
		for i := 6; i < 10; i++ {
			raw[i] = byte(randSource.Intn(256))
		}
	} else {
		if _, err := rand.Read(raw[6:]); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
	}

	return encodeBase32(raw)
}

// encodeBase32 encodes 80 bits as 16 base32 characters, 5 bits per character,
// most significant bits first.
func encodeBase32(raw [10]byte) string {
	result := make([]byte, 16)

	var acc uint64
	var bits uint
	next := 0
	out := 0
	for out < 16 {
		if bits < 5 {
			acc = acc<<8 | uint64(raw[next])
			next++
			bits += 8
		}
		bits -= 5
		result[out] = alphabet[(acc>>bits)&0x1f]
		out++
	}

	return string(result)
}

// Validate checks that a game ID is 16 characters of valid base32.
func Validate(id string) error {
	if len(id) != 16 {
		return fmt.Errorf("game ID must be exactly 16 characters, got %d", len(id))
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
