package crypto

import (
	"crypto/rand"
)

const (
	nanoidAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

	// 21 * 6 bits = 126 bits of entropy, on par with a uuid.
	nanoidSize = 21
)

// NanoID returns a short URL-safe unique id for stored records.
//
// The alphabet has 64 characters, so each random byte maps onto it with a
// 6-bit mask and no modulo bias.
func NanoID() (string, error) {
	bytes := make([]byte, nanoidSize)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	id := make([]byte, nanoidSize)
	for i, b := range bytes {
		id[i] = nanoidAlphabet[b&0x3f]
	}
	return string(id), nil
}
