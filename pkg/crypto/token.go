package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

const (
	// DefaultTokenLength is the token byte length (256 bits).
	DefaultTokenLength = 32
)

var ErrEmptyToken = errors.New("token and hash cannot be empty")

// TokenPair couples a raw token with the hash that goes to storage. The
// raw value is handed to the client once and never stored.
type TokenPair struct {
	Token string // value returned to client
	Hash  string // value in storage
}

// GenerateToken returns a random URL-safe token of byteLength bytes,
// falling back to DefaultTokenLength for non-positive input.
func GenerateToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = DefaultTokenLength
	}

	bytes := make([]byte, byteLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// GenerateHashedToken returns a fresh token alongside its storage hash.
func GenerateHashedToken() (*TokenPair, error) {
	token, err := GenerateToken(DefaultTokenLength)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Token: token, Hash: HashToken(token)}, nil
}

// HashToken is the storage-side digest of a raw token.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// VerifyToken compares a raw token against a stored hash in constant time.
func VerifyToken(token, storedHash string) (bool, error) {
	if token == "" || storedHash == "" {
		return false, ErrEmptyToken
	}
	tokenHash := HashToken(token)
	return subtle.ConstantTimeCompare([]byte(tokenHash), []byte(storedHash)) == 1, nil
}
