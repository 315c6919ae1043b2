// Package password hashes and verifies passwords with PBKDF2-HMAC-SHA256.
//
// Hashes use the modular crypt format "$pbkdf2-sha256$<rounds>$<salt>$<checksum>"
// where salt and checksum are encoded with the adapted base64 alphabet
// ('.' instead of '+', no padding). This is the format passlib produces, so
// hashes from existing deployments verify unchanged.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultRounds is the number of PBKDF2 iterations for new hashes.
	DefaultRounds = 29000

	SaltLength = 16
	keyLength  = 32
	identifier = "pbkdf2-sha256"
)

var (
	ErrMalformedHash = errors.New("the password hash is malformed")
	ErrInvalidRounds = errors.New("the number of rounds must be positive")
)

// ab64 is base64 with '.' in place of '+' and without padding.
var ab64 = base64.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789./").WithPadding(base64.NoPadding)

// Hasher creates password hashes.
type Hasher struct {
	Rounds int
}

// Hash returns the encoded hash of the password with a random salt.
func (h Hasher) Hash(password string) (string, error) {
	salt := make([]byte, SaltLength)
	_, err := rand.Read(salt)
	if err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}

	return h.hashWithSalt(password, salt)
}

func (h Hasher) hashWithSalt(password string, salt []byte) (string, error) {
	rounds := h.Rounds
	if rounds == 0 {
		rounds = DefaultRounds
	}

	if rounds < 0 {
		return "", ErrInvalidRounds
	}

	checksum := pbkdf2.Key([]byte(password), salt, rounds, keyLength, sha256.New)
	return fmt.Sprintf("$%s$%d$%s$%s", identifier, rounds, ab64.EncodeToString(salt), ab64.EncodeToString(checksum)), nil
}

// Verify reports if the password matches the encoded hash.
//
// The number of rounds is read from the hash, so hashes created with a
// different setting still verify.
func Verify(password, encoded string) (bool, error) {
	// "", "pbkdf2-sha256", rounds, salt, checksum
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != identifier {
		return false, ErrMalformedHash
	}

	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 {
		return false, ErrMalformedHash
	}

	salt, err := ab64.DecodeString(parts[3])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	checksum, err := ab64.DecodeString(parts[4])
	if err != nil || len(checksum) == 0 {
		return false, ErrMalformedHash
	}

	computed := pbkdf2.Key([]byte(password), salt, rounds, len(checksum), sha256.New)
	return subtle.ConstantTimeCompare(computed, checksum) == 1, nil
}
