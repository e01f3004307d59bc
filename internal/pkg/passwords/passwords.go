// Package passwords provides argon2id hashing and verification for agent
// credentials. Hashes are encoded in the PHC string format so parameters
// travel with the hash and can be raised without invalidating stored values.
package passwords

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"paquexpress/internal/pkg/errs"
)

// Argon2id parameters. Chosen per the RFC 9106 low-memory recommendation.
const (
	timeCost   = 3
	memoryCost = 64 * 1024
	threads    = 4
	saltLength = 16
	keyLength  = 32
)

// ErrHashIsMalformed is returned when a stored hash cannot be parsed.
var ErrHashIsMalformed = errs.NewValueIsInvalidError("password hash")

// Hash derives an argon2id hash from the given password under a random salt.
// Returns the PHC-encoded string to persist alongside the agent.
func Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, timeCost, memoryCost, threads, keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memoryCost, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether the password matches the PHC-encoded hash.
// Comparison is constant-time; a malformed hash yields an error, never a match.
func Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrHashIsMalformed
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrHashIsMalformed
	}
	if version != argon2.Version {
		return false, ErrHashIsMalformed
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false, ErrHashIsMalformed
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrHashIsMalformed
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrHashIsMalformed
	}

	key := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}
