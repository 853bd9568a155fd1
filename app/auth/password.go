package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Changing these invalidates no stored hash: every hash
// carries its own parameters and is verified with the recorded ones.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

var errMalformedHash = errors.New("malformed password hash")

// HashPassword derives a salted argon2id hash and returns it in PHC string
// format ($argon2id$v=19$m=...,t=...,p=...$salt$key).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword recomputes the hash with the parameters recorded in encoded
// and compares in constant time. It returns false for malformed hashes.
func VerifyPassword(encoded, password string) bool {
	var (
		version                int
		memory, iters, threads int
		saltB64, keyB64        string
	)
	n, err := fmt.Sscanf(encoded, "$argon2id$v=%d$m=%d,t=%d,p=%d$%s",
		&version, &memory, &iters, &threads, &saltB64)
	if err != nil || n != 5 || version != argon2.Version {
		return false
	}
	// Sscanf's %s is greedy; split the trailing salt$key pair manually.
	for i := 0; i < len(saltB64); i++ {
		if saltB64[i] == '$' {
			keyB64 = saltB64[i+1:]
			saltB64 = saltB64[:i]
			break
		}
	}
	if keyB64 == "" {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(keyB64)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, uint32(iters), uint32(memory), uint8(threads), uint32(len(key)))
	return subtle.ConstantTimeCompare(derived, key) == 1
}
