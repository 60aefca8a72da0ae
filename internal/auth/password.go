package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// hashParams are the Argon2id cost settings recorded alongside each hash.
// Verification always recomputes with the stored settings, so accounts
// hashed under older costs keep working after these defaults change.
type hashParams struct {
	iterations  uint32
	memoryKiB   uint32
	parallelism uint8
}

// defaultHashParams follow the OWASP guidance for interactive logins.
var defaultHashParams = hashParams{
	iterations:  3,
	memoryKiB:   64 * 1024,
	parallelism: 1,
}

const (
	passwordSaltLen = 16
	passwordKeyLen  = 32
)

var errMalformedHash = errors.New("malformed password hash")

// HashPassword derives an Argon2id hash of the password with a fresh
// random salt and returns it PHC-encoded.
func HashPassword(password string) (string, error) {
	salt := make([]byte, passwordSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	p := defaultHashParams
	key := argon2.IDKey([]byte(password), salt, p.iterations, p.memoryKiB, p.parallelism, passwordKeyLen)

	return encodePHC(p, salt, key), nil
}

// VerifyPassword reports whether the password matches the PHC-encoded
// hash. The comparison is constant-time.
func VerifyPassword(password, encoded string) (bool, error) {
	p, salt, key, err := decodePHC(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.iterations, p.memoryKiB, p.parallelism, uint32(len(key))) //nolint:gosec // key length always fits uint32

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// encodePHC renders the standard PHC string:
// $argon2id$v=19$m=65536,t=3,p=1$<salt>$<key>
func encodePHC(p hashParams, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memoryKiB, p.iterations, p.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// decodePHC parses a PHC string back into its cost settings, salt, and
// derived key. Only argon2id at the library's pinned version is accepted.
func decodePHC(encoded string) (p hashParams, salt, key []byte, err error) {
	rest, ok := strings.CutPrefix(encoded, "$argon2id$")
	if !ok {
		return p, nil, nil, errMalformedHash
	}

	fields := strings.Split(rest, "$")
	if len(fields) != 4 { //nolint:mnd // version, params, salt, key
		return p, nil, nil, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(fields[0], "v=%d", &version); err != nil { //nolint:govet // shadow: err re-declared in nested scope
		return p, nil, nil, errMalformedHash
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(fields[1], "m=%d,t=%d,p=%d", &p.memoryKiB, &p.iterations, &p.parallelism); err != nil { //nolint:govet // shadow: err re-declared in nested scope
		return p, nil, nil, errMalformedHash
	}

	if salt, err = base64.RawStdEncoding.DecodeString(fields[2]); err != nil {
		return p, nil, nil, errMalformedHash
	}
	if key, err = base64.RawStdEncoding.DecodeString(fields[3]); err != nil {
		return p, nil, nil, errMalformedHash
	}

	return p, salt, key, nil
}
