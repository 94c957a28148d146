// Package cryptox holds the digest primitives used by user records.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the length in bytes of values returned by Digest.
const DigestSize = blake2b.Size256

// Digest hashes the secret concatenated with the salt.
//
// The result is deterministic for a given (secret, salt) pair, so a stored
// digest can be checked later by recomputing it from a candidate secret and
// the same salt. It is not a password-hashing KDF.
func Digest(secret, salt string) []byte {
	sum := blake2b.Sum256([]byte(secret + salt))
	return sum[:]
}

// Equal reports whether two digests match, in constant time.
func Equal(digest, candidate []byte) bool {
	return subtle.ConstantTimeCompare(digest, candidate) == 1
}
