package usermap

import "github.com/cespare/xxhash/v2"

// KeyHasher maps a username to the integer its home slot is derived from.
type KeyHasher func(username string) uint64

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// FNV1a computes the 32-bit FNV-1a hash of the username bytes.
// It is the default KeyHasher.
func FNV1a(username string) uint64 {
	hash := uint32(offset32)
	for i := 0; i < len(username); i++ {
		hash ^= uint32(username[i])
		hash *= prime32
	}
	return uint64(hash)
}

// XXHash computes the 64-bit xxHash of the username.
func XXHash(username string) uint64 {
	return xxhash.Sum64String(username)
}
