package hashtable

import "github.com/cespare/xxhash/v2"

// HashPrime is the multiplier of the rolling hash.
const HashPrime = 31

// Hasher maps a key to a start index in [0, mod).
type Hasher func(key string, mod int) int

// RollingHash computes a polynomial rolling hash of key reduced modulo mod.
// Every byte is folded in as h = (31*h + b) % mod, followed by one extra
// h = (31*h) % mod step.
func RollingHash(key string, mod int) int {
	h := 0
	for i := 0; i < len(key); i++ {
		h = (HashPrime*h + int(key[i])) % mod
	}
	return (HashPrime * h) % mod
}

// XXHash reduces the 64-bit xxHash of key modulo mod.
func XXHash(key string, mod int) int {
	return int(xxhash.Sum64String(key) % uint64(mod))
}
