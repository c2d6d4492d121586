package hashtable

import "errors"

var (
	// ErrNotFound is returned by Delete when the key is not stored.
	ErrNotFound = errors.New("hashtable: key not found")

	// ErrEmptyKey is returned by Insert for the empty string.
	ErrEmptyKey = errors.New("hashtable: empty key")

	// ErrCapacityExhausted means an insert probed every slot without finding
	// room. Growth runs before every insert, so seeing it indicates a broken
	// Hasher or a bug in the table.
	ErrCapacityExhausted = errors.New("hashtable: capacity exhausted")

	ErrInvalidCapacity = errors.New("hashtable: invalid capacity")
	ErrInvalidConfig   = errors.New("hashtable: invalid config")

	// ErrDestroyed is returned by mutating calls made after Destroy.
	ErrDestroyed = errors.New("hashtable: table destroyed")
)
