/*
Package hashtable provides an open-addressing hash table from string keys to
values of any type, with caller-pluggable value destruction.

Basic usage:

	import hashtable "github.com/gadilabi/hash-table"

	t, err := hashtable.New[*Session](50)
	if err != nil {
		log.Fatal(err)
	}
	defer t.Destroy()

	// Close sessions the table drops on update, delete and destroy.
	t.SetDestructor(func(s *Session) { s.Close() })

	outcome, err := t.Insert("alice", newSession())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(outcome) // inserted

	if s, ok := t.Get("alice"); ok {
		s.Touch()
	}

	if err := t.Delete("bob"); errors.Is(err, hashtable.ErrNotFound) {
		fmt.Println("no bob")
	}

Features:

  - Linear probing with wraparound; a probe never visits more than Cap() slots
  - Polynomial rolling hash (prime 31) by default, xxHash via WithHasher(XXHash)
  - Grows before an insert would push occupancy past the load factor (0.2 by
    default), multiplying the capacity by the growth factor (2 by default)
  - Exact key comparison; a key that is a prefix of a stored key never matches it
  - Deletion by backward shift, so no tombstones accumulate
  - Structured debug logging of resizes through zap

Ownership:

The table owns every value passed to a successful Insert. When a value
leaves the table, by being overwritten, deleted or destroyed, the table
calls the destructor set with SetDestructor exactly once and then drops its
reference. Callers must not release a value themselves after handing it to
the table.

A Table is meant for a single owner and is not safe for concurrent use.
*/
package hashtable
