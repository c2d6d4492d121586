package hashtable

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// Outcome reports whether Insert added a new key or replaced an existing one.
type Outcome int

const (
	Inserted Outcome = iota + 1
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Destructor releases a value the table no longer holds.
type Destructor[V any] func(V)

// Table is an open-addressing hash table from string keys to values of type V.
// It is not safe for concurrent use.
type Table[V any] struct {
	slots   []slot[V]
	count   int
	resizes int
	release Destructor[V]
	cfg     config
	dead    bool
}

// slot is empty exactly when used is false; key and value are zero then.
type slot[V any] struct {
	key   string
	value V
	used  bool
}

type probeResult int

const (
	probeMatch probeResult = iota
	probeEmpty
	probeExhausted
)

// New creates a table with the given initial number of slots.
func New[V any](capacity int, opts ...Option) (*Table[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Table[V]{
		slots: make([]slot[V], capacity),
		cfg:   cfg,
	}, nil
}

// SetDestructor sets the function called on every value the table drops:
// the old value on update, the removed value on Delete, and every remaining
// value on Destroy. Passing nil restores the default of dropping the reference.
func (t *Table[V]) SetDestructor(fn Destructor[V]) {
	t.release = fn
}

// Len returns the number of stored keys.
func (t *Table[V]) Len() int { return t.count }

// Cap returns the number of slots in the backing array.
func (t *Table[V]) Cap() int { return len(t.slots) }

// LoadFactor returns Len()/Cap().
func (t *Table[V]) LoadFactor() float64 {
	if len(t.slots) == 0 {
		return 0
	}
	return float64(t.count) / float64(len(t.slots))
}

// Insert stores value under key, taking ownership of value. If key is
// already present, the previous value is released and Updated is returned.
func (t *Table[V]) Insert(key string, value V) (Outcome, error) {
	if t.dead {
		return 0, ErrDestroyed
	}
	if key == "" {
		return 0, ErrEmptyKey
	}

	if t.overloaded(t.count + 1) {
		t.grow()
	}

	idx, res := t.probe(key)
	switch res {
	case probeEmpty:
		t.slots[idx] = slot[V]{key: key, value: value, used: true}
		t.count++
		return Inserted, nil
	case probeMatch:
		old := t.slots[idx].value
		t.slots[idx].key = key
		t.slots[idx].value = value
		t.drop(old)
		return Updated, nil
	}

	t.cfg.logger.Error("insert probed every slot",
		zap.String("key", key),
		zap.Int("capacity", len(t.slots)),
		zap.Int("count", t.count))
	return 0, fmt.Errorf("%w: %d slots probed for %q", ErrCapacityExhausted, len(t.slots), key)
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	var zero V
	if t.count == 0 {
		return zero, false
	}

	idx, res := t.probe(key)
	if res != probeMatch {
		return zero, false
	}
	return t.slots[idx].value, true
}

// Keys returns every stored key in backing-array order, or nil if the table
// is empty. The slice is a snapshot owned by the caller.
func (t *Table[V]) Keys() []string {
	if t.count == 0 {
		return nil
	}

	keys := make([]string, 0, t.count)
	for i := range t.slots {
		if t.slots[i].used {
			keys = append(keys, t.slots[i].key)
		}
	}
	return keys
}

// All yields every key and value in backing-array order. The table must not
// be modified while iterating.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range t.slots {
			if !t.slots[i].used {
				continue
			}
			if !yield(t.slots[i].key, t.slots[i].value) {
				return
			}
		}
	}
}

// Delete removes key and releases its value.
func (t *Table[V]) Delete(key string) error {
	if t.dead {
		return ErrDestroyed
	}
	if t.count == 0 {
		return fmt.Errorf("delete %q: %w", key, ErrNotFound)
	}

	idx, res := t.probe(key)
	if res != probeMatch {
		return fmt.Errorf("delete %q: %w", key, ErrNotFound)
	}

	old := t.slots[idx].value
	t.slots[idx] = slot[V]{}
	t.count--
	t.closeGap(idx)
	t.drop(old)
	return nil
}

// Destroy releases every stored value and the backing array. The table
// must not be used afterwards; mutating calls return ErrDestroyed.
func (t *Table[V]) Destroy() {
	if t.dead {
		return
	}
	for i := range t.slots {
		if t.slots[i].used {
			t.drop(t.slots[i].value)
		}
	}
	t.slots = nil
	t.count = 0
	t.dead = true
}

// Stats describes the table layout.
type Stats struct {
	Count    int
	Capacity int
	Resizes  int
	// LongestProbe is the largest distance between an entry's home slot
	// and the slot it occupies.
	LongestProbe int
}

func (t *Table[V]) Stats() Stats {
	s := Stats{Count: t.count, Capacity: len(t.slots), Resizes: t.resizes}
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		if d := t.distance(t.home(t.slots[i].key), i); d > s.LongestProbe {
			s.LongestProbe = d
		}
	}
	return s
}

// Layout returns the key held by each slot of the backing array, with "" for
// empty slots. It is meant for diagnostics.
func (t *Table[V]) Layout() []string {
	layout := make([]string, len(t.slots))
	for i := range t.slots {
		layout[i] = t.slots[i].key
	}
	return layout
}

func (t *Table[V]) drop(v V) {
	if t.release != nil {
		t.release(v)
	}
}

func (t *Table[V]) overloaded(n int) bool {
	return float64(n)/float64(len(t.slots)) > t.cfg.loadFactor
}

func (t *Table[V]) home(key string) int {
	n := len(t.slots)
	h := t.cfg.hasher(key, n) % n
	if h < 0 {
		h += n
	}
	return h
}

// distance is the number of forward steps from slot i to slot j.
func (t *Table[V]) distance(i, j int) int {
	if j >= i {
		return j - i
	}
	return len(t.slots) - i + j
}

// probe walks from key's home slot and stops at the matching slot, the
// first empty slot, or after visiting every slot once.
func (t *Table[V]) probe(key string) (int, probeResult) {
	n := len(t.slots)
	idx := t.home(key)
	for range n {
		s := &t.slots[idx]
		if !s.used {
			return idx, probeEmpty
		}
		if s.key == key {
			return idx, probeMatch
		}
		idx++
		if idx == n {
			idx = 0
		}
	}
	return -1, probeExhausted
}

// closeGap restores reachability after slot hole was emptied by shifting
// later members of the same cluster back into it.
func (t *Table[V]) closeGap(hole int) {
	n := len(t.slots)
	for j := (hole + 1) % n; t.slots[j].used; j = (j + 1) % n {
		h := t.home(t.slots[j].key)
		// The entry at j stays if its home lies cyclically in (hole, j].
		if t.distance(h, j) < t.distance(hole, j) {
			continue
		}
		t.slots[hole] = t.slots[j]
		t.slots[j] = slot[V]{}
		hole = j
	}
}

// grow multiplies the capacity until one more entry fits under the load
// factor, then relocates every entry using the new modulus.
func (t *Table[V]) grow() {
	oldSlots := t.slots
	newCap := len(oldSlots)
	for float64(t.count+1)/float64(newCap) > t.cfg.loadFactor {
		newCap *= t.cfg.growthFactor
	}

	t.cfg.logger.Debug("resize started",
		zap.Int("old_capacity", len(oldSlots)),
		zap.Int("new_capacity", newCap),
		zap.Int("count", t.count))

	t.slots = make([]slot[V], newCap)
	for i := range oldSlots {
		if !oldSlots[i].used {
			continue
		}
		idx, res := t.probe(oldSlots[i].key)
		if res != probeEmpty {
			panic(fmt.Sprintf("hashtable: relocating %q during resize to %d slots", oldSlots[i].key, newCap))
		}
		t.slots[idx] = oldSlots[i]
	}
	t.resizes++

	t.cfg.logger.Debug("resize complete",
		zap.Int("capacity", newCap),
		zap.Int("count", t.count))
}
