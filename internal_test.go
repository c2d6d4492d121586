package hashtable

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRollingHash(t *testing.T) {
	testCases := []struct {
		key  string
		mod  int
		want int
	}{
		{"", 7, 0},
		{"a", 100, 7},
		{"ab", 1000, 255},
		{"abc", 1 << 20, 889822},
		{"key 0", 1, 0},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q_mod_%d", tc.key, tc.mod), func(t *testing.T) {
			if got := RollingHash(tc.key, tc.mod); got != tc.want {
				t.Errorf("RollingHash(%q, %d) = %d, want %d", tc.key, tc.mod, got, tc.want)
			}
		})
	}
}

func TestHashersStayInRange(t *testing.T) {
	for _, mod := range []int{1, 2, 7, 50, 100, 1 << 16} {
		for i := 0; i < 500; i++ {
			key := fmt.Sprintf("key %d", i)
			if h := RollingHash(key, mod); h < 0 || h >= mod {
				t.Fatalf("RollingHash(%q, %d) = %d out of range", key, mod, h)
			}
			if h := XXHash(key, mod); h < 0 || h >= mod {
				t.Fatalf("XXHash(%q, %d) = %d out of range", key, mod, h)
			}
		}
	}
}

func TestHomeNormalizesHasherOutput(t *testing.T) {
	ht, err := New[int](8, WithHasher(func(string, int) int { return -3 }), WithLoadFactor(0.5))
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	if h := ht.home("x"); h != 5 {
		t.Errorf("Expected home 5 for hasher output -3, got %d", h)
	}
}

func TestCloseGapShiftsWrappedCluster(t *testing.T) {
	homes := map[string]int{"a": 6, "b": 6, "c": 7, "d": 6}
	ht, err := New[string](8,
		WithHasher(func(key string, mod int) int { return homes[key] % mod }),
		WithLoadFactor(0.9))
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	for _, k := range []string{"a", "b", "c", "d"} {
		ht.Insert(k, k)
	}

	want := map[int]string{6: "a", 7: "b", 0: "c", 1: "d"}
	for idx, key := range want {
		if ht.slots[idx].key != key {
			t.Fatalf("Expected %q in slot %d before delete, got %q", key, idx, ht.slots[idx].key)
		}
	}
	if lp := ht.Stats().LongestProbe; lp != 3 {
		t.Errorf("Expected longest probe 3, got %d", lp)
	}

	if err := ht.Delete("b"); err != nil {
		t.Fatalf("Failed to delete b: %v", err)
	}

	want = map[int]string{6: "a", 7: "c", 0: "d"}
	for idx, key := range want {
		if ht.slots[idx].key != key {
			t.Errorf("Expected %q in slot %d after delete, got %q", key, idx, ht.slots[idx].key)
		}
	}
	if ht.slots[1].used {
		t.Errorf("Expected slot 1 emptied by the shift, holds %q", ht.slots[1].key)
	}
}

func TestCapacityExhausted(t *testing.T) {
	ht, err := New[int](4, WithLoadFactor(0.9))
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	// A threshold above 1 disables growth so the array can fill up.
	ht.cfg.loadFactor = 2

	for i := 0; i < 4; i++ {
		if _, err := ht.Insert(fmt.Sprintf("k%d", i), i); err != nil {
			t.Fatalf("Failed to insert k%d: %v", i, err)
		}
	}

	if _, err := ht.Insert("overflow", 4); !errors.Is(err, ErrCapacityExhausted) {
		t.Fatalf("Expected ErrCapacityExhausted, got %v", err)
	}
	if _, found := ht.Get("overflow"); found {
		t.Error("Expected lookup on a full table to terminate with absent")
	}

	// Updates still succeed on a full table.
	if outcome, err := ht.Insert("k2", 20); err != nil || outcome != Updated {
		t.Errorf("Expected update on full table, got %v, %v", outcome, err)
	}
}

func TestResizeLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ht, err := New[int](5, WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	// The second insert crosses 0.2 of 5 slots.
	ht.Insert("a", 1)
	ht.Insert("b", 2)

	started := logs.FilterMessage("resize started").All()
	if len(started) != 1 {
		t.Fatalf("Expected one resize log, got %d", len(started))
	}
	fields := started[0].ContextMap()
	if fields["old_capacity"] != int64(5) || fields["new_capacity"] != int64(10) {
		t.Errorf("Unexpected resize fields: %v", fields)
	}
	if ht.Stats().Resizes != 1 {
		t.Errorf("Expected one recorded resize, got %d", ht.Stats().Resizes)
	}
}

func TestPackageLogger(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Expected a default logger")
	}

	prev := Logger()
	defer SetLogger(prev)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	ht, err := New[int](1)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	ht.Insert("a", 1)

	if logs.FilterMessage("resize complete").Len() == 0 {
		t.Error("Expected resize logged through the package logger")
	}
}
