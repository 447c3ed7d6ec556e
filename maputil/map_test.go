package maputil

import (
	"testing"
)

// ============== MapGet 测试 ==============

func TestMapGet_KeyExists(t *testing.T) {
	m := map[string]int{"users": 1, "orders": 2}
	v, ok := MapGet(m, "orders", func(i int) int { return i * 10 })
	if !ok {
		t.Error("expected ok to be true")
	}
	if v != 20 {
		t.Errorf("expected v to be 20, got %d", v)
	}
}

func TestMapGet_KeyNotExists(t *testing.T) {
	m := map[string]int{"users": 1}
	v, ok := MapGet(m, "missing", func(i int) int { return i * 10 })
	if ok {
		t.Error("expected ok to be false")
	}
	if v != 0 {
		t.Errorf("expected zero value, got %d", v)
	}
}

func TestMapGet_ValueFuncNil(t *testing.T) {
	m := map[string]int{"users": 1}
	v, ok := MapGet[string, string, int](m, "users", nil)
	if !ok {
		t.Error("expected ok to be true when key exists")
	}
	if v != "" {
		t.Errorf("expected zero value when value func is nil, got %q", v)
	}
}

func TestMapGet_NilMap(t *testing.T) {
	var m map[string]int
	_, ok := MapGet(m, "any", func(i int) int { return i })
	if ok {
		t.Error("expected ok to be false for nil map")
	}
}

func TestMapGet_TransformType(t *testing.T) {
	type handle struct{ name string }
	m := map[string]*handle{"u": {name: "users"}}
	v, ok := MapGet(m, "u", func(h *handle) string { return h.name })
	if !ok {
		t.Error("expected ok to be true")
	}
	if v != "users" {
		t.Errorf("expected users, got %s", v)
	}
}

// ============== MapBy 测试 ==============

func TestMapBy_Basic(t *testing.T) {
	list := []string{"apple", "banana", "cherry"}
	m := MapBy(list, func(s string) string { return s[:1] }, func(s string) int { return len(s) })

	if len(m) != 3 {
		t.Errorf("expected map length 3, got %d", len(m))
	}
	if m["a"] != 5 || m["b"] != 6 || m["c"] != 6 {
		t.Errorf("unexpected map %v", m)
	}
}

func TestMapBy_NilSlice(t *testing.T) {
	var list []int
	m := MapBy(list, func(i int) int { return i }, func(i int) string { return "x" })
	if m == nil {
		t.Error("expected non-nil map")
	}
	if len(m) != 0 {
		t.Errorf("expected empty map, got length %d", len(m))
	}
}

func TestMapBy_DuplicateKeys_LastWins(t *testing.T) {
	type item struct {
		alias string
		name  string
	}
	list := []item{
		{alias: "u", name: "users"},
		{alias: "o", name: "orders"},
		{alias: "u", name: "accounts"}, // 重复 alias
	}
	m := MapBy(list, func(i item) string { return i.alias }, func(i item) string { return i.name })

	if len(m) != 2 {
		t.Errorf("expected map length 2, got %d", len(m))
	}
	if m["u"] != "accounts" {
		t.Errorf("expected last wins, got %s", m["u"])
	}
}

// ============== SortedKeys 测试 ==============

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"y": 1, "x": 2, "z": 3}
	keys := SortedKeys(m)
	want := []string{"x", "y", "z"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d]: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func TestSortedKeys_Empty(t *testing.T) {
	keys := SortedKeys(map[int]string{})
	if keys == nil || len(keys) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", keys)
	}
}
