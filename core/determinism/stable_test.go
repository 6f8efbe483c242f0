package determinism

import (
	"reflect"
	"testing"
)

func TestStableMapOrder(t *testing.T) {
	m := NewStableMap[string, int]()
	m.SetIfAbsent("plumbing", 3)
	m.SetIfAbsent("cleaning", 1)
	m.SetIfAbsent("lawn-care", 2)

	expected := []string{"cleaning", "lawn-care", "plumbing"}
	if got := m.Keys(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected keys %v, got %v", expected, got)
	}
	if got := m.Values(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("expected values in key order, got %v", got)
	}
}

func TestStableMapSetIfAbsent(t *testing.T) {
	m := NewStableMap[string, int]()
	if !m.SetIfAbsent("fence", 1) {
		t.Fatal("expected first insert to succeed")
	}
	if m.SetIfAbsent("fence", 2) {
		t.Error("expected second insert to be rejected")
	}
	if v, _ := m.Get("fence"); v != 1 {
		t.Errorf("expected original value 1, got %d", v)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", m.Len())
	}
}

func TestRangeMapSortedStops(t *testing.T) {
	var seen []string
	RangeMapSorted(map[string]int{"roofing": 3, "fence": 1, "hvac": 2}, func(k string, _ int) bool {
		seen = append(seen, k)
		return len(seen) < 2
	})
	if !reflect.DeepEqual(seen, []string{"fence", "hvac"}) {
		t.Errorf("expected [fence hvac], got %v", seen)
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]bool{"b": true, "a": true, "c": false})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", got)
	}
}
