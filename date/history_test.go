package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}
}

func TestAppend_Overwrites(t *testing.T) {
	h := new(History[float64])
	d := New(2025, 01, 01)
	h.Append(d, 1.0)
	h.Append(d, 2.0)
	if h.Len() != 1 {
		t.Fatalf("History.Len() = %v want 1", h.Len())
	}
	if v, _ := h.Get(d); v != 2.0 {
		t.Errorf("Get(d) = %v want 2.0, last append wins", v)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2021, 1, 4), 0.8)
	h.Append(New(2021, 1, 8), 0.9)

	// Exact match.
	if v, ok := h.ValueAsOf(New(2021, 1, 4)); !ok || v != 0.8 {
		t.Errorf("ValueAsOf(2021-01-04) = %v, %v want 0.8, true", v, ok)
	}
	// In between: closest prior wins.
	if v, ok := h.ValueAsOf(New(2021, 1, 6)); !ok || v != 0.8 {
		t.Errorf("ValueAsOf(2021-01-06) = %v, %v want 0.8, true", v, ok)
	}
	// After the last point: latest wins.
	if v, ok := h.ValueAsOf(New(2022, 1, 1)); !ok || v != 0.9 {
		t.Errorf("ValueAsOf(2022-01-01) = %v, %v want 0.9, true", v, ok)
	}
	// Before the earliest point: absent, not an error.
	if _, ok := h.ValueAsOf(New(2020, 12, 31)); ok {
		t.Errorf("ValueAsOf(2020-12-31) = _, true want false, no data on or before")
	}
}

func TestValueAsOf_Empty(t *testing.T) {
	h := new(History[float64])
	if _, ok := h.ValueAsOf(New(2021, 1, 1)); ok {
		t.Errorf("ValueAsOf() on an empty history should report false")
	}
}
