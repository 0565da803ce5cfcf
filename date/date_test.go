package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	// January 32nd is February 1st.
	d := New(2025, time.January, 32)
	if d != New(2025, time.February, 1) {
		t.Errorf("New(2025, January, 32) = %v want 2025-02-01", d)
	}
}

func TestAdd_AcrossMonthEnd(t *testing.T) {
	// The 30-day window routinely crosses month boundaries.
	d := New(2021, time.January, 1).Add(30)
	if d != New(2021, time.January, 31) {
		t.Errorf("2021-01-01 + 30d = %v want 2021-01-31", d)
	}
	d = New(2021, time.February, 15).Add(30)
	if d != New(2021, time.March, 17) {
		t.Errorf("2021-02-15 + 30d = %v want 2021-03-17", d)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2021-1-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d != New(2021, time.January, 1) {
		t.Errorf("Parse(2021-1-1) = %v want 2021-01-01", d)
	}

	if _, err := Parse("01-02-2021"); err == nil {
		t.Errorf("Parse(01-02-2021) expected an error, got none")
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2021, time.January, 1), New(2021, time.January, 2)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare() is inconsistent for %v and %v", a, b)
	}
}

func TestFromUnix(t *testing.T) {
	// 2021-01-01T00:00:00Z
	if d := FromUnix(1609459200); d != New(2021, time.January, 1) {
		t.Errorf("FromUnix(1609459200) = %v want 2021-01-01", d)
	}
}

func TestRangeContains(t *testing.T) {
	r := Window(New(2021, time.January, 1), 30)
	if !r.Contains(New(2021, time.January, 1)) {
		t.Errorf("window should contain its lower bound")
	}
	if !r.Contains(New(2021, time.January, 31)) {
		t.Errorf("window should contain its upper bound")
	}
	if r.Contains(New(2021, time.February, 1)) {
		t.Errorf("window should not contain a date past its upper bound")
	}
	if r.Contains(New(2020, time.December, 31)) {
		t.Errorf("window should not contain a date before its lower bound")
	}
}
