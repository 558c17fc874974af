package parser

import (
	"testing"
	"time"

	"github.com/fazi9228/cs-data-processor/internal/model"
)

func TestCoerceDate_SerialNumbers(t *testing.T) {
	t.Parallel()

	got := CoerceDate(float64(44197))
	want := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	if got != want {
		t.Fatalf("serial 44197: got=%v want=%v", got, want)
	}

	got = CoerceDate(44197.5)
	want = time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	if got != want {
		t.Fatalf("serial 44197.5: got=%v want=%v", got, want)
	}

	// Serial arriving as text behaves like the number.
	got = CoerceDate("44197")
	want = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	if got != want {
		t.Fatalf("serial string: got=%v want=%v", got, want)
	}
}

func TestCoerceDate_DayFirstPreferred(t *testing.T) {
	t.Parallel()

	// Ambiguous slash dates read day-first: 05/03 is the 5th of March.
	got := CoerceDate("05/03/2021 14:30")
	want := time.Date(2021, 3, 5, 14, 30, 0, 0, time.UTC)
	if got != want {
		t.Fatalf("day-first: got=%v want=%v", got, want)
	}

	// Month-first is the fallback when day-first cannot parse.
	got = CoerceDate("12/31/2021")
	want = time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	if got != want {
		t.Fatalf("month-first fallback: got=%v want=%v", got, want)
	}

	got = CoerceDate("2021-03-05 14:30:00")
	want = time.Date(2021, 3, 5, 14, 30, 0, 0, time.UTC)
	if got != want {
		t.Fatalf("iso: got=%v want=%v", got, want)
	}
}

func TestCoerceDate_UnparseableBecomesNull(t *testing.T) {
	t.Parallel()

	for _, v := range []model.Cell{"not a date", "", "  ", nil} {
		if got := CoerceDate(v); got != nil {
			t.Fatalf("value %v: got=%v want=nil", v, got)
		}
	}
}

func TestCoerceNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   model.Cell
		want model.Cell
	}{
		{"12", 12.0},
		{"abc", nil},
		{"", nil},
		{nil, nil},
		{"1,234.5", 1234.5},
		{"85%", nil},
		{3.5, 3.5},
		{7, 7.0},
		{time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), nil},
	}
	for _, c := range cases {
		if got := CoerceNumber(c.in); got != c.want {
			t.Fatalf("CoerceNumber(%v): got=%v want=%v", c.in, got, c.want)
		}
	}

	// Idempotent: re-coercing a coerced value changes nothing.
	if got := CoerceNumber(CoerceNumber("12")); got != 12.0 {
		t.Fatalf("idempotence: got=%v want=12", got)
	}
}

func TestCoerceText(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "nan", "NaT", "None"} {
		if got := CoerceText(token); got != nil {
			t.Fatalf("placeholder %q: got=%v want=nil", token, got)
		}
	}

	// Genuine text passes through untouched, including numeric-looking values.
	for _, s := range []string{"0", "NAN", "none", "agent left", " "} {
		if got := CoerceText(s); got != s {
			t.Fatalf("text %q: got=%v want=%q", s, got, s)
		}
	}

	if got := CoerceText(3.5); got != "3.5" {
		t.Fatalf("float: got=%v want=3.5", got)
	}
	if got := CoerceText(float64(100)); got != "100" {
		t.Fatalf("whole float: got=%v want=100", got)
	}
	if got := CoerceText(time.Date(2021, 3, 5, 14, 30, 0, 0, time.UTC)); got != "2021-03-05 14:30:00" {
		t.Fatalf("time: got=%v", got)
	}
}
