package units

import (
	"errors"
	"math"
	"testing"
)

func TestConvertKnownValues(t *testing.T) {
	cases := []struct {
		req  Request
		want float64
	}{
		{Request{Temperature, Celsius, Fahrenheit, 100}, 212},
		{Request{Temperature, Fahrenheit, Celsius, 32}, 0},
		{Request{Length, Meters, Feet, 1}, 3.28084},
		{Request{Weight, Kilograms, Pounds, 10}, 22.0462},
		{Request{Weight, Pounds, Kilograms, 2.20462}, 1},
	}
	for _, tc := range cases {
		got, err := Convert(tc.req)
		if err != nil {
			t.Fatalf("Convert(%+v) error: %v", tc.req, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Convert(%+v) = %v, want %v", tc.req, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		from, to := DefaultPair(c)
		for _, v := range []float64{-40, 0, 1.5, 37, 1234.5678} {
			there, err := Convert(Request{c, from, to, v})
			if err != nil {
				t.Fatal(err)
			}
			back, err := Convert(Request{c, to, from, there})
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(back-v) > 1e-3 {
				t.Errorf("%s round trip %v -> %v -> %v", c, v, there, back)
			}
		}
	}
}

func TestSameUnitIsIdentity(t *testing.T) {
	for _, c := range Categories() {
		for _, u := range Units(c) {
			got, err := Convert(Request{c, u, u, 42.125})
			if err != nil || got != 42.125 {
				t.Errorf("%s %s identity = (%v, %v)", c, u, got, err)
			}
		}
	}
}

func TestConvertRejectsForeignUnits(t *testing.T) {
	if _, err := Convert(Request{Length, Celsius, Feet, 1}); err == nil {
		t.Fatalf("expected error for unit outside category")
	}
	if _, err := Convert(Request{"Volume", "Liters", "Gallons", 1}); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestDefaultPair(t *testing.T) {
	from, to := DefaultPair(Length)
	if from != Meters || to != Feet {
		t.Fatalf("DefaultPair(Length) = %s, %s", from, to)
	}
}

func TestParseValue(t *testing.T) {
	if v, err := ParseValue(" 12.5 "); err != nil || v != 12.5 {
		t.Fatalf("ParseValue() = (%v, %v)", v, err)
	}
	for _, in := range []string{"", "abc", "1,5", "NaN", "Inf"} {
		if _, err := ParseValue(in); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ParseValue(%q) err = %v", in, err)
		}
	}
}

func TestFormatResult(t *testing.T) {
	if got := FormatResult(22.04624); got != "Result: 22.05" {
		t.Fatalf("FormatResult() = %q", got)
	}
}
