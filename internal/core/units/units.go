// Package units converts between the fixed unit pairs offered by the unit
// converter panel.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"toolbox/internal/apperrors"
)

// Category groups units that convert into each other.
type Category string

const (
	Temperature Category = "Temperature"
	Length      Category = "Length"
	Weight      Category = "Weight"
)

const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Meters     = "Meters"
	Feet       = "Feet"
	Kilograms  = "Kilograms"
	Pounds     = "Pounds"
)

const (
	feetPerMeter  = 3.28084
	poundsPerKilo = 2.20462
)

var ErrInvalidValue = apperrors.Validation("Invalid input value!")

type formula func(float64) float64

type pair struct{ from, to string }

var categories = []Category{Temperature, Length, Weight}

var unitsByCategory = map[Category][]string{
	Temperature: {Celsius, Fahrenheit},
	Length:      {Meters, Feet},
	Weight:      {Kilograms, Pounds},
}

var formulas = map[pair]formula{
	{Celsius, Fahrenheit}: func(c float64) float64 { return c*9/5 + 32 },
	{Fahrenheit, Celsius}: func(f float64) float64 { return (f - 32) * 5 / 9 },
	{Meters, Feet}:        func(m float64) float64 { return m * feetPerMeter },
	{Feet, Meters}:        func(ft float64) float64 { return ft / feetPerMeter },
	{Kilograms, Pounds}:   func(kg float64) float64 { return kg * poundsPerKilo },
	{Pounds, Kilograms}:   func(lb float64) float64 { return lb / poundsPerKilo },
}

// Request is one conversion within a category.
type Request struct {
	Category Category
	From     string
	To       string
	Value    float64
}

// Categories lists the categories in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Units lists the units of c in display order.
func Units(c Category) []string {
	return append([]string(nil), unitsByCategory[c]...)
}

// DefaultPair returns the units selected when a category is picked: the
// first unit as From and the second (or the first again) as To.
func DefaultPair(c Category) (from, to string) {
	list := unitsByCategory[c]
	switch len(list) {
	case 0:
		return "", ""
	case 1:
		return list[0], list[0]
	default:
		return list[0], list[1]
	}
}

// Convert converts req.Value between two units of the same category.
// Both units must belong to req.Category.
func Convert(req Request) (float64, error) {
	list, ok := unitsByCategory[req.Category]
	if !ok {
		return 0, fmt.Errorf("unknown category %q", req.Category)
	}
	if !contains(list, req.From) || !contains(list, req.To) {
		return 0, fmt.Errorf("units %q -> %q not in %s", req.From, req.To, req.Category)
	}
	if req.From == req.To {
		return req.Value, nil
	}
	f, ok := formulas[pair{req.From, req.To}]
	if !ok {
		return 0, fmt.Errorf("no formula for %q -> %q", req.From, req.To)
	}
	return f(req.Value), nil
}

// ParseValue reads the value entry. Anything that is not a finite decimal
// number is rejected.
func ParseValue(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidValue
	}
	return v, nil
}

// FormatResult renders a converted value with two decimals.
func FormatResult(v float64) string {
	return fmt.Sprintf("Result: %.2f", v)
}

func contains(list []string, unit string) bool {
	for _, u := range list {
		if u == unit {
			return true
		}
	}
	return false
}
