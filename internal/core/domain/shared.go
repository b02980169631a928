package domain

import "math"

type ID string

func ValidateID(id string) bool {
	return len(id) == 24
}

// Amount is a whole-colón value. CRC has no decimal subdivision, so there
// are no minor units to track.
type Amount int

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

// Round converts a fractional intermediate (tax, simulated inventory value)
// back to a whole-colón amount, rounding half away from zero.
func Round(v float64) Amount {
	return Amount(math.Round(v))
}

// RoundUnits applies the same rounding policy to unit counts.
func RoundUnits(v float64) int {
	return int(math.Round(v))
}

type Event interface {
	GetName() string
	GetEntityName() string
}
