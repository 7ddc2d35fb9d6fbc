package strategy

import (
	"fmt"
	"math"
	"math/rand"
)

// SequentialInt yields 1, 2, 3, ... across one generation call. The
// counter is owned by this instance, never shared between calls.
type SequentialInt struct {
	next int64
}

func (s *SequentialInt) Next(rng *rand.Rand) (interface{}, error) {
	s.next++
	return s.next, nil
}

// UniformInt yields integers in [Min, Max], both ends inclusive.
type UniformInt struct {
	Min, Max int64
}

func (s *UniformInt) Next(rng *rand.Rand) (interface{}, error) {
	if s.Max < s.Min {
		return nil, fmt.Errorf("uniform int: max (%d) below min (%d)", s.Max, s.Min)
	}
	return s.Min + rng.Int63n(s.Max-s.Min+1), nil
}

// UniformFloat yields floats in [Min, Max).
type UniformFloat struct {
	Min, Max float64
}

func (s *UniformFloat) Next(rng *rand.Rand) (interface{}, error) {
	return s.Min + rng.Float64()*(s.Max-s.Min), nil
}

// Decimal yields floats in [Min, Max) rounded to two fractional digits.
type Decimal struct {
	Min, Max float64
}

func (s *Decimal) Next(rng *rand.Rand) (interface{}, error) {
	v := s.Min + rng.Float64()*(s.Max-s.Min)
	return math.Round(v*100) / 100, nil
}

// Money yields a formatted money string in [Min, Max) with two decimals,
// prefixed with the configured currency symbol.
type Money struct {
	Symbol   string
	Min, Max float64
}

func (s *Money) Next(rng *rand.Rand) (interface{}, error) {
	v := s.Min + rng.Float64()*(s.Max-s.Min)
	return fmt.Sprintf("%s%.2f", s.Symbol, v), nil
}

// Bool yields a fair random boolean.
type Bool struct{}

func (s *Bool) Next(rng *rand.Rand) (interface{}, error) {
	return rng.Intn(2) == 1, nil
}
