// Package strategy holds per-field value strategies. A strategy is bound
// to one field for one generation call and invoked once per record; any
// mutable state it carries (sequential counters) is scoped to that call.
package strategy

import "math/rand"

type Strategy interface {
	Next(rng *rand.Rand) (interface{}, error)
}

// Func adapts a plain function to Strategy. Used for provider-backed
// values that need no parameters of their own.
type Func func(rng *rand.Rand) (interface{}, error)

func (f Func) Next(rng *rand.Rand) (interface{}, error) { return f(rng) }

// FromString wraps a string-producing provider call.
func FromString(fn func() string) Strategy {
	return Func(func(rng *rand.Rand) (interface{}, error) {
		return fn(), nil
	})
}

// FromRandString wraps a string-producing provider call that draws from
// the call's rng.
func FromRandString(fn func(rng *rand.Rand) string) Strategy {
	return Func(func(rng *rand.Rand) (interface{}, error) {
		return fn(rng), nil
	})
}
