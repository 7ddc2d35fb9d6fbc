package strategy

import (
	"math/rand"
	"time"
)

// PastTime yields instants uniformly inside the Window before Anchor.
// The anchor is captured once per generation call so the whole batch is
// relative to the same instant.
type PastTime struct {
	Anchor time.Time
	Window time.Duration
}

func (s *PastTime) Next(rng *rand.Rand) (interface{}, error) {
	offset := time.Duration(rng.Int63n(int64(s.Window)))
	return s.Anchor.Add(-offset), nil
}

// Duration yields durations of [MinMinutes, MaxMinutes] whole minutes.
type Duration struct {
	MinMinutes, MaxMinutes int64
}

func (s *Duration) Next(rng *rand.Rand) (interface{}, error) {
	n := s.MinMinutes + rng.Int63n(s.MaxMinutes-s.MinMinutes+1)
	return time.Duration(n) * time.Minute, nil
}
