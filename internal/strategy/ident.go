package strategy

import (
	"fmt"
	"math/rand"
	"net/url"

	"github.com/google/uuid"
)

// UUID4 yields version-4 UUID strings derived from the call's rng, so
// identifiers reproduce under a fixed seed.
type UUID4 struct{}

func (s *UUID4) Next(rng *rand.Rand) (interface{}, error) {
	b := make([]byte, 16)
	rng.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(b)
	if err != nil {
		return nil, err
	}
	return u.String(), nil
}

// URI wraps a URL-producing provider call and round-trips the result
// through url.Parse, so only well-formed absolute URIs reach records.
type URI struct {
	Source func() string
}

func (s *URI) Next(rng *rand.Rand) (interface{}, error) {
	raw := s.Source()
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse uri %q: %w", raw, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("uri %q is not absolute", raw)
	}
	return u.String(), nil
}
