package resolve

import (
	"fmt"

	"github.com/mmrzaf/fixgen/internal/domain"
	"github.com/mmrzaf/fixgen/internal/strategy"
)

// fallback is the universal type-driven default, used when no name rule
// binds. Nullable fields get the same strategy as their base type; the
// fallback always produces a present value.
func (r *Resolver) fallback(f domain.Field) (strategy.Strategy, error) {
	switch f.Type {
	case domain.TypeString:
		return strategy.FromString(r.prov.Word), nil
	case domain.TypeInt16, domain.TypeInt32:
		return &strategy.UniformInt{Min: 1, Max: 100}, nil
	case domain.TypeInt64:
		return &strategy.UniformInt{Min: 1, Max: 10000}, nil
	case domain.TypeFloat32, domain.TypeFloat64:
		return &strategy.UniformFloat{Min: 1, Max: 100}, nil
	case domain.TypeDecimal:
		return &strategy.Decimal{Min: 1, Max: 100}, nil
	case domain.TypeBool:
		return &strategy.Bool{}, nil
	case domain.TypeTimestamp:
		return &strategy.PastTime{Anchor: r.anchor, Window: r.pastWindow}, nil
	case domain.TypeUUID:
		return &strategy.UUID4{}, nil
	case domain.TypeURI:
		return &strategy.URI{Source: r.prov.URL}, nil
	case domain.TypeDuration:
		return &strategy.Duration{MinMinutes: 1, MaxMinutes: 500}, nil
	default:
		return nil, fmt.Errorf("field %q: %w: %q", f.Name, ErrUnsupportedFieldType, f.Type)
	}
}
