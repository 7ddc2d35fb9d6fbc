package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mmrzaf/fixgen/internal/domain"
)

// identifier validation: simple SQL identifiers only, so shape and field
// names can be spliced into DDL safely.
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reservedWords = map[string]struct{}{
		"all": {}, "alter": {}, "and": {}, "as": {}, "create": {},
		"delete": {}, "drop": {}, "from": {}, "group": {}, "insert": {},
		"into": {}, "join": {}, "not": {}, "null": {}, "or": {},
		"order": {}, "select": {}, "set": {}, "table": {}, "truncate": {},
		"union": {}, "update": {}, "values": {}, "where": {},
	}
)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !identRe.MatchString(s) {
		return false
	}
	_, reserved := reservedWords[strings.ToLower(s)]
	return !reserved
}

// ValidateShape checks a shape before generation: valid identifiers,
// unique field names, known type tags, non-negative row default. A shape
// with zero fields is legal (it yields empty records).
func ValidateShape(s *domain.Shape) error {
	if s == nil {
		return errors.New("shape is nil")
	}
	if s.Name == "" {
		return errors.New("shape name is required")
	}
	if !IsValidIdentifier(s.Name) {
		return fmt.Errorf("invalid shape identifier: %s", s.Name)
	}
	if s.Table != "" && !IsValidIdentifier(s.Table) {
		return fmt.Errorf("invalid table identifier: %s", s.Table)
	}
	if s.Rows < 0 {
		return fmt.Errorf("rows must not be negative, got %d", s.Rows)
	}

	seen := make(map[string]bool)
	for _, f := range s.Fields {
		if f.Name == "" {
			return errors.New("field name is required")
		}
		if !IsValidIdentifier(f.Name) {
			return fmt.Errorf("invalid field identifier: %s", f.Name)
		}
		lower := strings.ToLower(f.Name)
		if seen[lower] {
			return fmt.Errorf("duplicate field name: %s", f.Name)
		}
		seen[lower] = true
		if !f.Type.Valid() {
			return fmt.Errorf("field %q: unknown type tag: %q", f.Name, f.Type)
		}
	}
	return nil
}
