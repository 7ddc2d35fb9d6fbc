// Package sinks writes generated records into databases. Each sink maps
// shape type tags onto its engine's column types and inserts in batched
// transactions.
package sinks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mmrzaf/fixgen/internal/domain"
)

type Sink interface {
	Connect() error
	Close() error
	EnsureTable(shape *domain.Shape) error
	Truncate(table string) error
	InsertBatch(table string, columns []string, rows []domain.Record) error
}

type Factory func(dsn string) Sink

// Registry maps sink kinds to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(kind string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
}

func (r *Registry) Open(kind, dsn string) (Sink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown sink kind: %s", kind)
	}
	return f(dsn), nil
}

func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	return kinds
}

// DefaultRegistry wires the built-in sink kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("sqlite", func(dsn string) Sink { return NewSQLiteSink(dsn) })
	r.Register("postgres", func(dsn string) Sink { return NewPostgresSink(dsn, "") })
	r.Register("mysql", func(dsn string) Sink { return NewMySQLSink(dsn) })
	return r
}

// InferKind guesses the sink kind from a DSN: URL schemes for postgres
// and mysql, tcp-address DSNs for mysql, file extensions for sqlite.
func InferKind(dsn string) (string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", nil
	case strings.HasPrefix(dsn, "mysql://"), strings.Contains(dsn, "@tcp("):
		return "mysql", nil
	case strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"),
		strings.HasSuffix(dsn, ".sqlite3"):
		return "sqlite", nil
	default:
		return "", fmt.Errorf("cannot infer sink kind from DSN: %s", dsn)
	}
}
