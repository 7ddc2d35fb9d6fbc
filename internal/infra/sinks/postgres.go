package sinks

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/mmrzaf/fixgen/internal/domain"
)

type PostgresSink struct {
	dsn    string
	schema string
	db     *sql.DB
}

func NewPostgresSink(dsn, schema string) *PostgresSink {
	if schema == "" {
		schema = "public"
	}
	return &PostgresSink{dsn: dsn, schema: schema}
}

// NewPostgresSinkWithDB wraps an existing connection. Tests use it to
// drive the sink against a mock.
func NewPostgresSinkWithDB(db *sql.DB, schema string) *PostgresSink {
	if schema == "" {
		schema = "public"
	}
	return &PostgresSink{db: db, schema: schema}
}

func (s *PostgresSink) Connect() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *PostgresSink) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresSink) EnsureTable(shape *domain.Shape) error {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2
		)`, s.schema, shape.TargetTable(),
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	defs := make([]string, len(shape.Fields))
	for i, f := range shape.Fields {
		null := " NOT NULL"
		if f.Nullable {
			null = ""
		}
		defs[i] = fmt.Sprintf("%s %s%s", f.Name, postgresType(f.Type), null)
	}
	_, err = s.db.Exec(fmt.Sprintf("CREATE TABLE %s.%s (%s)",
		s.schema, shape.TargetTable(), strings.Join(defs, ", ")))
	return err
}

func postgresType(t domain.TypeTag) string {
	switch t {
	case domain.TypeInt16:
		return "SMALLINT"
	case domain.TypeInt32:
		return "INTEGER"
	case domain.TypeInt64:
		return "BIGINT"
	case domain.TypeFloat32:
		return "REAL"
	case domain.TypeFloat64:
		return "DOUBLE PRECISION"
	case domain.TypeDecimal:
		return "NUMERIC(12,2)"
	case domain.TypeBool:
		return "BOOLEAN"
	case domain.TypeTimestamp:
		return "TIMESTAMPTZ"
	case domain.TypeUUID:
		return "UUID"
	default:
		return "TEXT"
	}
}

func (s *PostgresSink) Truncate(table string) error {
	_, err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s.%s", s.schema, table))
	return err
}

func (s *PostgresSink) InsertBatch(table string, columns []string, rows []domain.Record) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES (%s)",
		s.schema, table, strings.Join(columns, ", "), strings.Join(placeholders, ", ")))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]interface{}, len(row))
		for i, val := range row {
			if d, ok := val.(time.Duration); ok {
				args[i] = d.String()
			} else {
				args[i] = val
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}
