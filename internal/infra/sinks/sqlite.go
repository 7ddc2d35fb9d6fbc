package sinks

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mmrzaf/fixgen/internal/domain"
)

type SQLiteSink struct {
	path string
	db   *sql.DB
}

func NewSQLiteSink(path string) *SQLiteSink {
	return &SQLiteSink{path: path}
}

func (s *SQLiteSink) Connect() error {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *SQLiteSink) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteSink) EnsureTable(shape *domain.Shape) error {
	var name string
	err := s.db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name=?`,
		shape.TargetTable(),
	).Scan(&name)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	defs := make([]string, len(shape.Fields))
	for i, f := range shape.Fields {
		null := " NOT NULL"
		if f.Nullable {
			null = ""
		}
		defs[i] = fmt.Sprintf("%s %s%s", f.Name, sqliteType(f.Type), null)
	}
	_, err = s.db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)",
		shape.TargetTable(), strings.Join(defs, ", ")))
	return err
}

func sqliteType(t domain.TypeTag) string {
	switch {
	case t.IsInteger(), t == domain.TypeBool:
		return "INTEGER"
	case t.IsFloat(), t == domain.TypeDecimal:
		return "REAL"
	default:
		return "TEXT"
	}
}

func (s *SQLiteSink) Truncate(table string) error {
	_, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", table))
	return err
}

func (s *SQLiteSink) InsertBatch(table string, columns []string, rows []domain.Record) error {
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
		placeholders[i] = "?"
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", ")))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]interface{}, len(row))
		for i, val := range row {
			switch v := val.(type) {
			case time.Time:
				args[i] = v.Format(time.RFC3339)
			case time.Duration:
				args[i] = v.String()
			case bool:
				if v {
					args[i] = 1
				} else {
					args[i] = 0
				}
			default:
				args[i] = val
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}
