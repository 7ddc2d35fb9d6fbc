package sinks

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/mmrzaf/fixgen/internal/domain"
)

type MySQLSink struct {
	dsn string
	db  *sql.DB
}

func NewMySQLSink(dsn string) *MySQLSink {
	return &MySQLSink{dsn: strings.TrimPrefix(dsn, "mysql://")}
}

func (s *MySQLSink) Connect() error {
	db, err := sql.Open("mysql", s.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *MySQLSink) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *MySQLSink) EnsureTable(shape *domain.Shape) error {
	defs := make([]string, len(shape.Fields))
	for i, f := range shape.Fields {
		null := " NOT NULL"
		if f.Nullable {
			null = ""
		}
		defs[i] = fmt.Sprintf("`%s` %s%s", f.Name, mysqlType(f.Type), null)
	}
	_, err := s.db.Exec(fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` (%s)",
		shape.TargetTable(), strings.Join(defs, ", ")))
	return err
}

func mysqlType(t domain.TypeTag) string {
	switch t {
	case domain.TypeInt16:
		return "SMALLINT"
	case domain.TypeInt32:
		return "INT"
	case domain.TypeInt64:
		return "BIGINT"
	case domain.TypeFloat32:
		return "FLOAT"
	case domain.TypeFloat64:
		return "DOUBLE"
	case domain.TypeDecimal:
		return "DECIMAL(12,2)"
	case domain.TypeBool:
		return "TINYINT(1)"
	case domain.TypeTimestamp:
		return "DATETIME"
	case domain.TypeUUID:
		return "CHAR(36)"
	case domain.TypeString, domain.TypeURI, domain.TypeDuration:
		return "VARCHAR(255)"
	default:
		return "TEXT"
	}
}

func (s *MySQLSink) Truncate(table string) error {
	_, err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table))
	return err
}

func (s *MySQLSink) InsertBatch(table string, columns []string, rows []domain.Record) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = "`" + c + "`"
		placeholders[i] = "?"
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO `%s` (%s) VALUES (%s)",
		table, strings.Join(quoted, ", "), strings.Join(placeholders, ", ")))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]interface{}, len(row))
		for i, val := range row {
			switch v := val.(type) {
			case time.Time:
				args[i] = v.Format("2006-01-02 15:04:05")
			case time.Duration:
				args[i] = v.String()
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
