// Package output encodes generated records to flat file formats,
// preserving the shape's field order.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mmrzaf/fixgen/internal/domain"
)

// WriteJSONL writes one JSON object per line. Objects are assembled
// field by field so key order follows the shape, not map iteration.
func WriteJSONL(w io.Writer, shape *domain.Shape, records []domain.Record) error {
	for _, rec := range records {
		if _, err := io.WriteString(w, "{"); err != nil {
			return err
		}
		for i, f := range shape.Fields {
			key, err := json.Marshal(f.Name)
			if err != nil {
				return err
			}
			val, err := json.Marshal(normalize(rec[i]))
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
			sep := ","
			if i == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%s%s:%s", sep, key, val); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "}\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes a header row of field names followed by one row per
// record.
func WriteCSV(w io.Writer, shape *domain.Shape, records []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(shape.FieldNames()); err != nil {
		return err
	}
	row := make([]string, len(shape.Fields))
	for _, rec := range records {
		for i := range shape.Fields {
			row[i] = formatValue(rec[i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable renders records as an aligned text table for terminals.
func WriteTable(w io.Writer, shape *domain.Shape, records []domain.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := make([]string, len(shape.Fields))
	for i, f := range shape.Fields {
		header[i] = strings.ToUpper(f.Name)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	row := make([]string, len(shape.Fields))
	for _, rec := range records {
		for i := range shape.Fields {
			row[i] = formatValue(rec[i])
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case time.Duration:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return v
	}
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339)
	case time.Duration:
		return val.String()
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
