package domain

// Config is the generation configuration. It is passed explicitly into
// every Generate call; DefaultConfig documents the defaults.
type Config struct {
	Seed           int64  `json:"seed" yaml:"seed"`
	Locale         string `json:"locale" yaml:"locale"`
	CurrencySymbol string `json:"currency_symbol" yaml:"currency_symbol"`
}

func DefaultConfig() Config {
	return Config{
		Seed:           1,
		Locale:         "en",
		CurrencySymbol: "$",
	}
}

type TypeTag string

const (
	TypeString    TypeTag = "string"
	TypeInt16     TypeTag = "int16"
	TypeInt32     TypeTag = "int32"
	TypeInt64     TypeTag = "int64"
	TypeFloat32   TypeTag = "float32"
	TypeFloat64   TypeTag = "float64"
	TypeDecimal   TypeTag = "decimal"
	TypeBool      TypeTag = "bool"
	TypeTimestamp TypeTag = "timestamp"
	TypeUUID      TypeTag = "uuid"
	TypeURI       TypeTag = "uri"
	TypeDuration  TypeTag = "duration"
)

// KnownTypeTags lists every tag the resolver's fallback table covers.
var KnownTypeTags = []TypeTag{
	TypeString, TypeInt16, TypeInt32, TypeInt64,
	TypeFloat32, TypeFloat64, TypeDecimal, TypeBool,
	TypeTimestamp, TypeUUID, TypeURI, TypeDuration,
}

func (t TypeTag) Valid() bool {
	for _, k := range KnownTypeTags {
		if t == k {
			return true
		}
	}
	return false
}

func (t TypeTag) IsInteger() bool {
	return t == TypeInt16 || t == TypeInt32 || t == TypeInt64
}

func (t TypeTag) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// Field describes one column of a shape. Nullable covers both nullable(T)
// and optional timestamps; resolved strategies always produce a present
// value for nullable fields.
type Field struct {
	Name     string  `json:"name" yaml:"name"`
	Type     TypeTag `json:"type" yaml:"type"`
	Nullable bool    `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// Shape is the target record shape. Fields are ordered; records are
// emitted in this order. Rows and Seed are defaults a shape file may
// carry, overridable per run.
type Shape struct {
	Name   string  `json:"name" yaml:"name"`
	Table  string  `json:"table,omitempty" yaml:"table,omitempty"`
	Rows   int     `json:"rows,omitempty" yaml:"rows,omitempty"`
	Seed   *int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// TargetTable returns the table a DB sink should write to.
func (s *Shape) TargetTable() string {
	if s.Table != "" {
		return s.Table
	}
	return s.Name
}

// FieldNames returns the column names in shape order.
func (s *Shape) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Record holds one generated record's values, aligned with the owning
// shape's field order.
type Record []interface{}

// RunSummary describes one completed generation run.
type RunSummary struct {
	Shape           string  `json:"shape"`
	Rows            int     `json:"rows"`
	Seed            int64   `json:"seed"`
	Fingerprint     string  `json:"fingerprint"`
	Destination     string  `json:"destination"`
	DurationSeconds float64 `json:"duration_seconds"`
}
