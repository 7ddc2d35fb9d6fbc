// Package shape derives record shapes from Go structs. Reflection runs
// once, producing plain field descriptors; everything downstream of the
// resolver is decoupled from the reflect package.
package shape

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmrzaf/fixgen/internal/domain"
	"github.com/mmrzaf/fixgen/internal/resolve"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
	urlType      = reflect.TypeOf(url.URL{})
)

// FromStruct builds a Shape from a struct value or pointer to struct.
// Field names come from the json tag when present, otherwise the Go
// field name. Pointer fields become nullable descriptors.
func FromStruct(v interface{}) (*domain.Shape, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("shape: nil value")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("shape: expected struct, got %s", t.Kind())
	}

	s := &domain.Shape{Name: strings.ToLower(t.Name())}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		name := fieldName(sf)
		if name == "-" {
			continue
		}

		ft := sf.Type
		nullable := false
		if ft.Kind() == reflect.Ptr {
			nullable = true
			ft = ft.Elem()
		}

		tag, err := typeTagFor(ft)
		if err != nil {
			return nil, fmt.Errorf("shape %q, field %q: %w", t.Name(), sf.Name, err)
		}
		s.Fields = append(s.Fields, domain.Field{Name: name, Type: tag, Nullable: nullable})
	}
	return s, nil
}

func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return sf.Name
	}
	return name
}

func typeTagFor(t reflect.Type) (domain.TypeTag, error) {
	switch t {
	case timeType:
		return domain.TypeTimestamp, nil
	case durationType:
		return domain.TypeDuration, nil
	case uuidType:
		return domain.TypeUUID, nil
	case urlType:
		return domain.TypeURI, nil
	}

	switch t.Kind() {
	case reflect.String:
		return domain.TypeString, nil
	case reflect.Int16:
		return domain.TypeInt16, nil
	case reflect.Int, reflect.Int32:
		return domain.TypeInt32, nil
	case reflect.Int64:
		return domain.TypeInt64, nil
	case reflect.Float32:
		return domain.TypeFloat32, nil
	case reflect.Float64:
		return domain.TypeFloat64, nil
	case reflect.Bool:
		return domain.TypeBool, nil
	default:
		return "", fmt.Errorf("%w: Go type %s", resolve.ErrUnsupportedFieldType, t)
	}
}
