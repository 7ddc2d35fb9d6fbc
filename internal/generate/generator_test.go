package generate

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mmrzaf/fixgen/internal/domain"
)

var fixedNow = time.Date(2026, 5, 10, 8, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func orderShape() *domain.Shape {
	return &domain.Shape{
		Name: "orders",
		Fields: []domain.Field{
			{Name: "id", Type: domain.TypeInt64},
			{Name: "name", Type: domain.TypeString},
			{Name: "email", Type: domain.TypeString},
			{Name: "quantity", Type: domain.TypeInt32},
			{Name: "price", Type: domain.TypeDecimal},
		},
	}
}

func TestNegativeTotalFails(t *testing.T) {
	g := New(WithClock(fixedClock))
	_, err := g.Generate(orderShape(), domain.DefaultConfig(), -1)
	if !errors.Is(err, ErrInvalidTotal) {
		t.Fatalf("expected ErrInvalidTotal, got %v", err)
	}
}

func TestCountInvariant(t *testing.T) {
	g := New(WithClock(fixedClock))
	for _, total := range []int{0, 1, 57} {
		records, err := g.Generate(orderShape(), domain.DefaultConfig(), total)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != total {
			t.Fatalf("total %d: got %d records", total, len(records))
		}
	}
}

func TestZeroFieldShapeYieldsEmptyRecords(t *testing.T) {
	g := New(WithClock(fixedClock))
	records, err := g.Generate(&domain.Shape{Name: "empty"}, domain.DefaultConfig(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	for _, rec := range records {
		if len(rec) != 0 {
			t.Fatalf("expected empty record, got %v", rec)
		}
	}
}

func TestDeterminism(t *testing.T) {
	shape := orderShape()
	shape.Fields = append(shape.Fields,
		domain.Field{Name: "createdDate", Type: domain.TypeTimestamp},
		domain.Field{Name: "ref", Type: domain.TypeUUID},
	)
	cfg := domain.Config{Seed: 42, Locale: "en", CurrencySymbol: "$"}

	g := New(WithClock(fixedClock))
	first, err := g.Generate(shape, cfg, 25)
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Generate(shape, cfg, 25)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two calls with identical inputs diverged")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	g := New(WithClock(fixedClock))
	a, err := g.Generate(orderShape(), domain.Config{Seed: 1, Locale: "en", CurrencySymbol: "$"}, 10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Generate(orderShape(), domain.Config{Seed: 2, Locale: "en", CurrencySymbol: "$"}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a, b) {
		t.Fatal("different seeds produced identical output")
	}
}

func TestSequentialIDSpansWholeBatch(t *testing.T) {
	g := New(WithClock(fixedClock))
	records, err := g.Generate(orderShape(), domain.DefaultConfig(), 10)
	if err != nil {
		t.Fatal(err)
	}
	for i, rec := range records {
		if rec[0] != int64(i+1) {
			t.Fatalf("record %d: id %v, want %d", i, rec[0], i+1)
		}
	}
}

func TestQuantityBoundsOverLargeBatch(t *testing.T) {
	g := New(WithClock(fixedClock))
	records, err := g.Generate(orderShape(), domain.DefaultConfig(), 1000)
	if err != nil {
		t.Fatal(err)
	}
	for i, rec := range records {
		q := rec[3].(int64)
		if q < 1 || q > 10 {
			t.Fatalf("record %d: quantity %d out of [1,10]", i, q)
		}
	}
}

func TestUnsupportedFieldTypeSurfaces(t *testing.T) {
	shape := &domain.Shape{
		Name:   "bad",
		Fields: []domain.Field{{Name: "payload", Type: "blob"}},
	}
	g := New(WithClock(fixedClock))
	_, err := g.Generate(shape, domain.DefaultConfig(), 1)
	if err == nil {
		t.Fatal("expected resolution error")
	}
	if !strings.Contains(err.Error(), "payload") {
		t.Fatalf("error should name the field: %v", err)
	}
}

func TestEndToEndScenario(t *testing.T) {
	cfg := domain.Config{Seed: 123, Locale: "en", CurrencySymbol: "$"}
	g := New(WithClock(fixedClock))

	records, err := g.Generate(orderShape(), cfg, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	for i, rec := range records {
		if rec[0] != int64(i+1) {
			t.Fatalf("record %d: id %v, want %d", i, rec[0], i+1)
		}
		name := rec[1].(string)
		email := rec[2].(string)
		if name == "" {
			t.Fatalf("record %d: empty name", i)
		}
		if email == "" || !strings.Contains(email, "@") {
			t.Fatalf("record %d: implausible email %q", i, email)
		}
		q := rec[3].(int64)
		if q < 1 || q > 10 {
			t.Fatalf("record %d: quantity %d out of [1,10]", i, q)
		}
		price := rec[4].(string)
		if !strings.HasPrefix(price, "$") {
			t.Fatalf("record %d: price %q missing $ prefix", i, price)
		}
	}

	again, err := g.Generate(orderShape(), cfg, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(records, again) {
		t.Fatal("re-running the scenario did not reproduce the records")
	}
}

func TestConcurrentCallsStayIndependent(t *testing.T) {
	g := New(WithClock(fixedClock))
	cfg := domain.Config{Seed: 99, Locale: "en", CurrencySymbol: "$"}

	baseline, err := g.Generate(orderShape(), cfg, 50)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([][]domain.Record, 8)
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = g.Generate(orderShape(), cfg, 50)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		if !reflect.DeepEqual(results[i], baseline) {
			t.Fatalf("concurrent call %d diverged from baseline", i)
		}
	}
}
