package resolve

import (
	"errors"
	"math/rand"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mmrzaf/fixgen/internal/domain"
	"github.com/mmrzaf/fixgen/internal/provider"
	"github.com/mmrzaf/fixgen/internal/strategy"
)

var testAnchor = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestResolver() *Resolver {
	return New(domain.DefaultConfig(), provider.New("en"), WithAnchor(testAnchor))
}

func resolveOrFail(t *testing.T, r *Resolver, f domain.Field) strategy.Strategy {
	t.Helper()
	s, err := r.Resolve(f)
	if err != nil {
		t.Fatalf("resolve %q: %v", f.Name, err)
	}
	return s
}

func TestRuleOrderIsStable(t *testing.T) {
	want := []string{
		"id-exact", "id-suffix", "product-short", "product-full", "color",
		"quantity", "amount", "price", "full-name", "username", "password",
		"first-name", "last-name", "email", "phone", "address", "geo",
		"score", "grade", "lorem-body", "lorem-title", "bool-prefix",
		"gender", "date",
	}
	if got := RuleNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("rule order changed:\n got %v\nwant %v", got, want)
	}
}

func TestExactIDSequential(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "id", Type: domain.TypeInt32})
	rng := rand.New(rand.NewSource(1))

	for i := int64(1); i <= 5; i++ {
		v, err := s.Next(rng)
		if err != nil {
			t.Fatal(err)
		}
		if v != i {
			t.Fatalf("sequential id: got %v, want %d", v, i)
		}
	}
}

func TestExactIDWithUUIDType(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "id", Type: domain.TypeUUID})
	rng := rand.New(rand.NewSource(7))

	v, err := s.Next(rng)
	if err != nil {
		t.Fatal(err)
	}
	u, err := uuid.Parse(v.(string))
	if err != nil {
		t.Fatalf("not a uuid: %v", v)
	}
	if u.Version() != 4 {
		t.Fatalf("expected uuid v4, got v%d", u.Version())
	}
}

func TestIDSuffixBeatsSequential(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "userid", Type: domain.TypeInt32})
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		v, err := s.Next(rng)
		if err != nil {
			t.Fatal(err)
		}
		n := v.(int64)
		if n < 1 || n > 5 {
			t.Fatalf("userid draw %d out of [1,5]: %d", i, n)
		}
	}
}

func TestQuantityRange(t *testing.T) {
	r := newTestResolver()
	for _, name := range []string{"qty", "quantity"} {
		s := resolveOrFail(t, r, domain.Field{Name: name, Type: domain.TypeInt32})
		rng := rand.New(rand.NewSource(5))
		for i := 0; i < 1000; i++ {
			v, _ := s.Next(rng)
			n := v.(int64)
			if n < 1 || n > 10 {
				t.Fatalf("%s draw out of [1,10]: %d", name, n)
			}
		}
	}
}

func TestAmountRange(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "amount", Type: domain.TypeDecimal})
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 500; i++ {
		v, _ := s.Next(rng)
		f := v.(float64)
		if f < 10 || f >= 1000 {
			t.Fatalf("amount out of [10,1000): %v", f)
		}
	}
}

func TestPriceFormatsWithCurrencySymbol(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.CurrencySymbol = "€"
	r := New(cfg, provider.New("en"), WithAnchor(testAnchor))

	s := resolveOrFail(t, r, domain.Field{Name: "price", Type: domain.TypeDecimal})
	rng := rand.New(rand.NewSource(9))

	v, _ := s.Next(rng)
	str := v.(string)
	if !strings.HasPrefix(str, "€") {
		t.Fatalf("price missing currency prefix: %q", str)
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(str, "€"), 64)
	if err != nil {
		t.Fatalf("price not numeric: %q", str)
	}
	if f < 100 || f >= 1000 {
		t.Fatalf("price out of [100,1000): %v", f)
	}
}

func TestColorBeatsBoolPrefixForStrings(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "IsColor", Type: domain.TypeString})
	rng := rand.New(rand.NewSource(2))

	v, _ := s.Next(rng)
	str, ok := v.(string)
	if !ok {
		t.Fatalf("IsColor should yield a string, got %T", v)
	}
	if str == "" {
		t.Fatal("IsColor yielded empty string")
	}
}

func TestBoolPrefixRule(t *testing.T) {
	r := newTestResolver()
	for _, name := range []string{"isActive", "hasDiscount"} {
		s := resolveOrFail(t, r, domain.Field{Name: name, Type: domain.TypeBool})
		rng := rand.New(rand.NewSource(11))

		seen := map[bool]bool{}
		for i := 0; i < 200; i++ {
			v, _ := s.Next(rng)
			b, ok := v.(bool)
			if !ok {
				t.Fatalf("%s should yield bool, got %T", name, v)
			}
			seen[b] = true
		}
		if !seen[true] || !seen[false] {
			t.Fatalf("%s: expected both booleans across 200 draws, got %v", name, seen)
		}
	}
}

func TestGenderValues(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "gender", Type: domain.TypeInt32})
	rng := rand.New(rand.NewSource(13))

	for i := 0; i < 100; i++ {
		v, _ := s.Next(rng)
		n := v.(int64)
		if n != 1 && n != 2 {
			t.Fatalf("gender outside {1,2}: %d", n)
		}
	}
}

func TestScoreAndGradeRanges(t *testing.T) {
	r := newTestResolver()
	cases := []struct {
		name     string
		min, max int64
	}{
		{"examscore", 30, 50},
		{"final_grade", 65, 100},
	}
	for _, tc := range cases {
		s := resolveOrFail(t, r, domain.Field{Name: tc.name, Type: domain.TypeInt32})
		rng := rand.New(rand.NewSource(17))
		for i := 0; i < 500; i++ {
			v, _ := s.Next(rng)
			n := v.(int64)
			if n < tc.min || n > tc.max {
				t.Fatalf("%s out of [%d,%d]: %d", tc.name, tc.min, tc.max, n)
			}
		}
	}
}

func TestDatePatternStaysInWindow(t *testing.T) {
	r := New(domain.DefaultConfig(), provider.New("en"),
		WithAnchor(testAnchor), WithPastWindow(30*24*time.Hour))
	s := resolveOrFail(t, r, domain.Field{Name: "createdDate", Type: domain.TypeTimestamp})
	rng := rand.New(rand.NewSource(19))

	for i := 0; i < 200; i++ {
		v, _ := s.Next(rng)
		ts := v.(time.Time)
		if ts.After(testAnchor) {
			t.Fatalf("past date after anchor: %v", ts)
		}
		if testAnchor.Sub(ts) > 30*24*time.Hour {
			t.Fatalf("past date outside window: %v", ts)
		}
	}
}

func TestMismatchFallsThroughToTypeFallback(t *testing.T) {
	r := newTestResolver()
	// "email" names a string pattern; declared int64 means the pattern
	// must not bind and the int64 fallback applies.
	s := resolveOrFail(t, r, domain.Field{Name: "email", Type: domain.TypeInt64})
	rng := rand.New(rand.NewSource(23))

	for i := 0; i < 500; i++ {
		v, _ := s.Next(rng)
		n, ok := v.(int64)
		if !ok {
			t.Fatalf("expected int64 fallback, got %T", v)
		}
		if n < 1 || n > 10000 {
			t.Fatalf("int64 fallback out of [1,10000]: %d", n)
		}
	}
}

func TestFallbackFloat(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "foobar123", Type: domain.TypeFloat64})
	rng := rand.New(rand.NewSource(29))

	for i := 0; i < 1000; i++ {
		v, _ := s.Next(rng)
		f := v.(float64)
		if f < 1 || f >= 100 {
			t.Fatalf("float fallback out of [1,100): %v", f)
		}
	}
}

func TestFallbackDuration(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "timeout", Type: domain.TypeDuration})
	rng := rand.New(rand.NewSource(31))

	for i := 0; i < 200; i++ {
		v, _ := s.Next(rng)
		d := v.(time.Duration)
		if d < time.Minute || d > 500*time.Minute {
			t.Fatalf("duration out of [1m,500m]: %v", d)
		}
	}
}

func TestNullableFieldStillGetsValue(t *testing.T) {
	r := newTestResolver()
	s := resolveOrFail(t, r, domain.Field{Name: "deletedDate", Type: domain.TypeTimestamp, Nullable: true})
	rng := rand.New(rand.NewSource(37))

	v, err := s.Next(rng)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(time.Time); !ok {
		t.Fatalf("nullable timestamp should still produce a time, got %T", v)
	}
}

func TestUnsupportedTypeFailsFast(t *testing.T) {
	r := newTestResolver()
	_, err := r.Resolve(domain.Field{Name: "payload", Type: "blob"})
	if !errors.Is(err, ErrUnsupportedFieldType) {
		t.Fatalf("expected ErrUnsupportedFieldType, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "payload") {
		t.Fatalf("error should identify the field: %v", err)
	}
}
