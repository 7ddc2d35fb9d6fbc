// Package resolve maps a field descriptor to a value strategy. Matching
// runs over an ordered rule table, first match wins; rules that would
// produce a value incompatible with the declared type do not match, so
// evaluation falls through to later rules and finally the type fallback.
package resolve

import (
	"errors"
	"strings"
	"time"

	"github.com/mmrzaf/fixgen/internal/domain"
	"github.com/mmrzaf/fixgen/internal/provider"
	"github.com/mmrzaf/fixgen/internal/strategy"
)

var ErrUnsupportedFieldType = errors.New("unsupported field type")

const DefaultPastWindow = 365 * 24 * time.Hour

type Resolver struct {
	cfg        domain.Config
	prov       *provider.Provider
	anchor     time.Time
	pastWindow time.Duration
}

type Option func(*Resolver)

// WithAnchor fixes the reference instant past-date strategies count back
// from. Defaults to the construction time.
func WithAnchor(t time.Time) Option {
	return func(r *Resolver) { r.anchor = t }
}

// WithPastWindow sets how far back past-date strategies may reach.
func WithPastWindow(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.pastWindow = d
		}
	}
}

func New(cfg domain.Config, prov *provider.Provider, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:        cfg,
		prov:       prov,
		anchor:     time.Now(),
		pastWindow: DefaultPastWindow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// rule pairs a match predicate with a strategy factory. The table below
// is evaluated top to bottom; its order is a contract, later rules are
// strictly less specific.
type rule struct {
	name  string
	match func(name string, f domain.Field) bool
	build func(r *Resolver, f domain.Field) strategy.Strategy
}

func oneOf(name string, candidates ...string) bool {
	for _, c := range candidates {
		if name == c {
			return true
		}
	}
	return false
}

func isString(f domain.Field) bool { return f.Type == domain.TypeString }

func isMoney(f domain.Field) bool {
	return f.Type == domain.TypeString || f.Type == domain.TypeDecimal || f.Type.IsFloat()
}

var rules = []rule{
	{
		name: "id-exact",
		match: func(n string, f domain.Field) bool {
			return n == "id" && (f.Type == domain.TypeUUID || f.Type.IsInteger())
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			if f.Type == domain.TypeUUID {
				return &strategy.UUID4{}
			}
			return &strategy.SequentialInt{}
		},
	},
	{
		name: "id-suffix",
		match: func(n string, f domain.Field) bool {
			return strings.HasSuffix(n, "id") && n != "id" && f.Type.IsInteger()
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.UniformInt{Min: 1, Max: 5}
		},
	},
	{
		name: "product-short",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "item", "product") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromRandString(r.prov.Product)
		},
	},
	{
		name: "product-full",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "itemname", "productname") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromRandString(r.prov.ProductName)
		},
	},
	{
		name: "color",
		match: func(n string, f domain.Field) bool {
			return strings.Contains(n, "color") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromRandString(r.prov.Color)
		},
	},
	{
		name: "quantity",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "qty", "quantity") && f.Type.IsInteger()
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.UniformInt{Min: 1, Max: 10}
		},
	},
	{
		name: "amount",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "amnt", "amount") && (f.Type == domain.TypeDecimal || f.Type.IsFloat())
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.Decimal{Min: 10, Max: 1000}
		},
	},
	{
		name: "price",
		match: func(n string, f domain.Field) bool {
			return n == "price" && isMoney(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.Money{Symbol: r.cfg.CurrencySymbol, Min: 100, Max: 1000}
		},
	},
	{
		name: "full-name",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "fullname", "name") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.FullName)
		},
	},
	{
		name: "username",
		match: func(n string, f domain.Field) bool {
			return n == "username" && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.Username)
		},
	},
	{
		name: "password",
		match: func(n string, f domain.Field) bool {
			return n == "password" && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.Password)
		},
	},
	{
		name: "first-name",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "fname", "firstname") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.FirstName)
		},
	},
	{
		name: "last-name",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "lname", "lastname") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.LastName)
		},
	},
	{
		name: "email",
		match: func(n string, f domain.Field) bool {
			return n == "email" && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.Email)
		},
	},
	{
		name: "phone",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "phone", "contactno", "cp", "contactnumber", "phonenumber") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.Phone)
		},
	},
	{
		name: "address",
		match: func(n string, f domain.Field) bool {
			return n == "address" && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromRandString(r.prov.Address)
		},
	},
	{
		name: "geo",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "streetaddress", "city", "state", "zipcode", "country", "countrycode") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			switch strings.ToLower(f.Name) {
			case "streetaddress":
				return strategy.FromRandString(r.prov.StreetAddress)
			case "city":
				return strategy.FromRandString(r.prov.City)
			case "state":
				return strategy.FromRandString(r.prov.State)
			case "zipcode":
				return strategy.FromRandString(r.prov.ZipCode)
			case "country":
				return strategy.FromRandString(r.prov.Country)
			default:
				return strategy.FromRandString(r.prov.CountryCode)
			}
		},
	},
	{
		name: "score",
		match: func(n string, f domain.Field) bool {
			return strings.Contains(n, "score") && f.Type.IsInteger()
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.UniformInt{Min: 30, Max: 50}
		},
	},
	{
		name: "grade",
		match: func(n string, f domain.Field) bool {
			return strings.Contains(n, "grade") && f.Type.IsInteger()
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.UniformInt{Min: 65, Max: 100}
		},
	},
	{
		name: "lorem-body",
		match: func(n string, f domain.Field) bool {
			return oneOf(n, "body", "description") && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.Paragraphs)
		},
	},
	{
		name: "lorem-title",
		match: func(n string, f domain.Field) bool {
			return n == "title" && isString(f)
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return strategy.FromString(r.prov.Word)
		},
	},
	{
		name: "bool-prefix",
		match: func(n string, f domain.Field) bool {
			return (strings.HasPrefix(n, "has") || strings.HasPrefix(n, "is")) && f.Type == domain.TypeBool
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.Bool{}
		},
	},
	{
		name: "gender",
		match: func(n string, f domain.Field) bool {
			return n == "gender" && f.Type.IsInteger()
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.UniformInt{Min: 1, Max: 2}
		},
	},
	{
		name: "date",
		match: func(n string, f domain.Field) bool {
			return strings.Contains(n, "date") && f.Type == domain.TypeTimestamp
		},
		build: func(r *Resolver, f domain.Field) strategy.Strategy {
			return &strategy.PastTime{Anchor: r.anchor, Window: r.pastWindow}
		},
	},
}

// RuleNames returns the rule table's identifiers in evaluation order.
// The order itself is part of the resolver's contract.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, ru := range rules {
		names[i] = ru.name
	}
	return names
}

// Resolve selects a strategy for one field. It fails only for a type tag
// outside the fallback table.
func (r *Resolver) Resolve(f domain.Field) (strategy.Strategy, error) {
	name := strings.ToLower(f.Name)
	for _, ru := range rules {
		if ru.match(name, f) {
			return ru.build(r, f), nil
		}
	}
	return r.fallback(f)
}
