package provider

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/go-faker/faker/v4"
)

// fakerMu guards faker's package-global random stream. One generation
// call holds it end to end so concurrent calls cannot interleave the
// stream and break per-seed reproducibility.
var fakerMu sync.Mutex

// Acquire locks the shared faker stream and reseeds it. The returned
// release func must be called when the generation call finishes.
func Acquire(seed int64) func() {
	fakerMu.Lock()
	faker.SetRandomSource(rand.NewSource(seed))
	return fakerMu.Unlock
}

// Provider answers semantic value requests (email, city, lorem text)
// using faker plus small inline tables for categories faker lacks.
// It is stateless apart from the configured locale, which is carried
// for callers to inspect but does not change the produced values:
// faker v4 ships English-only data and the inline tables match it.
type Provider struct {
	locale string
}

func New(locale string) *Provider {
	if locale == "" {
		locale = "en"
	}
	return &Provider{locale: locale}
}

func (p *Provider) Locale() string { return p.locale }

func (p *Provider) FullName() string  { return faker.Name() }
func (p *Provider) FirstName() string { return faker.FirstName() }
func (p *Provider) LastName() string  { return faker.LastName() }
func (p *Provider) Username() string  { return faker.Username() }
func (p *Provider) Password() string  { return faker.Password() }
func (p *Provider) Email() string     { return faker.Email() }
func (p *Provider) Phone() string     { return faker.Phonenumber() }
func (p *Provider) Word() string      { return faker.Word() }
func (p *Provider) URL() string       { return faker.URL() }

// Paragraphs returns a multi-paragraph lorem block.
func (p *Provider) Paragraphs() string {
	parts := []string{faker.Paragraph(), faker.Paragraph(), faker.Paragraph()}
	return strings.Join(parts, "\n\n")
}

var productAdjectives = []string{
	"Rustic", "Sleek", "Ergonomic", "Practical", "Durable",
	"Compact", "Refined", "Handmade", "Modern", "Licensed",
}

var productMaterials = []string{
	"Wooden", "Steel", "Granite", "Cotton", "Leather",
	"Plastic", "Bronze", "Ceramic", "Linen", "Marble",
}

var productNames = []string{
	"Chair", "Table", "Lamp", "Keyboard", "Bottle",
	"Wallet", "Clock", "Mug", "Shirt", "Backpack",
	"Notebook", "Speaker", "Helmet", "Kettle", "Mirror",
}

// Product returns a short product-like name.
func (p *Provider) Product(rng *rand.Rand) string {
	return productNames[rng.Intn(len(productNames))]
}

// ProductName returns a full adjective-material-product name.
func (p *Provider) ProductName(rng *rand.Rand) string {
	adj := productAdjectives[rng.Intn(len(productAdjectives))]
	mat := productMaterials[rng.Intn(len(productMaterials))]
	return adj + " " + mat + " " + productNames[rng.Intn(len(productNames))]
}

var colorNames = []string{
	"red", "blue", "green", "yellow", "orange", "purple",
	"black", "white", "gray", "brown", "pink", "cyan",
	"magenta", "teal", "maroon", "olive", "navy", "silver",
}

func (p *Provider) Color(rng *rand.Rand) string {
	return colorNames[rng.Intn(len(colorNames))]
}

var cities = []string{
	"New York", "Chicago", "Houston", "Seattle", "Denver",
	"Boston", "Portland", "Austin", "Atlanta", "Detroit",
	"London", "Paris", "Berlin", "Madrid", "Rome",
	"Amsterdam", "Vienna", "Prague", "Stockholm", "Tokyo",
}

func (p *Provider) City(rng *rand.Rand) string {
	return cities[rng.Intn(len(cities))]
}

var states = []string{
	"Alabama", "Arizona", "California", "Colorado", "Florida",
	"Georgia", "Illinois", "Michigan", "Nevada", "New York",
	"Ohio", "Oregon", "Texas", "Utah", "Virginia", "Washington",
}

func (p *Provider) State(rng *rand.Rand) string {
	return states[rng.Intn(len(states))]
}

var streetNames = []string{
	"Oak", "Maple", "Cedar", "Elm", "Pine", "Willow",
	"Birch", "Chestnut", "Walnut", "Aspen", "Juniper", "Sycamore",
	"Highland", "Sunset", "Hillcrest", "Lakeview", "Meadow", "Ridge",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Way", "Ct"}

// StreetAddress builds a street line from a house number, a street name
// and a suffix, all drawn from the passed rng.
func (p *Provider) StreetAddress(rng *rand.Rand) string {
	number := 1 + rng.Intn(9999)
	street := streetNames[rng.Intn(len(streetNames))]
	suffix := streetSuffixes[rng.Intn(len(streetSuffixes))]
	return fmt.Sprintf("%d %s %s", number, street, suffix)
}

func (p *Provider) ZipCode(rng *rand.Rand) string {
	return fmt.Sprintf("%05d", rng.Intn(100000))
}

// Address returns a full single-line postal address.
func (p *Provider) Address(rng *rand.Rand) string {
	return fmt.Sprintf("%s, %s, %s %s",
		p.StreetAddress(rng), p.City(rng), p.State(rng), p.ZipCode(rng))
}

type countryEntry struct {
	name string
	code string
}

var countries = []countryEntry{
	{"United States", "US"}, {"United Kingdom", "GB"}, {"Germany", "DE"},
	{"France", "FR"}, {"Spain", "ES"}, {"Italy", "IT"},
	{"Netherlands", "NL"}, {"Sweden", "SE"}, {"Norway", "NO"},
	{"Japan", "JP"}, {"Canada", "CA"}, {"Australia", "AU"},
	{"Brazil", "BR"}, {"India", "IN"}, {"Mexico", "MX"},
}

func (p *Provider) Country(rng *rand.Rand) string {
	return countries[rng.Intn(len(countries))].name
}

func (p *Provider) CountryCode(rng *rand.Rand) string {
	return countries[rng.Intn(len(countries))].code
}
