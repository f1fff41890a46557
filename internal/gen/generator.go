// Package gen produces the fake e-commerce dataset: customers,
// products, orders, order items and website events. All batch output
// is deterministic for a given seed and reference time.
package gen

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
)

// Errors returned by the generators and the dataset verifier.
var (
	ErrNegativeCount    = errors.New("count must not be negative")
	ErrNoCustomers      = errors.New("customer id set is empty")
	ErrNoProducts       = errors.New("product set is empty")
	ErrTotalMismatch    = errors.New("order total does not match the sum of its items")
	ErrBadReference     = errors.New("item references a row that does not exist")
	ErrDuplicateProduct = errors.New("order references the same product twice")
)

// Generator produces the dataset. All randomness flows through the two
// sources below, both seeded from the same value and never reseeded,
// so two Generators built with the same seed and reference time emit
// identical datasets. A Generator is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
	now   time.Time
	log   zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithNow fixes the reference time all relative date windows hang off.
// Defaults to time.Now.
func WithNow(now time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger routes progress logging to the given logger. Logging is
// off by default and never affects generated output.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// New creates a Generator seeded with seed.
func New(seed uint64, opts ...Option) *Generator {
	g := &Generator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewPCG(seed, seed)),
		now:   time.Now(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// withinYears returns a uniformly distributed time in the n years
// preceding the reference time.
func (g *Generator) withinYears(n int) time.Time {
	return g.faker.DateRange(g.now.AddDate(-n, 0, 0), g.now)
}

// money returns a uniform value in [min, max] rounded to cents.
func (g *Generator) money(min, max float64) float64 {
	return round2(min + g.rng.Float64()*(max-min))
}

// round2 rounds to two decimal places, the precision of every money
// field in the dataset.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// title upper-cases the first letter of a word.
func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
