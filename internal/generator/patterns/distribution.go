package patterns

import (
	"github.com/shopspring/decimal"

	"github.com/willfong/fingen/internal/utils"
)

// Entry is a categorical value with its relative weight.
type Entry[T any] struct {
	Value  T
	Weight int
}

// W is shorthand for an Entry.
func W[T any](value T, weight int) Entry[T] {
	return Entry[T]{Value: value, Weight: weight}
}

// Choice is a weighted categorical distribution, e.g. a status that is
// "Aktivní" nine times out of ten.
type Choice[T any] struct {
	values  []T
	weights []int
}

// NewChoice creates a weighted choice from entries.
func NewChoice[T any](entries ...Entry[T]) *Choice[T] {
	c := &Choice[T]{
		values:  make([]T, len(entries)),
		weights: make([]int, len(entries)),
	}
	for i, e := range entries {
		c.values[i] = e.Value
		c.weights[i] = e.Weight
	}
	return c
}

// Uniform creates a choice where every value is equally likely.
func Uniform[T any](values ...T) *Choice[T] {
	c := &Choice[T]{
		values:  append([]T(nil), values...),
		weights: make([]int, len(values)),
	}
	for i := range c.weights {
		c.weights[i] = 1
	}
	return c
}

// Pick draws one value.
func (c *Choice[T]) Pick(rng *utils.Random) T {
	var zero T
	if len(c.values) == 0 {
		return zero
	}
	return c.values[rng.WeightedPick(c.weights)]
}

// Values returns the distinct support of the distribution in definition order.
func (c *Choice[T]) Values() []T {
	return append([]T(nil), c.values...)
}

// AmountShape selects how amounts are spread over their range.
type AmountShape string

const (
	ShapeUniform   AmountShape = "uniform"
	ShapeLogNormal AmountShape = "lognormal"
)

// AmountDistribution generates monetary amounts rounded to 2 places and
// kept within [min, max].
type AmountDistribution struct {
	min   float64
	max   float64
	shape AmountShape

	// Parameters of the underlying normal for the log-normal shape
	mu    float64
	sigma float64
}

// NewAmountRange creates a uniform amount distribution.
func NewAmountRange(min, max float64) *AmountDistribution {
	return &AmountDistribution{min: min, max: max, shape: ShapeUniform}
}

// NewLogNormalAmount creates a heavy-tailed distribution exp(N(mu, sigma))
// clipped to [min, max]. Most amounts are small, a few are very large.
func NewLogNormalAmount(mu, sigma, min, max float64) *AmountDistribution {
	return &AmountDistribution{min: min, max: max, shape: ShapeLogNormal, mu: mu, sigma: sigma}
}

// Generate draws one amount.
func (ad *AmountDistribution) Generate(rng *utils.Random) decimal.Decimal {
	switch ad.shape {
	case ShapeLogNormal:
		v := utils.Round2(rng.LogNormal(ad.mu, ad.sigma)).Abs()
		return clamp(v, decimal.NewFromFloat(ad.min).Round(2), decimal.NewFromFloat(ad.max).Round(2))
	default:
		return utils.RandomAmount(rng, ad.min, ad.max)
	}
}

// Min returns the lower bound.
func (ad *AmountDistribution) Min() float64 { return ad.min }

// Max returns the upper bound.
func (ad *AmountDistribution) Max() float64 { return ad.max }

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
