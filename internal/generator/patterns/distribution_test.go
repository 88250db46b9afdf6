package patterns

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/willfong/fingen/internal/utils"
)

func TestChoice(t *testing.T) {
	rng := utils.NewRandom(42)

	t.Run("weighted", func(t *testing.T) {
		c := NewChoice(W("CZK", 80), W("EUR", 15), W("USD", 5))
		counts := map[string]int{}
		for i := 0; i < 20000; i++ {
			counts[c.Pick(rng)]++
		}
		assert.Len(t, counts, 3)
		assert.InDelta(t, 0.80, float64(counts["CZK"])/20000, 0.02)
		assert.InDelta(t, 0.05, float64(counts["USD"])/20000, 0.01)
	})

	t.Run("uniform", func(t *testing.T) {
		c := Uniform("ks", "kg", "l")
		assert.Equal(t, []string{"ks", "kg", "l"}, c.Values())
		for i := 0; i < 100; i++ {
			assert.Contains(t, c.Values(), c.Pick(rng))
		}
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Uniform[float64]().Pick(rng))
	})
}

func TestAmountDistribution(t *testing.T) {
	rng := utils.NewRandom(42)

	t.Run("uniform", func(t *testing.T) {
		ad := NewAmountRange(500, 2_000_000)
		assert.Equal(t, 500.0, ad.Min())
		assert.Equal(t, 2_000_000.0, ad.Max())
		lo := decimal.NewFromFloat(ad.Min())
		hi := decimal.NewFromFloat(ad.Max())
		for i := 0; i < 5000; i++ {
			v := ad.Generate(rng)
			assert.True(t, v.GreaterThanOrEqual(lo), v.String())
			assert.True(t, v.LessThanOrEqual(hi), v.String())
		}
	})

	t.Run("lognormal clipped", func(t *testing.T) {
		ad := NewLogNormalAmount(8, 2, 10, 50_000_000)
		lo := decimal.NewFromFloat(ad.Min())
		hi := decimal.NewFromFloat(ad.Max())

		var clippedLow int
		for i := 0; i < 20000; i++ {
			v := ad.Generate(rng)
			assert.True(t, v.GreaterThanOrEqual(lo), v.String())
			assert.True(t, v.LessThanOrEqual(hi), v.String())
			assert.GreaterOrEqual(t, v.Exponent(), int32(-2))
			if v.Equal(lo) {
				clippedLow++
			}
		}
		// P(exp(N(8,2)) < 10) ≈ 1.3%, so some amounts hit the floor.
		assert.Greater(t, clippedLow, 0)
	})

	t.Run("clamp", func(t *testing.T) {
		lo, hi := decimal.NewFromInt(1), decimal.NewFromInt(5)
		assert.True(t, clamp(decimal.NewFromInt(0), lo, hi).Equal(lo))
		assert.True(t, clamp(decimal.NewFromInt(9), lo, hi).Equal(hi))
		assert.True(t, clamp(decimal.NewFromInt(3), lo, hi).Equal(decimal.NewFromInt(3)))
	})
}
