package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfong/fingen/internal/utils"
)

func defaultRange(t *testing.T) DateRange {
	t.Helper()
	r, err := ParseDateRange("2023-01-01", "2025-12-31")
	require.NoError(t, err)
	return r
}

func TestParseDateRange(t *testing.T) {
	r := defaultRange(t)
	assert.Equal(t, 1096, r.Days())
	assert.Len(t, r.Months(), 36)

	_, err := ParseDateRange("2025-01-01", "2024-01-01")
	assert.Error(t, err)

	_, err = ParseDateRange("2025-13-01", "2026-01-01")
	assert.Error(t, err)

	single, err := ParseDateRange("2024-02-29", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())
	assert.Len(t, single.Months(), 1)
}

func TestMonthsPartialRange(t *testing.T) {
	r, err := ParseDateRange("2024-01-15", "2024-03-02")
	require.NoError(t, err)

	months := r.Months()
	require.Len(t, months, 3)
	assert.Equal(t, "2024-01", Period(months[0]))
	assert.Equal(t, "2024-03", Period(months[2]))
}

func TestQuarterlyPattern(t *testing.T) {
	p := NewQuarterlyPattern()
	assert.Equal(t, 0.7, p.GetMultiplier(time.February))
	assert.Equal(t, 1.0, p.GetMultiplier(time.May))
	assert.Equal(t, 1.1, p.GetMultiplier(time.September))
	assert.Equal(t, 1.6, p.GetMultiplier(time.December))
}

func TestSeasonalSamplerProbabilities(t *testing.T) {
	r := defaultRange(t)
	s := NewSeasonalSampler(r, NewQuarterlyPattern())

	sum := 0.0
	for i := 0; i < r.Days(); i++ {
		sum += s.Probability(i)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// A December day is 1.6/0.7 times as likely as a January day.
	jan := s.Probability(0)
	dec := s.Probability(r.Days() - 1)
	assert.InDelta(t, 1.6/0.7, dec/jan, 1e-9)
}

func TestDatesWithinRange(t *testing.T) {
	r := defaultRange(t)
	rng := utils.NewRandom(42)

	uniform := UniformDates(rng, 5000, r)
	seasonal := SeasonalDates(rng, 5000, r)

	require.Len(t, uniform, 5000)
	require.Len(t, seasonal, 5000)
	for i := range uniform {
		require.True(t, r.Contains(uniform[i]), "uniform date %s outside range", uniform[i])
		require.True(t, r.Contains(seasonal[i]), "seasonal date %s outside range", seasonal[i])
	}

	assert.Empty(t, SeasonalDates(rng, 0, r))
}

func TestSeasonalDatesFavorQ4(t *testing.T) {
	r := defaultRange(t)
	dates := SeasonalDates(utils.NewRandom(7), 50000, r)

	var q1, q4 int
	for _, d := range dates {
		switch {
		case d.Month() <= time.March:
			q1++
		case d.Month() >= time.October:
			q4++
		}
	}

	// Expected ratio is 1.6*92 / (0.7*90) ≈ 2.34.
	ratio := float64(q4) / float64(q1)
	assert.Greater(t, ratio, 2.1)
	assert.Less(t, ratio, 2.6)
}

func TestDatesDeterministic(t *testing.T) {
	r := defaultRange(t)
	a := SeasonalDates(utils.NewRandom(42), 100, r)
	b := SeasonalDates(utils.NewRandom(42), 100, r)
	assert.Equal(t, a, b)
}

func TestSingleDayRange(t *testing.T) {
	r, err := ParseDateRange("2024-06-30", "2024-06-30")
	require.NoError(t, err)

	rng := utils.NewRandom(1)
	for _, d := range SeasonalDates(rng, 20, r) {
		assert.Equal(t, r.Start, d)
	}
	assert.Equal(t, 1.0, NewSeasonalSampler(r, NewQuarterlyPattern()).Probability(0))
}
