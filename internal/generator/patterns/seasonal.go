package patterns

import (
	"fmt"
	"sort"
	"time"

	"github.com/willfong/fingen/internal/utils"
)

// DateLayout is the ISO date format used for range bounds and output.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normalizes both bounds to midnight UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDay(start), End: truncateDay(end)}
}

// ParseDateRange parses two ISO dates into a range.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return NewDateRange(s, e), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the range, both ends included.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Day returns the date offset days after Start. Offsets may fall outside
// the range (e.g. hire dates before the dataset starts).
func (r DateRange) Day(offset int) time.Time {
	return r.Start.AddDate(0, 0, offset)
}

// Contains reports whether t falls on a day inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := truncateDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Months returns the first day of every calendar month the range touches.
func (r DateRange) Months() []time.Time {
	var months []time.Time
	cur := time.Date(r.Start.Year(), r.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(r.End) {
		months = append(months, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// Period formats a month as "YYYY-MM".
func Period(month time.Time) string {
	return month.Format("2006-01")
}

// SeasonalPattern holds an activity multiplier per calendar month.
type SeasonalPattern struct {
	monthMultipliers [12]float64
}

// NewQuarterlyPattern creates the default business seasonality:
// Q4 1.6, Q3 1.1, Q2 1.0, Q1 0.7.
func NewQuarterlyPattern() *SeasonalPattern {
	sp := &SeasonalPattern{}
	for m := time.January; m <= time.December; m++ {
		switch {
		case m >= time.October:
			sp.monthMultipliers[m-1] = 1.6
		case m >= time.July:
			sp.monthMultipliers[m-1] = 1.1
		case m >= time.April:
			sp.monthMultipliers[m-1] = 1.0
		default:
			sp.monthMultipliers[m-1] = 0.7
		}
	}
	return sp
}

// GetMultiplier returns the weight for a calendar month.
func (sp *SeasonalPattern) GetMultiplier(month time.Month) float64 {
	if month < time.January || month > time.December {
		return 1.0
	}
	return sp.monthMultipliers[month-1]
}

// SeasonalSampler draws days from a range with probability proportional to
// the pattern weight of each day's month. The cumulative distribution is
// computed once, so sampling is a binary search per draw.
type SeasonalSampler struct {
	r          DateRange
	cumulative []float64
}

// NewSeasonalSampler precomputes the normalized cumulative weights of r.
func NewSeasonalSampler(r DateRange, pattern *SeasonalPattern) *SeasonalSampler {
	days := r.Days()
	cumulative := make([]float64, days)

	total := 0.0
	for i := 0; i < days; i++ {
		total += pattern.GetMultiplier(r.Day(i).Month())
		cumulative[i] = total
	}
	for i := range cumulative {
		cumulative[i] /= total
	}
	cumulative[days-1] = 1.0

	return &SeasonalSampler{r: r, cumulative: cumulative}
}

// Probability returns the normalized probability of the day at offset i.
func (s *SeasonalSampler) Probability(i int) float64 {
	if i < 0 || i >= len(s.cumulative) {
		return 0
	}
	if i == 0 {
		return s.cumulative[0]
	}
	return s.cumulative[i] - s.cumulative[i-1]
}

// Sample draws one date.
func (s *SeasonalSampler) Sample(rng *utils.Random) time.Time {
	u := rng.Float64()
	idx := sort.SearchFloat64s(s.cumulative, u)
	if idx >= len(s.cumulative) {
		idx = len(s.cumulative) - 1
	}
	return s.r.Day(idx)
}

// UniformDate draws one date uniformly from r.
func UniformDate(rng *utils.Random, r DateRange) time.Time {
	return r.Day(rng.IntN(r.Days()))
}

// UniformDates produces count dates drawn independently and uniformly from r.
func UniformDates(rng *utils.Random, count int, r DateRange) []time.Time {
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = UniformDate(rng, r)
	}
	return dates
}

// SeasonalDates produces count dates drawn with replacement from r using
// the quarterly pattern.
func SeasonalDates(rng *utils.Random, count int, r DateRange) []time.Time {
	s := NewSeasonalSampler(r, NewQuarterlyPattern())
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = s.Sample(rng)
	}
	return dates
}
