package generator

import (
	"github.com/shopspring/decimal"

	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

const (
	budgetAccountPool          = 40
	budgetAccountsPerCostCenter = 8
)

// BudgetGenerator emits plan vs. actual for every cost center, a sample
// of its cost and revenue accounts, and every month of the range.
type BudgetGenerator struct {
	rng       *utils.Random
	dims      *Dimensions
	dateRange patterns.DateRange
	chunkSize int
	progress  ProgressFunc
	plan      *patterns.AmountDistribution
}

// NewBudgetGenerator creates a new budget generator
func NewBudgetGenerator(rng *utils.Random, dims *Dimensions, config StreamConfig) *BudgetGenerator {
	return &BudgetGenerator{
		rng:       rng,
		dims:      dims,
		dateRange: config.DateRange,
		chunkSize: config.ChunkSize,
		progress:  config.Progress,
		plan:      patterns.NewAmountRange(5000, 500000),
	}
}

// EligibleAccounts returns the cost and revenue accounts budgets may use
func EligibleAccounts(accounts []models.Account) []models.Account {
	var out []models.Account
	for _, a := range accounts {
		if a.IsProfitAndLoss() {
			out = append(out, a)
		}
	}
	return out
}

// RowCount returns the number of rows Generate will emit
func (g *BudgetGenerator) RowCount() int {
	perCenter := min(budgetAccountsPerCostCenter, min(budgetAccountPool, len(EligibleAccounts(g.dims.Accounts))))
	return len(g.dims.CostCenters) * perCenter * len(g.dateRange.Months())
}

// Generate streams the budget cross product into sink. The account pool
// is sampled down to 40 once, then each cost center samples its own
// accounts from the pool without replacement.
func (g *BudgetGenerator) Generate(sink RowSink) error {
	pool := EligibleAccounts(g.dims.Accounts)
	if len(pool) > budgetAccountPool {
		picked := make([]models.Account, 0, budgetAccountPool)
		for _, idx := range g.rng.Sample(len(pool), budgetAccountPool) {
			picked = append(picked, pool[idx])
		}
		pool = picked
	}

	months := g.dateRange.Months()
	total := int64(g.RowCount())
	var done int64
	chunk := make([]models.Record, 0, g.chunkSizeOrDefault())

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if err := sink.WriteRows(chunk); err != nil {
			return err
		}
		done += int64(len(chunk))
		chunk = chunk[:0]
		if g.progress != nil {
			g.progress(done, total)
		}
		return nil
	}

	for _, center := range g.dims.CostCenters {
		for _, idx := range g.rng.Sample(len(pool), budgetAccountsPerCostCenter) {
			account := pool[idx]
			for _, month := range months {
				chunk = append(chunk, g.line(center, account, patterns.Period(month)))
				if len(chunk) == cap(chunk) {
					if err := flush(); err != nil {
						return err
					}
				}
			}
		}
	}
	return flush()
}

func (g *BudgetGenerator) chunkSizeOrDefault() int {
	if g.chunkSize <= 0 {
		return DefaultChunkSize
	}
	return g.chunkSize
}

// line derives actual and variance from a random plan
func (g *BudgetGenerator) line(center models.CostCenter, account models.Account, period string) models.Budget {
	plan := g.plan.Generate(g.rng)
	actual := plan.Mul(decimal.NewFromFloat(g.rng.Float64Range(0.7, 1.3))).Round(2)
	variance := actual.Sub(plan)

	return models.Budget{
		CostCenterID:    center.ID,
		AccountNumber:   account.Number,
		Period:          period,
		Plan:            plan,
		Actual:          actual,
		Variance:        variance,
		VariancePercent: variance.Div(plan).Mul(hundred).Round(1),
	}
}
