package generator

import (
	"fmt"

	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

var (
	cashFlowType = patterns.NewChoice(
		patterns.W("Příjem z prodeje", 3),
		patterns.W("Platba dodavateli", 2),
		patterns.W("Mzdy", 1),
		patterns.W("Daně", 1),
		patterns.W("Splátka úvěru", 1),
		patterns.W("Úroky", 1),
		patterns.W("Investice", 1),
		patterns.W("Příjem úvěru", 1),
		patterns.W("Dividendy", 1),
		patterns.W("Ostatní příjem", 1),
		patterns.W("Ostatní výdaj", 1),
	)
	// Movement types that bring money in; everything else is an expense
	incomeTypes = map[string]bool{
		"Příjem z prodeje": true,
		"Příjem úvěru":     true,
		"Ostatní příjem":   true,
		"Dividendy":        true,
	}
	cashFlowCurrency = patterns.NewChoice(patterns.W("CZK", 85), patterns.W("EUR", 15))
	cashFlowStatus   = patterns.NewChoice(patterns.W("Realizováno", 3), patterns.W("Plánováno", 1))
)

const cashFlowAccountFallback = 10

// CashFlowGenerator produces movements on cash and bank accounts
type CashFlowGenerator struct {
	rng      *utils.Random
	dims     *Dimensions
	config   StreamConfig
	accounts []models.Account
	amounts  *patterns.AmountDistribution
	dates    *patterns.SeasonalSampler
}

// NewCashFlowGenerator creates a new cash flow generator. Accounts are
// restricted to the financial accounts group, falling back to the first
// 10 accounts of the chart.
func NewCashFlowGenerator(rng *utils.Random, dims *Dimensions, config StreamConfig) *CashFlowGenerator {
	return &CashFlowGenerator{
		rng:    rng,
		dims:   dims,
		config: config,
		accounts: restrictOrFallback(dims.Accounts, func(a models.Account) bool {
			return a.Group == models.FinancialAccountsGroup
		}, cashFlowAccountFallback),
		amounts: patterns.NewAmountRange(500, 2000000),
		dates:   patterns.NewSeasonalSampler(config.DateRange, patterns.NewQuarterlyPattern()),
	}
}

// Generate streams all cash flow movements into sink
func (g *CashFlowGenerator) Generate(sink RowSink) error {
	return streamRows(sink, g.config.Count, g.config.ChunkSize, g.config.Progress, func(i int) models.Record {
		return g.movement(i)
	})
}

// movement signs the amount by direction: expenses are negative
func (g *CashFlowGenerator) movement(i int) models.CashFlow {
	date := g.dates.Sample(g.rng)
	typ := cashFlowType.Pick(g.rng)
	amount := g.amounts.Generate(g.rng)

	direction := models.CashFlowIncome
	if !incomeTypes[typ] {
		direction = models.CashFlowExpense
		amount = amount.Neg()
	}

	return models.CashFlow{
		ID:           fmt.Sprintf("CF%06d", i+1),
		Date:         date,
		MovementType: typ,
		Direction:    direction,
		Amount:       amount,
		Account:      utils.Pick(g.rng, g.accounts).Number,
		BranchID:     utils.Pick(g.rng, g.dims.Branches).ID,
		Currency:     cashFlowCurrency.Pick(g.rng),
		Status:       cashFlowStatus.Pick(g.rng),
	}
}
