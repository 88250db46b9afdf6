package generator

import (
	"fmt"

	"github.com/willfong/fingen/internal/faker"
	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

// StreamConfig holds settings shared by the sampled fact generators
type StreamConfig struct {
	// Number of rows to generate
	Count int
	// Rows handed to the sink at once (default: 50 000)
	ChunkSize int
	// Dates are drawn from this range
	DateRange patterns.DateRange
	// Optional progress callback, called once per chunk
	Progress ProgressFunc
}

// Transaction amounts follow exp(N(8, 2)): a median around 3 000 CZK with
// a long tail, clipped to a sane range.
const (
	transactionAmountMu    = 8
	transactionAmountSigma = 2
	transactionAmountMin   = 10
	transactionAmountMax   = 50000000

	transactionNoteProbability = 0.3
	transactionNoteWords       = 4
	transactionNoteMaxLen      = 60
	transactionUsers           = 50
)

var (
	documentType = patterns.NewChoice(
		patterns.W("FAP", 2),
		patterns.W("FAV", 3),
		patterns.W("PPD", 1),
		patterns.W("VPD", 1),
		patterns.W("BV", 2),
		patterns.W("INT", 1),
		patterns.W("OPR", 1),
		patterns.W("ZAL", 1),
		patterns.W("DOB", 1),
		patterns.W("STR", 1),
	)
	transactionCurrency = patterns.NewChoice(
		patterns.W("CZK", 80),
		patterns.W("EUR", 15),
		patterns.W("USD", 5),
	)
	transactionVAT = patterns.NewChoice(
		patterns.W(dec("0.21"), 3),
		patterns.W(dec("0.15"), 2),
		patterns.W(dec("0.10"), 1),
		patterns.W(dec("0.00"), 1),
	)
	transactionStatus = patterns.NewChoice(
		patterns.W("Zaúčtováno", 3),
		patterns.W("Koncept", 1),
		patterns.W("Storno", 1),
	)
)

// TransactionGenerator produces accounting documents. Debit and credit
// accounts are drawn independently from the whole chart; they always
// differ but the ledger is not balanced.
type TransactionGenerator struct {
	rng     *utils.Random
	faker   faker.Identity
	dims    *Dimensions
	config  StreamConfig
	amounts *patterns.AmountDistribution
	dates   *patterns.SeasonalSampler
}

// NewTransactionGenerator creates a new transaction generator
func NewTransactionGenerator(rng *utils.Random, identity faker.Identity, dims *Dimensions, config StreamConfig) *TransactionGenerator {
	return &TransactionGenerator{
		rng:     rng,
		faker:   identity,
		dims:    dims,
		config:  config,
		amounts: patterns.NewLogNormalAmount(transactionAmountMu, transactionAmountSigma, transactionAmountMin, transactionAmountMax),
		dates:   patterns.NewSeasonalSampler(config.DateRange, patterns.NewQuarterlyPattern()),
	}
}

// Generate streams all transactions into sink. A chart with fewer than two
// accounts cannot balance a debit against a credit, so it yields no rows.
func (g *TransactionGenerator) Generate(sink RowSink) error {
	if len(g.dims.Accounts) < 2 {
		return nil
	}
	return streamRows(sink, g.config.Count, g.config.ChunkSize, g.config.Progress, func(i int) models.Record {
		return g.transaction(i)
	})
}

func (g *TransactionGenerator) transaction(i int) models.Transaction {
	date := g.dates.Sample(g.rng)
	amount := g.amounts.Generate(g.rng)
	currency := utils.GetCurrency(transactionCurrency.Pick(g.rng))
	vatRate := transactionVAT.Pick(g.rng)
	docType := documentType.Pick(g.rng)
	debit, credit := g.accountPair()

	t := models.Transaction{
		ID:             fmt.Sprintf("TX%07d", i+1),
		Date:           date,
		DocumentType:   docType,
		Amount:         amount,
		Currency:       currency.Code,
		Rate:           currency.RateCZK,
		AmountCZK:      currency.ToCZK(amount),
		VATRate:        vatRate,
		VATAmount:      amount.Mul(vatRate).Round(2),
		DebitAccount:   debit.Number,
		CreditAccount:  credit.Number,
		CostCenterID:   utils.Pick(g.rng, g.dims.CostCenters).ID,
		ProjectID:      utils.Pick(g.rng, g.dims.Projects).ID,
		ProfitCenterID: utils.Pick(g.rng, g.dims.ProfitCenters).ID,
		BranchID:       utils.Pick(g.rng, g.dims.Branches).ID,
	}
	if g.rng.Probability(transactionNoteProbability) {
		t.Note = g.faker.ShortSentence(transactionNoteWords, transactionNoteMaxLen)
	}
	t.Status = transactionStatus.Pick(g.rng)
	t.User = fmt.Sprintf("USR%03d", g.rng.IntRange(1, transactionUsers))
	return t
}

// accountPair draws two distinct accounts: the credit index is drawn from
// the remaining n-1 accounts and shifted past the debit index.
func (g *TransactionGenerator) accountPair() (debit, credit models.Account) {
	n := len(g.dims.Accounts)
	i := g.rng.IntN(n)
	j := g.rng.IntN(n - 1)
	if j >= i {
		j++
	}
	return g.dims.Accounts[i], g.dims.Accounts[j]
}
