package generator

import (
	"github.com/shopspring/decimal"

	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
)

// Artifact names, in the order tables are generated
const (
	TableRegions       = "dim_regiony"
	TableBranches      = "dim_pobocky"
	TableCostCenters   = "dim_strediska"
	TableProfitCenters = "dim_profit_centra"
	TableProjects      = "dim_projekty"
	TableAccounts      = "dim_ucty"
	TableEmployees     = "dim_zamestnanci"
	TableProducts      = "dim_produkty"
	TableCustomers     = "dim_zakaznici"
	TableSuppliers     = "dim_dodavatele"

	TableTransactions = "fact_transakce"
	TablePayroll      = "fact_mzdy"
	TableSales        = "fact_prodeje"
	TablePurchases    = "fact_nakupy"
	TableProduction   = "fact_vyrobni_zakazky"
	TableCashFlow     = "fact_cashflow"
	TableBudget       = "fact_budget"
)

// DimensionTables lists dimension artifacts in build order
var DimensionTables = []string{
	TableRegions, TableBranches, TableCostCenters, TableProfitCenters, TableProjects,
	TableAccounts, TableEmployees, TableProducts, TableCustomers, TableSuppliers,
}

// FactTables lists fact artifacts in build order
var FactTables = []string{
	TableTransactions, TablePayroll, TableSales, TablePurchases, TableProduction, TableCashFlow, TableBudget,
}

// DefaultChunkSize is the number of rows a streaming fact hands to its sink at once
const DefaultChunkSize = 50000

// Dimensions holds every dimension table of one run. Fact generators only
// read from it.
type Dimensions struct {
	Regions       []models.Region
	Branches      []models.Branch
	CostCenters   []models.CostCenter
	ProfitCenters []models.ProfitCenter
	Projects      []models.Project
	Accounts      []models.Account
	Employees     []models.Employee
	Products      []models.Product
	Customers     []models.Customer
	Suppliers     []models.Supplier
}

// RowSink receives generated rows in order
type RowSink interface {
	WriteRows(rows []models.Record) error
}

// ProgressFunc is called after every chunk with the rows emitted so far
type ProgressFunc func(done, total int64)

// streamRows builds count rows one at a time with row and hands them to
// sink in chunks of chunkSize. Rows are drawn independently of chunk
// boundaries, so the chunk size never changes the output.
func streamRows(sink RowSink, count, chunkSize int, progress ProgressFunc, row func(i int) models.Record) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	chunk := make([]models.Record, 0, min(chunkSize, count))
	for i := 0; i < count; i++ {
		chunk = append(chunk, row(i))
		if len(chunk) == chunkSize || i == count-1 {
			if err := sink.WriteRows(chunk); err != nil {
				return err
			}
			chunk = chunk[:0]
			if progress != nil {
				progress(int64(i+1), int64(count))
			}
		}
	}
	return nil
}

// restrictOrFallback keeps the elements of all matching keep. When none
// match it falls back to the first fallbackN elements.
func restrictOrFallback[T any](all []T, keep func(T) bool, fallbackN int) []T {
	var out []T
	for _, v := range all {
		if keep(v) {
			out = append(out, v)
		}
	}
	if len(out) > 0 {
		return out
	}
	return all[:min(fallbackN, len(all))]
}

// Shared categorical distributions
var (
	activeStatus = patterns.NewChoice(patterns.W("aktivní", 2), patterns.W("neaktivní", 1))
)

// Decimal constants used by the derivation formulas
var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// dec parses a constant decimal literal
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decimals parses a list of decimal literals
func decimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}

// vatAmounts derives the VAT amount and gross total from a net amount
func vatAmounts(net, rate decimal.Decimal) (vat, gross decimal.Decimal) {
	return net.Mul(rate).Round(2), net.Mul(one.Add(rate)).Round(2)
}

