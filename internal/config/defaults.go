// Package config contains compile-time defaults for the dataset generator
// and the runtime configuration assembled from them, fingen.yaml, the
// environment and command-line flags.
package config

// =============================================================================
// RUN DEFAULTS
// =============================================================================

const (
	// DefaultSeed makes two runs without configuration produce the same data
	DefaultSeed = 42

	// DefaultStartDate and DefaultEndDate bound every generated date (inclusive)
	DefaultStartDate = "2023-01-01"
	DefaultEndDate   = "2025-12-31"

	// DefaultOutputDir is where tables and the manifest are written
	DefaultOutputDir = "./financial_dataset"

	// DefaultFormat is the table file format (csv or xlsx)
	DefaultFormat = "csv"

	// DefaultXZPreset is the xz compression level used with --compress
	DefaultXZPreset = 6

	// DefaultBufferSize is the write buffer of each CSV file
	DefaultBufferSize = 1 << 20
)

// =============================================================================
// TABLE SIZES
// =============================================================================

// Dimension table sizes. Regions, branches and the chart of accounts come
// from reference data and have no configurable size.
const (
	DefaultCostCenters   = 50
	DefaultProfitCenters = 20
	DefaultProjects      = 100
	DefaultEmployees     = 500
	DefaultProducts      = 300
	DefaultCustomers     = 200
	DefaultSuppliers     = 100
)

// Fact table sizes. Payroll and budget are derived from the dimensions
// and the number of months in the date range.
const (
	DefaultTransactions = 500000
	DefaultSales        = 100000
	DefaultPurchases    = 50000
	DefaultProduction   = 20000
	DefaultCashFlow     = 80000
)

// =============================================================================
// PERFORMANCE
// =============================================================================

const (
	// DefaultChunkSize is the number of rows streamed to a file at once.
	// It bounds memory and never changes the generated data.
	DefaultChunkSize = 50000

	// DefaultWorkers generates fact tables one after another. Set 0 to use
	// every CPU; output is identical either way.
	DefaultWorkers = 1
)
