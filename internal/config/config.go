package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/willfong/fingen/internal/generator"
	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/output"
)

// Config holds all configuration for the dataset generator
type Config struct {
	// Where and how tables are written
	Output OutputConfig `mapstructure:"output"`

	// Randomness and performance
	Generation GenerationConfig `mapstructure:"generation"`

	// Inclusive date range of every generated date
	Dates DatesConfig `mapstructure:"dates"`

	// Table sizes
	Counts CountsConfig `mapstructure:"counts"`

	// Logging
	Verbose bool `mapstructure:"verbose"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir        string `mapstructure:"dir"`
	Format     string `mapstructure:"format"`   // csv or xlsx
	Compress   bool   `mapstructure:"compress"` // xz, csv only
	XZPreset   int    `mapstructure:"xz_preset"`
	BufferSize int    `mapstructure:"buffer_size"`
}

// GenerationConfig holds randomness and performance settings
type GenerationConfig struct {
	// Random seed for reproducibility (0 = random, reported after the run)
	Seed      int64 `mapstructure:"seed"`
	ChunkSize int   `mapstructure:"chunk_size"`
	// Fact tables generated concurrently (0 = number of CPUs)
	Workers int `mapstructure:"workers"`
}

// DatesConfig holds the date range as ISO dates
type DatesConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// CountsConfig holds the size of every table with a configurable size
type CountsConfig struct {
	CostCenters   int `mapstructure:"cost_centers"`
	ProfitCenters int `mapstructure:"profit_centers"`
	Projects      int `mapstructure:"projects"`
	Employees     int `mapstructure:"employees"`
	Products      int `mapstructure:"products"`
	Customers     int `mapstructure:"customers"`
	Suppliers     int `mapstructure:"suppliers"`
	Transactions  int `mapstructure:"transactions"`
	Sales         int `mapstructure:"sales"`
	Purchases     int `mapstructure:"purchases"`
	Production    int `mapstructure:"production"`
	CashFlow      int `mapstructure:"cash_flow"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:        DefaultOutputDir,
			Format:     DefaultFormat,
			XZPreset:   DefaultXZPreset,
			BufferSize: DefaultBufferSize,
		},
		Generation: GenerationConfig{
			Seed:      DefaultSeed,
			ChunkSize: DefaultChunkSize,
			Workers:   DefaultWorkers,
		},
		Dates: DatesConfig{
			Start: DefaultStartDate,
			End:   DefaultEndDate,
		},
		Counts: CountsConfig{
			CostCenters:   DefaultCostCenters,
			ProfitCenters: DefaultProfitCenters,
			Projects:      DefaultProjects,
			Employees:     DefaultEmployees,
			Products:      DefaultProducts,
			Customers:     DefaultCustomers,
			Suppliers:     DefaultSuppliers,
			Transactions:  DefaultTransactions,
			Sales:         DefaultSales,
			Purchases:     DefaultPurchases,
			Production:    DefaultProduction,
			CashFlow:      DefaultCashFlow,
		},
	}
}

// Load reads configuration from viper into a Config struct
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals v over the defaults
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// SetDefaults registers every default with v so that environment
// variables are picked up for keys absent from the config file.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.compress", d.Output.Compress)
	v.SetDefault("output.xz_preset", d.Output.XZPreset)
	v.SetDefault("output.buffer_size", d.Output.BufferSize)
	v.SetDefault("generation.seed", d.Generation.Seed)
	v.SetDefault("generation.chunk_size", d.Generation.ChunkSize)
	v.SetDefault("generation.workers", d.Generation.Workers)
	v.SetDefault("dates.start", d.Dates.Start)
	v.SetDefault("dates.end", d.Dates.End)
	v.SetDefault("counts.cost_centers", d.Counts.CostCenters)
	v.SetDefault("counts.profit_centers", d.Counts.ProfitCenters)
	v.SetDefault("counts.projects", d.Counts.Projects)
	v.SetDefault("counts.employees", d.Counts.Employees)
	v.SetDefault("counts.products", d.Counts.Products)
	v.SetDefault("counts.customers", d.Counts.Customers)
	v.SetDefault("counts.suppliers", d.Counts.Suppliers)
	v.SetDefault("counts.transactions", d.Counts.Transactions)
	v.SetDefault("counts.sales", d.Counts.Sales)
	v.SetDefault("counts.purchases", d.Counts.Purchases)
	v.SetDefault("counts.production", d.Counts.Production)
	v.SetDefault("counts.cash_flow", d.Counts.CashFlow)
	v.SetDefault("verbose", d.Verbose)
}

// Validate checks if the configuration is valid. Every problem is
// reported, not just the first.
func (c *Config) Validate() error {
	var errs []string

	positive := []struct {
		key   string
		value int
	}{
		{"counts.cost_centers", c.Counts.CostCenters},
		{"counts.profit_centers", c.Counts.ProfitCenters},
		{"counts.projects", c.Counts.Projects},
		{"counts.employees", c.Counts.Employees},
		{"counts.products", c.Counts.Products},
		{"counts.customers", c.Counts.Customers},
		{"counts.suppliers", c.Counts.Suppliers},
		{"counts.transactions", c.Counts.Transactions},
		{"counts.sales", c.Counts.Sales},
		{"counts.purchases", c.Counts.Purchases},
		{"counts.production", c.Counts.Production},
		{"counts.cash_flow", c.Counts.CashFlow},
		{"generation.chunk_size", c.Generation.ChunkSize},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive", p.key))
		}
	}

	if c.Generation.Workers < 0 {
		errs = append(errs, "generation.workers must be non-negative")
	}

	if _, err := c.DateRange(); err != nil {
		errs = append(errs, err.Error())
	}

	if c.Output.Dir == "" {
		errs = append(errs, "output.dir must not be empty")
	}
	if _, err := c.OutputConfig(); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Output.XZPreset < 0 || c.Output.XZPreset > 9 {
		errs = append(errs, "output.xz_preset must be between 0 and 9")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// DateRange parses the configured dates
func (c *Config) DateRange() (patterns.DateRange, error) {
	return patterns.ParseDateRange(c.Dates.Start, c.Dates.End)
}

// OutputConfig converts the output settings for the table sink
func (c *Config) OutputConfig() (output.Config, error) {
	format, err := output.ParseFormat(c.Output.Format)
	if err != nil {
		return output.Config{}, err
	}
	cfg := output.Config{
		Dir:        c.Output.Dir,
		Format:     format,
		Compress:   c.Output.Compress,
		XZPreset:   c.Output.XZPreset,
		BufferSize: c.Output.BufferSize,
	}
	if err := cfg.Validate(); err != nil {
		return output.Config{}, err
	}
	return cfg, nil
}

// Orchestrator converts the configuration for the generator
func (c *Config) Orchestrator(version string) (generator.OrchestratorConfig, error) {
	if err := c.Validate(); err != nil {
		return generator.OrchestratorConfig{}, err
	}
	dates, err := c.DateRange()
	if err != nil {
		return generator.OrchestratorConfig{}, err
	}
	out, err := c.OutputConfig()
	if err != nil {
		return generator.OrchestratorConfig{}, err
	}

	return generator.OrchestratorConfig{
		Seed:      c.Generation.Seed,
		DateRange: dates,
		Counts: generator.Counts{
			CostCenters:   c.Counts.CostCenters,
			ProfitCenters: c.Counts.ProfitCenters,
			Projects:      c.Counts.Projects,
			Employees:     c.Counts.Employees,
			Products:      c.Counts.Products,
			Customers:     c.Counts.Customers,
			Suppliers:     c.Counts.Suppliers,
			Transactions:  c.Counts.Transactions,
			Sales:         c.Counts.Sales,
			Purchases:     c.Counts.Purchases,
			Production:    c.Counts.Production,
			CashFlow:      c.Counts.CashFlow,
		},
		ChunkSize: c.Generation.ChunkSize,
		Workers:   c.Generation.Workers,
		Output:    out,
		Version:   version,
	}, nil
}
