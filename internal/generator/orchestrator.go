package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/willfong/fingen/internal/data"
	"github.com/willfong/fingen/internal/faker"
	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/output"
	"github.com/willfong/fingen/internal/utils"
)

// Counts holds the configured size of every table whose size is not
// derived from other tables
type Counts struct {
	CostCenters   int
	ProfitCenters int
	Projects      int
	Employees     int
	Products      int
	Customers     int
	Suppliers     int
	Transactions  int
	Sales         int
	Purchases     int
	Production    int
	CashFlow      int
}

// OrchestratorConfig holds settings for the orchestrator
type OrchestratorConfig struct {
	Seed      int64
	DateRange patterns.DateRange
	Counts    Counts
	ChunkSize int
	// Number of fact tables generated concurrently (0 = auto-detect CPUs)
	Workers int
	Output  output.Config
	// Recorded in the manifest
	Version string
}

// GenerationResult holds statistics from the generation run
type GenerationResult struct {
	Seed         uint64
	Tables       []output.TableStats
	Files        int
	TotalRows    int64
	TotalBytes   int64
	ManifestPath string
	Duration     time.Duration
}

// Orchestrator builds every table of one dataset. Dimensions are built
// sequentially in dependency order, then facts are built from them.
type Orchestrator struct {
	rng      *utils.Random
	refData  *data.ReferenceData
	config   OrchestratorConfig
	log      *logrus.Entry
	observer Observer

	sink *output.Sink
	dims *Dimensions
}

// OrchestratorOptions holds optional settings for the orchestrator
type OrchestratorOptions struct {
	Logger   *logrus.Logger
	Observer Observer
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(config OrchestratorConfig, opts OrchestratorOptions) (*Orchestrator, error) {
	refData, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	rng := utils.NewRandom(config.Seed)

	return &Orchestrator{
		rng:      rng,
		refData:  refData,
		config:   config,
		log:      logger.WithField("seed", rng.Seed()),
		observer: observer,
	}, nil
}

// Seed returns the seed actually used, which differs from the configured
// one when that was 0
func (o *Orchestrator) Seed() uint64 {
	return o.rng.Seed()
}

// Run generates every dimension and fact table and writes the manifest
func (o *Orchestrator) Run(ctx context.Context) (*GenerationResult, error) {
	start := time.Now()

	sink, err := output.NewSink(o.config.Output)
	if err != nil {
		return nil, err
	}
	o.sink = sink

	if err := o.GenerateDimensions(ctx); err != nil {
		return nil, err
	}
	if err := o.GenerateFacts(ctx); err != nil {
		return nil, err
	}

	result := &GenerationResult{
		Seed:     o.rng.Seed(),
		Tables:   sink.Stats(),
		Duration: time.Since(start),
	}
	for _, t := range result.Tables {
		result.TotalRows += t.Rows
		result.TotalBytes += t.Bytes
	}
	result.Files = len(result.Tables)

	result.ManifestPath, err = output.WriteManifest(o.config.Output.Dir, output.Manifest{
		Generator:   "fingen",
		Version:     o.config.Version,
		Seed:        result.Seed,
		StartDate:   output.FormatDate(o.config.DateRange.Start),
		EndDate:     output.FormatDate(o.config.DateRange.End),
		Format:      sink.Config().Format,
		Compressed:  sink.Config().Compress,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Tables:      result.Tables,
	})
	if err != nil {
		return nil, err
	}

	o.log.WithFields(logrus.Fields{
		"files":    result.Files,
		"rows":     result.TotalRows,
		"bytes":    result.TotalBytes,
		"duration": result.Duration.Round(time.Millisecond),
	}).Info("Generation complete")

	return result, nil
}

// Dimensions returns the dimension tables built by GenerateDimensions
func (o *Orchestrator) Dimensions() *Dimensions {
	return o.dims
}

// identity builds the faker for one table from the table's own random context
func (o *Orchestrator) identity(rng *utils.Random) (faker.Identity, error) {
	f, err := faker.New(rng, o.refData, data.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to create faker: %w", err)
	}
	return f, nil
}

// GenerateDimensions builds and writes the dimension tables in dependency
// order: regions, branches, cost centers, profit centers, projects,
// accounts, employees, products, customers, suppliers.
func (o *Orchestrator) GenerateDimensions(ctx context.Context) error {
	d := &Dimensions{}
	c := o.config.Counts

	steps := []struct {
		name    string
		columns []string
		build   func(rng *utils.Random, id faker.Identity) []models.Record
	}{
		{TableRegions, models.RegionColumns, func(_ *utils.Random, _ faker.Identity) []models.Record {
			d.Regions = NewRegionGenerator(o.refData).Generate()
			return output.Records(d.Regions)
		}},
		{TableBranches, models.BranchColumns, func(rng *utils.Random, id faker.Identity) []models.Record {
			d.Branches = NewBranchGenerator(rng, id, o.refData).Generate(d.Regions)
			return output.Records(d.Branches)
		}},
		{TableCostCenters, models.CostCenterColumns, func(rng *utils.Random, _ faker.Identity) []models.Record {
			d.CostCenters = NewCostCenterGenerator(rng, c.CostCenters).Generate(d.Branches)
			return output.Records(d.CostCenters)
		}},
		{TableProfitCenters, models.ProfitCenterColumns, func(rng *utils.Random, id faker.Identity) []models.Record {
			d.ProfitCenters = NewProfitCenterGenerator(rng, id, c.ProfitCenters).Generate(d.Regions)
			return output.Records(d.ProfitCenters)
		}},
		{TableProjects, models.ProjectColumns, func(rng *utils.Random, id faker.Identity) []models.Record {
			d.Projects = NewProjectGenerator(rng, id, c.Projects, o.config.DateRange).Generate()
			return output.Records(d.Projects)
		}},
		{TableAccounts, models.AccountColumns, func(rng *utils.Random, _ faker.Identity) []models.Record {
			d.Accounts = NewAccountGenerator(rng, o.refData).Generate()
			return output.Records(d.Accounts)
		}},
		{TableEmployees, models.EmployeeColumns, func(rng *utils.Random, id faker.Identity) []models.Record {
			d.Employees = NewEmployeeGenerator(rng, id, c.Employees, o.config.DateRange).Generate(d.CostCenters)
			return output.Records(d.Employees)
		}},
		{TableProducts, models.ProductColumns, func(rng *utils.Random, id faker.Identity) []models.Record {
			d.Products = NewProductGenerator(rng, id, c.Products).Generate()
			return output.Records(d.Products)
		}},
		{TableCustomers, models.CustomerColumns, func(rng *utils.Random, id faker.Identity) []models.Record {
			d.Customers = NewCustomerGenerator(rng, id, c.Customers).Generate(d.Regions)
			return output.Records(d.Customers)
		}},
		{TableSuppliers, models.SupplierColumns, func(rng *utils.Random, id faker.Identity) []models.Record {
			d.Suppliers = NewSupplierGenerator(rng, id, c.Suppliers).Generate()
			return output.Records(d.Suppliers)
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		rng := o.rng.Derive(step.name)
		id, err := o.identity(rng)
		if err != nil {
			return err
		}

		rows := step.build(rng, id)
		o.observer.TableStarted(step.name, int64(len(rows)))
		stats, err := o.writeTable(step.name, step.columns, rows)
		if err != nil {
			o.observer.TableFailed(step.name, err)
			return err
		}
		o.observer.TableDone(stats)
	}

	o.dims = d
	return nil
}

func (o *Orchestrator) writeTable(name string, columns []string, rows []models.Record) (output.TableStats, error) {
	stats, err := o.sink.Write(name, columns, rows)
	if err != nil {
		return stats, err
	}
	o.logTable(stats)
	return stats, nil
}

func (o *Orchestrator) logTable(stats output.TableStats) {
	o.log.WithFields(logrus.Fields{
		"table":    stats.Name,
		"rows":     stats.Rows,
		"columns":  stats.Columns,
		"duration": stats.Duration.Round(time.Millisecond),
	}).Debug("Wrote table")
}

// factBuilder is the shape shared by every fact generator
type factBuilder interface {
	Generate(sink RowSink) error
}

// fact describes how to build one fact table
type fact struct {
	name    string
	columns []string
	total   int64
	builder func(rng *utils.Random, cfg StreamConfig) (factBuilder, error)
}

// facts returns the fact tables in build order
func (o *Orchestrator) facts() []fact {
	c := o.config.Counts
	d := o.dims

	return []fact{
		{TableTransactions, models.TransactionColumns, int64(c.Transactions), func(rng *utils.Random, cfg StreamConfig) (factBuilder, error) {
			cfg.Count = c.Transactions
			id, err := o.identity(rng)
			if err != nil {
				return nil, err
			}
			return NewTransactionGenerator(rng, id, d, cfg), nil
		}},
		{TablePayroll, models.PayrollColumns, 0, func(rng *utils.Random, cfg StreamConfig) (factBuilder, error) {
			return NewPayrollGenerator(rng, d, cfg), nil
		}},
		{TableSales, models.SaleColumns, int64(c.Sales), func(rng *utils.Random, cfg StreamConfig) (factBuilder, error) {
			cfg.Count = c.Sales
			return NewSalesGenerator(rng, d, cfg), nil
		}},
		{TablePurchases, models.PurchaseColumns, int64(c.Purchases), func(rng *utils.Random, cfg StreamConfig) (factBuilder, error) {
			cfg.Count = c.Purchases
			return NewPurchaseGenerator(rng, d, cfg), nil
		}},
		{TableProduction, models.ProductionOrderColumns, int64(c.Production), func(rng *utils.Random, cfg StreamConfig) (factBuilder, error) {
			cfg.Count = c.Production
			return NewProductionGenerator(rng, d, cfg), nil
		}},
		{TableCashFlow, models.CashFlowColumns, int64(c.CashFlow), func(rng *utils.Random, cfg StreamConfig) (factBuilder, error) {
			cfg.Count = c.CashFlow
			return NewCashFlowGenerator(rng, d, cfg), nil
		}},
		{TableBudget, models.BudgetColumns, 0, func(rng *utils.Random, cfg StreamConfig) (factBuilder, error) {
			return NewBudgetGenerator(rng, d, cfg), nil
		}},
	}
}

// GenerateFacts builds and writes every fact table. Must be called after
// GenerateDimensions. With more than one worker, tables are generated
// concurrently; each draws from its own derived random context, so the
// output does not depend on the worker count.
func (o *Orchestrator) GenerateFacts(ctx context.Context) error {
	if o.dims == nil {
		return fmt.Errorf("no dimensions found - call GenerateDimensions first")
	}

	workers := min(GetWorkerCount(o.config.Workers), len(FactTables))
	o.log.WithField("workers", workers).Debug("Generating fact tables")

	facts := o.facts()
	tasks := make([]Task, len(facts))
	for i, f := range facts {
		rng := o.rng.Derive(f.name)
		tasks[i] = Task{Name: f.name, Fn: func(ctx context.Context) error {
			return o.runFact(ctx, f, rng)
		}}
	}
	return RunTasks(ctx, workers, tasks)
}

func (o *Orchestrator) runFact(ctx context.Context, f fact, rng *utils.Random) error {
	cfg := StreamConfig{
		ChunkSize: o.config.ChunkSize,
		DateRange: o.config.DateRange,
		Progress: func(done, total int64) {
			o.observer.TableProgress(f.name, done, total)
		},
	}
	b, err := f.builder(rng, cfg)
	if err != nil {
		return err
	}

	total := f.total
	if counted, ok := b.(interface{ RowCount() int }); ok {
		total = int64(counted.RowCount())
	}
	o.observer.TableStarted(f.name, total)

	table, err := o.sink.Create(f.name, f.columns)
	if err != nil {
		o.observer.TableFailed(f.name, err)
		return err
	}
	sink := &cancellableSink{ctx: ctx, next: table}
	if err := b.Generate(sink); err != nil {
		table.Close()
		o.observer.TableFailed(f.name, err)
		return err
	}

	stats, err := table.Close()
	if err != nil {
		o.observer.TableFailed(f.name, err)
		return err
	}
	o.logTable(stats)
	o.observer.TableDone(stats)
	return nil
}

// cancellableSink stops a streaming table between chunks once ctx is done
type cancellableSink struct {
	ctx  context.Context
	next RowSink
}

func (s *cancellableSink) WriteRows(rows []models.Record) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	return s.next.WriteRows(rows)
}
