package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/willfong/fingen/internal/config"
	"github.com/willfong/fingen/internal/generator"
	"github.com/willfong/fingen/internal/output"
	"github.com/willfong/fingen/internal/ui"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dimension and fact tables",
	Long: `Generate the financial dataset into the output directory.

This command writes:
- 10 dimension tables (regions, branches, cost and profit centers, projects,
  chart of accounts, employees, products, customers, suppliers)
- 7 fact tables (journal transactions, payroll, sales, purchases,
  production orders, cash flow, budget vs actual)
- manifest.yaml describing the run

Payroll and budget sizes follow from the employees, cost centers and the
number of months in the date range.

Example:
  fingen generate
  fingen generate --seed 7 --start 2024-01-01 --end 2024-12-31
  fingen generate --transactions 2000000 --workers 0 --compress
  fingen generate --format xlsx --transactions 50000`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd.Flags(), generateFlagKeys)
	},
	RunE: runGenerate,
}

// generateFlagKeys maps generate flags to configuration keys
var generateFlagKeys = map[string]string{
	"output":         "output.dir",
	"format":         "output.format",
	"compress":       "output.compress",
	"seed":           "generation.seed",
	"chunk-size":     "generation.chunk_size",
	"workers":        "generation.workers",
	"start":          "dates.start",
	"end":            "dates.end",
	"cost-centers":   "counts.cost_centers",
	"profit-centers": "counts.profit_centers",
	"projects":       "counts.projects",
	"employees":      "counts.employees",
	"products":       "counts.products",
	"customers":      "counts.customers",
	"suppliers":      "counts.suppliers",
	"transactions":   "counts.transactions",
	"sales":          "counts.sales",
	"purchases":      "counts.purchases",
	"production":     "counts.production",
	"cash-flow":      "counts.cash_flow",
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringP("output", "o", config.DefaultOutputDir, "output directory")
	f.String("format", config.DefaultFormat, "table format: csv or xlsx")
	f.Bool("compress", false, "compress CSV output with xz (creates .csv.xz files)")
	f.Int64("seed", config.DefaultSeed, "random seed for reproducibility (0 = random)")
	f.Int("chunk-size", config.DefaultChunkSize, "rows streamed to a file at once")
	f.Int("workers", config.DefaultWorkers, "fact tables generated in parallel (0 = auto-detect CPUs)")
	f.String("start", config.DefaultStartDate, "first date of the dataset (YYYY-MM-DD)")
	f.String("end", config.DefaultEndDate, "last date of the dataset (YYYY-MM-DD)")

	f.Int("cost-centers", config.DefaultCostCenters, "number of cost centers")
	f.Int("profit-centers", config.DefaultProfitCenters, "number of profit centers")
	f.Int("projects", config.DefaultProjects, "number of projects")
	f.Int("employees", config.DefaultEmployees, "number of employees")
	f.Int("products", config.DefaultProducts, "number of products")
	f.Int("customers", config.DefaultCustomers, "number of customers")
	f.Int("suppliers", config.DefaultSuppliers, "number of suppliers")
	f.Int("transactions", config.DefaultTransactions, "number of journal transactions")
	f.Int("sales", config.DefaultSales, "number of sales invoices")
	f.Int("purchases", config.DefaultPurchases, "number of purchase orders")
	f.Int("production", config.DefaultProduction, "number of production orders")
	f.Int("cash-flow", config.DefaultCashFlow, "number of cash movements")
}

// bindFlags makes each flag the highest precedence source of its key
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag --%s", name)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	u := newUI()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	oc, err := cfg.Orchestrator(Version)
	if err != nil {
		return err
	}

	printGenerateHeader(u, oc)

	observer := newObserver(u)
	orchestrator, err := generator.NewOrchestrator(oc, generator.OrchestratorOptions{
		Logger:   log,
		Observer: observer,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := orchestrator.Run(ctx)
	observer.Finish()
	if err != nil {
		fmt.Println()
		fmt.Println(u.Error(fmt.Sprintf("Generation failed (seed %d)", orchestrator.Seed())))
		return err
	}

	printGenerateSummary(u, result)
	fmt.Println()
	if oc.Seed == 0 {
		fmt.Println(u.Warning(fmt.Sprintf("Seed was random; rerun with --seed %d to reproduce this dataset", result.Seed)))
	}
	fmt.Println(u.Success("Output files written to: " + oc.Output.Dir))
	return nil
}

// printGenerateHeader prints the effective run parameters
func printGenerateHeader(u *ui.UI, oc generator.OrchestratorConfig) {
	seed := fmt.Sprintf("%d", oc.Seed)
	if oc.Seed == 0 {
		seed = "random"
	}
	format := oc.Output.Extension()[1:]

	fmt.Println(u.Header("fingen Dataset Generator"))
	fmt.Println()
	fmt.Println(u.KeyValue("Period", fmt.Sprintf("%s to %s (%d months)",
		output.FormatDate(oc.DateRange.Start), output.FormatDate(oc.DateRange.End), len(oc.DateRange.Months()))))
	fmt.Println(u.KeyValue("Seed", seed))
	fmt.Println(u.KeyValue("Transactions", ui.FormatCount(int64(oc.Counts.Transactions))))
	fmt.Println(u.KeyValue("Sales", ui.FormatCount(int64(oc.Counts.Sales))))
	fmt.Println(u.KeyValue("Employees", ui.FormatCount(int64(oc.Counts.Employees))))
	fmt.Println(u.KeyValue("Format", format))
	fmt.Println(u.KeyValue("Workers", fmt.Sprintf("%d", generator.GetWorkerCount(oc.Workers))))
	fmt.Println(u.KeyValue("Output", oc.Output.Dir))
	fmt.Println()
}

// printGenerateSummary prints a styled generation summary
func printGenerateSummary(u *ui.UI, result *generator.GenerationResult) {
	items := []ui.KV{
		{Key: "Files", Value: fmt.Sprintf("%d", result.Files)},
		{Key: "Rows", Value: ui.FormatCount(result.TotalRows)},
		{Key: "Total size", Value: output.FormatBytes(result.TotalBytes)},
		{Key: "Seed", Value: fmt.Sprintf("%d", result.Seed)},
		{Key: "Manifest", Value: result.ManifestPath},
		{Key: "Duration", Value: result.Duration.Round(time.Millisecond).String()},
		{Key: "Status", Value: "Success"},
	}

	fmt.Println(u.SummaryBox("Generation Complete", items))
}
