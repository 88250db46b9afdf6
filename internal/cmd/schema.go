package cmd

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed schemas/*.sql
var schemaFS embed.FS

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [type]",
	Short: "Output database schema for the generated tables",
	Long: `Output the SQL schema for loading the generated files into a database.

Available schema types:
  full      Tables followed by indexes and foreign keys (default)
  tables    Tables only, no secondary indexes (for bulk loading)
  indexes   Indexes and foreign keys only (run after the load)

The schema is designed for MariaDB 11.8+ but should work with MySQL 8+.
Column order matches the CSV headers.

Bulk Loading Strategy:
  1. Create tables without indexes: fingen schema tables | mariadb finance
  2. Load each CSV with LOAD DATA INFILE ... IGNORE 1 LINES
  3. Create indexes: fingen schema indexes | mariadb finance

Examples:
  fingen schema                          # Output complete schema
  fingen schema full -o schema.sql       # Save full schema to file
  fingen schema tables | mariadb finance # Create tables only`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"full", "tables", "indexes"},
	RunE:      runSchema,
}

var schemaOutputFile string

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutputFile, "output", "o", "", "output file (default: stdout)")
}

// schemaSQL returns the DDL for the given schema type
func schemaSQL(schemaType string) ([]byte, error) {
	var files []string
	switch schemaType {
	case "full":
		files = []string{"schemas/tables.sql", "schemas/indexes.sql"}
	case "tables":
		files = []string{"schemas/tables.sql"}
	case "indexes":
		files = []string{"schemas/indexes.sql"}
	default:
		return nil, fmt.Errorf("unknown schema type %q (valid types: full, tables, indexes)", schemaType)
	}

	var out []byte
	for i, name := range files {
		content, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading schema: %w", err)
		}
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, content...)
	}
	return out, nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	schemaType := "full"
	if len(args) > 0 {
		schemaType = args[0]
	}

	content, err := schemaSQL(schemaType)
	if err != nil {
		return err
	}

	if schemaOutputFile == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	// Ensure directory exists
	if dir := filepath.Dir(schemaOutputFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(schemaOutputFile, content, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), newUI().Success("Schema written to: "+schemaOutputFile))
	return nil
}
