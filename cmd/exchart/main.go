// Package main provides the CLI entry point for exchart-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/output"
)

var (
	outputPath   string
	pretty       bool
	tree         bool
	verbose      bool
	dataPath     string
	sheetName    string
	rangeRef     string
	bindingsPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exchart",
		Short: "Compile chart specs over Excel data",
		Long: `exchart-go compiles a declarative chart spec (YAML or JSON) over a range
of an Excel workbook into a chart document model and outputs JSON.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log compiler decisions to stderr")

	compileCmd := &cobra.Command{
		Use:   "compile [spec.yaml]",
		Short: "Compile a chart spec into a chart document",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}
	compileCmd.Flags().StringVar(&dataPath, "data", "", "Excel workbook holding the chart data (required)")
	compileCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: first sheet or the sheet of --range)")
	compileCmd.Flags().StringVar(&rangeRef, "range", "", "Data range or defined name (default: used region of the sheet)")
	compileCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	compileCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	compileCmd.Flags().BoolVar(&tree, "tree", false, "Output the ordered document tree instead of the model")
	compileCmd.Flags().StringVar(&bindingsPath, "bindings", "", "Also write the series bindings to this file")
	_ = compileCmd.MarkFlagRequired("data")

	validateCmd := &cobra.Command{
		Use:   "validate [spec.yaml]",
		Short: "Validate a chart spec file against the schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	rootCmd.AddCommand(compileCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runCompile(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	spec, err := exchart.LoadSpec(args[0])
	if err != nil {
		return err
	}
	block, err := exchart.LoadDataBlock(dataPath, sheetName, rangeRef)
	if err != nil {
		return err
	}
	logger.Debug("data block loaded", "sheet", block.Sheet, "rows", block.Height(), "columns", block.Width())

	opts := exchart.DefaultOptions()
	opts.Logger = logger
	doc, err := exchart.Compile(spec, block, opts)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}

	// Serialize to JSON
	var jsonData []byte
	if tree {
		jsonData, err = output.TreeToJSON(doc, pretty)
	} else {
		jsonData, err = output.ToJSON(doc, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if bindingsPath != "" {
		bindings, err := output.SeriesToJSON(doc, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(bindingsPath, bindings, 0644); err != nil {
			return fmt.Errorf("failed to write bindings: %w", err)
		}
	}

	logger.Info("chart compiled", "id", doc.ID, "family", doc.Family, "series", len(doc.Bindings()))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	spec, err := exchart.LoadSpec(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s chart spec\n", args[0], spec.Family)
	return nil
}
