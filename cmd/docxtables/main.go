// Package main provides the CLI entry point for docxtables.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scalehub/calibration-tools/pkg/docxtables"
	"github.com/scalehub/calibration-tools/pkg/docxtables/output"
	"github.com/scalehub/calibration-tools/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultInputPath is used when no document is given on the command line.
const defaultInputPath = "calibration-report.docx"

var (
	previewRows int
	jsonOutput  bool
	pretty      bool
	xlsxPath    string
	verbose     bool

	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docxtables [input.docx]",
		Short: "Print the tables found in a Word document",
		Long: `docxtables reads word/document.xml from a .docx file and prints every
table it contains: the row count and a preview of the first rows.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync(logger)
		},
		RunE: run,
	}

	rootCmd.Flags().IntVar(&previewRows, "rows", docxtables.DefaultPreviewRows, "Number of rows to preview per table")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print extracted tables as JSON instead of the text report")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write all tables to this Excel workbook")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	inputPath := defaultInputPath
	if len(args) > 0 {
		inputPath = args[0]
	}

	// Missing input is reported, not treated as a failure.
	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(out, "File not found: %s\n", inputPath)
		return nil
	}

	logger.Debug("Extracting tables", zap.String("path", inputPath))

	doc, err := docxtables.Extract(inputPath)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		logger.Error("Extraction failed",
			zap.String("path", inputPath),
			zap.Error(err),
			zap.Stack("stack"))
		return nil
	}

	logger.Debug("Tables extracted", zap.Int("tables", doc.TableCount()))

	if jsonOutput {
		jsonData, err := output.ToJSON(doc, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(jsonData))
	} else {
		opts := docxtables.Options{PreviewRows: previewRows}
		if err := docxtables.WriteReport(out, doc, opts); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if xlsxPath != "" {
		if err := docxtables.ExportXLSX(doc, xlsxPath); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		logger.Info("Workbook written", zap.String("path", xlsxPath))
	}

	return nil
}
