package main

import (
	"fmt"

	"github.com/nao1215/shipreport/internal/config"
	"github.com/nao1215/shipreport/internal/export"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a shipment report in several formats at once",
		Long: `Export renders the same shipments in several formats and writes one
file per format to a directory. Files are named <basename>.<ext>, for example
shipments.csv and shipments.md.

Examples:
  # Write every format for the sample shipments into ./reports
  shipreport export --dir reports

  # Write CSV and JSON for stored shipments
  shipreport export --from-db --formats csv,json --dir out`,
		Args: cobra.NoArgs,
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("dir", "d", ".",
		"Directory to write the report files to")
	cmd.Flags().StringSlice("formats", nil,
		"Formats to export (default: all)")
	cmd.Flags().StringP("basename", "b", config.DefaultBasename,
		"File name without extension")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of formats rendered at the same time")
	cmd.Flags().StringP("input", "i", "",
		"Read shipments from a YAML, JSON or CSV file")
	cmd.Flags().Bool("from-db", false,
		"Read shipments from the database")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg)
	ctx := cmd.Context()

	formats, err := cfg.ReportFormats()
	if err != nil {
		return err
	}

	shipments, err := loadShipments(ctx, cfg, logger)
	if err != nil {
		return err
	}
	for _, f := range formats {
		warnAmbiguities(logger, f, shipments)
	}

	exporter := export.New(
		export.WithConcurrency(cfg.Concurrency),
		export.WithLogger(logger),
	)
	results, err := exporter.Export(ctx, cfg.ExportDir, cfg.Basename, formats, shipments)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%-8s %s (%d bytes)\n", r.Format, r.Path, r.Bytes)
	}

	return nil
}
