package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/shipreport/internal/config"
	"github.com/nao1215/shipreport/internal/model"
	"github.com/nao1215/shipreport/internal/report"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a shipment report",
		Long: `Generate renders a shipment report in one format.

Shipments are read from --input, from the database with --from-db, or from
the built-in sample when neither is given.

CSV and JSON reports insert values verbatim. Values containing commas,
quotes or line breaks are reported as warnings but never altered.

Examples:
  # Print the sample shipments as text
  shipreport generate

  # Render a YAML file as CSV
  shipreport generate -i shipments.yaml -f csv

  # Render stored shipments as Markdown and record the run
  shipreport generate --from-db -f md -o reports/today.md --save`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Report format: text, csv, json, markdown, html")
	cmd.Flags().StringP("input", "i", "",
		"Read shipments from a YAML, JSON or CSV file")
	cmd.Flags().Bool("from-db", false,
		"Read shipments from the database")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to a file instead of stdout")
	cmd.Flags().Bool("save", false,
		"Record the report in the history")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg)
	ctx := cmd.Context()

	format, err := cfg.ReportFormat()
	if err != nil {
		return err
	}
	gen, err := report.NewGenerator(format)
	if err != nil {
		return err
	}

	shipments, err := loadShipments(ctx, cfg, logger)
	if err != nil {
		return err
	}
	warnAmbiguities(logger, format, shipments)

	var out io.WriteCloser = nopCloser{cmd.OutOrStdout()}
	if cfg.OutputFile != "" {
		f, err := createFile(cfg.OutputFile)
		if err != nil {
			return err
		}
		out = f
	}

	n, recorded, err := writeReport(out, gen, shipments, cfg.Save)
	if err != nil {
		return err
	}
	logger.Info("report generated",
		"format", format.String(),
		"shipments", len(shipments),
		"bytes_written", n,
	)

	if !cfg.Save {
		return nil
	}

	db, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := db.SaveReportRun(ctx, format.String(), len(shipments), recorded)
	if err != nil {
		return err
	}
	logger.Info("report recorded", "run", run.ID, "digest", run.Digest)

	if cfg.OutputFile != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (run %s)\n", cfg.OutputFile, run.ID)
	}

	return nil
}

// writeReport writes the report to out and closes it. When record is set,
// the same report is also captured through a MultiWriter and returned, so
// the history stores exactly what was written. n counts the bytes written
// to every destination.
func writeReport(out io.WriteCloser, gen *report.Generator, shipments []model.Shipment, record bool) (n int, recorded string, err error) {
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report output: %w", cerr)
		}
	}()

	var w report.Writer = report.NewGeneratorWriter(out, gen)
	var buf strings.Builder
	if record {
		w = report.NewMultiWriter(w, report.NewGeneratorWriter(&buf, gen))
	}

	n, err = w.Write(shipments)
	if err != nil {
		return n, "", fmt.Errorf("failed to write report: %w", err)
	}
	return n, buf.String(), nil
}

// nopCloser turns stdout into an io.WriteCloser whose Close does nothing.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
