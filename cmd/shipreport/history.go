package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/shipreport/internal/config"
	"github.com/spf13/cobra"
)

// ErrRunNotFound is returned by history --show for an unknown run ID.
var ErrRunNotFound = errors.New("report run not found")

// historyTimeLayout is the timestamp layout of the history table.
const historyTimeLayout = "2006-01-02 15:04:05"

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded report runs",
		Long: `History lists the reports recorded with "shipreport generate --save",
newest first. Each run has an ID, its format, the number of shipments and
the SHA3-256 digest of the report.

Examples:
  # Show the last 20 runs
  shipreport history

  # Print the report of one run exactly as it was generated
  shipreport history --show 3f2b8c1e-...`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of runs to list (0 for all)")
	cmd.Flags().String("show", "",
		"Print the report of the run with this ID")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	showID, err := cmd.Flags().GetString("show")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg)
	ctx := cmd.Context()

	db, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()

	if showID != "" {
		run, err := db.GetReportRun(ctx, showID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, showID)
		}
		fmt.Fprint(out, run.Output)
		return nil
	}

	runs, err := db.ListReportRuns(ctx, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No reports recorded. Use \"shipreport generate --save\" to record one."))
		return nil
	}

	t := &table{headers: []string{"ID", "CREATED", "FORMAT", "SHIPMENTS", "DIGEST"}}
	for _, run := range runs {
		t.rows = append(t.rows, []string{
			run.ID,
			run.CreatedAt.Local().Format(historyTimeLayout),
			run.Format,
			strconv.Itoa(run.ShipmentCount),
			run.Digest[:12],
		})
	}
	t.style = func(_, col int) *lipgloss.Style {
		if col == 4 {
			return &dimStyle
		}
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Report runs (%d)", len(runs))))
	fmt.Fprint(out, t.render())

	return nil
}
