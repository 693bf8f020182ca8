package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show stored shipments",
		Long: `List prints the shipments in the database in import order.

Use "shipreport generate --from-db" to render them as a report.`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg)

	db, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	shipments, err := db.ListShipments(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(shipments) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No shipments stored. Use \"shipreport import\" to add some."))
		return nil
	}

	t := &table{headers: []string{"ID", "STATUS", "DESTINATION"}}
	for _, s := range shipments {
		t.rows = append(t.rows, s.Fields())
	}
	t.style = func(row, col int) *lipgloss.Style {
		if col != 1 {
			return nil
		}
		return statusStyle(shipments[row].Status)
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Shipments (%d)", len(shipments))))
	fmt.Fprint(out, t.render())

	return nil
}
