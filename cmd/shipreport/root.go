package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for shipreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipreport",
		Short: "Render shipment reports in several formats",
		Long: `shipreport renders a list of shipments as a plain text, CSV, JSON,
Markdown or HTML report.

Shipments are read from a YAML, JSON or CSV file, from the local shipment
store (see "shipreport import"), or, when no source is given, from a small
built-in sample.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .shipreport in current or home directory)")
	cmd.PersistentFlags().String("db-dir", "",
		"Directory of the shipment database (default: XDG data directory)")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. Interrupt and SIGTERM cancel the
// command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
