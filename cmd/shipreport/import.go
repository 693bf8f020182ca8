package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Store shipments from YAML, JSON or CSV files",
		Long: `Import reads shipments from one or more files and stores them in the
shipment database. A shipment whose ID is already stored is updated in
place and keeps its position; new IDs are appended.

Supported files:
  .yaml, .yml, .json  a list of {id, status, destination} objects,
                      or an object with a "shipments" list
  .csv                a header row "id,status,destination" and one row per shipment

Examples:
  shipreport import shipments.yaml
  shipreport import monday.csv tuesday.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportCmd,
	}
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
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
	for _, path := range args {
		cfg.InputFile = path
		shipments, err := loadShipments(ctx, cfg, logger)
		if err != nil {
			return err
		}

		if err := db.SaveShipments(ctx, shipments); err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}
		fmt.Fprintf(out, "Imported %d shipments from %s\n", len(shipments), path)
	}

	total, err := db.CountShipments(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d shipments stored\n", total)

	return nil
}

// NewDeleteCmd creates the delete command.
func NewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Remove shipments from the database",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDeleteCmd,
	}
}

// runDeleteCmd executes the delete command.
func runDeleteCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
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
	for _, id := range args {
		deleted, err := db.DeleteShipment(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			logger.Warn("shipment not found", "id", id)
			continue
		}
		fmt.Fprintf(out, "Deleted %s\n", id)
	}

	return nil
}
