package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/shipreport/internal/config"
	"github.com/nao1215/shipreport/internal/database"
	"github.com/nao1215/shipreport/internal/log"
	"github.com/nao1215/shipreport/internal/model"
	"github.com/nao1215/shipreport/internal/report"
	"github.com/nao1215/shipreport/internal/source"
	"github.com/spf13/cobra"
)

// buildConfig creates a Config from the defaults, the configuration file
// and the flags of cmd, in that order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.LogJSON = getBoolFlag(cmd, "log-json")

	if err := overrideString(cmd, "config", &cfg.ConfigFilePath); err != nil {
		return nil, err
	}

	// An explicit --config must exist; the default locations are optional.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	overrides := []error{
		overrideString(cmd, "db-dir", &cfg.DBDir),
		overrideString(cmd, "format", &cfg.Format),
		overrideString(cmd, "input", &cfg.InputFile),
		overrideBool(cmd, "from-db", &cfg.FromDB),
		overrideString(cmd, "output", &cfg.OutputFile),
		overrideBool(cmd, "save", &cfg.Save),
		overrideString(cmd, "dir", &cfg.ExportDir),
		overrideStringSlice(cmd, "formats", &cfg.ExportFormats),
		overrideString(cmd, "basename", &cfg.Basename),
		overrideInt(cmd, "concurrency", &cfg.Concurrency),
	}
	for _, err := range overrides {
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// getBoolFlag retrieves a bool flag from the command or the root's
// persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// overrideString sets *dst to the flag value if the user set the flag.
// Flags the command does not define are skipped.
func overrideString(cmd *cobra.Command, name string, dst *string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func overrideBool(cmd *cobra.Command, name string, dst *bool) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func overrideInt(cmd *cobra.Command, name string, dst *int) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func overrideStringSlice(cmd *cobra.Command, name string, dst *[]string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// setupLogger creates the redacting logger for cfg, writing to the
// command's stderr, and installs it as the slog default.
func setupLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	logger := log.NewLogger(cmd.ErrOrStderr(), log.Options{
		Verbose: cfg.Verbose,
		JSON:    cfg.LogJSON,
	})
	slog.SetDefault(logger)
	return logger
}

// openDB opens the shipment database in cfg.DBDir.
func openDB(cfg *config.Config, logger *slog.Logger) (*database.ShipmentDB, error) {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", db.Path())
	return db, nil
}

// loadShipments reads shipments from the source selected in cfg:
// the input file, the database, or the built-in sample.
func loadShipments(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]model.Shipment, error) {
	switch {
	case cfg.InputFile != "":
		shipments, err := source.LoadFile(cfg.InputFile)
		if err != nil {
			return nil, err
		}
		logger.Info("shipments loaded", "file", cfg.InputFile, "count", len(shipments))
		return shipments, nil

	case cfg.FromDB:
		db, err := openDB(cfg, logger)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		shipments, err := db.ListShipments(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("shipments loaded from database", "count", len(shipments))
		return shipments, nil

	default:
		logger.Info("no source given, using sample shipments")
		return source.Sample(), nil
	}
}

// warnAmbiguities logs one warning per value that format f renders
// ambiguously. The report itself is not changed.
func warnAmbiguities(logger *slog.Logger, f report.Format, shipments []model.Shipment) {
	for _, a := range report.Ambiguities(f, shipments) {
		logger.Warn("value is rendered ambiguously",
			"format", f.String(),
			"index", a.Index,
			"id", a.ShipmentID,
			"field", a.Field,
			"reason", a.Reason,
		)
	}
}

// createFile creates path for writing with owner-only permissions,
// creating parent directories if needed.
func createFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
