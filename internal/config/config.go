package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/nao1215/shipreport/internal/report"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "shipreport"

	// DefaultFormat is the report format used when none is given.
	DefaultFormat = "text"

	// DefaultConcurrency is the number of formats rendered at once by export.
	DefaultConcurrency = 4

	// DefaultBasename is the file name, without extension, used by export.
	DefaultBasename = "shipments"

	// DefaultHistoryLimit is the number of report runs listed by history.
	DefaultHistoryLimit = 20
)

// Config holds all configuration options for shipreport.
// It is populated from CLI flags and the optional configuration file, and
// passed to the commands rather than kept in global state.
type Config struct {
	// Format is the report format name for generate (text, csv, json, markdown, html).
	Format string

	// InputFile is a YAML, JSON or CSV file to read shipments from.
	// Mutually exclusive with FromDB.
	InputFile string

	// FromDB reads shipments from the database instead of a file.
	FromDB bool

	// OutputFile is the file the report is written to.
	// When empty, the report is written to stdout.
	OutputFile string

	// Save records the generated report in the report history.
	Save bool

	// DBDir is the directory holding the SQLite database.
	// Defaults to the XDG data directory (~/.local/share/shipreport on Linux).
	DBDir string

	// ExportDir is the directory export writes its files to.
	ExportDir string

	// ExportFormats are the format names rendered by export.
	// Defaults to every known format.
	ExportFormats []string

	// Basename is the export file name without extension.
	Basename string

	// Concurrency is the number of formats export renders at once.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON switches log output to JSON.
	LogJSON bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .shipreport in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format:        DefaultFormat,
		DBDir:         XDGDataDir(),
		ExportDir:     ".",
		ExportFormats: formatNames(report.Formats()),
		Basename:      DefaultBasename,
		Concurrency:   DefaultConcurrency,
	}
}

// XDGDataDir returns the XDG data directory for shipreport.
// On Linux: ~/.local/share/shipreport
// On macOS: ~/Library/Application Support/shipreport
// On Windows: %LOCALAPPDATA%\shipreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for shipreport.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ReportFormat parses Format.
func (c *Config) ReportFormat() (report.Format, error) {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	return f, nil
}

// ReportFormats parses ExportFormats.
func (c *Config) ReportFormats() ([]report.Format, error) {
	if len(c.ExportFormats) == 0 {
		return nil, ErrNoExportFormats
	}
	formats, err := report.ParseFormats(c.ExportFormats)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return formats, nil
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the package's sentinel errors.
func (c *Config) Validate() error {
	if _, err := c.ReportFormat(); err != nil {
		return err
	}

	if c.InputFile != "" && c.FromDB {
		return ErrConflictingSources
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if _, err := c.ReportFormats(); err != nil {
		return err
	}

	if c.Basename == "" || strings.ContainsAny(c.Basename, `/\`) {
		return ErrInvalidBasename
	}

	return nil
}

func formatNames(formats []report.Format) []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return names
}
