package database

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nao1215/shipreport/internal/model"
	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the name of the database file inside the database directory.
const FileName = "shipreport.db"

// timeLayout is a fixed-width UTC layout, so stored timestamps sort
// lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ShipmentDB provides SQLite-based storage for shipments and report runs.
type ShipmentDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// now returns the current time. Tests replace it for stable ordering.
	now func() time.Time
}

// Options configures ShipmentDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ShipmentDB in dbDir.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ShipmentDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (run 'shipreport import' first)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file; mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &ShipmentDB{
		db:     db,
		dbPath: dbPath,
		now:    time.Now,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *ShipmentDB) Close() error {
	return sdb.db.Close()
}

// Path returns the path of the database file.
func (sdb *ShipmentDB) Path() string {
	return sdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (sdb *ShipmentDB) createTables() error {
	schema := `
	-- Shipments keep the position of their first import
	CREATE TABLE IF NOT EXISTS shipments (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		destination TEXT NOT NULL,
		position INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_shipments_position ON shipments(position);

	-- Report runs store rendered reports
	CREATE TABLE IF NOT EXISTS report_runs (
		id TEXT PRIMARY KEY,
		format TEXT NOT NULL,
		shipment_count INTEGER NOT NULL,
		digest TEXT NOT NULL,
		output TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON report_runs(created_at);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveShipments inserts or updates shipments in a single transaction.
// New IDs are appended after existing shipments in input order; existing
// IDs keep their position and get the new status and destination.
func (sdb *ShipmentDB) SaveShipments(ctx context.Context, shipments []model.Shipment) error {
	tx, err := sdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after Commit is a no-op

	query := `
	INSERT INTO shipments (id, status, destination, position, updated_at)
	VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM shipments), ?)
	ON CONFLICT(id) DO UPDATE SET
		status = excluded.status,
		destination = excluded.destination,
		updated_at = excluded.updated_at
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare shipment insert: %w", err)
	}
	defer stmt.Close()

	updatedAt := sdb.timestamp()
	for _, s := range shipments {
		if _, err := stmt.ExecContext(ctx, s.ID, s.Status, s.Destination, updatedAt); err != nil {
			return fmt.Errorf("failed to save shipment %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shipments: %w", err)
	}
	return nil
}

// ListShipments returns all stored shipments in position order.
func (sdb *ShipmentDB) ListShipments(ctx context.Context) ([]model.Shipment, error) {
	query := `
	SELECT id, status, destination FROM shipments
	ORDER BY position
	`

	rows, err := sdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer rows.Close()

	shipments := make([]model.Shipment, 0)
	for rows.Next() {
		var s model.Shipment
		if err := rows.Scan(&s.ID, &s.Status, &s.Destination); err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}
		shipments = append(shipments, s)
	}

	return shipments, rows.Err()
}

// CountShipments returns the number of stored shipments.
func (sdb *ShipmentDB) CountShipments(ctx context.Context) (int, error) {
	var count int
	if err := sdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM shipments").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count shipments: %w", err)
	}
	return count, nil
}

// DeleteShipment removes the shipment with the given ID.
// It reports whether a shipment was removed.
func (sdb *ShipmentDB) DeleteShipment(ctx context.Context, id string) (bool, error) {
	result, err := sdb.db.ExecContext(ctx, "DELETE FROM shipments WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete shipment: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete shipment: %w", err)
	}
	return n > 0, nil
}

// SaveReportRun records a rendered report and returns the stored run.
// The run gets a random UUID and the SHA3-256 digest of output.
func (sdb *ShipmentDB) SaveReportRun(ctx context.Context, format string, shipmentCount int, output string) (*model.ReportRun, error) {
	createdAt := sdb.now().UTC()
	run := &model.ReportRun{
		ID:            uuid.NewString(),
		Format:        format,
		ShipmentCount: shipmentCount,
		Digest:        Digest(output),
		Output:        output,
		CreatedAt:     createdAt,
	}

	query := `
	INSERT INTO report_runs (id, format, shipment_count, digest, output, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := sdb.db.ExecContext(ctx, query,
		run.ID,
		run.Format,
		run.ShipmentCount,
		run.Digest,
		run.Output,
		createdAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save report run: %w", err)
	}

	return run, nil
}

// ListReportRuns returns recorded runs newest first, without their output.
// A limit of zero or less returns every run.
func (sdb *ShipmentDB) ListReportRuns(ctx context.Context, limit int) ([]model.ReportRun, error) {
	query := `
	SELECT id, format, shipment_count, digest, created_at
	FROM report_runs
	ORDER BY created_at DESC, rowid DESC
	`
	args := make([]interface{}, 0)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := sdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	defer rows.Close()

	runs := make([]model.ReportRun, 0)
	for rows.Next() {
		var run model.ReportRun
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Format, &run.ShipmentCount, &run.Digest, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}
		run.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetReportRun retrieves a run with its output by ID.
// It returns nil, nil when no run has that ID.
func (sdb *ShipmentDB) GetReportRun(ctx context.Context, id string) (*model.ReportRun, error) {
	query := `
	SELECT id, format, shipment_count, digest, output, created_at
	FROM report_runs
	WHERE id = ?
	`

	var run model.ReportRun
	var createdAt string
	err := sdb.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.Format,
		&run.ShipmentCount,
		&run.Digest,
		&run.Output,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report run: %w", err)
	}

	run.CreatedAt = parseTimestamp(createdAt)
	return &run, nil
}

// Digest returns the hex-encoded SHA3-256 digest of output.
func Digest(output string) string {
	sum := sha3.Sum256([]byte(output))
	return hex.EncodeToString(sum[:])
}

// timestamp returns the current time in the stored layout.
func (sdb *ShipmentDB) timestamp() string {
	return sdb.now().UTC().Format(timeLayout)
}

// parseTimestamp parses a stored timestamp.
// If parsing fails, it returns the zero time.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
