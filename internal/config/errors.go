package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be checked with
// errors.Is().
var (
	// ErrInvalidFormat is returned when a report format name is not known.
	ErrInvalidFormat = errors.New("invalid report format")

	// ErrConflictingSources is returned when both --input and --from-db
	// are specified. A report is generated from exactly one source.
	ErrConflictingSources = errors.New("conflicting sources: --input and --from-db cannot be used together")

	// ErrInvalidConcurrency is returned when the export concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrNoExportFormats is returned when an export is requested with an
	// empty format list.
	ErrNoExportFormats = errors.New("no export formats specified")

	// ErrInvalidBasename is returned when the export basename is empty or
	// contains a path separator.
	ErrInvalidBasename = errors.New("invalid basename: must be a plain file name")
)
