// Package log provides structured logging for shipreport, built on the
// standard slog package.
//
// RedactHandler wraps any slog.Handler and masks values that identify a
// person before they reach the output: recipient names, e-mail addresses,
// phone numbers and credentials. Shipment IDs, statuses and destinations
// are not personal data and pass through unchanged.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, log.Options{Verbose: true})
//	logger.Info("shipment imported",
//	    "id", "SH001",
//	    "recipient_email", "jan@example.com", // logged as ***REDACTED***
//	)
//	slog.SetDefault(logger)
package log
