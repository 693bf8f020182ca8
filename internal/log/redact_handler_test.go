package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// TestRedactHandler_Keys tests that sensitive keys are redacted.
func TestRedactHandler_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{name: "recipient is redacted", key: "recipient", value: "Jan Kowalski", wantMask: true},
		{name: "Recipient (uppercase) is redacted", key: "Recipient", value: "Jan Kowalski", wantMask: true},
		{name: "key containing email is redacted", key: "recipient_email", value: "jan-at-example", wantMask: true},
		{name: "phone is redacted", key: "phone", value: "555 0100", wantMask: true},
		{name: "address is redacted", key: "address", value: "ul. Dluga 1", wantMask: true},
		{name: "api_key is redacted", key: "api_key", value: "abc123", wantMask: true},
		{name: "shipment id is kept", key: "id", value: "SH001", wantMask: false},
		{name: "status is kept", key: "status", value: "In Transit", wantMask: false},
		{name: "destination is kept", key: "destination", value: "Warsaw", wantMask: false},
		{name: "format is kept", key: "format", value: "csv", wantMask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, Options{Verbose: true})
			logger.Info("test message", tt.key, tt.value)

			output := buf.String()
			if tt.wantMask {
				if strings.Contains(output, tt.value) {
					t.Errorf("expected value to be masked, but found in output: %s", output)
				}
				if !strings.Contains(output, MaskValue) {
					t.Errorf("expected mask value in output: %s", output)
				}
				return
			}
			if !strings.Contains(output, tt.value) {
				t.Errorf("expected value %q in output: %s", tt.value, output)
			}
		})
	}
}

// TestRedactHandler_Values tests that sensitive values are redacted under any key.
func TestRedactHandler_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		wantMask bool
	}{
		{name: "email address", value: "jan.kowalski@example.com", wantMask: true},
		{name: "phone number", value: "+48 22 123 45 67", wantMask: true},
		{name: "bearer token", value: "Bearer abc.def", wantMask: true},
		{name: "city name", value: "Krakow", wantMask: false},
		{name: "shipment id", value: "SH002", wantMask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, Options{Verbose: true})
			logger.Info("test message", "note", tt.value)

			masked := !strings.Contains(buf.String(), tt.value)
			if masked != tt.wantMask {
				t.Errorf("masked = %v, expected %v: %s", masked, tt.wantMask, buf.String())
			}
		})
	}
}

// TestRedactHandler_LogLevels tests that verbose controls the level.
func TestRedactHandler_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		logLevel   slog.Level
		shouldShow bool
	}{
		{name: "debug shown in verbose mode", verbose: true, logLevel: slog.LevelDebug, shouldShow: true},
		{name: "debug hidden in quiet mode", verbose: false, logLevel: slog.LevelDebug, shouldShow: false},
		{name: "info hidden in quiet mode", verbose: false, logLevel: slog.LevelInfo, shouldShow: false},
		{name: "warn shown in quiet mode", verbose: false, logLevel: slog.LevelWarn, shouldShow: true},
		{name: "error shown in quiet mode", verbose: false, logLevel: slog.LevelError, shouldShow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, Options{Verbose: tt.verbose})

			const msg = "level_probe_message"
			logger.Log(t.Context(), tt.logLevel, msg)

			if got := strings.Contains(buf.String(), msg); got != tt.shouldShow {
				t.Errorf("shown = %v, expected %v: %s", got, tt.shouldShow, buf.String())
			}
		})
	}
}

// TestRedactHandler_WithAttrsAndGroups tests redaction through With and groups.
func TestRedactHandler_WithAttrsAndGroups(t *testing.T) {
	t.Parallel()

	t.Run("With attributes are redacted", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, Options{Verbose: true}).With("recipient", "Anna Nowak")
		logger.Info("test message")

		if strings.Contains(buf.String(), "Anna Nowak") {
			t.Errorf("expected recipient to be redacted: %s", buf.String())
		}
	})

	t.Run("group attributes are redacted", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, Options{Verbose: true})
		logger.Info("test message", slog.Group("shipment",
			slog.String("id", "SH001"),
			slog.String("phone", "555 0100"),
		))

		output := buf.String()
		if strings.Contains(output, "555 0100") {
			t.Errorf("expected phone to be redacted: %s", output)
		}
		if !strings.Contains(output, "SH001") {
			t.Errorf("expected id to be kept: %s", output)
		}
	})

	t.Run("WithGroup keeps redaction", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, Options{Verbose: true}).WithGroup("import")
		logger.Info("test message", "email", "a@b.pl")

		if strings.Contains(buf.String(), "a@b.pl") {
			t.Errorf("expected email to be redacted: %s", buf.String())
		}
	})
}

// TestNewLogger_JSON tests that JSON output is valid and redacted.
func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{JSON: true})
	logger.Warn("ambiguous value", "id", "SH009", "recipient", "Jan")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["id"] != "SH009" {
		t.Errorf("expected id SH009, got %v", entry["id"])
	}
	if entry["recipient"] != MaskValue {
		t.Errorf("expected recipient to be masked, got %v", entry["recipient"])
	}
}

// TestNewRedactHandler_NilUsesDefault tests the nil handler fallback.
func TestNewRedactHandler_NilUsesDefault(t *testing.T) {
	t.Parallel()

	h := NewRedactHandler(nil)
	if h.handler == nil {
		t.Error("expected default handler to be used")
	}
}
