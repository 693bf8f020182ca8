package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/shipreport/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedExtension is returned when a file extension is not one of
	// .yaml, .yml, .json or .csv.
	ErrUnsupportedExtension = errors.New("unsupported shipment file extension (use .yaml, .yml, .json or .csv)")

	// ErrMissingID is returned when a record has no id.
	ErrMissingID = errors.New("shipment record has no id")

	// ErrInvalidCSVHeader is returned when a CSV file does not start with
	// the header id,status,destination.
	ErrInvalidCSVHeader = errors.New("invalid csv header: expected id,status,destination")
)

// Sample returns the demo shipment list.
func Sample() []model.Shipment {
	return []model.Shipment{
		model.NewShipment("SH001", "In Transit", "Warsaw"),
		model.NewShipment("SH002", "Delivered", "Krakow"),
		model.NewShipment("SH003", "Pending", "Gdansk"),
	}
}

// document is the mapping form of a shipment file:
//
//	shipments:
//	  - id: SH001
//	    status: In Transit
//	    destination: Warsaw
type document struct {
	Shipments []model.Shipment `yaml:"shipments"`
}

// LoadFile reads shipments from path. The format is chosen by extension.
// YAML and JSON files may hold either a top-level list or a mapping with a
// "shipments" list.
func LoadFile(path string) ([]model.Shipment, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".json" && ext != ".csv" {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedExtension)
	}

	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open shipment file: %w", err)
	}
	defer f.Close()

	var shipments []model.Shipment
	if ext == ".csv" {
		shipments, err = ReadCSV(f)
	} else {
		shipments, err = ReadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return shipments, nil
}

// ReadYAML decodes shipments from YAML or JSON.
func ReadYAML(r io.Reader) ([]model.Shipment, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Shipment{}, nil
		}
		return nil, fmt.Errorf("failed to parse shipments: %w", err)
	}

	var shipments []model.Shipment
	if len(root.Content) > 0 && root.Content[0].Kind == yaml.SequenceNode {
		if err := root.Decode(&shipments); err != nil {
			return nil, fmt.Errorf("failed to decode shipment list: %w", err)
		}
	} else {
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode shipment document: %w", err)
		}
		shipments = doc.Shipments
	}

	if shipments == nil {
		shipments = []model.Shipment{}
	}
	if err := checkIDs(shipments); err != nil {
		return nil, err
	}

	return shipments, nil
}

// ReadCSV decodes shipments from CSV with the header id,status,destination.
// Quoted fields are unquoted, so a file written by a spreadsheet tool can
// carry commas inside values. A bare double quote inside an unquoted field
// is kept as part of the value, so CSV reports from this tool read back.
func ReadCSV(r io.Reader) ([]model.Shipment, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []model.Shipment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if !isHeader(header) {
		return nil, ErrInvalidCSVHeader
	}

	shipments := make([]model.Shipment, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		shipments = append(shipments, model.NewShipment(record[0], record[1], record[2]))
	}

	if err := checkIDs(shipments); err != nil {
		return nil, err
	}

	return shipments, nil
}

// isHeader reports whether record is the id,status,destination header.
func isHeader(record []string) bool {
	want := []string{"id", "status", "destination"}
	for i, name := range want {
		if strings.ToLower(strings.TrimSpace(record[i])) != name {
			return false
		}
	}
	return true
}

// checkIDs returns ErrMissingID for the first record with an empty id.
func checkIDs(shipments []model.Shipment) error {
	for i, s := range shipments {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("record %d: %w", i+1, ErrMissingID)
		}
	}
	return nil
}
