package model

// Shipment is a single shipment record.
//
// Shipment is a value type. It has no mutating methods and is passed and
// stored by value, so a Shipment never changes after construction.
// No field is validated; ID is non-empty by convention only.
type Shipment struct {
	// ID identifies the shipment (e.g. "SH001").
	ID string `json:"id" yaml:"id"`

	// Status is a free-form status such as "In Transit" or "Delivered".
	Status string `json:"status" yaml:"status"`

	// Destination is a free-form destination, usually a city name.
	Destination string `json:"destination" yaml:"destination"`
}

// NewShipment creates a Shipment from its three fields.
func NewShipment(id, status, destination string) Shipment {
	return Shipment{
		ID:          id,
		Status:      status,
		Destination: destination,
	}
}

// Fields returns the shipment values in column order: id, status, destination.
func (s Shipment) Fields() []string {
	return []string{s.ID, s.Status, s.Destination}
}

// StatusCount is the number of shipments that share a status.
type StatusCount struct {
	Status string
	Count  int
}

// CountByStatus groups shipments by status.
// The result is ordered by the first appearance of each status in shipments.
func CountByStatus(shipments []Shipment) []StatusCount {
	index := make(map[string]int)
	counts := make([]StatusCount, 0)

	for _, s := range shipments {
		i, ok := index[s.Status]
		if !ok {
			index[s.Status] = len(counts)
			counts = append(counts, StatusCount{Status: s.Status, Count: 1})
			continue
		}
		counts[i].Count++
	}

	return counts
}
