// Package warehouse describes the service centres parcels are routed through.
package warehouse

// Warehouse is a read-only service centre record, seeded from a JSON file.
type Warehouse struct {
	Region       string   `json:"region"`
	District     string   `json:"district"`
	City         string   `json:"city"`
	CoveredArea  []string `json:"covered_area"`
	Status       string   `json:"status"`
	FlowchartURL string   `json:"flowchart,omitempty"`
	Longitude    float64  `json:"longitude"`
	Latitude     float64  `json:"latitude"`
}
