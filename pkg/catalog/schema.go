// pkg/catalog/schema.go
package catalog

// CuisineCatalog is the curated list of cuisines the ingestion tool knows how
// to search for, mapping display names to directory category aliases.
type CuisineCatalog struct {
	Version     string    `json:"version"`
	LastUpdated string    `json:"lastUpdated"`
	Cuisines    []Cuisine `json:"cuisines"`
}

type Cuisine struct {
	Name        string   `json:"name"`
	Alias       string   `json:"alias"`
	Description string   `json:"description,omitempty"`
	Locations   []string `json:"locations,omitempty"`
}
