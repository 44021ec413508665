// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"os"
	"strings"
)

func Load(path string) (*CuisineCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat CuisineCatalog
	err = json.Unmarshal(data, &cat)
	return &cat, err
}

// ResolveAlias maps a cuisine display name to its directory category alias.
// Matching is case-insensitive; an unknown name is returned lowercased so
// ad-hoc categories still work.
func (c *CuisineCatalog) ResolveAlias(name string) string {
	for _, cuisine := range c.Cuisines {
		if strings.EqualFold(cuisine.Name, name) || strings.EqualFold(cuisine.Alias, name) {
			return cuisine.Alias
		}
	}
	return strings.ToLower(name)
}
