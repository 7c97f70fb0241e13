package store

import (
	"sort"

	"sporelia/models"
)

// DynamicPlantTypes recomputes the derived type index: the distinct
// normalized plant types present in the collection, sorted alphabetically
// with "Uncategorized" forced to the front. Pure; the reducer calls it
// synchronously after every collection change so the index is never
// observed out of sync with the plants.
func DynamicPlantTypes(plants []models.Plant) []string {
	seen := make(map[string]bool, len(plants))
	types := make([]string, 0, len(plants))
	for _, p := range plants {
		t := p.NormalizedType()
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i] == models.DefaultPlantType {
			return true
		}
		if types[j] == models.DefaultPlantType {
			return false
		}
		return types[i] < types[j]
	})
	return types
}
